package params

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/math"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// LoadChainConfigFile loads a yaml chain config file, converts hex values into
// a form the yaml parser accepts, and returns the resulting config layered on
// top of the matching base preset.
func LoadChainConfigFile(chainConfigFileName string) (*BeaconChainConfig, error) {
	yamlFile, err := os.ReadFile(chainConfigFileName) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "could not read chain config file")
	}
	// Default to using mainnet.
	conf := MainnetConfig().Copy()
	hasConfigName := false
	// Convert 0x hex inputs to fixed bytes arrays.
	lines := strings.Split(string(yamlFile), "\n")
	for i, line := range lines {
		// No need to convert the deposit contract address to byte array (as config expects a string).
		if strings.HasPrefix(line, "DEPOSIT_CONTRACT_ADDRESS") {
			continue
		}
		if strings.HasPrefix(line, "PRESET_BASE: 'minimal'") ||
			strings.HasPrefix(line, `PRESET_BASE: "minimal"`) ||
			strings.HasPrefix(line, "PRESET_BASE: minimal") ||
			strings.HasPrefix(line, "# Minimal preset") {
			conf = MinimalSpecConfig()
		}
		if strings.HasPrefix(line, "CONFIG_NAME") {
			hasConfigName = true
		}
		if !strings.HasPrefix(line, "#") && strings.Contains(line, "0x") {
			parts := ReplaceHexStringWithYAMLFormat(line)
			lines[i] = strings.Join(parts, "\n")
		}
	}
	yamlFile = []byte(strings.Join(lines, "\n"))
	if err := yaml.UnmarshalStrict(yamlFile, conf); err != nil {
		if _, ok := err.(*yaml.TypeError); !ok {
			return nil, errors.Wrap(err, "could not parse chain config yaml file")
		}
		log.WithError(err).Error("There were some issues parsing the config from a yaml file")
	}
	if !hasConfigName {
		conf.ConfigName = "devnet"
	}
	// Recompute SqrRootSlotsPerEpoch constant to handle non-standard values of SlotsPerEpoch.
	conf.SqrRootSlotsPerEpoch = types.Slot(math.IntegerSquareRoot(uint64(conf.SlotsPerEpoch)))
	log.Debugf("Config file values: %+v", conf)
	return conf, nil
}

// ReplaceHexStringWithYAMLFormat will replace hex strings that the yaml parser will understand.
func ReplaceHexStringWithYAMLFormat(line string) []string {
	parts := strings.Split(line, "0x")
	decoded, err := hex.DecodeString(parts[1])
	if err != nil {
		log.WithError(err).Error("Failed to decode hex string.")
	}
	switch l := len(decoded); {
	case l == 1:
		var b byte
		b = decoded[0]
		fixedByte, err := yaml.Marshal(b)
		if err != nil {
			log.WithError(err).Error("Failed to marshal config file.")
		}
		parts[0] += string(fixedByte)
		parts = parts[:1]
	case l > 1 && l <= 4:
		var arr [4]byte
		copy(arr[:], decoded)
		fixedByte, err := yaml.Marshal(arr)
		if err != nil {
			log.WithError(err).Error("Failed to marshal config file.")
		}
		parts[1] = string(fixedByte)
	case l > 4 && l <= 8:
		var arr [8]byte
		copy(arr[:], decoded)
		fixedByte, err := yaml.Marshal(arr)
		if err != nil {
			log.WithError(err).Error("Failed to marshal config file.")
		}
		parts[1] = string(fixedByte)
	case l > 8 && l <= 16:
		var arr [16]byte
		copy(arr[:], decoded)
		fixedByte, err := yaml.Marshal(arr)
		if err != nil {
			log.WithError(err).Error("Failed to marshal config file.")
		}
		parts[1] = string(fixedByte)
	case l > 16 && l <= 20:
		var arr [20]byte
		copy(arr[:], decoded)
		fixedByte, err := yaml.Marshal(arr)
		if err != nil {
			log.WithError(err).Error("Failed to marshal config file.")
		}
		parts[1] = string(fixedByte)
	case l > 20 && l <= 32:
		var arr [32]byte
		copy(arr[:], decoded)
		fixedByte, err := yaml.Marshal(arr)
		if err != nil {
			log.WithError(err).Error("Failed to marshal config file.")
		}
		parts[1] = string(fixedByte)
	case l > 32 && l <= 48:
		var arr [48]byte
		copy(arr[:], decoded)
		fixedByte, err := yaml.Marshal(arr)
		if err != nil {
			log.WithError(err).Error("Failed to marshal config file.")
		}
		parts[1] = string(fixedByte)
	case l > 48 && l <= 64:
		var arr [64]byte
		copy(arr[:], decoded)
		fixedByte, err := yaml.Marshal(arr)
		if err != nil {
			log.WithError(err).Error("Failed to marshal config file.")
		}
		parts[1] = string(fixedByte)
	case l > 64 && l <= 96:
		var arr [96]byte
		copy(arr[:], decoded)
		fixedByte, err := yaml.Marshal(arr)
		if err != nil {
			log.WithError(err).Error("Failed to marshal config file.")
		}
		parts[1] = string(fixedByte)
	}
	return parts
}

// ConfigToYaml takes a provided config and outputs its contents
// in yaml.
func ConfigToYaml(cfg *BeaconChainConfig) []byte {
	lines := []string{
		fmt.Sprintf("PRESET_BASE: '%s'", cfg.PresetBase),
		fmt.Sprintf("CONFIG_NAME: '%s'", cfg.ConfigName),
		fmt.Sprintf("MIN_GENESIS_ACTIVE_VALIDATOR_COUNT: %d", cfg.MinGenesisActiveValidatorCount),
		fmt.Sprintf("MIN_GENESIS_TIME: %d", cfg.MinGenesisTime),
		fmt.Sprintf("GENESIS_DELAY: %d", cfg.GenesisDelay),
		fmt.Sprintf("GENESIS_FORK_VERSION: %#x", cfg.GenesisForkVersion),
		fmt.Sprintf("TARGET_COMMITTEE_SIZE: %d", cfg.TargetCommitteeSize),
		fmt.Sprintf("MAX_VALIDATORS_PER_COMMITTEE: %d", cfg.MaxValidatorsPerCommittee),
		fmt.Sprintf("MAX_COMMITTEES_PER_SLOT: %d", cfg.MaxCommitteesPerSlot),
		fmt.Sprintf("MIN_PER_EPOCH_CHURN_LIMIT: %d", cfg.MinPerEpochChurnLimit),
		fmt.Sprintf("CHURN_LIMIT_QUOTIENT: %d", cfg.ChurnLimitQuotient),
		fmt.Sprintf("SHUFFLE_ROUND_COUNT: %d", cfg.ShuffleRoundCount),
		fmt.Sprintf("MIN_DEPOSIT_AMOUNT: %d", cfg.MinDepositAmount),
		fmt.Sprintf("MAX_EFFECTIVE_BALANCE: %d", cfg.MaxEffectiveBalance),
		fmt.Sprintf("EJECTION_BALANCE: %d", cfg.EjectionBalance),
		fmt.Sprintf("EFFECTIVE_BALANCE_INCREMENT: %d", cfg.EffectiveBalanceIncrement),
		fmt.Sprintf("MIN_ATTESTATION_INCLUSION_DELAY: %d", cfg.MinAttestationInclusionDelay),
		fmt.Sprintf("SECONDS_PER_SLOT: %d", cfg.SecondsPerSlot),
		fmt.Sprintf("SLOTS_PER_EPOCH: %d", cfg.SlotsPerEpoch),
		fmt.Sprintf("MIN_SEED_LOOKAHEAD: %d", cfg.MinSeedLookahead),
		fmt.Sprintf("MAX_SEED_LOOKAHEAD: %d", cfg.MaxSeedLookahead),
		fmt.Sprintf("SLOTS_PER_ETH1_VOTING_PERIOD: %d", cfg.SlotsPerEth1VotingPeriod),
		fmt.Sprintf("SLOTS_PER_HISTORICAL_ROOT: %d", cfg.SlotsPerHistoricalRoot),
		fmt.Sprintf("MIN_VALIDATOR_WITHDRAWABILITY_DELAY: %d", cfg.MinValidatorWithdrawabilityDelay),
		fmt.Sprintf("SHARD_COMMITTEE_PERIOD: %d", cfg.ShardCommitteePeriod),
		fmt.Sprintf("MIN_EPOCHS_TO_INACTIVITY_PENALTY: %d", cfg.MinEpochsToInactivityPenalty),
		fmt.Sprintf("ETH1_FOLLOW_DISTANCE: %d", cfg.Eth1FollowDistance),
		fmt.Sprintf("DEPOSIT_CHAIN_ID: %d", cfg.DepositChainID),
		fmt.Sprintf("DEPOSIT_NETWORK_ID: %d", cfg.DepositNetworkID),
		fmt.Sprintf("DEPOSIT_CONTRACT_ADDRESS: %s", cfg.DepositContractAddress),
		fmt.Sprintf("EPOCHS_PER_HISTORICAL_VECTOR: %d", cfg.EpochsPerHistoricalVector),
		fmt.Sprintf("EPOCHS_PER_SLASHINGS_VECTOR: %d", cfg.EpochsPerSlashingsVector),
		fmt.Sprintf("HISTORICAL_ROOTS_LIMIT: %d", cfg.HistoricalRootsLimit),
		fmt.Sprintf("VALIDATOR_REGISTRY_LIMIT: %d", cfg.ValidatorRegistryLimit),
		fmt.Sprintf("BASE_REWARD_FACTOR: %d", cfg.BaseRewardFactor),
		fmt.Sprintf("WHISTLEBLOWER_REWARD_QUOTIENT: %d", cfg.WhistleBlowerRewardQuotient),
		fmt.Sprintf("PROPOSER_REWARD_QUOTIENT: %d", cfg.ProposerRewardQuotient),
		fmt.Sprintf("INACTIVITY_PENALTY_QUOTIENT: %d", cfg.InactivityPenaltyQuotient),
		fmt.Sprintf("MIN_SLASHING_PENALTY_QUOTIENT: %d", cfg.MinSlashingPenaltyQuotient),
		fmt.Sprintf("PROPORTIONAL_SLASHING_MULTIPLIER: %d", cfg.ProportionalSlashingMultiplier),
		fmt.Sprintf("MAX_PROPOSER_SLASHINGS: %d", cfg.MaxProposerSlashings),
		fmt.Sprintf("MAX_ATTESTER_SLASHINGS: %d", cfg.MaxAttesterSlashings),
		fmt.Sprintf("MAX_ATTESTATIONS: %d", cfg.MaxAttestations),
		fmt.Sprintf("MAX_DEPOSITS: %d", cfg.MaxDeposits),
		fmt.Sprintf("MAX_VOLUNTARY_EXITS: %d", cfg.MaxVoluntaryExits),
		fmt.Sprintf("MAX_TRANSFERS: %d", cfg.MaxTransfers),
		fmt.Sprintf("DOMAIN_BEACON_PROPOSER: %#x", cfg.DomainBeaconProposer),
		fmt.Sprintf("DOMAIN_RANDAO: %#x", cfg.DomainRandao),
		fmt.Sprintf("DOMAIN_BEACON_ATTESTER: %#x", cfg.DomainBeaconAttester),
		fmt.Sprintf("DOMAIN_DEPOSIT: %#x", cfg.DomainDeposit),
		fmt.Sprintf("DOMAIN_VOLUNTARY_EXIT: %#x", cfg.DomainVoluntaryExit),
		fmt.Sprintf("DOMAIN_TRANSFER: %#x", cfg.DomainTransfer),
	}

	yamlFile := []byte(strings.Join(lines, "\n"))
	return yamlFile
}
