// Package params defines the chain configuration constants that parameterize
// the state transition. Configs are explicit immutable values handed to the
// transition functions by the caller, never ambient process-wide state, so
// several chain configurations can coexist in one process.
package params

import (
	"github.com/mohae/deepcopy"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
)

// BeaconChainConfig contains constant configs for node to participate in beacon chain.
type BeaconChainConfig struct {
	// Constants (non-configurable).
	FarFutureEpoch           types.Epoch `yaml:"FAR_FUTURE_EPOCH"`
	FarFutureSlot            types.Slot  `yaml:"FAR_FUTURE_SLOT"`
	BaseRewardsPerEpoch      uint64      `yaml:"BASE_REWARDS_PER_EPOCH"`
	DepositContractTreeDepth uint64      `yaml:"DEPOSIT_CONTRACT_TREE_DEPTH"`
	JustificationBitsLength  uint64      `yaml:"JUSTIFICATION_BITS_LENGTH"`
	GenesisSlot              types.Slot  `yaml:"GENESIS_SLOT"`
	GenesisEpoch             types.Epoch `yaml:"GENESIS_EPOCH"`

	// Misc constants.
	PresetBase                     string `yaml:"PRESET_BASE" spec:"true"`
	ConfigName                     string `yaml:"CONFIG_NAME" spec:"true"`
	TargetCommitteeSize            uint64 `yaml:"TARGET_COMMITTEE_SIZE" spec:"true"`
	MaxValidatorsPerCommittee      uint64 `yaml:"MAX_VALIDATORS_PER_COMMITTEE" spec:"true"`
	MaxCommitteesPerSlot           uint64 `yaml:"MAX_COMMITTEES_PER_SLOT" spec:"true"`
	MinPerEpochChurnLimit          uint64 `yaml:"MIN_PER_EPOCH_CHURN_LIMIT" spec:"true"`
	ChurnLimitQuotient             uint64 `yaml:"CHURN_LIMIT_QUOTIENT" spec:"true"`
	ShuffleRoundCount              uint64 `yaml:"SHUFFLE_ROUND_COUNT" spec:"true"`
	MinGenesisActiveValidatorCount uint64 `yaml:"MIN_GENESIS_ACTIVE_VALIDATOR_COUNT" spec:"true"`
	MinGenesisTime                 uint64 `yaml:"MIN_GENESIS_TIME" spec:"true"`
	GenesisDelay                   uint64 `yaml:"GENESIS_DELAY" spec:"true"`
	HysteresisQuotient             uint64 `yaml:"HYSTERESIS_QUOTIENT" spec:"true"`
	HysteresisDownwardMultiplier   uint64 `yaml:"HYSTERESIS_DOWNWARD_MULTIPLIER" spec:"true"`
	HysteresisUpwardMultiplier     uint64 `yaml:"HYSTERESIS_UPWARD_MULTIPLIER" spec:"true"`

	// Gwei value constants.
	MinDepositAmount          uint64 `yaml:"MIN_DEPOSIT_AMOUNT" spec:"true"`
	MaxEffectiveBalance       uint64 `yaml:"MAX_EFFECTIVE_BALANCE" spec:"true"`
	EjectionBalance           uint64 `yaml:"EJECTION_BALANCE" spec:"true"`
	EffectiveBalanceIncrement uint64 `yaml:"EFFECTIVE_BALANCE_INCREMENT" spec:"true"`

	// Initial value constants.
	BLSWithdrawalPrefixByte byte `yaml:"BLS_WITHDRAWAL_PREFIX" spec:"true"`
	ZeroHash                [32]byte

	// Time parameter constants.
	MinAttestationInclusionDelay     types.Slot `yaml:"MIN_ATTESTATION_INCLUSION_DELAY" spec:"true"`
	SecondsPerSlot                   uint64     `yaml:"SECONDS_PER_SLOT" spec:"true"`
	SlotsPerEpoch                    types.Slot `yaml:"SLOTS_PER_EPOCH" spec:"true"`
	SqrRootSlotsPerEpoch             types.Slot
	MinSeedLookahead                 types.Epoch `yaml:"MIN_SEED_LOOKAHEAD" spec:"true"`
	MaxSeedLookahead                 types.Epoch `yaml:"MAX_SEED_LOOKAHEAD" spec:"true"`
	SlotsPerEth1VotingPeriod         types.Slot  `yaml:"SLOTS_PER_ETH1_VOTING_PERIOD" spec:"true"`
	SlotsPerHistoricalRoot           types.Slot  `yaml:"SLOTS_PER_HISTORICAL_ROOT" spec:"true"`
	MinValidatorWithdrawabilityDelay types.Epoch `yaml:"MIN_VALIDATOR_WITHDRAWABILITY_DELAY" spec:"true"`
	ShardCommitteePeriod             types.Epoch `yaml:"SHARD_COMMITTEE_PERIOD" spec:"true"`
	MinEpochsToInactivityPenalty     types.Epoch `yaml:"MIN_EPOCHS_TO_INACTIVITY_PENALTY" spec:"true"`
	Eth1FollowDistance               uint64      `yaml:"ETH1_FOLLOW_DISTANCE" spec:"true"`

	// Ethereum PoW parameters.
	DepositChainID         uint64 `yaml:"DEPOSIT_CHAIN_ID" spec:"true"`
	DepositNetworkID       uint64 `yaml:"DEPOSIT_NETWORK_ID" spec:"true"`
	DepositContractAddress string `yaml:"DEPOSIT_CONTRACT_ADDRESS" spec:"true"`

	// State list length constants.
	EpochsPerHistoricalVector types.Epoch `yaml:"EPOCHS_PER_HISTORICAL_VECTOR" spec:"true"`
	EpochsPerSlashingsVector  types.Epoch `yaml:"EPOCHS_PER_SLASHINGS_VECTOR" spec:"true"`
	HistoricalRootsLimit      uint64      `yaml:"HISTORICAL_ROOTS_LIMIT" spec:"true"`
	ValidatorRegistryLimit    uint64      `yaml:"VALIDATOR_REGISTRY_LIMIT" spec:"true"`

	// Reward and penalty quotients constants.
	BaseRewardFactor               uint64 `yaml:"BASE_REWARD_FACTOR" spec:"true"`
	WhistleBlowerRewardQuotient    uint64 `yaml:"WHISTLEBLOWER_REWARD_QUOTIENT" spec:"true"`
	ProposerRewardQuotient         uint64 `yaml:"PROPOSER_REWARD_QUOTIENT" spec:"true"`
	InactivityPenaltyQuotient      uint64 `yaml:"INACTIVITY_PENALTY_QUOTIENT" spec:"true"`
	MinSlashingPenaltyQuotient     uint64 `yaml:"MIN_SLASHING_PENALTY_QUOTIENT" spec:"true"`
	ProportionalSlashingMultiplier uint64 `yaml:"PROPORTIONAL_SLASHING_MULTIPLIER" spec:"true"`

	// Max operations per block constants.
	MaxProposerSlashings uint64 `yaml:"MAX_PROPOSER_SLASHINGS" spec:"true"`
	MaxAttesterSlashings uint64 `yaml:"MAX_ATTESTER_SLASHINGS" spec:"true"`
	MaxAttestations      uint64 `yaml:"MAX_ATTESTATIONS" spec:"true"`
	MaxDeposits          uint64 `yaml:"MAX_DEPOSITS" spec:"true"`
	MaxVoluntaryExits    uint64 `yaml:"MAX_VOLUNTARY_EXITS" spec:"true"`
	MaxTransfers         uint64 `yaml:"MAX_TRANSFERS" spec:"true"`

	// BLS domain values.
	DomainBeaconProposer [4]byte `yaml:"DOMAIN_BEACON_PROPOSER" spec:"true"`
	DomainBeaconAttester [4]byte `yaml:"DOMAIN_BEACON_ATTESTER" spec:"true"`
	DomainRandao         [4]byte `yaml:"DOMAIN_RANDAO" spec:"true"`
	DomainDeposit        [4]byte `yaml:"DOMAIN_DEPOSIT" spec:"true"`
	DomainVoluntaryExit  [4]byte `yaml:"DOMAIN_VOLUNTARY_EXIT" spec:"true"`
	DomainTransfer       [4]byte `yaml:"DOMAIN_TRANSFER" spec:"true"`

	// Fork related values.
	GenesisForkVersion []byte `yaml:"GENESIS_FORK_VERSION" spec:"true"`

	// Derived and auxiliary constants.
	GweiPerEth            uint64
	EmptySignature        [96]byte
	BeaconStateFieldCount int
}

// Copy returns a deep copy of the config object.
func (b *BeaconChainConfig) Copy() *BeaconChainConfig {
	config := deepcopy.Copy(*b).(BeaconChainConfig)
	return &config
}
