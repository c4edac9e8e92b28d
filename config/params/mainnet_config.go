package params

// MainnetConfig returns the configuration to be used in the main network.
func MainnetConfig() *BeaconChainConfig {
	return mainnetBeaconConfig
}

var mainnetBeaconConfig = &BeaconChainConfig{
	// Constants (non-configurable).
	FarFutureEpoch:           1<<64 - 1,
	FarFutureSlot:            1<<64 - 1,
	BaseRewardsPerEpoch:      4,
	DepositContractTreeDepth: 32,
	JustificationBitsLength:  4,
	GenesisSlot:              0,
	GenesisEpoch:             0,

	// Misc constants.
	PresetBase:                     "mainnet",
	ConfigName:                     ConfigNames[Mainnet],
	TargetCommitteeSize:            128,
	MaxValidatorsPerCommittee:      2048,
	MaxCommitteesPerSlot:           64,
	MinPerEpochChurnLimit:          4,
	ChurnLimitQuotient:             1 << 16,
	ShuffleRoundCount:              90,
	MinGenesisActiveValidatorCount: 16384,
	MinGenesisTime:                 1606824000, // Dec 1, 2020, 12pm UTC.
	GenesisDelay:                   604800,     // 1 week.
	HysteresisQuotient:             4,
	HysteresisDownwardMultiplier:   1,
	HysteresisUpwardMultiplier:     5,

	// Gwei value constants.
	MinDepositAmount:          1 * 1e9,
	MaxEffectiveBalance:       32 * 1e9,
	EjectionBalance:           16 * 1e9,
	EffectiveBalanceIncrement: 1 * 1e9,

	// Initial value constants.
	BLSWithdrawalPrefixByte: byte(0),
	ZeroHash:                [32]byte{},

	// Time parameter constants.
	MinAttestationInclusionDelay:     4,
	SecondsPerSlot:                   6,
	SlotsPerEpoch:                    32,
	SqrRootSlotsPerEpoch:             5,
	MinSeedLookahead:                 1,
	MaxSeedLookahead:                 4,
	SlotsPerEth1VotingPeriod:         1024,
	SlotsPerHistoricalRoot:           8192,
	MinValidatorWithdrawabilityDelay: 256,
	ShardCommitteePeriod:             2048,
	MinEpochsToInactivityPenalty:     4,
	Eth1FollowDistance:               2048,

	// Ethereum PoW parameters.
	DepositChainID:         1, // Chain ID of eth1 mainnet.
	DepositNetworkID:       1, // Network ID of eth1 mainnet.
	DepositContractAddress: "0x00000000219ab540356cBB839Cbe05303d7705Fa",

	// State list length constants.
	EpochsPerHistoricalVector: 65536,
	EpochsPerSlashingsVector:  8192,
	HistoricalRootsLimit:      16777216,
	ValidatorRegistryLimit:    1099511627776,

	// Reward and penalty quotients constants.
	BaseRewardFactor:               64,
	WhistleBlowerRewardQuotient:    512,
	ProposerRewardQuotient:         8,
	InactivityPenaltyQuotient:      33554432,
	MinSlashingPenaltyQuotient:     32,
	ProportionalSlashingMultiplier: 1,

	// Max operations per block constants.
	MaxProposerSlashings: 16,
	MaxAttesterSlashings: 2,
	MaxAttestations:      128,
	MaxDeposits:          16,
	MaxVoluntaryExits:    16,
	MaxTransfers:         0,

	// BLS domain values.
	DomainBeaconProposer: [4]byte{0, 0, 0, 0},
	DomainRandao:         [4]byte{1, 0, 0, 0},
	DomainBeaconAttester: [4]byte{2, 0, 0, 0},
	DomainDeposit:        [4]byte{3, 0, 0, 0},
	DomainVoluntaryExit:  [4]byte{4, 0, 0, 0},
	DomainTransfer:       [4]byte{5, 0, 0, 0},

	// Fork related values.
	GenesisForkVersion: []byte{0, 0, 0, 0},

	// Derived and auxiliary constants.
	GweiPerEth:            1000000000,
	EmptySignature:        [96]byte{},
	BeaconStateFieldCount: 21,
}
