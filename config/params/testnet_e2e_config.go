package params

// E2ETestConfig retrieves the configurations made specifically for E2E testing.
//
// WARNING: This config is only for testing, it is not meant for use outside of E2E.
func E2ETestConfig() *BeaconChainConfig {
	e2eConfig := MinimalSpecConfig()

	// Misc.
	e2eConfig.ConfigName = ConfigNames[EndToEnd]
	e2eConfig.MinGenesisActiveValidatorCount = 256
	e2eConfig.GenesisDelay = 10 // 10 seconds so E2E has enough time to process deposits and get started.
	e2eConfig.ChurnLimitQuotient = 65536

	// Time parameters.
	e2eConfig.SecondsPerSlot = 10
	e2eConfig.SlotsPerEpoch = 6
	e2eConfig.SqrRootSlotsPerEpoch = 2
	e2eConfig.SlotsPerEth1VotingPeriod = 12
	e2eConfig.Eth1FollowDistance = 8
	e2eConfig.ShardCommitteePeriod = 4

	// Operations. Transfers are enabled here so the transfer path is
	// exercised end to end; both public networks pin MaxTransfers to zero.
	e2eConfig.MaxTransfers = 16

	// PoW parameters.
	e2eConfig.DepositChainID = 1337   // Chain ID of eth1 dev net.
	e2eConfig.DepositNetworkID = 1337 // Network ID of eth1 dev net.

	// Fork related values.
	e2eConfig.GenesisForkVersion = []byte{0, 0, 0, 253}

	return e2eConfig
}
