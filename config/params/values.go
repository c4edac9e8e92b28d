package params

const (
	Mainnet ConfigName = iota
	Minimal
	EndToEnd
)

// ConfigNames provides network configuration names.
var ConfigNames = map[ConfigName]string{
	Mainnet:  "mainnet",
	Minimal:  "minimal",
	EndToEnd: "end-to-end",
}

// ConfigName enum describes the type of known network in use.
type ConfigName int

func (n ConfigName) String() string {
	s, ok := ConfigNames[n]
	if !ok {
		return "undefined"
	}
	return s
}

// AllConfigs returns a fresh copy of every known configuration, keyed by name.
func AllConfigs() map[ConfigName]*BeaconChainConfig {
	all := make(map[ConfigName]*BeaconChainConfig)
	for name := range ConfigNames {
		var cfg *BeaconChainConfig
		switch name {
		case Mainnet:
			cfg = MainnetConfig()
		case Minimal:
			cfg = MinimalSpecConfig()
		case EndToEnd:
			cfg = E2ETestConfig()
		}
		all[name] = cfg.Copy()
	}
	return all
}

// ByName resolves a known configuration from its name.
func ByName(name string) (*BeaconChainConfig, bool) {
	for key, known := range ConfigNames {
		if known != name {
			continue
		}
		cfg, ok := AllConfigs()[key]
		return cfg, ok
	}
	return nil, false
}
