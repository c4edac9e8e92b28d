package helpers

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	"github.com/prysmaticlabs/phase0/container/trie"
)

// UpdateGenesisEth1Data updates eth1 data for genesis state. The deposit root
// of the provided eth1 data is recomputed from the full list of genesis
// deposits so that each deposit proof verifies against it.
func UpdateGenesisEth1Data(cfg *params.BeaconChainConfig, st *state.BeaconState, deposits []*ethpb.Deposit, eth1Data *ethpb.Eth1Data) error {
	if eth1Data == nil {
		return errors.New("no eth1data provided for genesis state")
	}

	var depositDataList [][]byte
	for _, deposit := range deposits {
		hash, err := deposit.Data.HashTreeRoot()
		if err != nil {
			return errors.Wrap(err, "could not hash tree root deposit data")
		}
		depositDataList = append(depositDataList, hash[:])
	}

	depositTrie, err := trie.GenerateTrieFromItems(depositDataList, cfg.DepositContractTreeDepth)
	if err != nil {
		return errors.Wrap(err, "could not generate deposit trie")
	}

	depositRoot, err := depositTrie.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not hash tree root deposit trie")
	}
	eth1Data.DepositRoot = depositRoot[:]
	st.Eth1Data = eth1Data

	return nil
}
