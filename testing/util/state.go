// Package util defines utility functions for the testing of consensus
// state transition logic, such as deterministic genesis states, deposits
// and signed blocks.
package util

import (
	"encoding/binary"

	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
)

// FillRootsNaturalOpt is meant to be used as an option when calling NewBeaconState.
// It fills state and block roots with big endian representations of natural numbers
// starting with 0. Example: 16 becomes 0x00...10.
func FillRootsNaturalOpt(cfg *params.BeaconChainConfig) func(st *state.BeaconState) error {
	return func(st *state.BeaconState) error {
		rootsLen := uint64(cfg.SlotsPerHistoricalRoot)
		roots := make([][]byte, rootsLen)
		for i := uint64(0); i < rootsLen; i++ {
			root := make([]byte, 32)
			binary.BigEndian.PutUint64(root[24:], i)
			roots[i] = root
		}
		st.StateRoots = roots
		st.BlockRoots = roots
		return nil
	}
}

// NewBeaconState creates a beacon state with minimum viable fields using the
// mainnet preset for the vector lengths.
func NewBeaconState(options ...func(st *state.BeaconState) error) (*state.BeaconState, error) {
	cfg := params.MainnetConfig()
	seed := &state.BeaconState{
		GenesisTime:           0,
		GenesisValidatorsRoot: make([]byte, 32),
		Slot:                  0,
		Fork: &ethpb.Fork{
			PreviousVersion: make([]byte, 4),
			CurrentVersion:  make([]byte, 4),
		},
		LatestBlockHeader: HydrateBeaconHeader(&ethpb.BeaconBlockHeader{}),
		BlockRoots:        filledByteSlice2D(uint64(cfg.SlotsPerHistoricalRoot), 32),
		StateRoots:        filledByteSlice2D(uint64(cfg.SlotsPerHistoricalRoot), 32),
		HistoricalRoots:   make([][]byte, 0),
		Eth1Data: &ethpb.Eth1Data{
			DepositRoot: make([]byte, 32),
			BlockHash:   make([]byte, 32),
		},
		Eth1DataVotes:               make([]*ethpb.Eth1Data, 0),
		Eth1DepositIndex:            0,
		Validators:                  make([]*ethpb.Validator, 0),
		Balances:                    make([]uint64, 0),
		RandaoMixes:                 filledByteSlice2D(uint64(cfg.EpochsPerHistoricalVector), 32),
		Slashings:                   make([]uint64, cfg.EpochsPerSlashingsVector),
		PreviousEpochAttestations:   make([]*ethpb.PendingAttestation, 0),
		CurrentEpochAttestations:    make([]*ethpb.PendingAttestation, 0),
		JustificationBits:           bitfield.Bitvector4{0x0},
		PreviousJustifiedCheckpoint: &ethpb.Checkpoint{Root: make([]byte, 32)},
		CurrentJustifiedCheckpoint:  &ethpb.Checkpoint{Root: make([]byte, 32)},
		FinalizedCheckpoint:         &ethpb.Checkpoint{Root: make([]byte, 32)},
	}

	for _, opt := range options {
		err := opt(seed)
		if err != nil {
			return nil, err
		}
	}

	return seed.Copy(), nil
}

// SSZ requires 2D byte slices to be filled with their respective values, so we
// must fill these in too for round trip testing.
func filledByteSlice2D(length, innerLen uint64) [][]byte {
	b := make([][]byte, length)
	for i := uint64(0); i < length; i++ {
		b[i] = make([]byte, innerLen)
	}
	return b
}
