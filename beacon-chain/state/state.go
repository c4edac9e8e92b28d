// Package state defines the beacon chain state as a plain value type. The
// struct carries no locks, caches or back-references; the caller owns a state
// for the duration of a transition call and uses Copy to branch histories.
package state

import (
	"github.com/prysmaticlabs/go-bitfield"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
)

// BeaconState holds the full phase 0 beacon state. Validators and Balances
// are parallel lists of equal length and validator indices are stable for the
// lifetime of the chain.
type BeaconState struct {
	GenesisTime           uint64
	GenesisValidatorsRoot []byte
	Slot                  types.Slot
	Fork                  *ethpb.Fork
	LatestBlockHeader     *ethpb.BeaconBlockHeader
	BlockRoots            [][]byte
	StateRoots            [][]byte
	HistoricalRoots       [][]byte
	Eth1Data              *ethpb.Eth1Data
	Eth1DataVotes         []*ethpb.Eth1Data
	Eth1DepositIndex      uint64
	Validators            []*ethpb.Validator
	Balances              []uint64
	RandaoMixes           [][]byte
	Slashings             []uint64

	PreviousEpochAttestations []*ethpb.PendingAttestation
	CurrentEpochAttestations  []*ethpb.PendingAttestation

	JustificationBits           bitfield.Bitvector4
	PreviousJustifiedCheckpoint *ethpb.Checkpoint
	CurrentJustifiedCheckpoint  *ethpb.Checkpoint
	FinalizedCheckpoint         *ethpb.Checkpoint
}

// NumValidators returns the size of the validator registry.
func (b *BeaconState) NumValidators() int {
	return len(b.Validators)
}

// ValidatorAtIndex returns the validator at the provided index, or false when
// the index is outside the registry.
func (b *BeaconState) ValidatorAtIndex(idx types.ValidatorIndex) (*ethpb.Validator, bool) {
	if uint64(idx) >= uint64(len(b.Validators)) {
		return nil, false
	}
	return b.Validators[idx], true
}
