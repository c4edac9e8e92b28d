package state

import (
	"github.com/prysmaticlabs/go-bitfield"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	"github.com/prysmaticlabs/phase0/encoding/bytesutil"
)

// Copy returns a deep copy of the beacon state. The copy shares nothing with
// the receiver, so mutating one never shows through the other.
func (b *BeaconState) Copy() *BeaconState {
	if b == nil {
		return nil
	}
	return &BeaconState{
		GenesisTime:           b.GenesisTime,
		GenesisValidatorsRoot: bytesutil.SafeCopyBytes(b.GenesisValidatorsRoot),
		Slot:                  b.Slot,
		Fork:                  ethpb.CopyFork(b.Fork),
		LatestBlockHeader:     ethpb.CopyBeaconBlockHeader(b.LatestBlockHeader),
		BlockRoots:            bytesutil.SafeCopy2dBytes(b.BlockRoots),
		StateRoots:            bytesutil.SafeCopy2dBytes(b.StateRoots),
		HistoricalRoots:       bytesutil.SafeCopy2dBytes(b.HistoricalRoots),
		Eth1Data:              ethpb.CopyETH1Data(b.Eth1Data),
		Eth1DataVotes:         copyEth1DataVotes(b.Eth1DataVotes),
		Eth1DepositIndex:      b.Eth1DepositIndex,
		Validators:            copyValidators(b.Validators),
		Balances:              copyUint64s(b.Balances),
		RandaoMixes:           bytesutil.SafeCopy2dBytes(b.RandaoMixes),
		Slashings:             copyUint64s(b.Slashings),

		PreviousEpochAttestations: ethpb.CopyPendingAttestationSlice(b.PreviousEpochAttestations),
		CurrentEpochAttestations:  ethpb.CopyPendingAttestationSlice(b.CurrentEpochAttestations),

		JustificationBits:           bitfield.Bitvector4(bytesutil.SafeCopyBytes(b.JustificationBits)),
		PreviousJustifiedCheckpoint: ethpb.CopyCheckpoint(b.PreviousJustifiedCheckpoint),
		CurrentJustifiedCheckpoint:  ethpb.CopyCheckpoint(b.CurrentJustifiedCheckpoint),
		FinalizedCheckpoint:         ethpb.CopyCheckpoint(b.FinalizedCheckpoint),
	}
}

func copyValidators(vals []*ethpb.Validator) []*ethpb.Validator {
	if vals == nil {
		return nil
	}
	res := make([]*ethpb.Validator, len(vals))
	for i := 0; i < len(res); i++ {
		res[i] = ethpb.CopyValidator(vals[i])
	}
	return res
}

func copyEth1DataVotes(votes []*ethpb.Eth1Data) []*ethpb.Eth1Data {
	if votes == nil {
		return nil
	}
	res := make([]*ethpb.Eth1Data, len(votes))
	for i := 0; i < len(res); i++ {
		res[i] = ethpb.CopyETH1Data(votes[i])
	}
	return res
}

func copyUint64s(vals []uint64) []uint64 {
	if vals == nil {
		return nil
	}
	res := make([]uint64, len(vals))
	copy(res, vals)
	return res
}
