package state

import (
	"context"
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/state/stateutil"
	"github.com/prysmaticlabs/phase0/config/params"
	"github.com/prysmaticlabs/phase0/crypto/hash"
	"github.com/prysmaticlabs/phase0/encoding/bytesutil"
	"github.com/prysmaticlabs/phase0/encoding/ssz"
	"go.opencensus.io/trace"
)

// HashTreeRoot of the beacon state retrieves the Merkle root of the whole state object.
func (b *BeaconState) HashTreeRoot(ctx context.Context, cfg *params.BeaconChainConfig) ([32]byte, error) {
	ctx, span := trace.StartSpan(ctx, "beaconState.HashTreeRoot")
	defer span.End()

	fieldRoots, err := ComputeFieldRootsWithHasher(ctx, cfg, b)
	if err != nil {
		return [32]byte{}, err
	}
	return ssz.BitwiseMerkleize(hash.CustomSHA256Hasher(), fieldRoots, uint64(len(fieldRoots)), uint64(len(fieldRoots)))
}

// ComputeFieldRootsWithHasher hashes the provided state and returns its respective field roots.
func ComputeFieldRootsWithHasher(ctx context.Context, cfg *params.BeaconChainConfig, state *BeaconState) ([][]byte, error) {
	_, span := trace.StartSpan(ctx, "ComputeFieldRootsWithHasher")
	defer span.End()

	if state == nil {
		return nil, errors.New("nil state")
	}
	hasher := hash.CustomSHA256Hasher()
	fieldRoots := make([][]byte, cfg.BeaconStateFieldCount)

	fieldRootIx := 0

	// Genesis time root.
	genesisRoot := ssz.Uint64Root(state.GenesisTime)
	fieldRoots[fieldRootIx] = genesisRoot[:]
	fieldRootIx++

	// Genesis validators root.
	r := [32]byte{}
	copy(r[:], state.GenesisValidatorsRoot)
	fieldRoots[fieldRootIx] = r[:]
	fieldRootIx++

	// Slot root.
	slotRoot := ssz.Uint64Root(uint64(state.Slot))
	fieldRoots[fieldRootIx] = slotRoot[:]
	fieldRootIx++

	// Fork data structure root.
	forkHashTreeRoot, err := ssz.ForkRoot(state.Fork)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute fork merkleization")
	}
	fieldRoots[fieldRootIx] = forkHashTreeRoot[:]
	fieldRootIx++

	// BeaconBlockHeader data structure root.
	headerHashTreeRoot, err := stateutil.BlockHeaderRoot(state.LatestBlockHeader)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute block header merkleization")
	}
	fieldRoots[fieldRootIx] = headerHashTreeRoot[:]
	fieldRootIx++

	// BlockRoots array root.
	blockRootsRoot, err := stateutil.ArraysRoot(state.BlockRoots, uint64(cfg.SlotsPerHistoricalRoot))
	if err != nil {
		return nil, errors.Wrap(err, "could not compute block roots merkleization")
	}
	fieldRoots[fieldRootIx] = blockRootsRoot[:]
	fieldRootIx++

	// StateRoots array root.
	stateRootsRoot, err := stateutil.ArraysRoot(state.StateRoots, uint64(cfg.SlotsPerHistoricalRoot))
	if err != nil {
		return nil, errors.Wrap(err, "could not compute state roots merkleization")
	}
	fieldRoots[fieldRootIx] = stateRootsRoot[:]
	fieldRootIx++

	// HistoricalRoots slice root.
	historicalRootsRt, err := ssz.ByteArrayRootWithLimit(state.HistoricalRoots, cfg.HistoricalRootsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute historical roots merkleization")
	}
	fieldRoots[fieldRootIx] = historicalRootsRt[:]
	fieldRootIx++

	// Eth1Data data structure root.
	eth1HashTreeRoot, err := stateutil.Eth1Root(hasher, state.Eth1Data)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute eth1data merkleization")
	}
	fieldRoots[fieldRootIx] = eth1HashTreeRoot[:]
	fieldRootIx++

	// Eth1DataVotes slice root.
	eth1VotesRoot, err := stateutil.Eth1DataVotesRoot(cfg, state.Eth1DataVotes)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute eth1data votes merkleization")
	}
	fieldRoots[fieldRootIx] = eth1VotesRoot[:]
	fieldRootIx++

	// Eth1DepositIndex root.
	eth1DepositIndexBuf := make([]byte, 8)
	binary.LittleEndian.PutUint64(eth1DepositIndexBuf, state.Eth1DepositIndex)
	eth1DepositBuf := bytesutil.ToBytes32(eth1DepositIndexBuf)
	fieldRoots[fieldRootIx] = eth1DepositBuf[:]
	fieldRootIx++

	// Validators slice root.
	validatorsRoot, err := stateutil.ValidatorRegistryRoot(cfg, state.Validators)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute validator registry merkleization")
	}
	fieldRoots[fieldRootIx] = validatorsRoot[:]
	fieldRootIx++

	// Balances slice root.
	balancesRoot, err := stateutil.Uint64ListRootWithRegistryLimit(cfg, state.Balances)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute validator balances merkleization")
	}
	fieldRoots[fieldRootIx] = balancesRoot[:]
	fieldRootIx++

	// RandaoMixes array root.
	randaoRootsRoot, err := stateutil.ArraysRoot(state.RandaoMixes, uint64(cfg.EpochsPerHistoricalVector))
	if err != nil {
		return nil, errors.Wrap(err, "could not compute randao roots merkleization")
	}
	fieldRoots[fieldRootIx] = randaoRootsRoot[:]
	fieldRootIx++

	// Slashings array root.
	slashingsRootsRoot, err := ssz.SlashingsRoot(state.Slashings)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute slashings merkleization")
	}
	fieldRoots[fieldRootIx] = slashingsRootsRoot[:]
	fieldRootIx++

	// PreviousEpochAttestations slice root.
	prevAttsRoot, err := stateutil.EpochAttestationsRoot(cfg, state.PreviousEpochAttestations)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute previous epoch attestations merkleization")
	}
	fieldRoots[fieldRootIx] = prevAttsRoot[:]
	fieldRootIx++

	// CurrentEpochAttestations slice root.
	currAttsRoot, err := stateutil.EpochAttestationsRoot(cfg, state.CurrentEpochAttestations)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute current epoch attestations merkleization")
	}
	fieldRoots[fieldRootIx] = currAttsRoot[:]
	fieldRootIx++

	// JustificationBits root.
	justifiedBitsRoot := bytesutil.ToBytes32(state.JustificationBits)
	fieldRoots[fieldRootIx] = justifiedBitsRoot[:]
	fieldRootIx++

	// PreviousJustifiedCheckpoint data structure root.
	prevCheckRoot, err := ssz.CheckpointRoot(hasher, state.PreviousJustifiedCheckpoint)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute previous justified checkpoint merkleization")
	}
	fieldRoots[fieldRootIx] = prevCheckRoot[:]
	fieldRootIx++

	// CurrentJustifiedCheckpoint data structure root.
	currJustRoot, err := ssz.CheckpointRoot(hasher, state.CurrentJustifiedCheckpoint)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute current justified checkpoint merkleization")
	}
	fieldRoots[fieldRootIx] = currJustRoot[:]
	fieldRootIx++

	// FinalizedCheckpoint data structure root.
	finalRoot, err := ssz.CheckpointRoot(hasher, state.FinalizedCheckpoint)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute finalized checkpoint merkleization")
	}
	fieldRoots[fieldRootIx] = finalRoot[:]

	return fieldRoots, nil
}
