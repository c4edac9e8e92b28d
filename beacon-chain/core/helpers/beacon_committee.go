package helpers

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/phase0/beacon-chain/cache"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/container/slice"
	"github.com/prysmaticlabs/phase0/crypto/hash"
	"github.com/prysmaticlabs/phase0/encoding/bytesutil"
)

// SlotCommitteeCount returns the number of beacon committees of a slot. The
// active validator count is provided as an argument rather than a direct
// state read to allow for re-use across an epoch.
//
// Spec pseudocode definition:
//   def get_committee_count_per_slot(state: BeaconState, epoch: Epoch) -> uint64:
//    """
//    Return the number of committees in each slot for the given ``epoch``.
//    """
//    return max(uint64(1), min(
//        MAX_COMMITTEES_PER_SLOT,
//        uint64(len(get_active_validator_indices(state, epoch))) // SLOTS_PER_EPOCH // TARGET_COMMITTEE_SIZE,
//    ))
func SlotCommitteeCount(cfg *params.BeaconChainConfig, activeValidatorCount uint64) uint64 {
	var committeesPerSlot = activeValidatorCount / uint64(cfg.SlotsPerEpoch) / cfg.TargetCommitteeSize

	if committeesPerSlot > cfg.MaxCommitteesPerSlot {
		return cfg.MaxCommitteesPerSlot
	}
	if committeesPerSlot == 0 {
		return 1
	}

	return committeesPerSlot
}

// BeaconCommitteeFromState returns the beacon committee of a given slot and
// committee index, reading the shuffled indices from the committee cache when
// the seed has been seen before.
//
// Spec pseudocode definition:
//   def get_beacon_committee(state: BeaconState, slot: Slot, index: CommitteeIndex) -> Sequence[ValidatorIndex]:
//    """
//    Return the beacon committee at ``slot`` for ``index``.
//    """
//    epoch = compute_epoch_at_slot(slot)
//    committees_per_slot = get_committee_count_per_slot(state, epoch)
//    return compute_committee(
//        indices=get_active_validator_indices(state, epoch),
//        seed=get_seed(state, epoch, DOMAIN_BEACON_ATTESTER),
//        index=(slot % SLOTS_PER_EPOCH) * committees_per_slot + index,
//        count=committees_per_slot * SLOTS_PER_EPOCH,
//    )
func BeaconCommitteeFromState(cfg *params.BeaconChainConfig, st *state.BeaconState, slot types.Slot, committeeIndex types.CommitteeIndex) ([]types.ValidatorIndex, error) {
	epoch := SlotToEpoch(cfg, slot)
	seed, err := Seed(cfg, st, epoch, cfg.DomainBeaconAttester)
	if err != nil {
		return nil, errors.Wrap(err, "could not get seed")
	}

	committee, err := committeeCache.Committee(cfg, slot, seed, committeeIndex)
	if err != nil {
		return nil, errors.Wrap(err, "could not interface with committee cache")
	}
	if committee != nil {
		return committee, nil
	}

	activeIndices, err := ActiveValidatorIndices(cfg, st, epoch)
	if err != nil {
		return nil, errors.Wrap(err, "could not get active indices")
	}

	return BeaconCommittee(cfg, activeIndices, seed, slot, committeeIndex)
}

// BeaconCommittee returns the beacon committee of a given slot and committee
// index. The validator indices and seed are provided as arguments rather than
// read from the state, which allows the shuffled list to be computed once and
// sliced for every committee of the epoch.
func BeaconCommittee(
	cfg *params.BeaconChainConfig,
	validatorIndices []types.ValidatorIndex,
	seed [32]byte,
	slot types.Slot,
	committeeIndex types.CommitteeIndex,
) ([]types.ValidatorIndex, error) {
	committeesPerSlot := SlotCommitteeCount(cfg, uint64(len(validatorIndices)))

	epochOffset := uint64(committeeIndex) + uint64(slot.ModSlot(cfg.SlotsPerEpoch).Mul(committeesPerSlot))
	count := committeesPerSlot * uint64(cfg.SlotsPerEpoch)

	return ComputeCommittee(cfg, validatorIndices, seed, epochOffset, count)
}

// ComputeCommittee returns the requested shuffled committee out of the total
// committees using validator indices and seed.
//
// Spec pseudocode definition:
//  def compute_committee(indices: Sequence[ValidatorIndex],
//                      seed: Bytes32,
//                      index: uint64,
//                      count: uint64) -> Sequence[ValidatorIndex]:
//    """
//    Return the committee corresponding to ``indices``, ``seed``, ``index``, and committee ``count``.
//    """
//    start = (len(indices) * index) // count
//    end = (len(indices) * uint64(index + 1)) // count
//    return [indices[compute_shuffled_index(uint64(i), uint64(len(indices)), seed)] for i in range(start, end)]
func ComputeCommittee(
	cfg *params.BeaconChainConfig,
	indices []types.ValidatorIndex,
	seed [32]byte,
	index, count uint64,
) ([]types.ValidatorIndex, error) {
	validatorCount := uint64(len(indices))
	start := slice.SplitOffset(validatorCount, count, index)
	end := slice.SplitOffset(validatorCount, count, index+1)

	if start > validatorCount || end > validatorCount {
		return nil, errors.New("index out of range")
	}

	// The input list is mutated in place by the shuffle, so shuffle a copy.
	shuffledIndices := make([]types.ValidatorIndex, len(indices))
	copy(shuffledIndices, indices)
	// UnshuffleList applies the inverse permutation, which places
	// indices[compute_shuffled_index(i)] at position i in a single pass.
	shuffledList, err := UnshuffleList(cfg, shuffledIndices, seed)
	if err != nil {
		return nil, err
	}

	return shuffledList[start:end], nil
}

// VerifyBitfieldLength verifies that a bitfield length matches the given committee size.
func VerifyBitfieldLength(bField bitfield.Bitfield, committeeSize uint64) error {
	if bField.Len() != committeeSize {
		return fmt.Errorf("wanted participants bitfield length %d, got: %d", committeeSize, bField.Len())
	}
	return nil
}

// VerifyAttestationBitfieldLengths verifies that an attestation's aggregation
// bitfield is a valid length matching the size of its committee.
func VerifyAttestationBitfieldLengths(cfg *params.BeaconChainConfig, st *state.BeaconState, att *ethpb.Attestation) error {
	committee, err := BeaconCommitteeFromState(cfg, st, att.Data.Slot, att.Data.CommitteeIndex)
	if err != nil {
		return errors.Wrap(err, "could not retrieve beacon committees")
	}

	if committee == nil {
		return errors.New("no committee exist for this attestation")
	}

	if err := VerifyBitfieldLength(att.AggregationBits, uint64(len(committee))); err != nil {
		return errors.Wrap(err, "failed to verify aggregation bitfield")
	}

	return nil
}

// ShuffledIndices uses input beacon state and returns the shuffled indices of
// the input epoch. The shuffled indices then can be divided into committees.
func ShuffledIndices(cfg *params.BeaconChainConfig, st *state.BeaconState, epoch types.Epoch) ([]types.ValidatorIndex, error) {
	seed, err := Seed(cfg, st, epoch, cfg.DomainBeaconAttester)
	if err != nil {
		return nil, errors.Wrap(err, "could not get seed")
	}

	// Active indices are read straight off the state here rather than through
	// ActiveValidatorIndices, which would recurse back into the cache fill.
	indices := make([]types.ValidatorIndex, 0, len(st.Validators))
	for i, val := range st.Validators {
		if IsActiveValidator(val, epoch) {
			indices = append(indices, types.ValidatorIndex(i))
		}
	}

	return UnshuffleList(cfg, indices, seed)
}

// UpdateCommitteeCache gets called at the beginning of every epoch to cache the
// committee shuffled indices list with committee index and epoch number. It
// caches the shuffled indices for the input epoch and the following epoch.
func UpdateCommitteeCache(cfg *params.BeaconChainConfig, st *state.BeaconState, epoch types.Epoch) error {
	for _, e := range []types.Epoch{epoch, epoch + 1} {
		seed, err := Seed(cfg, st, e, cfg.DomainBeaconAttester)
		if err != nil {
			return err
		}
		if committeeCache.HasEntry(cfg, seed) {
			continue
		}

		shuffledIndices, err := ShuffledIndices(cfg, st, e)
		if err != nil {
			return err
		}

		count := SlotCommitteeCount(cfg, uint64(len(shuffledIndices)))

		// Store the sorted indices as well as the shuffled indices. The sorted
		// indices are used to retrieve the proposer index and the active count
		// without a second pass over the state.
		sortedIndices := make([]types.ValidatorIndex, len(shuffledIndices))
		copy(sortedIndices, shuffledIndices)
		sort.Slice(sortedIndices, func(i, j int) bool {
			return sortedIndices[i] < sortedIndices[j]
		})

		if err := committeeCache.AddCommitteeShuffledList(cfg, &cache.Committees{
			ShuffledIndices: shuffledIndices,
			CommitteeCount:  uint64(cfg.SlotsPerEpoch.Mul(count)),
			Seed:            seed,
			SortedIndices:   sortedIndices,
		}); err != nil {
			return err
		}
	}
	return nil
}

// UpdateProposerIndicesInCache updates proposer indices entry of the proposer
// indices cache for the state's current epoch.
func UpdateProposerIndicesInCache(cfg *params.BeaconChainConfig, st *state.BeaconState) error {
	indices, err := ActiveValidatorIndices(cfg, st, CurrentEpoch(cfg, st))
	if err != nil {
		return err
	}
	proposerIndices, err := precomputeProposerIndices(cfg, st, indices)
	if err != nil {
		return err
	}
	seed, err := Seed(cfg, st, CurrentEpoch(cfg, st), cfg.DomainBeaconAttester)
	if err != nil {
		return err
	}
	return proposerIndicesCache.AddProposerIndices(cfg, &cache.ProposerIndices{
		Seed:            seed,
		ProposerIndices: proposerIndices,
	})
}

// precomputeProposerIndices computes proposer indices of the current epoch and returns it.
func precomputeProposerIndices(cfg *params.BeaconChainConfig, st *state.BeaconState, activeIndices []types.ValidatorIndex) ([]types.ValidatorIndex, error) {
	hashFunc := hash.CustomSHA256Hasher()
	proposerIndices := make([]types.ValidatorIndex, cfg.SlotsPerEpoch)

	e := CurrentEpoch(cfg, st)
	seed, err := Seed(cfg, st, e, cfg.DomainBeaconProposer)
	if err != nil {
		return nil, errors.Wrap(err, "could not generate seed")
	}
	slot, err := StartSlot(cfg, e)
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < uint64(cfg.SlotsPerEpoch); i++ {
		seedWithSlot := append(seed[:], bytesutil.Bytes8(uint64(slot)+i)...)
		seedWithSlotHash := hashFunc(seedWithSlot)
		index, err := ComputeProposerIndex(cfg, st, activeIndices, seedWithSlotHash)
		if err != nil {
			return nil, err
		}
		proposerIndices[i] = index
	}

	return proposerIndices, nil
}
