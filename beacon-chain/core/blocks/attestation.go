package blocks

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/signing"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/crypto/bls"
	"go.opencensus.io/trace"
)

// ProcessAttestations applies processing operations to a block's inner attestation
// records.
func ProcessAttestations(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	atts []*ethpb.Attestation,
) (*state.BeaconState, error) {
	var err error
	for idx, att := range atts {
		st, err = ProcessAttestation(ctx, cfg, st, att)
		if err != nil {
			return nil, errors.Wrapf(err, "could not verify attestation at index %d in block", idx)
		}
	}
	return st, nil
}

// ProcessAttestationsNoVerifySignature applies processing operations to a block's inner attestation
// records. The only difference would be that the attestation signature would not be verified.
func ProcessAttestationsNoVerifySignature(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	atts []*ethpb.Attestation,
) (*state.BeaconState, error) {
	var err error
	for idx, att := range atts {
		st, err = ProcessAttestationNoVerifySignature(ctx, cfg, st, att)
		if err != nil {
			return nil, errors.Wrapf(err, "could not verify attestation at index %d in block", idx)
		}
	}
	return st, nil
}

// ProcessAttestation verifies an input attestation can pass through processing using the given beacon state.
//
// Spec pseudocode definition:
//
//  def process_attestation(state: BeaconState, attestation: Attestation) -> None:
//    data = attestation.data
//    assert data.target.epoch in (get_previous_epoch(state), get_current_epoch(state))
//    assert data.target.epoch == compute_epoch_at_slot(data.slot)
//    assert data.slot + MIN_ATTESTATION_INCLUSION_DELAY <= state.slot <= data.slot + SLOTS_PER_EPOCH
//    assert data.index < get_committee_count_per_slot(state, data.target.epoch)
//
//    committee = get_beacon_committee(state, data.slot, data.index)
//    assert len(attestation.aggregation_bits) == len(committee)
//
//    pending_attestation = PendingAttestation(
//        data=data,
//        aggregation_bits=attestation.aggregation_bits,
//        inclusion_delay=state.slot - data.slot,
//        proposer_index=get_beacon_proposer_index(state),
//    )
//
//    if data.target.epoch == get_current_epoch(state):
//        assert data.source == state.current_justified_checkpoint
//        state.current_epoch_attestations.append(pending_attestation)
//    else:
//        assert data.source == state.previous_justified_checkpoint
//        state.previous_epoch_attestations.append(pending_attestation)
//
//    # Verify signature
//    assert is_valid_indexed_attestation(state, get_indexed_attestation(state, attestation))
func ProcessAttestation(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	att *ethpb.Attestation,
) (*state.BeaconState, error) {
	st, err := ProcessAttestationNoVerifySignature(ctx, cfg, st, att)
	if err != nil {
		return nil, err
	}
	return st, VerifyAttestationSignature(ctx, cfg, st, att)
}

// ProcessAttestationNoVerifySignature processes the attestation without verifying the attestation signature. This
// method is used to validate attestations whose signatures have already been verified.
func ProcessAttestationNoVerifySignature(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	att *ethpb.Attestation,
) (*state.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.ProcessAttestationNoVerifySignature")
	defer span.End()

	if att == nil || att.Data == nil || att.Data.Target == nil || att.Data.Source == nil {
		return nil, errors.New("nil attestation data")
	}
	currEpoch := helpers.CurrentEpoch(cfg, st)
	prevEpoch := helpers.PrevEpoch(cfg, st)
	data := att.Data

	if data.Target.Epoch != prevEpoch && data.Target.Epoch != currEpoch {
		return nil, fmt.Errorf(
			"expected target epoch (%d) to be the previous epoch (%d) or the current epoch (%d)",
			data.Target.Epoch,
			prevEpoch,
			currEpoch,
		)
	}
	if data.Target.Epoch == currEpoch {
		if !helpers.CheckPointIsEqual(data.Source, st.CurrentJustifiedCheckpoint) {
			return nil, errors.New("source check point not equal to current justified checkpoint")
		}
	} else {
		if !helpers.CheckPointIsEqual(data.Source, st.PreviousJustifiedCheckpoint) {
			return nil, errors.New("source check point not equal to previous justified checkpoint")
		}
	}
	if data.Target.Epoch != helpers.SlotToEpoch(cfg, data.Slot) {
		return nil, fmt.Errorf(
			"expected target epoch %d to equal the epoch of the attestation slot %d",
			data.Target.Epoch,
			helpers.SlotToEpoch(cfg, data.Slot),
		)
	}

	s := data.Slot
	minInclusionCheck := s.Add(uint64(cfg.MinAttestationInclusionDelay)) <= st.Slot
	epochInclusionCheck := st.Slot <= s.Add(uint64(cfg.SlotsPerEpoch))
	if !minInclusionCheck {
		return nil, fmt.Errorf(
			"attestation slot %d + inclusion delay %d > state slot %d",
			s,
			cfg.MinAttestationInclusionDelay,
			st.Slot,
		)
	}
	if !epochInclusionCheck {
		return nil, fmt.Errorf(
			"state slot %d > attestation slot %d + SLOTS_PER_EPOCH %d",
			st.Slot,
			s,
			cfg.SlotsPerEpoch,
		)
	}

	activeValidatorCount, err := helpers.ActiveValidatorCount(cfg, st, data.Target.Epoch)
	if err != nil {
		return nil, err
	}
	c := helpers.SlotCommitteeCount(cfg, activeValidatorCount)
	if uint64(data.CommitteeIndex) >= c {
		return nil, fmt.Errorf("committee index %d >= committee count %d", data.CommitteeIndex, c)
	}
	if err := helpers.VerifyAttestationBitfieldLengths(cfg, st, att); err != nil {
		return nil, errors.Wrap(err, "could not verify attestation bitfields")
	}

	// Verify attesting indices are correct.
	committee, err := helpers.BeaconCommitteeFromState(cfg, st, data.Slot, data.CommitteeIndex)
	if err != nil {
		return nil, err
	}
	indexedAtt, err := helpers.ConvertToIndexed(ctx, att, committee)
	if err != nil {
		return nil, err
	}
	if err := helpers.IsValidAttestationIndices(ctx, cfg, indexedAtt); err != nil {
		return nil, err
	}

	proposerIndex, err := helpers.BeaconProposerIndex(cfg, st)
	if err != nil {
		return nil, err
	}
	pendingAtt := &ethpb.PendingAttestation{
		Data:            ethpb.CopyAttestationData(data),
		AggregationBits: att.AggregationBits,
		InclusionDelay:  st.Slot.SubSlot(s),
		ProposerIndex:   proposerIndex,
	}
	if data.Target.Epoch == currEpoch {
		st.CurrentEpochAttestations = append(st.CurrentEpochAttestations, pendingAtt)
	} else {
		st.PreviousEpochAttestations = append(st.PreviousEpochAttestations, pendingAtt)
	}

	return st, nil
}

// VerifyAttestationSignature converts an attestation into an indexed attestation and verifies
// the aggregate signature in that attestation.
func VerifyAttestationSignature(ctx context.Context, cfg *params.BeaconChainConfig, st *state.BeaconState, att *ethpb.Attestation) error {
	if att == nil || att.Data == nil || att.AggregationBits.Count() == 0 {
		return fmt.Errorf("nil or missing attestation data: %v", att)
	}
	committee, err := helpers.BeaconCommitteeFromState(cfg, st, att.Data.Slot, att.Data.CommitteeIndex)
	if err != nil {
		return err
	}
	indexedAtt, err := helpers.ConvertToIndexed(ctx, att, committee)
	if err != nil {
		return err
	}
	return VerifyIndexedAttestation(ctx, cfg, st, indexedAtt)
}

// VerifyIndexedAttestation determines the validity of an indexed attestation.
//
// Spec pseudocode definition:
//
//  def is_valid_indexed_attestation(state: BeaconState, indexed_attestation: IndexedAttestation) -> bool:
//    """
//    Check if ``indexed_attestation`` is not empty, has sorted and unique indices and has a valid aggregate signature.
//    """
//    # Verify indices are sorted and unique
//    indices = indexed_attestation.attesting_indices
//    if len(indices) == 0 or not indices == sorted(set(indices)):
//        return False
//    # Verify aggregate signature
//    pubkeys = [state.validators[i].pubkey for i in indices]
//    domain = get_domain(state, DOMAIN_BEACON_ATTESTER, indexed_attestation.data.target.epoch)
//    signing_root = compute_signing_root(indexed_attestation.data, domain)
//    return bls.FastAggregateVerify(pubkeys, signing_root, indexed_attestation.signature)
func VerifyIndexedAttestation(ctx context.Context, cfg *params.BeaconChainConfig, st *state.BeaconState, indexedAtt *ethpb.IndexedAttestation) error {
	ctx, span := trace.StartSpan(ctx, "core.VerifyIndexedAttestation")
	defer span.End()

	if err := helpers.IsValidAttestationIndices(ctx, cfg, indexedAtt); err != nil {
		return err
	}
	domain, err := signing.Domain(st.Fork, indexedAtt.Data.Target.Epoch, cfg.DomainBeaconAttester, st.GenesisValidatorsRoot)
	if err != nil {
		return err
	}
	indices := indexedAtt.AttestingIndices
	pubkeys := []bls.PublicKey{}
	for i := 0; i < len(indices); i++ {
		v, ok := st.ValidatorAtIndex(types.ValidatorIndex(indices[i]))
		if !ok {
			return errors.Wrapf(ErrUnknownValidator, "validator index %d does not exist", indices[i])
		}
		pk, err := bls.PublicKeyFromBytes(v.PublicKey)
		if err != nil {
			return errors.Wrap(err, "could not deserialize validator public key")
		}
		pubkeys = append(pubkeys, pk)
	}
	return helpers.VerifyIndexedAttestationSig(ctx, indexedAtt, pubkeys, domain)
}
