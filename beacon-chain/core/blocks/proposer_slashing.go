package blocks

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/signing"
	v "github.com/prysmaticlabs/phase0/beacon-chain/core/validators"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	"github.com/prysmaticlabs/phase0/encoding/ssz/equality"
)

// ProcessProposerSlashings is one of the operations performed
// on each processed beacon block to slash proposers based on
// slashing conditions if any slashable events occurred.
//
// Spec pseudocode definition:
//
//  def process_proposer_slashing(state: BeaconState, proposer_slashing: ProposerSlashing) -> None:
//    header_1 = proposer_slashing.signed_header_1.message
//    header_2 = proposer_slashing.signed_header_2.message
//    # Verify header slots match
//    assert header_1.slot == header_2.slot
//    # Verify header proposer indices match
//    assert header_1.proposer_index == header_2.proposer_index
//    # Verify the headers are different
//    assert header_1 != header_2
//    # Verify the proposer is slashable
//    proposer = state.validators[header_1.proposer_index]
//    assert is_slashable_validator(proposer, get_current_epoch(state))
//    # Verify signatures
//    for signed_header in (proposer_slashing.signed_header_1, proposer_slashing.signed_header_2):
//        domain = get_domain(state, DOMAIN_BEACON_PROPOSER, compute_epoch_at_slot(signed_header.message.slot))
//        signing_root = compute_signing_root(signed_header.message, domain)
//        assert bls.Verify(proposer.pubkey, signing_root, signed_header.signature)
//
//    slash_validator(state, header_1.proposer_index)
func ProcessProposerSlashings(
	_ context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	slashings []*ethpb.ProposerSlashing,
) (*state.BeaconState, error) {
	for idx, slashing := range slashings {
		if slashing == nil {
			return nil, errors.New("nil proposer slashing in block body")
		}
		if err := VerifyProposerSlashing(cfg, st, slashing); err != nil {
			return nil, errors.Wrapf(err, "could not verify proposer slashing %d", idx)
		}
		if err := v.SlashValidator(cfg, st, slashing.Header_1.Header.ProposerIndex); err != nil {
			return nil, errors.Wrapf(err, "could not slash proposer index %d", slashing.Header_1.Header.ProposerIndex)
		}
	}
	return st, nil
}

// VerifyProposerSlashing verifies that the data provided from slashing is valid.
func VerifyProposerSlashing(cfg *params.BeaconChainConfig, st *state.BeaconState, slashing *ethpb.ProposerSlashing) error {
	if slashing.Header_1 == nil || slashing.Header_1.Header == nil || slashing.Header_2 == nil || slashing.Header_2.Header == nil {
		return errors.New("nil header cannot be verified")
	}
	hSlot := slashing.Header_1.Header.Slot
	if hSlot != slashing.Header_2.Header.Slot {
		return fmt.Errorf("mismatched header slots, received %d == %d", slashing.Header_1.Header.Slot, slashing.Header_2.Header.Slot)
	}
	pIdx := slashing.Header_1.Header.ProposerIndex
	if pIdx != slashing.Header_2.Header.ProposerIndex {
		return fmt.Errorf("mismatched indices, received %d == %d", slashing.Header_1.Header.ProposerIndex, slashing.Header_2.Header.ProposerIndex)
	}
	if equality.DeepEqual(slashing.Header_1.Header, slashing.Header_2.Header) {
		return errors.New("expected slashing headers to differ")
	}
	proposer, ok := st.ValidatorAtIndex(pIdx)
	if !ok {
		return errors.Wrapf(ErrUnknownValidator, "validator index %d does not exist", pIdx)
	}
	if !helpers.IsSlashableValidator(proposer, helpers.CurrentEpoch(cfg, st)) {
		return errors.Wrapf(ErrDuplicateOrConflicting, "validator with key %#x is not slashable", proposer.PublicKey)
	}
	headers := []*ethpb.SignedBeaconBlockHeader{slashing.Header_1, slashing.Header_2}
	for _, header := range headers {
		domain, err := signing.Domain(st.Fork, helpers.SlotToEpoch(cfg, header.Header.Slot), cfg.DomainBeaconProposer, st.GenesisValidatorsRoot)
		if err != nil {
			return err
		}
		if err := signing.VerifyBlockHeaderSigningRoot(header.Header, proposer.PublicKey, header.Signature, domain); err != nil {
			return errors.Wrap(err, "could not verify beacon block header")
		}
	}
	return nil
}
