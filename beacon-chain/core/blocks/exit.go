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
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
)

// ProcessVoluntaryExits is one of the operations performed
// on each processed beacon block to determine which validators
// should exit the state's validator registry.
//
// Spec pseudocode definition:
//
//  def process_voluntary_exit(state: BeaconState, signed_voluntary_exit: SignedVoluntaryExit) -> None:
//    voluntary_exit = signed_voluntary_exit.message
//    validator = state.validators[voluntary_exit.validator_index]
//    # Verify the validator is active
//    assert is_active_validator(validator, get_current_epoch(state))
//    # Verify exit has not been initiated
//    assert validator.exit_epoch == FAR_FUTURE_EPOCH
//    # Exits must specify an epoch when they become valid; they are not valid before then
//    assert get_current_epoch(state) >= voluntary_exit.epoch
//    # Verify the validator has been active long enough
//    assert get_current_epoch(state) >= validator.activation_epoch + SHARD_COMMITTEE_PERIOD
//    # Verify signature
//    domain = get_domain(state, DOMAIN_VOLUNTARY_EXIT, voluntary_exit.epoch)
//    signing_root = compute_signing_root(voluntary_exit, domain)
//    assert bls.Verify(validator.pubkey, signing_root, signed_voluntary_exit.signature)
//    # Initiate exit
//    initiate_validator_exit(state, voluntary_exit.validator_index)
func ProcessVoluntaryExits(
	_ context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	exits []*ethpb.SignedVoluntaryExit,
) (*state.BeaconState, error) {
	for idx, exit := range exits {
		if exit == nil || exit.Exit == nil {
			return nil, errors.New("nil voluntary exit in block body")
		}
		val, ok := st.ValidatorAtIndex(exit.Exit.ValidatorIndex)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownValidator, "validator index %d does not exist", exit.Exit.ValidatorIndex)
		}
		if err := VerifyExitAndSignature(cfg, val, st.Slot, st.Fork, exit, st.GenesisValidatorsRoot); err != nil {
			return nil, errors.Wrapf(err, "could not verify voluntary exit %d", idx)
		}
		if err := v.InitiateValidatorExit(cfg, st, exit.Exit.ValidatorIndex); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// VerifyExitAndSignature implements the protocol defined validation for voluntary exits.
func VerifyExitAndSignature(
	cfg *params.BeaconChainConfig,
	validator *ethpb.Validator,
	currentSlot types.Slot,
	fork *ethpb.Fork,
	signed *ethpb.SignedVoluntaryExit,
	genesisRoot []byte,
) error {
	if signed == nil || signed.Exit == nil {
		return errors.New("nil exit")
	}
	exit := signed.Exit
	if err := verifyExitConditions(cfg, validator, currentSlot, exit); err != nil {
		return err
	}
	domain, err := signing.Domain(fork, exit.Epoch, cfg.DomainVoluntaryExit, genesisRoot)
	if err != nil {
		return err
	}
	if err := signing.VerifySigningRoot(exit, validator.PublicKey, signed.Signature, domain); err != nil {
		return signing.ErrSigFailedToVerify
	}
	return nil
}

// verifyExitConditions implements the protocol defined validation for voluntary exits,
// excluding the signature check.
func verifyExitConditions(cfg *params.BeaconChainConfig, validator *ethpb.Validator, currentSlot types.Slot, exit *ethpb.VoluntaryExit) error {
	currentEpoch := helpers.SlotToEpoch(cfg, currentSlot)
	// Verify the validator is active.
	if !helpers.IsActiveValidator(validator, currentEpoch) {
		return errors.New("non-active validator cannot exit")
	}
	// Verify the validator has not yet submitted an exit.
	if validator.ExitEpoch != cfg.FarFutureEpoch {
		return errors.Wrapf(ErrDuplicateOrConflicting,
			"validator with index %d has already submitted an exit, which will take place at epoch %d",
			exit.ValidatorIndex, validator.ExitEpoch)
	}
	// Exits must specify an epoch when they become valid; they are not valid before then.
	if currentEpoch < exit.Epoch {
		return fmt.Errorf("expected current epoch >= exit epoch, received %d < %d", currentEpoch, exit.Epoch)
	}
	// Verify the validator has been active long enough.
	if currentEpoch < validator.ActivationEpoch.AddEpoch(cfg.ShardCommitteePeriod) {
		return fmt.Errorf(
			"validator has not been active long enough to exit, wanted epoch %d >= %d",
			currentEpoch,
			validator.ActivationEpoch.AddEpoch(cfg.ShardCommitteePeriod),
		)
	}
	return nil
}
