package blocks

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/signing"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	"github.com/prysmaticlabs/phase0/crypto/hash"
	mathutil "github.com/prysmaticlabs/phase0/math"
)

// ProcessTransfers is one of the operations performed on each processed
// beacon block to move balance between validators on request of the sender.
func ProcessTransfers(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	transfers []*ethpb.Transfer,
) (*state.BeaconState, error) {
	var err error
	for idx, transfer := range transfers {
		st, err = ProcessTransfer(ctx, cfg, st, transfer)
		if err != nil {
			return nil, errors.Wrapf(err, "could not process transfer %d", idx)
		}
	}
	return st, nil
}

// ProcessTransfer applies a single balance transfer between validators.
//
// Spec pseudocode definition:
//
//  def process_transfer(state: BeaconState, transfer: Transfer) -> None:
//    # Verify the balance covers the amount and the fee
//    assert state.balances[transfer.sender] >= transfer.amount + transfer.fee
//    # A transfer is valid in only one slot
//    assert state.slot == transfer.slot
//    # Only withdrawn or not-yet-deposited accounts can transfer
//    assert (
//        get_current_epoch(state) >= state.validator_registry[transfer.sender].withdrawable_epoch or
//        state.validator_registry[transfer.sender].activation_eligibility_epoch == FAR_FUTURE_EPOCH
//    )
//    # Verify that the pubkey is valid
//    assert (
//        state.validator_registry[transfer.sender].withdrawal_credentials ==
//        int_to_bytes(BLS_WITHDRAWAL_PREFIX, length=1) + hash(transfer.pubkey)[1:]
//    )
//    # Verify that the signature is valid
//    assert bls_verify(transfer.pubkey, signing_root(transfer), transfer.signature, get_domain(state, DOMAIN_TRANSFER))
//    # Process the transfer
//    decrease_balance(state, transfer.sender, transfer.amount + transfer.fee)
//    increase_balance(state, transfer.recipient, transfer.amount)
//    increase_balance(state, get_beacon_proposer_index(state), transfer.fee)
//    # Verify balances are not dust
//    assert not (0 < state.balances[transfer.sender] < MIN_DEPOSIT_AMOUNT)
//    assert not (0 < state.balances[transfer.recipient] < MIN_DEPOSIT_AMOUNT)
func ProcessTransfer(
	_ context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	transfer *ethpb.Transfer,
) (*state.BeaconState, error) {
	if transfer == nil {
		return nil, errors.New("nil transfer in block body")
	}
	if err := verifyTransferConditions(cfg, st, transfer); err != nil {
		return nil, err
	}

	total, err := mathutil.Add64(transfer.Amount, transfer.Fee)
	if err != nil {
		return nil, errors.Wrap(err, "transfer amount plus fee overflows")
	}
	if err := helpers.DecreaseBalance(st, transfer.Sender, total); err != nil {
		return nil, err
	}
	if err := helpers.IncreaseBalance(st, transfer.Recipient, transfer.Amount); err != nil {
		return nil, err
	}
	proposerIdx, err := helpers.BeaconProposerIndex(cfg, st)
	if err != nil {
		return nil, errors.Wrap(err, "could not get beacon proposer index")
	}
	if err := helpers.IncreaseBalance(st, proposerIdx, transfer.Fee); err != nil {
		return nil, err
	}

	// Neither account may be left holding dust.
	if bal := st.Balances[transfer.Sender]; 0 < bal && bal < cfg.MinDepositAmount {
		return nil, errors.Wrapf(ErrInsufficientBalance, "sender balance %d is below the minimum deposit amount", bal)
	}
	if bal := st.Balances[transfer.Recipient]; 0 < bal && bal < cfg.MinDepositAmount {
		return nil, errors.Wrapf(ErrInsufficientBalance, "recipient balance %d is below the minimum deposit amount", bal)
	}
	return st, nil
}

// verifyTransferConditions implements the protocol defined validation for
// transfers, including the sender signature over the transfer with a zeroed
// signature field.
func verifyTransferConditions(cfg *params.BeaconChainConfig, st *state.BeaconState, transfer *ethpb.Transfer) error {
	sender, ok := st.ValidatorAtIndex(transfer.Sender)
	if !ok {
		return errors.Wrapf(ErrUnknownValidator, "sender index %d does not exist", transfer.Sender)
	}
	if _, ok := st.ValidatorAtIndex(transfer.Recipient); !ok {
		return errors.Wrapf(ErrUnknownValidator, "recipient index %d does not exist", transfer.Recipient)
	}

	total, err := mathutil.Add64(transfer.Amount, transfer.Fee)
	if err != nil {
		return errors.Wrap(err, "transfer amount plus fee overflows")
	}
	senderBalance := st.Balances[transfer.Sender]
	if senderBalance < total {
		return errors.Wrapf(ErrInsufficientBalance, "sender balance %d is less than amount plus fee %d", senderBalance, total)
	}

	// A transfer is valid in only one slot.
	if st.Slot != transfer.Slot {
		return fmt.Errorf("transfer is valid at slot %d, state is at slot %d", transfer.Slot, st.Slot)
	}

	// Only withdrawn or not-yet-deposited accounts can transfer.
	currentEpoch := helpers.CurrentEpoch(cfg, st)
	if currentEpoch < sender.WithdrawableEpoch && sender.ActivationEligibilityEpoch != cfg.FarFutureEpoch {
		return errors.New("sender is neither withdrawable nor pending deposit")
	}

	// The provided pubkey must hash into the sender's withdrawal credentials.
	pubKeyHash := hash.Hash(transfer.Pubkey)
	wantCredentials := append([]byte{cfg.BLSWithdrawalPrefixByte}, pubKeyHash[1:]...)
	if !bytes.Equal(sender.WithdrawalCredentials, wantCredentials) {
		return errors.New("transfer pubkey does not match the sender withdrawal credentials")
	}

	domain, err := signing.Domain(st.Fork, currentEpoch, cfg.DomainTransfer, st.GenesisValidatorsRoot)
	if err != nil {
		return err
	}
	unsigned := ethpb.CopyTransfer(transfer)
	unsigned.Signature = make([]byte, 96)
	if err := signing.VerifySigningRoot(unsigned, transfer.Pubkey, transfer.Signature, domain); err != nil {
		return signing.ErrSigFailedToVerify
	}
	return nil
}
