package blocks_test

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/phase0/beacon-chain/core/blocks"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/signing"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/crypto/bls"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
	"github.com/prysmaticlabs/phase0/testing/util"
)

func TestProcessTransfers_UnknownSender(t *testing.T) {
	cfg := params.E2ETestConfig()
	beaconState := &state.BeaconState{}
	transfers := []*ethpb.Transfer{
		{Sender: 3, Recipient: 4},
	}
	_, err := blocks.ProcessTransfers(context.Background(), cfg, beaconState, transfers)
	require.ErrorIs(t, err, blocks.ErrUnknownValidator)
}

func TestProcessTransfers_NotEnoughSenderBalance(t *testing.T) {
	cfg := params.E2ETestConfig()
	beaconState := &state.BeaconState{
		Validators: []*ethpb.Validator{{}, {}},
		Balances:   []uint64{cfg.MinDepositAmount, 0},
	}
	transfers := []*ethpb.Transfer{
		{Sender: 0, Recipient: 1, Amount: cfg.MinDepositAmount, Fee: 1},
	}
	_, err := blocks.ProcessTransfers(context.Background(), cfg, beaconState, transfers)
	require.ErrorIs(t, err, blocks.ErrInsufficientBalance)
	assert.ErrorContains(t, "less than amount plus fee", err)
}

func TestProcessTransfers_WrongSlot(t *testing.T) {
	cfg := params.E2ETestConfig()
	beaconState := &state.BeaconState{
		Slot:       5,
		Validators: []*ethpb.Validator{{}, {}},
		Balances:   []uint64{cfg.MaxEffectiveBalance, 0},
	}
	transfers := []*ethpb.Transfer{
		{Sender: 0, Recipient: 1, Amount: 1, Fee: 1, Slot: 4},
	}
	_, err := blocks.ProcessTransfers(context.Background(), cfg, beaconState, transfers)
	assert.ErrorContains(t, "transfer is valid at slot 4, state is at slot 5", err)
}

func TestProcessTransfers_ActiveSenderCannotTransfer(t *testing.T) {
	cfg := params.E2ETestConfig()
	beaconState := &state.BeaconState{
		Validators: []*ethpb.Validator{
			{
				ActivationEligibilityEpoch: 0,
				ActivationEpoch:            0,
				ExitEpoch:                  cfg.FarFutureEpoch,
				WithdrawableEpoch:          cfg.FarFutureEpoch,
			},
			{},
		},
		Balances: []uint64{cfg.MaxEffectiveBalance, 0},
	}
	transfers := []*ethpb.Transfer{
		{Sender: 0, Recipient: 1, Amount: 1, Fee: 1},
	}
	_, err := blocks.ProcessTransfers(context.Background(), cfg, beaconState, transfers)
	assert.ErrorContains(t, "sender is neither withdrawable nor pending deposit", err)
}

func TestProcessTransfers_MismatchedWithdrawalCredentials(t *testing.T) {
	cfg := params.E2ETestConfig()
	beaconState := &state.BeaconState{
		Validators: []*ethpb.Validator{
			{
				WithdrawableEpoch:     0,
				WithdrawalCredentials: make([]byte, 32),
			},
			{},
		},
		Balances: []uint64{cfg.MaxEffectiveBalance, 0},
	}
	transfers := []*ethpb.Transfer{
		{Sender: 0, Recipient: 1, Amount: 1, Fee: 1, Pubkey: make([]byte, 48)},
	}
	_, err := blocks.ProcessTransfers(context.Background(), cfg, beaconState, transfers)
	assert.ErrorContains(t, "transfer pubkey does not match the sender withdrawal credentials", err)
}

// signedTransfer builds a transfer from sender to recipient signed by the
// sender's withdrawal key, which for the deterministic interop deposits of
// validator n is key n+1.
func signedTransfer(
	t *testing.T,
	cfg *params.BeaconChainConfig,
	beaconState *state.BeaconState,
	privKeys []bls.SecretKey,
	sender, recipient types.ValidatorIndex,
	amount, fee uint64,
) *ethpb.Transfer {
	withdrawalKey := privKeys[sender+1]
	transfer := &ethpb.Transfer{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
		Fee:       fee,
		Slot:      beaconState.Slot,
		Pubkey:    withdrawalKey.PublicKey().Marshal(),
		Signature: make([]byte, 96),
	}
	sig, err := signing.ComputeDomainAndSign(
		beaconState.Fork,
		beaconState.GenesisValidatorsRoot,
		helpers.CurrentEpoch(cfg, beaconState),
		transfer,
		cfg.DomainTransfer,
		withdrawalKey,
	)
	require.NoError(t, err)
	transfer.Signature = sig
	return transfer
}

func TestProcessTransfers_InvalidSignature(t *testing.T) {
	helpers.ClearCache()
	cfg := params.E2ETestConfig()
	beaconState, privKeys := util.DeterministicGenesisState(t, cfg, 64)
	beaconState.Validators[0].WithdrawableEpoch = 0

	transfer := signedTransfer(t, cfg, beaconState, privKeys, 0, 1, cfg.MinDepositAmount, cfg.MinDepositAmount)
	transfer.Signature[0] ^= 0xff

	_, err := blocks.ProcessTransfers(context.Background(), cfg, beaconState, []*ethpb.Transfer{transfer})
	require.ErrorIs(t, err, signing.ErrSigFailedToVerify)
}

func TestProcessTransfers_MovesBalanceAndPaysFee(t *testing.T) {
	helpers.ClearCache()
	cfg := params.E2ETestConfig()
	beaconState, privKeys := util.DeterministicGenesisState(t, cfg, 64)
	beaconState.Validators[0].WithdrawableEpoch = 0

	sender := types.ValidatorIndex(0)
	recipient := types.ValidatorIndex(1)
	amount := cfg.MinDepositAmount
	fee := cfg.MinDepositAmount
	transfer := signedTransfer(t, cfg, beaconState, privKeys, sender, recipient, amount, fee)

	proposerIdx, err := helpers.BeaconProposerIndex(cfg, beaconState)
	require.NoError(t, err)

	// The sender, recipient and fee-collecting proposer may coincide, so track
	// expected balances per index.
	want := map[types.ValidatorIndex]uint64{
		sender:      beaconState.Balances[sender],
		recipient:   beaconState.Balances[recipient],
		proposerIdx: beaconState.Balances[proposerIdx],
	}
	want[sender] -= amount + fee
	want[recipient] += amount
	want[proposerIdx] += fee

	newState, err := blocks.ProcessTransfers(context.Background(), cfg, beaconState, []*ethpb.Transfer{transfer})
	require.NoError(t, err)
	for idx, balance := range want {
		assert.Equal(t, balance, newState.Balances[idx], "Unexpected balance for validator %d", idx)
	}
}

func TestProcessTransfers_RejectsDustSenderBalance(t *testing.T) {
	helpers.ClearCache()
	cfg := params.E2ETestConfig()
	beaconState, privKeys := util.DeterministicGenesisState(t, cfg, 64)
	beaconState.Validators[0].WithdrawableEpoch = 0

	// Leave the sender just under the minimum deposit amount.
	amount := beaconState.Balances[0] - cfg.MinDepositAmount
	fee := cfg.MinDepositAmount - 1
	transfer := signedTransfer(t, cfg, beaconState, privKeys, 0, 1, amount, fee)

	_, err := blocks.ProcessTransfers(context.Background(), cfg, beaconState, []*ethpb.Transfer{transfer})
	require.ErrorIs(t, err, blocks.ErrInsufficientBalance)
	assert.ErrorContains(t, "below the minimum deposit amount", err)
}
