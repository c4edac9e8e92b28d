package blocks

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/signing"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/transition/stateutils"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/container/trie"
	"github.com/prysmaticlabs/phase0/crypto/bls"
	"github.com/prysmaticlabs/phase0/encoding/bytesutil"
	mathutil "github.com/prysmaticlabs/phase0/math"
)

// ProcessDeposits is one of the operations performed on each processed
// beacon block to verify queued validators from the Ethereum 1.0 Deposit Contract
// into the beacon chain.
//
// Spec pseudocode definition:
//
//  For each deposit in block.body.deposits:
//    process_deposit(state, deposit)
func ProcessDeposits(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	deposits []*ethpb.Deposit,
) (*state.BeaconState, error) {
	allSignaturesVerified, err := BatchVerifyDepositsSignatures(ctx, cfg, deposits)
	if err != nil {
		return nil, err
	}
	valIndexMap := stateutils.ValidatorIndexMap(st.Validators)

	for _, deposit := range deposits {
		if deposit == nil || deposit.Data == nil {
			return nil, errors.New("got a nil deposit in block")
		}
		st, err = ProcessDeposit(cfg, st, deposit, valIndexMap, allSignaturesVerified)
		if err != nil {
			return nil, errors.Wrapf(err, "could not process deposit from %#x", bytesutil.Trunc(deposit.Data.PublicKey))
		}
	}
	return st, nil
}

// BatchVerifyDepositsSignatures batch verifies deposit signatures and reports
// whether every signature in the batch checked out. A failed batch is not an
// error, the deposits are then verified one by one during processing.
func BatchVerifyDepositsSignatures(ctx context.Context, cfg *params.BeaconChainConfig, deposits []*ethpb.Deposit) (bool, error) {
	domain, err := signing.ComputeDomain(cfg.DomainDeposit, nil, nil)
	if err != nil {
		return false, err
	}
	if err := verifyDepositDataWithDomain(ctx, deposits, domain); err != nil {
		log.WithError(err).Debug("Failed to batch verify deposits signatures, will try individual verify")
		return false, nil
	}
	return true, nil
}

// ProcessDeposit takes in a deposit object and inserts it
// into the registry as a new validator or balance change. The validator index
// map is updated when a deposit appends a new validator, so repeat deposits
// for the same fresh public key within one block top up instead of appending
// twice.
//
// Spec pseudocode definition:
//
//  def process_deposit(state: BeaconState, deposit: Deposit) -> None:
//    # Verify the Merkle branch
//    assert is_valid_merkle_branch(
//        leaf=hash_tree_root(deposit.data),
//        branch=deposit.proof,
//        depth=DEPOSIT_CONTRACT_TREE_DEPTH + 1,  # Add 1 for the List length mix-in
//        index=state.eth1_deposit_index,
//        root=state.eth1_data.deposit_root,
//    )
//
//    # Deposits must be processed in order
//    state.eth1_deposit_index += 1
//
//    pubkey = deposit.data.pubkey
//    amount = deposit.data.amount
//    validator_pubkeys = [v.pubkey for v in state.validators]
//    if pubkey not in validator_pubkeys:
//        # Verify the deposit signature (proof of possession) which is not checked by the deposit contract
//        deposit_message = DepositMessage(
//            pubkey=deposit.data.pubkey,
//            withdrawal_credentials=deposit.data.withdrawal_credentials,
//            amount=deposit.data.amount,
//        )
//        domain = compute_domain(DOMAIN_DEPOSIT)
//        signing_root = compute_signing_root(deposit_message, domain)
//        if not bls.Verify(pubkey, signing_root, deposit.data.signature):
//            return
//
//        # Add validator and balance entries
//        state.validators.append(get_validator_from_deposit(state, deposit))
//        state.balances.append(amount)
//    else:
//        # Increase balance by deposit amount
//        index = ValidatorIndex(validator_pubkeys.index(pubkey))
//        increase_balance(state, index, amount)
func ProcessDeposit(
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	deposit *ethpb.Deposit,
	valIndexMap map[[48]byte]types.ValidatorIndex,
	allSignaturesVerified bool,
) (*state.BeaconState, error) {
	if err := verifyDeposit(cfg, st, deposit); err != nil {
		return nil, errors.Wrapf(err, "could not verify deposit from %#x", bytesutil.Trunc(deposit.Data.PublicKey))
	}
	st.Eth1DepositIndex++

	pubKey := deposit.Data.PublicKey
	amount := deposit.Data.Amount
	index, ok := valIndexMap[bytesutil.ToBytes48(pubKey)]
	if !ok {
		if !allSignaturesVerified {
			domain, err := signing.ComputeDomain(cfg.DomainDeposit, nil, nil)
			if err != nil {
				return nil, err
			}
			if err := VerifyDepositSignature(deposit.Data, domain); err != nil {
				// A deposit with an invalid proof of possession is skipped
				// rather than rejected, its ether stays locked in the deposit
				// contract.
				log.Debugf("Skipping deposit: could not verify deposit data signature: %v", err)
				return st, nil
			}
		}

		effectiveBalance := amount - (amount % cfg.EffectiveBalanceIncrement)
		if cfg.MaxEffectiveBalance < effectiveBalance {
			effectiveBalance = cfg.MaxEffectiveBalance
		}
		st.Validators = append(st.Validators, &ethpb.Validator{
			PublicKey:                  bytesutil.SafeCopyBytes(pubKey),
			WithdrawalCredentials:      bytesutil.SafeCopyBytes(deposit.Data.WithdrawalCredentials),
			ActivationEligibilityEpoch: cfg.FarFutureEpoch,
			ActivationEpoch:            cfg.FarFutureEpoch,
			ExitEpoch:                  cfg.FarFutureEpoch,
			WithdrawableEpoch:          cfg.FarFutureEpoch,
			EffectiveBalance:           effectiveBalance,
		})
		st.Balances = append(st.Balances, amount)
		valIndexMap[bytesutil.ToBytes48(pubKey)] = types.ValidatorIndex(len(st.Validators) - 1)
	} else {
		if err := helpers.IncreaseBalance(st, index, amount); err != nil {
			return nil, err
		}
	}

	return st, nil
}

// ProcessPreGenesisDeposits processes a deposit for the beacon state before chainstart.
func ProcessPreGenesisDeposits(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	deposits []*ethpb.Deposit,
) (*state.BeaconState, error) {
	var err error
	st, err = ProcessDeposits(ctx, cfg, st, deposits)
	if err != nil {
		return nil, errors.Wrap(err, "could not process deposit")
	}
	st, err = ActivateValidatorWithEffectiveBalance(cfg, st, deposits)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// ActivateValidatorWithEffectiveBalance updates validator's effective balance, and if it's above
// MaxEffectiveBalance, validator becomes active in genesis.
func ActivateValidatorWithEffectiveBalance(cfg *params.BeaconChainConfig, st *state.BeaconState, deposits []*ethpb.Deposit) (*state.BeaconState, error) {
	valIndexMap := stateutils.ValidatorIndexMap(st.Validators)
	for _, deposit := range deposits {
		index, ok := valIndexMap[bytesutil.ToBytes48(deposit.Data.PublicKey)]
		if !ok {
			continue
		}
		if uint64(index) >= uint64(len(st.Balances)) {
			return nil, errors.Wrapf(ErrUnknownValidator, "no balance for validator index %d", index)
		}
		balance := st.Balances[index]
		validator, ok := st.ValidatorAtIndex(index)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownValidator, "validator index %d does not exist", index)
		}
		validator.EffectiveBalance = mathutil.Min(balance-balance%cfg.EffectiveBalanceIncrement, cfg.MaxEffectiveBalance)
		if validator.EffectiveBalance == cfg.MaxEffectiveBalance {
			validator.ActivationEligibilityEpoch = 0
			validator.ActivationEpoch = 0
		}
	}
	return st, nil
}

// verifyDeposit checks the Merkle inclusion proof of a deposit against the
// deposit root held in state.
func verifyDeposit(cfg *params.BeaconChainConfig, st *state.BeaconState, deposit *ethpb.Deposit) error {
	if deposit == nil || deposit.Data == nil {
		return errors.New("received nil deposit or nil deposit data")
	}
	eth1Data := st.Eth1Data
	if eth1Data == nil {
		return errors.New("received nil eth1data in the beacon state")
	}

	receiptRoot := eth1Data.DepositRoot
	leaf, err := deposit.Data.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not tree hash deposit data")
	}
	if ok := trie.VerifyMerkleProofWithDepth(
		receiptRoot,
		leaf[:],
		st.Eth1DepositIndex,
		deposit.Proof,
		cfg.DepositContractTreeDepth,
	); !ok {
		return errors.Wrapf(ErrInvalidMerkleProof, "deposit merkle branch of deposit root did not verify for root: %#x", receiptRoot)
	}
	return nil
}

// VerifyDepositSignature verifies the proof of possession in a deposit, the
// one BLS check in block processing that uses the genesis fork domain
// regardless of the state's current fork.
func VerifyDepositSignature(data *ethpb.DepositData, domain []byte) error {
	depositMessage := &ethpb.DepositMessage{
		PublicKey:             data.PublicKey,
		WithdrawalCredentials: data.WithdrawalCredentials,
		Amount:                data.Amount,
	}
	if err := signing.VerifySigningRoot(depositMessage, data.PublicKey, data.Signature, domain); err != nil {
		return signing.ErrSigFailedToVerify
	}
	return nil
}

// verifyDepositDataWithDomain checks every deposit signature in the batch with
// a single multi-signature verification call.
func verifyDepositDataWithDomain(ctx context.Context, deps []*ethpb.Deposit, domain []byte) error {
	if len(deps) == 0 {
		return nil
	}
	pks := make([]bls.PublicKey, len(deps))
	sigs := make([][]byte, len(deps))
	msgs := make([][32]byte, len(deps))
	for i, dep := range deps {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if dep == nil || dep.Data == nil {
			return errors.New("nil deposit")
		}
		dpk, err := bls.PublicKeyFromBytes(dep.Data.PublicKey)
		if err != nil {
			return err
		}
		pks[i] = dpk
		sigs[i] = dep.Data.Signature
		depositMessage := &ethpb.DepositMessage{
			PublicKey:             dep.Data.PublicKey,
			WithdrawalCredentials: dep.Data.WithdrawalCredentials,
			Amount:                dep.Data.Amount,
		}
		sr, err := signing.ComputeSigningRoot(depositMessage, domain)
		if err != nil {
			return err
		}
		msgs[i] = sr
	}
	verify, err := bls.VerifyMultipleSignatures(sigs, msgs, pks)
	if err != nil {
		return errors.Errorf("could not verify multiple signatures: %v", err)
	}
	if !verify {
		return errors.New("one or more deposit signatures did not verify")
	}
	return nil
}
