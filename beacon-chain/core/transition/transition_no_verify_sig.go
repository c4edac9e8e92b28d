package transition

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pkg/errors"
	b "github.com/prysmaticlabs/phase0/beacon-chain/core/blocks"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	"github.com/prysmaticlabs/phase0/crypto/bls"
	"go.opencensus.io/trace"
)

// ExecuteStateTransitionNoVerifyAnySig defines the procedure for a state transition function.
// This does not validate any BLS signatures of attestations, block proposer signature, randao signature,
// it is used for performing a state transition as quickly as possible. This function also returns a signature
// set of all signatures not verified, so that they can be stored and verified later.
//
// WARNING: This method does not validate any signatures in a block. This method also does not modify
// the passed in state. A new, processed state is returned on success.
//
// Spec pseudocode definition:
//
//	def state_transition(state: BeaconState, signed_block: SignedBeaconBlock, validate_result: bool=True) -> None:
//	  block = signed_block.message
//	  # Process slots (including those with no blocks) since block
//	  process_slots(state, block.slot)
//	  # Verify signature
//	  if validate_result:
//	      assert verify_block_signature(state, signed_block)
//	  # Process block
//	  process_block(state, block)
//	  # Verify state root
//	  if validate_result:
//	      assert block.state_root == hash_tree_root(state)
func ExecuteStateTransitionNoVerifyAnySig(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	signed *ethpb.SignedBeaconBlock,
) (*bls.SignatureSet, *state.BeaconState, error) {
	if ctx.Err() != nil {
		return nil, nil, ctx.Err()
	}
	if signed == nil || signed.Block == nil {
		return nil, nil, errors.New("nil block")
	}

	ctx, span := trace.StartSpan(ctx, "core.state.ExecuteStateTransitionNoVerifyAnySig")
	defer span.End()
	var err error

	st, err = ProcessSlotsUsingNextSlotCache(ctx, cfg, st, signed.Block.ParentRoot, signed.Block.Slot)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not process slots")
	}

	// Execute per block transition.
	set, st, err := ProcessBlockNoVerifyAnySig(ctx, cfg, st, signed)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not process block")
	}

	// State root validation.
	postStateRoot, err := st.HashTreeRoot(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if !bytes.Equal(postStateRoot[:], signed.Block.StateRoot) {
		return nil, nil, fmt.Errorf("could not validate state root, wanted: %#x, received: %#x",
			postStateRoot[:], signed.Block.StateRoot)
	}

	return set, st, nil
}

// CalculateStateRoot defines the procedure for a state transition function.
// This does not validate any BLS signatures in a block, it is used for calculating the
// state root of the state for the block proposer to use.
// This does not modify state.
//
// WARNING: This method does not validate any BLS signatures. This is used for proposer to compute
// state root before proposing a new block, and this does not modify state.
//
// Spec pseudocode definition:
//
//	def state_transition(state: BeaconState, signed_block: SignedBeaconBlock, validate_result: bool=True) -> None:
//	  block = signed_block.message
//	  # Process slots (including those with no blocks) since block
//	  process_slots(state, block.slot)
//	  # Verify signature
//	  if validate_result:
//	      assert verify_block_signature(state, signed_block)
//	  # Process block
//	  process_block(state, block)
//	  # Verify state root
//	  if validate_result:
//	      assert block.state_root == hash_tree_root(state)
func CalculateStateRoot(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	signed *ethpb.SignedBeaconBlock,
) ([32]byte, error) {
	ctx, span := trace.StartSpan(ctx, "core.state.CalculateStateRoot")
	defer span.End()
	if ctx.Err() != nil {
		return [32]byte{}, ctx.Err()
	}
	if st == nil {
		return [32]byte{}, errors.New("nil state")
	}
	if signed == nil || signed.Block == nil {
		return [32]byte{}, errors.New("nil block")
	}

	// Copy state to avoid mutating the state reference.
	st = st.Copy()

	// Execute per slots transition.
	var err error
	st, err = ProcessSlotsUsingNextSlotCache(ctx, cfg, st, signed.Block.ParentRoot, signed.Block.Slot)
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not process slots")
	}

	// Execute per block transition.
	st, err = ProcessBlockForStateRoot(ctx, cfg, st, signed)
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not process block")
	}

	return st.HashTreeRoot(ctx, cfg)
}

// ProcessBlockNoVerifyAnySig creates a new, modified beacon state by applying block operation
// transformations as defined in the Ethereum Serenity specification. It does not validate
// any block signature except for deposit and slashing signatures. It also returns the signature set of
// block, randao and attestations signatures.
//
// Spec pseudocode definition:
//
//	def process_block(state: BeaconState, block: BeaconBlock) -> None:
//	  process_block_header(state, block)
//	  process_randao(state, block.body)
//	  process_eth1_data(state, block.body)
//	  process_operations(state, block.body)
func ProcessBlockNoVerifyAnySig(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	signed *ethpb.SignedBeaconBlock,
) (*bls.SignatureSet, *state.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.state.ProcessBlockNoVerifyAnySig")
	defer span.End()
	if signed == nil || signed.Block == nil || signed.Block.Body == nil {
		return nil, nil, errors.New("nil block")
	}

	st, err := b.ProcessBlockHeaderNoVerify(ctx, cfg, st, signed.Block)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not process block header")
	}

	bSet, err := b.BlockSignatureSet(cfg, st, signed)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not retrieve block signature set")
	}
	rSet, err := b.RandaoSignatureSet(cfg, st, signed.Block.Body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not retrieve randao signature set")
	}

	st, err = b.ProcessRandaoNoVerify(ctx, cfg, st, signed.Block.Body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not verify and process randao")
	}

	st, err = b.ProcessEth1DataInBlock(ctx, cfg, st, signed.Block.Body.Eth1Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not process eth1 data")
	}

	st, err = ProcessOperationsNoVerifyAttsSigs(ctx, cfg, st, signed.Block.Body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not process block operation")
	}

	aSet, err := b.AttestationSignatureSet(ctx, cfg, st, signed.Block.Body.Attestations)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not retrieve attestation signature set")
	}

	// Merge beacon block, randao and attestations signatures into a set.
	set := bls.NewSet()
	set.Join(bSet).Join(rSet).Join(aSet)

	return set, st, nil
}

// ProcessOperationsNoVerifyAttsSigs processes the operations in the beacon block and updates beacon state
// with the operations in block. It does not verify attestation signatures.
//
// WARNING: This method does not verify attestation signatures.
// This is used to perform the block operations as fast as possible.
//
// Spec pseudocode definition:
//
//	def process_operations(state: BeaconState, body: BeaconBlockBody) -> None:
//	  # Verify that outstanding deposits are processed up to the maximum number of deposits
//	  assert len(body.deposits) == min(MAX_DEPOSITS, state.eth1_data.deposit_count - state.eth1_deposit_index)
//	  # Verify that there are no duplicate transfers
//	  assert len(body.transfers) == len(set(body.transfers))
//
//	  all_operations = (
//	      (body.proposer_slashings, process_proposer_slashing),
//	      (body.attester_slashings, process_attester_slashing),
//	      (body.attestations, process_attestation),
//	      (body.deposits, process_deposit),
//	      (body.voluntary_exits, process_voluntary_exit),
//	      (body.transfers, process_transfer),
//	  )  # type: Sequence[Tuple[List, Callable]]
//	  for operations, function in all_operations:
//	      for operation in operations:
//	          function(state, operation)
func ProcessOperationsNoVerifyAttsSigs(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	body *ethpb.BeaconBlockBody,
) (*state.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.state.ProcessOperationsNoVerifyAttsSigs")
	defer span.End()

	if _, err := VerifyOperationLengths(ctx, cfg, st, body); err != nil {
		return nil, errors.Wrap(err, "could not verify operation lengths")
	}

	st, err := b.ProcessProposerSlashings(ctx, cfg, st, body.ProposerSlashings)
	if err != nil {
		return nil, errors.Wrap(err, "could not process block proposer slashings")
	}
	st, err = b.ProcessAttesterSlashings(ctx, cfg, st, body.AttesterSlashings)
	if err != nil {
		return nil, errors.Wrap(err, "could not process block attester slashings")
	}
	st, err = b.ProcessAttestationsNoVerifySignature(ctx, cfg, st, body.Attestations)
	if err != nil {
		return nil, errors.Wrap(err, "could not process block attestations")
	}
	st, err = b.ProcessDeposits(ctx, cfg, st, body.Deposits)
	if err != nil {
		return nil, errors.Wrap(err, "could not process block validator deposits")
	}
	st, err = b.ProcessVoluntaryExits(ctx, cfg, st, body.VoluntaryExits)
	if err != nil {
		return nil, errors.Wrap(err, "could not process validator exits")
	}
	st, err = b.ProcessTransfers(ctx, cfg, st, body.Transfers)
	if err != nil {
		return nil, errors.Wrap(err, "could not process block transfers")
	}

	return st, nil
}

// ProcessBlockForStateRoot processes the state for state root computation. It skips proposer signature
// and randao signature verifications.
func ProcessBlockForStateRoot(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	signed *ethpb.SignedBeaconBlock,
) (*state.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.state.ProcessBlockForStateRoot")
	defer span.End()
	if signed == nil || signed.Block == nil || signed.Block.Body == nil {
		return nil, errors.New("nil block")
	}

	st, err := b.ProcessBlockHeaderNoVerify(ctx, cfg, st, signed.Block)
	if err != nil {
		return nil, errors.Wrap(err, "could not process block header")
	}

	st, err = b.ProcessRandaoNoVerify(ctx, cfg, st, signed.Block.Body)
	if err != nil {
		return nil, errors.Wrap(err, "could not verify and process randao")
	}

	st, err = b.ProcessEth1DataInBlock(ctx, cfg, st, signed.Block.Body.Eth1Data)
	if err != nil {
		return nil, errors.Wrap(err, "could not process eth1 data")
	}

	st, err = ProcessOperationsNoVerifyAttsSigs(ctx, cfg, st, signed.Block.Body)
	if err != nil {
		return nil, errors.Wrap(err, "could not process block operation")
	}

	return st, nil
}
