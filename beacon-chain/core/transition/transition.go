// Package transition implements the whole state transition
// function which consists of per slot, per-epoch transitions.
// It also bootstraps the genesis beacon state for slot 0.
package transition

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/cache"
	b "github.com/prysmaticlabs/phase0/beacon-chain/core/blocks"
	e "github.com/prysmaticlabs/phase0/beacon-chain/core/epoch"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/epoch/precompute"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/math"
	"go.opencensus.io/trace"
)

// ErrOperationLimit is returned from VerifyOperationLengths when a block body
// carries more operations of one kind than the chain config allows.
var ErrOperationLimit = errors.New("operation count in block body exceeds allowed threshold")

// ExecuteStateTransition defines the procedure for a state transition function.
//
// Note: This method differs from the spec pseudocode as it uses a batch signature verification.
// See: ExecuteStateTransitionNoVerifyAnySig
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
func ExecuteStateTransition(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	signed *ethpb.SignedBeaconBlock,
) (*state.BeaconState, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if signed == nil || signed.Block == nil {
		return nil, errors.New("nil block")
	}

	ctx, span := trace.StartSpan(ctx, "core.state.ExecuteStateTransition")
	defer span.End()
	var err error

	set, postState, err := ExecuteStateTransitionNoVerifyAnySig(ctx, cfg, st, signed)
	if err != nil {
		return nil, errors.Wrap(err, "could not execute state transition")
	}
	valid, err := set.Verify()
	if err != nil {
		return nil, errors.Wrap(err, "could not batch verify signature")
	}
	if !valid {
		return nil, errors.New("signature in block failed to verify")
	}

	return postState, nil
}

// ProcessSlot happens every slot and focuses on the slot counter and block roots record updates.
// It happens regardless if there's an incoming block or not.
//
// Spec pseudocode definition:
//
//	def process_slot(state: BeaconState) -> None:
//	  # Cache state root
//	  previous_state_root = hash_tree_root(state)
//	  state.state_roots[state.slot % SLOTS_PER_HISTORICAL_ROOT] = previous_state_root
//	  # Cache latest block header state root
//	  if state.latest_block_header.state_root == Bytes32():
//	      state.latest_block_header.state_root = previous_state_root
//	  # Cache block root
//	  previous_block_root = hash_tree_root(state.latest_block_header)
//	  state.block_roots[state.slot % SLOTS_PER_HISTORICAL_ROOT] = previous_block_root
func ProcessSlot(ctx context.Context, cfg *params.BeaconChainConfig, st *state.BeaconState) (*state.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.state.ProcessSlot")
	defer span.End()
	span.AddAttributes(trace.Int64Attribute("slot", int64(st.Slot)))

	prevStateRoot, err := st.HashTreeRoot(ctx, cfg)
	if err != nil {
		return nil, err
	}
	st.StateRoots[st.Slot.ModSlot(cfg.SlotsPerHistoricalRoot)] = prevStateRoot[:]

	// Cache latest block header state root.
	if len(st.LatestBlockHeader.StateRoot) == 0 || bytes.Equal(st.LatestBlockHeader.StateRoot, cfg.ZeroHash[:]) {
		st.LatestBlockHeader.StateRoot = prevStateRoot[:]
	}
	prevBlockRoot, err := st.LatestBlockHeader.HashTreeRoot()
	if err != nil {
		return nil, errors.Wrap(err, "could not determine prev block root")
	}
	// Cache the block root.
	st.BlockRoots[st.Slot.ModSlot(cfg.SlotsPerHistoricalRoot)] = prevBlockRoot[:]
	return st, nil
}

// ProcessSlotsUsingNextSlotCache processes slots by using next slot cache for higher efficiency.
func ProcessSlotsUsingNextSlotCache(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	parentState *state.BeaconState,
	parentRoot []byte,
	slot types.Slot,
) (*state.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.state.ProcessSlotsUsingNextSlotCache")
	defer span.End()

	// Check whether the parent state has been advanced by 1 slot in next slot cache.
	nextSlotState, err := NextSlotState(ctx, parentRoot)
	if err != nil {
		return nil, err
	}
	cachedStateExists := nextSlotState != nil
	// If the next slot state is not nil (i.e. cache hit).
	// We replace next slot state with parent state.
	if cachedStateExists {
		parentState = nextSlotState
	}

	// In the event our cached state has advanced our
	// state to the desired slot, we exit early.
	if cachedStateExists && parentState.Slot == slot {
		return parentState, nil
	}
	// Since next slot cache only advances state by 1 slot,
	// we check if there's more slots that need to process.
	parentState, err = ProcessSlots(ctx, cfg, parentState, slot)
	if err != nil {
		return nil, errors.Wrap(err, "could not process slots")
	}
	return parentState, nil
}

// ProcessSlots process through skip slots and apply epoch transition when it's needed.
//
// The caller's state is never mutated. ProcessSlots works on a copy, so a
// failed or cancelled call leaves the input untouched.
//
// Spec pseudocode definition:
//
//	def process_slots(state: BeaconState, slot: Slot) -> None:
//	  assert state.slot < slot
//	  while state.slot < slot:
//	      process_slot(state)
//	      # Process epoch on the start slot of the next epoch
//	      if (state.slot + 1) % SLOTS_PER_EPOCH == 0:
//	          process_epoch(state)
//	      state.slot = Slot(state.slot + 1)
func ProcessSlots(ctx context.Context, cfg *params.BeaconChainConfig, st *state.BeaconState, slot types.Slot) (*state.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.state.ProcessSlots")
	defer span.End()
	if st == nil {
		return nil, errors.New("nil state")
	}
	span.AddAttributes(trace.Int64Attribute("slots", int64(slot)-int64(st.Slot)))

	// The block must have a higher slot than parent state.
	if st.Slot >= slot {
		err := fmt.Errorf("expected state.slot %d < slot %d", st.Slot, slot)
		return nil, err
	}

	// Copy the state to avoid mutating the caller's reference.
	st = st.Copy()

	highestSlot := st.Slot
	key, err := SkipSlotCacheKey(cfg, st)
	if err != nil {
		return nil, err
	}

	// Restart from cached value, if one exists.
	cachedState, err := SkipSlotCache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if cachedState != nil && cachedState.Slot < slot {
		highestSlot = cachedState.Slot
		st = cachedState
	}
	if err := SkipSlotCache.MarkInProgress(key); errors.Is(err, cache.ErrAlreadyInProgress) {
		cachedState, err = SkipSlotCache.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if cachedState != nil && cachedState.Slot < slot {
			highestSlot = cachedState.Slot
			st = cachedState
		}
	} else if err != nil {
		return nil, err
	}
	defer func() {
		SkipSlotCache.MarkNotInProgress(key)
	}()

	for st.Slot < slot {
		if ctx.Err() != nil {
			// Cache last best value.
			if highestSlot < st.Slot {
				SkipSlotCache.Put(ctx, key, st)
			}
			return nil, ctx.Err()
		}
		st, err = ProcessSlot(ctx, cfg, st)
		if err != nil {
			return nil, errors.Wrap(err, "could not process slot")
		}
		if CanProcessEpoch(cfg, st) {
			st, err = ProcessEpochPrecompute(ctx, cfg, st)
			if err != nil {
				return nil, errors.Wrap(err, "could not process epoch with optimizations")
			}
		}
		st.Slot++
	}

	if highestSlot < st.Slot {
		SkipSlotCache.Put(ctx, key, st)
	}

	return st, nil
}

// CanProcessEpoch checks the eligibility to process epoch.
// The epoch can be processed at the end of the last slot of every epoch.
//
// Spec pseudocode definition:
//
//	If (state.slot + 1) % SLOTS_PER_EPOCH == 0:
func CanProcessEpoch(cfg *params.BeaconChainConfig, st *state.BeaconState) bool {
	return (st.Slot+1)%cfg.SlotsPerEpoch == 0
}

// ProcessBlock creates a new, modified beacon state by applying block operation
// transformations as defined in the Ethereum Serenity specification, including processing proposer slashings,
// processing block attestations, and more.
//
// Spec pseudocode definition:
//
//	def process_block(state: BeaconState, block: BeaconBlock) -> None:
//	  process_block_header(state, block)
//	  process_randao(state, block.body)
//	  process_eth1_data(state, block.body)
//	  process_operations(state, block.body)
func ProcessBlock(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	signed *ethpb.SignedBeaconBlock,
) (*state.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.state.ProcessBlock")
	defer span.End()
	if signed == nil || signed.Block == nil || signed.Block.Body == nil {
		return nil, errors.New("nil block")
	}

	st, err := b.ProcessBlockHeader(ctx, cfg, st, signed)
	if err != nil {
		return nil, errors.Wrap(err, "could not process block header")
	}

	st, err = b.ProcessRandao(ctx, cfg, st, signed.Block.Body)
	if err != nil {
		return nil, errors.Wrap(err, "could not verify and process randao")
	}

	st, err = b.ProcessEth1DataInBlock(ctx, cfg, st, signed.Block.Body.Eth1Data)
	if err != nil {
		return nil, errors.Wrap(err, "could not process eth1 data")
	}

	st, err = ProcessOperations(ctx, cfg, st, signed.Block.Body)
	if err != nil {
		return nil, errors.Wrap(err, "could not process block operation")
	}

	return st, nil
}

// ProcessOperations processes the operations in the beacon block and updates beacon state
// with the operations in block.
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
func ProcessOperations(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	body *ethpb.BeaconBlockBody,
) (*state.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.state.ProcessOperations")
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
	st, err = b.ProcessAttestations(ctx, cfg, st, body.Attestations)
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

// VerifyOperationLengths verifies that block operation lengths are valid.
func VerifyOperationLengths(_ context.Context, cfg *params.BeaconChainConfig, st *state.BeaconState, body *ethpb.BeaconBlockBody) (*state.BeaconState, error) {
	if body == nil {
		return nil, errors.New("nil block body")
	}

	if uint64(len(body.ProposerSlashings)) > cfg.MaxProposerSlashings {
		return nil, errors.Wrapf(ErrOperationLimit, "%d proposer slashings with max %d",
			len(body.ProposerSlashings), cfg.MaxProposerSlashings)
	}

	if uint64(len(body.AttesterSlashings)) > cfg.MaxAttesterSlashings {
		return nil, errors.Wrapf(ErrOperationLimit, "%d attester slashings with max %d",
			len(body.AttesterSlashings), cfg.MaxAttesterSlashings)
	}

	if uint64(len(body.Attestations)) > cfg.MaxAttestations {
		return nil, errors.Wrapf(ErrOperationLimit, "%d attestations with max %d",
			len(body.Attestations), cfg.MaxAttestations)
	}

	if uint64(len(body.VoluntaryExits)) > cfg.MaxVoluntaryExits {
		return nil, errors.Wrapf(ErrOperationLimit, "%d voluntary exits with max %d",
			len(body.VoluntaryExits), cfg.MaxVoluntaryExits)
	}

	if uint64(len(body.Transfers)) > cfg.MaxTransfers {
		return nil, errors.Wrapf(ErrOperationLimit, "%d transfers with max %d",
			len(body.Transfers), cfg.MaxTransfers)
	}
	// Verify that there are no duplicate transfers.
	transferSet := make(map[[32]byte]bool, len(body.Transfers))
	for _, transfer := range body.Transfers {
		if transfer == nil {
			return nil, errors.New("nil transfer in block body")
		}
		r, err := transfer.HashTreeRoot()
		if err != nil {
			return nil, errors.Wrap(err, "could not hash transfer")
		}
		if transferSet[r] {
			return nil, errors.Wrap(b.ErrDuplicateOrConflicting, "duplicate transfer in block body")
		}
		transferSet[r] = true
	}

	if st.Eth1Data == nil {
		return nil, errors.New("nil eth1data in state")
	}
	if st.Eth1DepositIndex > st.Eth1Data.DepositCount {
		return nil, fmt.Errorf("expected state.deposit_index %d <= eth1data.deposit_count %d",
			st.Eth1DepositIndex, st.Eth1Data.DepositCount)
	}
	maxDeposits := math.Min(cfg.MaxDeposits, st.Eth1Data.DepositCount-st.Eth1DepositIndex)
	// Verify outstanding deposits are processed up to max number of deposits.
	if uint64(len(body.Deposits)) != maxDeposits {
		return nil, fmt.Errorf("incorrect outstanding deposits in block body, wanted: %d, got: %d",
			maxDeposits, len(body.Deposits))
	}

	return st, nil
}

// ProcessEpochPrecompute describes the per epoch operations that are performed on the beacon state.
// It's optimized by pre computing validator attested info and epoch total/attested balances upfront.
//
// The caller's state is never mutated. The per epoch operations apply to a
// copy, which is returned on success.
func ProcessEpochPrecompute(ctx context.Context, cfg *params.BeaconChainConfig, st *state.BeaconState) (*state.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.state.ProcessEpochPrecompute")
	defer span.End()
	if st == nil {
		return nil, errors.New("nil state")
	}
	span.AddAttributes(trace.Int64Attribute("epoch", int64(helpers.CurrentEpoch(cfg, st))))

	st = st.Copy()

	vp, bp, err := precompute.New(ctx, cfg, st)
	if err != nil {
		return nil, err
	}
	vp, bp, err = precompute.ProcessAttestations(ctx, cfg, st, vp, bp)
	if err != nil {
		return nil, err
	}

	st, err = precompute.ProcessJustificationAndFinalizationPreCompute(cfg, st, bp)
	if err != nil {
		return nil, errors.Wrap(err, "could not process justification")
	}

	st, err = precompute.ProcessRewardsAndPenaltiesPrecompute(cfg, st, bp, vp)
	if err != nil {
		return nil, errors.Wrap(err, "could not process rewards and penalties")
	}

	st, err = e.ProcessRegistryUpdates(cfg, st)
	if err != nil {
		return nil, errors.Wrap(err, "could not process registry updates")
	}

	if err := precompute.ProcessSlashingsPrecompute(cfg, st, bp); err != nil {
		return nil, err
	}

	st, err = e.ProcessFinalUpdates(cfg, st)
	if err != nil {
		return nil, errors.Wrap(err, "could not process final updates")
	}
	return st, nil
}
