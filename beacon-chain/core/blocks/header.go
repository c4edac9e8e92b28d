package blocks

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
)

// ProcessBlockHeader validates a block by its header.
//
// Spec pseudocode definition:
//
//  def process_block_header(state: BeaconState, block: BeaconBlock) -> None:
//    # Verify that the slots match
//    assert block.slot == state.slot
//    # Verify that proposer index is the correct index
//    assert block.proposer_index == get_beacon_proposer_index(state)
//    # Verify that the parent matches
//    assert block.parent_root == hash_tree_root(state.latest_block_header)
//    # Save current block as the new latest block
//    state.latest_block_header = BeaconBlockHeader(
//        slot=block.slot,
//        proposer_index=block.proposer_index,
//        parent_root=block.parent_root,
//        state_root=Bytes32(),  # Overwritten in the next `process_slot` call
//        body_root=hash_tree_root(block.body),
//    )
//
//    # Verify proposer is not slashed
//    proposer = state.validators[block.proposer_index]
//    assert not proposer.slashed
//
//    # Verify proposer signature
//    assert bls_verify(proposer.pubkey, signing_root(block), block.signature, get_domain(state, DOMAIN_BEACON_PROPOSER))
func ProcessBlockHeader(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	signed *ethpb.SignedBeaconBlock,
) (*state.BeaconState, error) {
	if signed == nil || signed.Block == nil {
		return nil, errors.New("nil block")
	}
	st, err := ProcessBlockHeaderNoVerify(ctx, cfg, st, signed.Block)
	if err != nil {
		return nil, err
	}
	if err := VerifyBlockSignature(cfg, st, signed); err != nil {
		return nil, err
	}
	return st, nil
}

// ProcessBlockHeaderNoVerify validates a block by its header but skips the
// proposer signature check.
//
// WARNING: This method does not verify the proposer signature. This is used for
// proposer to compute the state root using an unsigned block, and for callers
// that batch verify all block signatures up front.
func ProcessBlockHeaderNoVerify(
	_ context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	block *ethpb.BeaconBlock,
) (*state.BeaconState, error) {
	if block == nil || block.Body == nil {
		return nil, errors.New("nil block")
	}
	if st.Slot != block.Slot {
		return nil, errors.Wrapf(ErrHeaderMismatch, "state slot %d does not match block slot %d", st.Slot, block.Slot)
	}
	idx, err := helpers.BeaconProposerIndex(cfg, st)
	if err != nil {
		return nil, err
	}
	if block.ProposerIndex != idx {
		return nil, errors.Wrapf(ErrHeaderMismatch, "proposer index %d does not match calculated proposer index %d", block.ProposerIndex, idx)
	}
	parentHeader := st.LatestBlockHeader
	if parentHeader == nil {
		return nil, errors.New("nil latest block header in state")
	}
	if parentHeader.Slot >= block.Slot {
		return nil, errors.Wrapf(ErrHeaderMismatch, "block slot %d is not greater than latest header slot %d", block.Slot, parentHeader.Slot)
	}
	parentRoot, err := parentHeader.HashTreeRoot()
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(block.ParentRoot, parentRoot[:]) {
		return nil, errors.Wrapf(ErrHeaderMismatch, "parent root %#x does not match the latest block header root %#x", block.ParentRoot, parentRoot)
	}
	proposer, ok := st.ValidatorAtIndex(idx)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownValidator, "validator index %d does not exist", idx)
	}
	if proposer.Slashed {
		return nil, errors.Wrapf(ErrHeaderMismatch, "proposer at index %d was previously slashed", idx)
	}
	bodyRoot, err := block.Body.HashTreeRoot()
	if err != nil {
		return nil, err
	}
	st.LatestBlockHeader = &ethpb.BeaconBlockHeader{
		Slot:          block.Slot,
		ProposerIndex: block.ProposerIndex,
		ParentRoot:    block.ParentRoot,
		StateRoot:     cfg.ZeroHash[:],
		BodyRoot:      bodyRoot[:],
	}
	return st, nil
}
