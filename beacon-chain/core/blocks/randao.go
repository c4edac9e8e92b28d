package blocks

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/signing"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	"github.com/prysmaticlabs/phase0/crypto/hash"
)

// ProcessRandao checks the block proposer's
// randao commitment and generates a new randao mix to update
// in the beacon state's latest randao mixes slice.
//
// Spec pseudocode definition:
//
//  def process_randao(state: BeaconState, body: BeaconBlockBody) -> None:
//    epoch = get_current_epoch(state)
//    # Verify RANDAO reveal
//    proposer = state.validators[get_beacon_proposer_index(state)]
//    signing_root = compute_signing_root(epoch, get_domain(state, DOMAIN_RANDAO))
//    assert bls.Verify(proposer.pubkey, signing_root, body.randao_reveal)
//    # Mix in RANDAO reveal
//    mix = xor(get_randao_mix(state, epoch), hash(body.randao_reveal))
//    state.randao_mixes[epoch % EPOCHS_PER_HISTORICAL_VECTOR] = mix
func ProcessRandao(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	body *ethpb.BeaconBlockBody,
) (*state.BeaconState, error) {
	if body == nil {
		return nil, errors.New("nil block body")
	}
	set, err := RandaoSignatureSet(cfg, st, body)
	if err != nil {
		return nil, errors.Wrap(err, "could not retrieve randao signature set")
	}
	verified, err := set.Verify()
	if err != nil {
		return nil, errors.Wrap(err, "could not verify randao signature")
	}
	if !verified {
		return nil, errors.Wrap(signing.ErrSigFailedToVerify, "randao reveal signature did not verify")
	}
	st, err = ProcessRandaoNoVerify(ctx, cfg, st, body)
	if err != nil {
		return nil, errors.Wrap(err, "could not process randao")
	}
	return st, nil
}

// ProcessRandaoNoVerify generates a new randao mix to update
// in the beacon state's latest randao mixes slice. The caller is responsible
// for checking the reveal signature.
func ProcessRandaoNoVerify(
	_ context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	body *ethpb.BeaconBlockBody,
) (*state.BeaconState, error) {
	if body == nil {
		return nil, errors.New("nil block body")
	}
	currentEpoch := helpers.CurrentEpoch(cfg, st)
	latestMix, err := helpers.RandaoMix(cfg, st, currentEpoch)
	if err != nil {
		return nil, err
	}
	blockRandaoReveal := hash.Hash(body.RandaoReveal)
	for i, x := range blockRandaoReveal {
		latestMix[i] ^= x
	}
	st.RandaoMixes[uint64(currentEpoch.Mod(uint64(cfg.EpochsPerHistoricalVector)))] = latestMix
	return st, nil
}
