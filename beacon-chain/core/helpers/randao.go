package helpers

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/crypto/bls"
	"github.com/prysmaticlabs/phase0/crypto/hash"
	"github.com/prysmaticlabs/phase0/encoding/bytesutil"
)

// Seed returns the randao seed used for shuffling of a given epoch.
//
// Spec pseudocode definition:
//  def get_seed(state: BeaconState, epoch: Epoch, domain_type: DomainType) -> Bytes32:
//    """
//    Return the seed at ``epoch``.
//    """
//    mix = get_randao_mix(state, Epoch(epoch + EPOCHS_PER_HISTORICAL_VECTOR - MIN_SEED_LOOKAHEAD - 1))  # Avoid underflow
//    return hash(domain_type + uint_to_bytes(epoch) + mix)
func Seed(cfg *params.BeaconChainConfig, state *state.BeaconState, epoch types.Epoch, domain [bls.DomainByteLength]byte) ([32]byte, error) {
	// See https://github.com/ethereum/eth2.0-specs/pull/1096.
	lookAheadEpoch := epoch + cfg.EpochsPerHistoricalVector - cfg.MinSeedLookahead - 1

	randaoMix, err := RandaoMix(cfg, state, lookAheadEpoch)
	if err != nil {
		return [32]byte{}, err
	}

	seed := append(domain[:], bytesutil.Bytes8(uint64(epoch))...)
	seed = append(seed, randaoMix...)

	return hash.Hash(seed), nil
}

// RandaoMix returns the randao mix (xor'ed seed)
// of a given slot. It is used to shuffle validators.
//
// Spec pseudocode definition:
//  def get_randao_mix(state: BeaconState, epoch: Epoch) -> Bytes32:
//    """
//    Return the randao mix at a recent ``epoch``.
//    """
//    return state.randao_mixes[epoch % EPOCHS_PER_HISTORICAL_VECTOR]
func RandaoMix(cfg *params.BeaconChainConfig, state *state.BeaconState, epoch types.Epoch) ([]byte, error) {
	idx := uint64(epoch.Mod(uint64(cfg.EpochsPerHistoricalVector)))
	if idx >= uint64(len(state.RandaoMixes)) {
		return nil, errors.Errorf("randao mix index %d out of range", idx)
	}
	return bytesutil.SafeCopyBytes(state.RandaoMixes[idx]), nil
}
