package blocks

import (
	"context"
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/signing"
	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/crypto/bls"
)

// retrieves the signature set from the raw data, public key, signature and domain provided.
func signatureSet(signedData, pub, signature, domain []byte) (*bls.SignatureSet, error) {
	publicKey, err := bls.PublicKeyFromBytes(pub)
	if err != nil {
		return nil, errors.Wrap(err, "could not convert bytes to public key")
	}
	signingData := &ethpb.SigningData{
		ObjectRoot: signedData,
		Domain:     domain,
	}
	root, err := signingData.HashTreeRoot()
	if err != nil {
		return nil, errors.Wrap(err, "could not hash container")
	}
	return &bls.SignatureSet{
		Signatures: [][]byte{signature},
		PublicKeys: []bls.PublicKey{publicKey},
		Messages:   [][32]byte{root},
	}, nil
}

// VerifyBlockSignature verifies the proposer signature of a beacon block.
func VerifyBlockSignature(cfg *params.BeaconChainConfig, st *state.BeaconState, block *ethpb.SignedBeaconBlock) error {
	currentEpoch := helpers.CurrentEpoch(cfg, st)
	domain, err := signing.Domain(st.Fork, currentEpoch, cfg.DomainBeaconProposer, st.GenesisValidatorsRoot)
	if err != nil {
		return err
	}
	proposer, ok := st.ValidatorAtIndex(block.Block.ProposerIndex)
	if !ok {
		return errors.Wrapf(ErrUnknownValidator, "validator index %d does not exist", block.Block.ProposerIndex)
	}
	return signing.VerifyBlockSigningRoot(proposer.PublicKey, block.Signature, domain, block.Block.HashTreeRoot)
}

// BlockSignatureSet retrieves the block signature set from the provided block and its corresponding state.
func BlockSignatureSet(cfg *params.BeaconChainConfig, st *state.BeaconState, block *ethpb.SignedBeaconBlock) (*bls.SignatureSet, error) {
	currentEpoch := helpers.CurrentEpoch(cfg, st)
	domain, err := signing.Domain(st.Fork, currentEpoch, cfg.DomainBeaconProposer, st.GenesisValidatorsRoot)
	if err != nil {
		return nil, err
	}
	proposer, ok := st.ValidatorAtIndex(block.Block.ProposerIndex)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownValidator, "validator index %d does not exist", block.Block.ProposerIndex)
	}
	return signing.BlockSignatureSet(proposer.PublicKey, block.Signature, domain, block.Block.HashTreeRoot)
}

// RandaoSignatureSet retrieves the relevant randao specific signature set object
// from a block and its corresponding state.
func RandaoSignatureSet(cfg *params.BeaconChainConfig, st *state.BeaconState, body *ethpb.BeaconBlockBody) (*bls.SignatureSet, error) {
	buf, proposerPub, domain, err := randaoSigningData(cfg, st)
	if err != nil {
		return nil, err
	}
	set, err := signatureSet(buf, proposerPub, body.RandaoReveal, domain)
	if err != nil {
		return nil, err
	}
	return set, nil
}

// retrieves the randao related signing data from the state.
func randaoSigningData(cfg *params.BeaconChainConfig, st *state.BeaconState) ([]byte, []byte, []byte, error) {
	proposerIdx, err := helpers.BeaconProposerIndex(cfg, st)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "could not get beacon proposer index")
	}
	proposer, ok := st.ValidatorAtIndex(proposerIdx)
	if !ok {
		return nil, nil, nil, errors.Wrapf(ErrUnknownValidator, "validator index %d does not exist", proposerIdx)
	}

	currentEpoch := helpers.CurrentEpoch(cfg, st)
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint64(buf, uint64(currentEpoch))

	domain, err := signing.Domain(st.Fork, currentEpoch, cfg.DomainRandao, st.GenesisValidatorsRoot)
	if err != nil {
		return nil, nil, nil, err
	}
	return buf, proposer.PublicKey, domain, nil
}

// Method to break down attestations of the same domain and collect them into a single signature set.
func createAttestationSignatureSet(
	ctx context.Context,
	cfg *params.BeaconChainConfig,
	st *state.BeaconState,
	atts []*ethpb.Attestation,
	domain []byte,
) (*bls.SignatureSet, error) {
	if len(atts) == 0 {
		return nil, nil
	}

	sigs := make([][]byte, len(atts))
	pks := make([]bls.PublicKey, len(atts))
	msgs := make([][32]byte, len(atts))
	for i, a := range atts {
		sigs[i] = a.Signature
		c, err := helpers.BeaconCommitteeFromState(cfg, st, a.Data.Slot, a.Data.CommitteeIndex)
		if err != nil {
			return nil, err
		}
		ia, err := helpers.ConvertToIndexed(ctx, a, c)
		if err != nil {
			return nil, err
		}
		if err := helpers.IsValidAttestationIndices(ctx, cfg, ia); err != nil {
			return nil, err
		}
		indices := ia.AttestingIndices
		pubkeys := make([][]byte, len(indices))
		for j := 0; j < len(indices); j++ {
			v, ok := st.ValidatorAtIndex(types.ValidatorIndex(indices[j]))
			if !ok {
				return nil, errors.Wrapf(ErrUnknownValidator, "validator index %d does not exist", indices[j])
			}
			pubkeys[j] = v.PublicKey
		}
		aggP, err := bls.AggregatePublicKeys(pubkeys)
		if err != nil {
			return nil, err
		}
		pks[i] = aggP

		root, err := signing.ComputeSigningRoot(ia.Data, domain)
		if err != nil {
			return nil, errors.Wrap(err, "could not get signing root of object")
		}
		msgs[i] = root
	}
	return &bls.SignatureSet{
		Signatures: sigs,
		PublicKeys: pks,
		Messages:   msgs,
	}, nil
}

// AttestationSignatureSet retrieves all the related attestation signature data such as the relevant public keys,
// signatures and attestation signing data and collate it into a signature set object.
func AttestationSignatureSet(ctx context.Context, cfg *params.BeaconChainConfig, st *state.BeaconState, atts []*ethpb.Attestation) (*bls.SignatureSet, error) {
	if len(atts) == 0 {
		return bls.NewSet(), nil
	}

	fork := st.Fork
	gvr := st.GenesisValidatorsRoot
	dt := cfg.DomainBeaconAttester

	// Split attestations by fork. Note: the signature domain will differ based on the fork.
	var preForkAtts []*ethpb.Attestation
	var postForkAtts []*ethpb.Attestation
	for _, a := range atts {
		if helpers.SlotToEpoch(cfg, a.Data.Slot) < fork.Epoch {
			preForkAtts = append(preForkAtts, a)
		} else {
			postForkAtts = append(postForkAtts, a)
		}
	}
	set := bls.NewSet()

	// Check attestations from before the fork.
	if fork.Epoch > 0 {
		prevDomain, err := signing.Domain(fork, fork.Epoch-1, dt, gvr)
		if err != nil {
			return nil, err
		}
		aSet, err := createAttestationSignatureSet(ctx, cfg, st, preForkAtts, prevDomain)
		if err != nil {
			return nil, err
		}
		if aSet != nil {
			set.Join(aSet)
		}
	} else if len(preForkAtts) > 0 {
		// This is a sanity check that preForkAtts were not ignored when fork.Epoch == 0. This
		// condition is not possible, but it doesn't hurt to check anyway.
		return nil, errors.New("some attestations were not verified from previous fork before genesis")
	}

	// Then check attestations from after the fork.
	currDomain, err := signing.Domain(fork, fork.Epoch, dt, gvr)
	if err != nil {
		return nil, err
	}

	aSet, err := createAttestationSignatureSet(ctx, cfg, st, postForkAtts, currDomain)
	if err != nil {
		return nil, err
	}
	if aSet != nil {
		return set.Join(aSet), nil
	}
	return set, nil
}
