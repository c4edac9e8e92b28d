package blocks

import (
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	"github.com/prysmaticlabs/phase0/encoding/bytesutil"
)

// NewGenesisBlock returns the canonical, genesis block for the beacon chain protocol.
//
// It is the first block in the canonical chain and all of its fields are
// deterministic aside from the state root of the genesis state.
func NewGenesisBlock(cfg *params.BeaconChainConfig, stateRoot []byte) *ethpb.SignedBeaconBlock {
	zeroHash := cfg.ZeroHash[:]
	genBlock := &ethpb.BeaconBlock{
		ParentRoot: zeroHash,
		StateRoot:  bytesutil.PadTo(stateRoot, 32),
		Body: &ethpb.BeaconBlockBody{
			RandaoReveal: make([]byte, 96),
			Eth1Data: &ethpb.Eth1Data{
				DepositRoot: make([]byte, 32),
				BlockHash:   make([]byte, 32),
			},
			Graffiti: make([]byte, 32),
		},
	}
	return &ethpb.SignedBeaconBlock{
		Block:     genBlock,
		Signature: cfg.EmptySignature[:],
	}
}
