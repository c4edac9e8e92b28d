package blocks_test

import (
	"bytes"
	"testing"

	"github.com/prysmaticlabs/phase0/beacon-chain/core/blocks"
	"github.com/prysmaticlabs/phase0/config/params"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
	"github.com/prysmaticlabs/phase0/testing/util"
)

func TestNewGenesisBlock_Fields(t *testing.T) {
	cfg := params.MainnetConfig()
	stateRoot := util.Random32Bytes(t)

	genesisBlock := blocks.NewGenesisBlock(cfg, stateRoot)
	require.NotNil(t, genesisBlock.Block)
	assert.DeepEqual(t, cfg.ZeroHash[:], genesisBlock.Block.ParentRoot, "Genesis block should have a zero parent root")
	assert.DeepEqual(t, stateRoot, genesisBlock.Block.StateRoot)
	assert.Equal(t, true, bytes.Equal(genesisBlock.Signature, cfg.EmptySignature[:]), "Genesis block should carry the empty signature")

	// The genesis block must be a well formed SSZ container.
	_, err := genesisBlock.Block.HashTreeRoot()
	require.NoError(t, err)
}

func TestNewGenesisBlock_Deterministic(t *testing.T) {
	cfg := params.MainnetConfig()
	stateRoot := util.Random32Bytes(t)

	r1, err := blocks.NewGenesisBlock(cfg, stateRoot).Block.HashTreeRoot()
	require.NoError(t, err)
	r2, err := blocks.NewGenesisBlock(cfg, stateRoot).Block.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, r1, r2, "Same state root should produce the same genesis block root")
}
