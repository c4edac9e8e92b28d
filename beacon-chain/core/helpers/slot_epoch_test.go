package helpers

import (
	"math"
	"testing"

	"github.com/prysmaticlabs/phase0/beacon-chain/state"
	"github.com/prysmaticlabs/phase0/config/params"
	types "github.com/prysmaticlabs/phase0/consensus-types/primitives"
	"github.com/prysmaticlabs/phase0/testing/assert"
	"github.com/prysmaticlabs/phase0/testing/require"
)

func TestSlotToEpoch_OK(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		slot  types.Slot
		epoch types.Epoch
	}{
		{slot: 0, epoch: 0},
		{slot: 50, epoch: 1},
		{slot: 64, epoch: 2},
		{slot: 128, epoch: 4},
		{slot: 200, epoch: 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.epoch, SlotToEpoch(cfg, tt.slot), "SlotToEpoch(%d)", tt.slot)
	}
}

func TestCurrentEpoch_OK(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		slot  types.Slot
		epoch types.Epoch
	}{
		{slot: 0, epoch: 0},
		{slot: 50, epoch: 1},
		{slot: 64, epoch: 2},
	}
	for _, tt := range tests {
		st := &state.BeaconState{Slot: tt.slot}
		assert.Equal(t, tt.epoch, CurrentEpoch(cfg, st), "CurrentEpoch(%d)", tt.slot)
	}
}

func TestPrevEpoch_OK(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		slot  types.Slot
		epoch types.Epoch
	}{
		{slot: 0, epoch: 0},
		{slot: 0 + cfg.SlotsPerEpoch + 1, epoch: 0},
		{slot: 2 * cfg.SlotsPerEpoch, epoch: 1},
	}
	for _, tt := range tests {
		st := &state.BeaconState{Slot: tt.slot}
		assert.Equal(t, tt.epoch, PrevEpoch(cfg, st), "PrevEpoch(%d)", tt.slot)
	}
}

func TestNextEpoch_OK(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		slot  types.Slot
		epoch types.Epoch
	}{
		{slot: 0, epoch: 1},
		{slot: 50, epoch: 2},
		{slot: 64, epoch: 3},
	}
	for _, tt := range tests {
		st := &state.BeaconState{Slot: tt.slot}
		assert.Equal(t, tt.epoch, NextEpoch(cfg, st), "NextEpoch(%d)", tt.slot)
	}
}

func TestStartSlot_OK(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		epoch types.Epoch
		slot  types.Slot
	}{
		{epoch: 0, slot: 0},
		{epoch: 1, slot: 32},
		{epoch: 10, slot: 320},
	}
	for _, tt := range tests {
		ss, err := StartSlot(cfg, tt.epoch)
		require.NoError(t, err)
		assert.Equal(t, tt.slot, ss, "StartSlot(%d)", tt.epoch)
	}
}

func TestStartSlot_OverflowsSlot(t *testing.T) {
	cfg := params.MainnetConfig()
	_, err := StartSlot(cfg, types.Epoch(math.MaxUint64))
	require.ErrorContains(t, "start slot calculation overflows", err)
}

func TestEndSlot_OK(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		epoch types.Epoch
		slot  types.Slot
	}{
		{epoch: 0, slot: 31},
		{epoch: 1, slot: 63},
		{epoch: 10, slot: 351},
	}
	for _, tt := range tests {
		es, err := EndSlot(cfg, tt.epoch)
		require.NoError(t, err)
		assert.Equal(t, tt.slot, es, "EndSlot(%d)", tt.epoch)
	}
}

func TestEndSlot_OverflowsSlot(t *testing.T) {
	cfg := params.MainnetConfig()
	_, err := EndSlot(cfg, types.Epoch(math.MaxUint64))
	require.ErrorContains(t, "start slot calculation overflows", err)
}

func TestIsEpochStart(t *testing.T) {
	cfg := params.MainnetConfig()
	epochLength := cfg.SlotsPerEpoch

	tests := []struct {
		slot   types.Slot
		result bool
	}{
		{slot: epochLength + 1, result: false},
		{slot: epochLength - 1, result: false},
		{slot: epochLength, result: true},
		{slot: epochLength * 2, result: true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.result, IsEpochStart(cfg, tt.slot), "IsEpochStart(%d)", tt.slot)
	}
}

func TestIsEpochEnd(t *testing.T) {
	cfg := params.MainnetConfig()
	epochLength := cfg.SlotsPerEpoch

	tests := []struct {
		slot   types.Slot
		result bool
	}{
		{slot: epochLength + 1, result: false},
		{slot: epochLength, result: false},
		{slot: epochLength - 1, result: true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.result, IsEpochEnd(cfg, tt.slot), "IsEpochEnd(%d)", tt.slot)
	}
}

func TestSlotsSinceEpochStarts(t *testing.T) {
	cfg := params.MainnetConfig()
	tests := []struct {
		slot         types.Slot
		wantedResult types.Slot
	}{
		{slot: 0, wantedResult: 0},
		{slot: 1, wantedResult: 1},
		{slot: 10, wantedResult: 10},
		{slot: 32, wantedResult: 0},
		{slot: 63, wantedResult: 31},
		{slot: 64, wantedResult: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wantedResult, SlotsSinceEpochStarts(cfg, tt.slot))
	}
}
