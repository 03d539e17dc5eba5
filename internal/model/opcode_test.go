package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpcode_String(t *testing.T) {
	tests := []struct {
		name string
		op   Opcode
		want string
	}{
		{"single byte", OpI32GeS, "i32.ge_s"},
		{"prefixed", Prefixed(PrefixMisc, 0x0A), "memory.copy"},
		{"simd store", OpV128Store, "v128.store"},
		{"atomic store", Prefixed(PrefixAtomic, 0x1D), "i64.atomic.store32"},
		{"unknown single byte", Opcode(0xF0), "0xf0"},
		{"unknown prefixed", Prefixed(PrefixSIMD, 0x0C), "0xfd.0xc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.String())
		})
	}
}

func TestParseOpcode(t *testing.T) {
	for _, op := range []Opcode{OpI64LtU, OpF64Floor, OpSelect, Prefixed(PrefixMisc, 0x0B), Prefixed(PrefixSIMD, 0x0C), Opcode(0xF0)} {
		parsed, err := ParseOpcode(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, parsed)
	}

	_, err := ParseOpcode("i32.frobnicate")
	assert.Error(t, err)
}

func TestOpcode_Prefix(t *testing.T) {
	op := Prefixed(PrefixAtomic, 0x03)

	assert.True(t, op.IsPrefixed())
	assert.Equal(t, PrefixAtomic, op.Prefix())
	assert.Equal(t, uint32(0x03), op.Sub())
	assert.False(t, OpDrop.IsPrefixed())
	assert.Equal(t, byte(0x1A), OpDrop.Prefix())
}
