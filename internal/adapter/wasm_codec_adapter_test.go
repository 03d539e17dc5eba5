package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	m "gooze.dev/pkg/wasmut/internal/model"
	"gooze.dev/pkg/wasmut/internal/wasmtest"
)

func TestWasmCodecAdapter_Decode(t *testing.T) {
	codec := NewWasmCodecAdapter()

	t.Run("functions and names", func(t *testing.T) {
		module, err := codec.Decode(wasmtest.Harness())
		require.NoError(t, err)

		require.Len(t, module.Functions, 3)
		assert.Equal(t, map[int]string{0: "lib::is_big", 1: "lib::add", 2: "main"}, module.Names)
		assert.Equal(t, uint32(0), module.ImportedFunctions)
		assert.GreaterOrEqual(t, module.CodeSection, 0)

		isBig := module.Functions[0].Body.Instructions
		require.Len(t, isBig, 4)
		assert.True(t, isBig[0].Equal(m.LocalGet(0)))
		assert.True(t, isBig[1].Equal(m.I32Const(10)))
		assert.Equal(t, m.OpI32GeS, isBig[2].Opcode)
		assert.Equal(t, m.OpEnd, isBig[3].Opcode)
	})

	t.Run("name indices are rebased past imports", func(t *testing.T) {
		module, err := codec.Decode(wasmtest.Exiting(0))
		require.NoError(t, err)

		assert.Equal(t, uint32(1), module.ImportedFunctions)
		assert.Equal(t, map[int]string{0: "main"}, module.Names)
		require.Len(t, module.Functions, 1)
	})

	t.Run("module without name section", func(t *testing.T) {
		b := wasmtest.New().WithoutNames()
		b.Func(wasmtest.Func{Body: []m.Instruction{m.Plain(m.OpNop)}})

		module, err := codec.Decode(b.Bytes())
		require.NoError(t, err)
		assert.Nil(t, module.Names)
		assert.False(t, module.HasNames())
	})

	t.Run("foreign custom sections are not names", func(t *testing.T) {
		b := wasmtest.New().WithoutNames().Custom("producers", []byte{0x00})
		b.Func(wasmtest.Func{Body: []m.Instruction{m.Plain(m.OpNop)}})

		module, err := codec.Decode(b.Bytes())
		require.NoError(t, err)
		assert.Nil(t, module.Names)
	})

	t.Run("bad magic", func(t *testing.T) {
		_, err := codec.Decode([]byte("\x7fELF\x01\x00\x00\x00"))
		assert.ErrorIs(t, err, ErrInvalidModule)
	})

	t.Run("truncated section", func(t *testing.T) {
		data := wasmtest.Harness()
		_, err := codec.Decode(data[:len(data)-3])
		assert.ErrorIs(t, err, ErrInvalidModule)
	})

	t.Run("gc instructions are rejected", func(t *testing.T) {
		b := wasmtest.New()
		b.Func(wasmtest.Func{Body: []m.Instruction{{Opcode: m.Opcode(0xFB), Immediate: []byte{0x00}}}})

		_, err := codec.Decode(b.Bytes())
		assert.ErrorIs(t, err, ErrUnsupportedInstruction)
	})
}

func TestWasmCodecAdapter_RoundTrip(t *testing.T) {
	codec := NewWasmCodecAdapter()

	for name, data := range map[string][]byte{
		"harness":   wasmtest.Harness(),
		"inert":     wasmtest.Inert(),
		"countdown": wasmtest.Countdown(),
		"exiting":   wasmtest.Exiting(3),
	} {
		t.Run(name, func(t *testing.T) {
			module, err := codec.Decode(data)
			require.NoError(t, err)

			encoded, err := codec.Encode(module)
			require.NoError(t, err)
			assert.Equal(t, data, encoded)
		})
	}
}

func TestWasmCodecAdapter_EncodeMutatedBody(t *testing.T) {
	codec := NewWasmCodecAdapter()

	module, err := codec.Decode(wasmtest.Harness())
	require.NoError(t, err)

	body := &module.Functions[0].Body
	body.Instructions[2] = m.Plain(m.OpI32GtS)
	body.Instructions = append(body.Instructions[:1], append([]m.Instruction{m.Drop(), m.I32Const(10)}, body.Instructions[1:]...)...)

	encoded, err := codec.Encode(module)
	require.NoError(t, err)

	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, module.Functions, decoded.Functions)
	assert.Equal(t, module.Names, decoded.Names)
}

func TestWasmCodecAdapter_EncodeErrors(t *testing.T) {
	codec := NewWasmCodecAdapter()

	_, err := codec.Encode(nil)
	require.ErrorIs(t, err, ErrInvalidModule)

	_, err = codec.Encode(&m.Module{CodeSection: 3})
	require.ErrorIs(t, err, ErrInvalidModule)

	_, err = codec.Encode(&m.Module{CodeSection: -1, Functions: []m.Function{{}}})
	require.ErrorIs(t, err, ErrInvalidModule)
}

func TestDecodeInstructions(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want []m.Instruction
	}{
		{
			name: "br_table",
			code: []byte{0x0E, 0x02, 0x00, 0x01, 0x02},
			want: []m.Instruction{{Opcode: m.OpBrTable, Immediate: []byte{0x02, 0x00, 0x01, 0x02}}},
		},
		{
			name: "memarg with memory index",
			code: []byte{0x28, 0x42, 0x01, 0x80, 0x01},
			want: []m.Instruction{{Opcode: m.OpI32Load, Immediate: []byte{0x42, 0x01, 0x80, 0x01}}},
		},
		{
			name: "typed block and i64 const",
			code: []byte{0x02, 0x7F, 0x42, 0x7F, 0x0B},
			want: []m.Instruction{
				{Opcode: m.OpBlock, Immediate: []byte{0x7F}},
				{Opcode: m.OpI64Const, Immediate: []byte{0x7F}},
				{Opcode: m.OpEnd},
			},
		},
		{
			name: "typed select",
			code: []byte{0x1C, 0x01, 0x7E},
			want: []m.Instruction{{Opcode: m.OpSelectTyped, Immediate: []byte{0x01, 0x7E}}},
		},
		{
			name: "try_table",
			code: []byte{0x1F, 0x40, 0x02, 0x00, 0x00, 0x01, 0x02, 0x00},
			want: []m.Instruction{{Opcode: m.OpTryTable, Immediate: []byte{0x40, 0x02, 0x00, 0x00, 0x01, 0x02, 0x00}}},
		},
		{
			name: "memory.copy",
			code: []byte{0xFC, 0x0A, 0x00, 0x00},
			want: []m.Instruction{{Opcode: m.Prefixed(m.PrefixMisc, 0x0A), Immediate: []byte{0x00, 0x00}}},
		},
		{
			name: "v128.const",
			code: append([]byte{0xFD, 0x0C}, make([]byte, 16)...),
			want: []m.Instruction{{Opcode: m.Prefixed(m.PrefixSIMD, 0x0C), Immediate: make([]byte, 16)}},
		},
		{
			name: "simd lane access",
			code: []byte{0xFD, 0x54, 0x00, 0x00, 0x03, 0xFD, 0x15, 0x01},
			want: []m.Instruction{
				{Opcode: m.Prefixed(m.PrefixSIMD, 0x54), Immediate: []byte{0x00, 0x00, 0x03}},
				{Opcode: m.Prefixed(m.PrefixSIMD, 0x15), Immediate: []byte{0x01}},
			},
		},
		{
			name: "atomic fence and rmw",
			code: []byte{0xFE, 0x03, 0x00, 0xFE, 0x1E, 0x02, 0x00},
			want: []m.Instruction{
				{Opcode: m.Prefixed(m.PrefixAtomic, 0x03), Immediate: []byte{0x00}},
				{Opcode: m.Prefixed(m.PrefixAtomic, 0x1E), Immediate: []byte{0x02, 0x00}},
			},
		},
		{
			name: "f64 const",
			code: []byte{0x44, 1, 2, 3, 4, 5, 6, 7, 8},
			want: []m.Instruction{{Opcode: m.OpF64Const, Immediate: []byte{1, 2, 3, 4, 5, 6, 7, 8}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeInstructions(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.code, appendInstructions(nil, got))
		})
	}
}

func TestDecodeInstructions_Errors(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want error
	}{
		{"truncated immediate", []byte{0x41}, ErrInvalidModule},
		{"truncated f32", []byte{0x43, 0x00, 0x00}, ErrInvalidModule},
		{"unknown opcode", []byte{0xF0}, ErrUnsupportedInstruction},
		{"unknown misc sub-opcode", []byte{0xFC, 0x20}, ErrUnsupportedInstruction},
		{"unknown catch kind", []byte{0x1F, 0x40, 0x01, 0x07}, ErrUnsupportedInstruction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeInstructions(tt.code)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeInstructions_NonMinimalSubOpcode(t *testing.T) {
	got, err := decodeInstructions([]byte{0xFC, 0x8B, 0x00, 0x00})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, m.Prefixed(m.PrefixMisc, 0x0B), got[0].Opcode)
	assert.Equal(t, []byte{0xFC, 0x0B, 0x00}, appendInstructions(nil, got))
}

var rapidInstructions = []func(t *rapid.T) m.Instruction{
	func(t *rapid.T) m.Instruction { return m.LocalGet(rapid.Uint32Range(0, 3).Draw(t, "local")) },
	func(t *rapid.T) m.Instruction { return m.I32Const(rapid.Int32().Draw(t, "const")) },
	func(t *rapid.T) m.Instruction {
		return m.Store(m.OpI64Store, rapid.Uint32Range(0, 3).Draw(t, "align"), rapid.Uint32().Draw(t, "offset"))
	},
	func(t *rapid.T) m.Instruction {
		ops := []m.Opcode{m.OpI32Add, m.OpI32GeS, m.OpF64Floor, m.OpDrop, m.OpNop, m.OpSelect}
		return m.Plain(rapid.SampledFrom(ops).Draw(t, "op"))
	},
	func(t *rapid.T) m.Instruction { return m.BrIf(rapid.Uint32Range(0, 200).Draw(t, "label")) },
}

func TestWasmCodecAdapter_RoundTripProperty(t *testing.T) {
	codec := NewWasmCodecAdapter()

	rapid.Check(t, func(t *rapid.T) {
		b := wasmtest.New()
		funcs := rapid.IntRange(1, 4).Draw(t, "funcs")

		for i := range funcs {
			n := rapid.IntRange(0, 20).Draw(t, "len")
			body := make([]m.Instruction, 0, n)

			for range n {
				body = append(body, rapid.SampledFrom(rapidInstructions).Draw(t, "gen")(t))
			}

			b.Func(wasmtest.Func{Name: "f" + string(rune('a'+i)), Locals: []wasmtest.ValType{wasmtest.I64}, Body: body})
		}

		data := b.Bytes()

		module, err := codec.Decode(data)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}

		if len(module.Functions) != funcs {
			t.Fatalf("decoded %d functions, want %d", len(module.Functions), funcs)
		}

		encoded, err := codec.Encode(module)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}

		assert.Equal(t, data, encoded)
	})
}
