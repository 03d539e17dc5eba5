package adapter

import (
	"fmt"

	m "gooze.dev/pkg/wasmut/internal/model"
	"gooze.dev/pkg/wasmut/pkg"
)

const (
	refNullable    byte = 0x63
	refNonNullable byte = 0x64
)

// decodeInstructions splits an expression into instructions. The immediate of
// every instruction is copied out of code so the result owns its memory.
func decodeInstructions(code []byte) ([]m.Instruction, error) {
	r := newByteReader(code)
	instructions := make([]m.Instruction, 0, len(code)/2)

	for !r.done() {
		start := r.pos

		op, err := readOpcode(r)
		if err != nil {
			return nil, err
		}

		immStart := r.pos
		if err := skipImmediate(r, op); err != nil {
			return nil, fmt.Errorf("%s at offset %d: %w", op, start, err)
		}

		var immediate []byte
		if r.pos > immStart {
			immediate = append([]byte(nil), code[immStart:r.pos]...)
		}

		instructions = append(instructions, m.Instruction{Opcode: op, Immediate: immediate})
	}

	return instructions, nil
}

// appendInstructions encodes instructions after dst. Prefixed sub-opcodes use
// the minimal LEB128 form; immediates are written back unchanged.
func appendInstructions(dst []byte, instructions []m.Instruction) []byte {
	for _, ins := range instructions {
		if ins.Opcode.IsPrefixed() {
			dst = append(dst, ins.Opcode.Prefix())
			dst = pkg.AppendULEB128(dst, uint64(ins.Opcode.Sub()))
		} else {
			dst = append(dst, byte(ins.Opcode))
		}

		dst = append(dst, ins.Immediate...)
	}

	return dst
}

func readOpcode(r *byteReader) (m.Opcode, error) {
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}

	switch b {
	case m.PrefixGC:
		return 0, fmt.Errorf("%w: gc instruction at offset %d", ErrUnsupportedInstruction, r.pos-1)
	case m.PrefixMisc, m.PrefixSIMD, m.PrefixAtomic:
		sub, err := r.u32()
		if err != nil {
			return 0, err
		}

		if sub > 0xFFFFFF {
			return 0, fmt.Errorf("%w: sub-opcode 0x%x", ErrUnsupportedInstruction, sub)
		}

		return m.Prefixed(b, sub), nil
	default:
		return m.Opcode(b), nil
	}
}

//nolint:gocyclo,cyclop // one case per immediate shape of the instruction set.
func skipImmediate(r *byteReader, op m.Opcode) error {
	if op.IsPrefixed() {
		switch op.Prefix() {
		case m.PrefixMisc:
			return skipMiscImmediate(r, op.Sub())
		case m.PrefixSIMD:
			return skipSIMDImmediate(r, op.Sub())
		default:
			return skipAtomicImmediate(r, op.Sub())
		}
	}

	switch op {
	case m.OpBlock, m.OpLoop, m.OpIf, m.OpTry:
		return skipBlockType(r)
	case m.OpBr, m.OpBrIf, m.OpRethrow, m.OpDelegate, m.OpBrOnNull, m.OpBrOnNonNull,
		m.OpCatch, m.OpThrow, m.OpCall, m.OpReturnCall, m.OpCallRef, m.OpReturnCallRf,
		m.OpLocalGet, m.OpLocalSet, m.OpLocalTee, m.OpGlobalGet, m.OpGlobalSet,
		m.OpTableGet, m.OpTableSet, m.OpMemorySize, m.OpMemoryGrow, m.OpRefFunc:
		return skipIndices(r, 1)
	case m.OpCallIndirect, m.OpReturnCallIn:
		return skipIndices(r, 2)
	case m.OpBrTable:
		n, err := r.u32()
		if err != nil {
			return err
		}

		return skipIndices(r, int(n)+1)
	case m.OpSelectTyped:
		n, err := r.u32()
		if err != nil {
			return err
		}

		for range n {
			if err := r.valType(); err != nil {
				return err
			}
		}

		return nil
	case m.OpTryTable:
		return skipTryTable(r)
	case m.OpI32Const:
		_, err := r.sleb(32)
		return err
	case m.OpI64Const:
		_, err := r.sleb(64)
		return err
	case m.OpF32Const:
		_, err := r.readBytes(4)
		return err
	case m.OpF64Const:
		_, err := r.readBytes(8)
		return err
	case m.OpRefNull:
		_, err := r.sleb(33)
		return err
	}

	if op >= m.OpI32Load && op <= m.OpI64Store32 {
		return skipMemArg(r)
	}

	if !op.Known() {
		return fmt.Errorf("%w: opcode 0x%02x", ErrUnsupportedInstruction, byte(op))
	}

	return nil
}

func skipIndices(r *byteReader, n int) error {
	for range n {
		if _, err := r.u32(); err != nil {
			return err
		}
	}

	return nil
}

// skipBlockType handles the empty type, single value types (including typed
// references) and type indices, which share the s33 encoding.
func skipBlockType(r *byteReader) error {
	if !r.done() && (r.data[r.pos] == refNullable || r.data[r.pos] == refNonNullable) {
		return r.valType()
	}

	_, err := r.sleb(33)

	return err
}

func skipTryTable(r *byteReader) error {
	if err := skipBlockType(r); err != nil {
		return err
	}

	n, err := r.u32()
	if err != nil {
		return err
	}

	for range n {
		kind, err := r.readByte()
		if err != nil {
			return err
		}

		switch kind {
		case 0x00, 0x01:
			err = skipIndices(r, 2)
		case 0x02, 0x03:
			err = skipIndices(r, 1)
		default:
			err = fmt.Errorf("%w: catch clause kind 0x%02x", ErrUnsupportedInstruction, kind)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// skipMemArg reads alignment (with the multi-memory flag) and offset.
func skipMemArg(r *byteReader) error {
	align, err := r.u32()
	if err != nil {
		return err
	}

	if align&0x40 != 0 {
		if _, err := r.u32(); err != nil {
			return err
		}
	}

	_, err = r.uleb(64)

	return err
}

func skipMiscImmediate(r *byteReader, sub uint32) error {
	switch {
	case sub <= 0x07:
		return nil
	case sub == 0x08, sub == 0x0A, sub == 0x0C, sub == 0x0E:
		return skipIndices(r, 2)
	case sub <= 0x12:
		return skipIndices(r, 1)
	default:
		return fmt.Errorf("%w: 0xfc 0x%x", ErrUnsupportedInstruction, sub)
	}
}

func skipSIMDImmediate(r *byteReader, sub uint32) error {
	switch {
	case sub <= 0x0B, sub == 0x5C, sub == 0x5D:
		return skipMemArg(r)
	case sub == 0x0C, sub == 0x0D:
		_, err := r.readBytes(16)
		return err
	case sub >= 0x15 && sub <= 0x22:
		_, err := r.readByte()
		return err
	case sub >= 0x54 && sub <= 0x5B:
		if err := skipMemArg(r); err != nil {
			return err
		}

		_, err := r.readByte()

		return err
	case sub <= 0x113:
		return nil
	default:
		return fmt.Errorf("%w: 0xfd 0x%x", ErrUnsupportedInstruction, sub)
	}
}

func skipAtomicImmediate(r *byteReader, sub uint32) error {
	switch {
	case sub == 0x03:
		_, err := r.readByte()
		return err
	case sub <= 0x02, sub >= 0x10 && sub <= 0x4E:
		return skipMemArg(r)
	default:
		return fmt.Errorf("%w: 0xfe 0x%x", ErrUnsupportedInstruction, sub)
	}
}
