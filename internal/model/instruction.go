package model

import (
	"bytes"
	"fmt"
	"strings"

	"gooze.dev/pkg/wasmut/pkg"
)

// Instruction is one decoded instruction of a function body. Immediate holds
// the operand bytes exactly as they follow the opcode in the binary encoding,
// so two instructions are equal iff both opcode and operand encoding match.
type Instruction struct {
	Opcode    Opcode
	Immediate []byte
}

// Equal reports structural equality.
func (i Instruction) Equal(other Instruction) bool {
	return i.Opcode == other.Opcode && bytes.Equal(i.Immediate, other.Immediate)
}

// Clone returns a deep copy of the instruction.
func (i Instruction) Clone() Instruction {
	if i.Immediate == nil {
		return Instruction{Opcode: i.Opcode}
	}

	return Instruction{Opcode: i.Opcode, Immediate: append([]byte(nil), i.Immediate...)}
}

// String renders the instruction in a text-format-like listing. Immediates
// that are plain LEB128 indices are decoded; anything else is shown as hex.
func (i Instruction) String() string {
	if len(i.Immediate) == 0 {
		return i.Opcode.String()
	}

	switch i.Opcode {
	case OpBlock, OpLoop, OpIf, OpTry:
		if len(i.Immediate) == 1 && i.Immediate[0] == 0x40 {
			return i.Opcode.String()
		}
	case OpI32Const, OpI64Const:
		if v, n, err := pkg.ReadSLEB128(i.Immediate, 64); err == nil && n == len(i.Immediate) {
			return fmt.Sprintf("%s %d", i.Opcode, v)
		}
	}

	if operands, ok := decodeIndexOperands(i.Immediate); ok {
		parts := make([]string, 0, len(operands)+1)
		parts = append(parts, i.Opcode.String())

		for _, operand := range operands {
			parts = append(parts, fmt.Sprintf("%d", operand))
		}

		return strings.Join(parts, " ")
	}

	return fmt.Sprintf("%s 0x%x", i.Opcode, i.Immediate)
}

func decodeIndexOperands(immediate []byte) ([]uint64, bool) {
	var operands []uint64

	for len(immediate) > 0 {
		v, n, err := pkg.ReadULEB128(immediate, 64)
		if err != nil {
			return nil, false
		}

		operands = append(operands, v)
		immediate = immediate[n:]
	}

	return operands, true
}

// Plain builds an instruction without immediates.
func Plain(op Opcode) Instruction {
	return Instruction{Opcode: op}
}

// Drop builds the value-discarding instruction.
func Drop() Instruction {
	return Plain(OpDrop)
}

// LocalGet builds local.get idx.
func LocalGet(idx uint32) Instruction {
	return indexed(OpLocalGet, idx)
}

// LocalSet builds local.set idx.
func LocalSet(idx uint32) Instruction {
	return indexed(OpLocalSet, idx)
}

// GlobalSet builds global.set idx.
func GlobalSet(idx uint32) Instruction {
	return indexed(OpGlobalSet, idx)
}

// BrIf builds br_if label.
func BrIf(label uint32) Instruction {
	return indexed(OpBrIf, label)
}

// Call builds call funcIdx.
func Call(funcIdx uint32) Instruction {
	return indexed(OpCall, funcIdx)
}

// I32Const builds i32.const v.
func I32Const(v int32) Instruction {
	return Instruction{Opcode: OpI32Const, Immediate: pkg.AppendSLEB128(nil, int64(v))}
}

// Store builds a memory access instruction with the given alignment exponent and offset.
func Store(op Opcode, align, offset uint32) Instruction {
	imm := pkg.AppendULEB128(nil, uint64(align))
	imm = pkg.AppendULEB128(imm, uint64(offset))

	return Instruction{Opcode: op, Immediate: imm}
}

// Block builds a block-like instruction (block, loop, if) with an empty block type.
func Block(op Opcode) Instruction {
	return Instruction{Opcode: op, Immediate: []byte{0x40}}
}

func indexed(op Opcode, idx uint32) Instruction {
	return Instruction{Opcode: op, Immediate: pkg.AppendULEB128(nil, uint64(idx))}
}
