package mutagens

import (
	m "gooze.dev/pkg/wasmut/internal/model"
)

var arithmeticSwaps = [][2]m.Opcode{
	{m.OpI32Add, m.OpI32Sub},
	{m.OpI32Sub, m.OpI32Add},
	{m.OpI32Add, m.OpI32Mul},
	{m.OpI32Mul, m.OpI32Add},
	{m.OpI64Add, m.OpI64Sub},
	{m.OpI64Sub, m.OpI64Add},
	{m.OpI64Add, m.OpI64Mul},
	{m.OpI64Mul, m.OpI64Add},
}

var logicalSwaps = [][2]m.Opcode{
	{m.OpI32And, m.OpI32Or},
	{m.OpI32Or, m.OpI32And},
	{m.OpI64And, m.OpI64Or},
	{m.OpI64Or, m.OpI64And},
}

var roundingSwaps = [][2]m.Opcode{
	{m.OpF32Ceil, m.OpF32Floor},
	{m.OpF32Floor, m.OpF32Ceil},
	{m.OpF64Ceil, m.OpF64Floor},
	{m.OpF64Floor, m.OpF64Ceil},
}

// ArithmeticMutators returns the add/sub/mul swaps.
func ArithmeticMutators() []m.Mutator {
	return swaps(arithmeticSwaps)
}

// LogicalMutators returns the and/or swaps.
func LogicalMutators() []m.Mutator {
	return swaps(logicalSwaps)
}

// RoundingMutators returns the ceil/floor swaps.
func RoundingMutators() []m.Mutator {
	return swaps(roundingSwaps)
}
