package mutagens

import (
	m "gooze.dev/pkg/wasmut/internal/model"
)

// relationalSwaps lists the boundary swaps in catalog order. The first twelve
// entries cover the i32 and f32/f64 ordering comparisons; the rest complete
// the table for i64 and for equality.
var relationalSwaps = [][2]m.Opcode{
	{m.OpI32GeU, m.OpI32GtU},
	{m.OpI32LeU, m.OpI32LtU},
	{m.OpI32GtU, m.OpI32GeU},
	{m.OpI32LtU, m.OpI32LeU},
	{m.OpI32GeS, m.OpI32GtS},
	{m.OpI32LeS, m.OpI32LtS},
	{m.OpI32GtS, m.OpI32GeS},
	{m.OpI32LtS, m.OpI32LeS},
	{m.OpF32Ge, m.OpF32Gt},
	{m.OpF32Gt, m.OpF32Ge},
	{m.OpF64Ge, m.OpF64Gt},
	{m.OpF64Gt, m.OpF64Ge},

	{m.OpI64GeU, m.OpI64GtU},
	{m.OpI64LeU, m.OpI64LtU},
	{m.OpI64GtU, m.OpI64GeU},
	{m.OpI64LtU, m.OpI64LeU},
	{m.OpI64GeS, m.OpI64GtS},
	{m.OpI64LeS, m.OpI64LtS},
	{m.OpI64GtS, m.OpI64GeS},
	{m.OpI64LtS, m.OpI64LeS},
	{m.OpF32Le, m.OpF32Lt},
	{m.OpF32Lt, m.OpF32Le},
	{m.OpF64Le, m.OpF64Lt},
	{m.OpF64Lt, m.OpF64Le},

	{m.OpI32Eq, m.OpI32Ne},
	{m.OpI32Ne, m.OpI32Eq},
	{m.OpI64Eq, m.OpI64Ne},
	{m.OpI64Ne, m.OpI64Eq},
	{m.OpF32Eq, m.OpF32Ne},
	{m.OpF32Ne, m.OpF32Eq},
	{m.OpF64Eq, m.OpF64Ne},
	{m.OpF64Ne, m.OpF64Eq},
}

// RelationalMutators returns the comparison swaps.
func RelationalMutators() []m.Mutator {
	return swaps(relationalSwaps)
}

func swaps(pairs [][2]m.Opcode) []m.Mutator {
	mutators := make([]m.Mutator, 0, len(pairs))
	for _, pair := range pairs {
		mutators = append(mutators, Swap(pair[0], pair[1]))
	}

	return mutators
}

// Swap builds a mutator that replaces from with to.
func Swap(from, to m.Opcode) m.Mutator {
	return m.Mutator{Kind: m.KindSwap, From: from, To: to}
}
