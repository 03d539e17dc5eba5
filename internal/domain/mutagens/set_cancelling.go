package mutagens

import (
	m "gooze.dev/pkg/wasmut/internal/model"
)

// SetCancelling builds the mutator that discards assignments and stores.
func SetCancelling() m.Mutator {
	return m.Mutator{Kind: m.KindSetCancelling}
}

var prefixedStores = map[m.Opcode]struct{}{
	m.OpV128Store:        {},
	m.OpV128Store8Lane:   {},
	m.OpV128Store16Lane:  {},
	m.OpV128Store32Lane:  {},
	m.OpV128Store64Lane:  {},
	m.OpI32AtomicStore:   {},
	m.OpI64AtomicStore:   {},
	m.OpI32AtomicStore8:  {},
	m.OpI32AtomicStore16: {},
	m.OpI64AtomicStore8:  {},
	m.OpI64AtomicStore16: {},
	m.OpI64AtomicStore32: {},
}

// isStore matches every memory store of any width or type: the scalar
// stores, the SIMD stores and the atomic stores.
func isStore(op m.Opcode) bool {
	if op >= m.OpI32Store && op <= m.OpI64Store32 {
		return true
	}

	_, ok := prefixedStores[op]

	return ok
}

func isAssignment(op m.Opcode) bool {
	return op == m.OpLocalSet || op == m.OpGlobalSet || isStore(op)
}

// cancelAssignment replaces the instruction at index with drops of its operands:
// one for a variable assignment, two (address and value) for a store.
func cancelAssignment(body *m.Body, index int) {
	if isStore(body.Instructions[index].Opcode) {
		body.Instructions[index] = m.Drop()
		body.Instructions = append(body.Instructions[:index+1], append([]m.Instruction{m.Drop()}, body.Instructions[index+1:]...)...)

		return
	}

	body.Instructions[index] = m.Drop()
}
