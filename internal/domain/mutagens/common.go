package mutagens

import (
	"errors"
	"fmt"

	m "gooze.dev/pkg/wasmut/internal/model"
)

var (
	// ErrInstructionIndexOutOfRange is returned when a mutation points past the body.
	ErrInstructionIndexOutOfRange = errors.New("instruction index out of range")
	// ErrInstructionMismatch is returned when the targeted instruction does not
	// trigger the mutator.
	ErrInstructionMismatch = errors.New("instruction does not match mutator")
	// ErrUnknownMutator is returned for a mutator kind outside the catalog.
	ErrUnknownMutator = errors.New("unknown mutator kind")
)

// Matches reports whether mutator applies to ins.
func Matches(mutator m.Mutator, ins m.Instruction) bool {
	switch mutator.Kind {
	case m.KindSwap:
		return ins.Opcode == mutator.From
	case m.KindSetCancelling:
		return isAssignment(ins.Opcode)
	case m.KindConditionToFalse:
		return ins.Opcode == m.OpBrIf
	default:
		return false
	}
}

// Find returns one mutation per instruction of body that mutator applies to,
// in instruction order. IDs are left zero for the generator to assign.
func Find(mutator m.Mutator, body *m.Body, functionIndex int) []m.Mutation {
	var mutations []m.Mutation

	for i, ins := range body.Instructions {
		if Matches(mutator, ins) {
			mutations = append(mutations, m.Mutation{
				Mutator:          mutator,
				FunctionIndex:    functionIndex,
				InstructionIndex: i,
			})
		}
	}

	return mutations
}

// Apply rewrites the instruction at index in place. Swaps keep the body length;
// cancelling a store grows it by one.
func Apply(mutator m.Mutator, body *m.Body, index int) error {
	if index < 0 || index >= len(body.Instructions) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInstructionIndexOutOfRange, index, len(body.Instructions))
	}

	ins := body.Instructions[index]
	if !Matches(mutator, ins) && isKnown(mutator.Kind) {
		return fmt.Errorf("%w: %s at %d for %s", ErrInstructionMismatch, ins, index, mutator.Describe())
	}

	switch mutator.Kind {
	case m.KindSwap:
		body.Instructions[index] = m.Plain(mutator.To)
	case m.KindSetCancelling:
		cancelAssignment(body, index)
	case m.KindConditionToFalse:
		body.Instructions[index] = m.Drop()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMutator, mutator.Kind)
	}

	return nil
}

func isKnown(kind m.MutatorKind) bool {
	return kind == m.KindSwap || kind == m.KindSetCancelling || kind == m.KindConditionToFalse
}
