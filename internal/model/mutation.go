// Package model defines the data structures for mutation testing.
package model

import "fmt"

// MutationType is the defect class a mutator belongs to.
type MutationType string

const (
	// MutationRelational swaps a comparison with its boundary counterpart (>= <-> >, == <-> !=).
	MutationRelational MutationType = "relational"
	// MutationArithmetic swaps arithmetic operators (+ <-> -, + <-> *).
	MutationArithmetic MutationType = "arithmetic"
	// MutationLogical swaps bitwise operators (and <-> or).
	MutationLogical MutationType = "logical"
	// MutationRounding swaps ceil and floor.
	MutationRounding MutationType = "rounding"
	// MutationAssignment cancels a variable assignment or memory store.
	MutationAssignment MutationType = "assignment"
	// MutationBranch suppresses a conditional branch.
	MutationBranch MutationType = "branch"
)

// MutatorKind tags the rewrite rule a Mutator applies.
type MutatorKind string

const (
	// KindSwap replaces one instruction with another of the same stack shape.
	KindSwap MutatorKind = "swap"
	// KindSetCancelling replaces an assignment or store with drops of its operands.
	KindSetCancelling MutatorKind = "set-cancelling"
	// KindConditionToFalse replaces br_if with a drop of its condition.
	KindConditionToFalse MutatorKind = "condition-to-false"
)

// Mutator is one entry of the mutation catalog. From and To are only
// meaningful for KindSwap. Mutators are comparable values.
type Mutator struct {
	Kind MutatorKind `yaml:"kind"`
	From Opcode      `yaml:"from,omitempty"`
	To   Opcode      `yaml:"to,omitempty"`
}

// Describe returns a short human-readable name of the mutator.
func (mt Mutator) Describe() string {
	switch mt.Kind {
	case KindSwap:
		return fmt.Sprintf("%s -> %s", mt.From, mt.To)
	case KindSetCancelling:
		return "SetCancelling"
	case KindConditionToFalse:
		return "IfConditionToFalse"
	default:
		return string(mt.Kind)
	}
}

// Type returns the defect class of the mutator.
func (mt Mutator) Type() MutationType {
	switch mt.Kind {
	case KindSetCancelling:
		return MutationAssignment
	case KindConditionToFalse:
		return MutationBranch
	case KindSwap:
		return swapType(mt.From)
	default:
		return ""
	}
}

func swapType(from Opcode) MutationType {
	switch {
	case from >= OpI32Eqz && from <= OpF64Ge:
		return MutationRelational
	case from == OpI32And || from == OpI32Or || from == OpI64And || from == OpI64Or:
		return MutationLogical
	case from == OpF32Ceil || from == OpF32Floor || from == OpF64Ceil || from == OpF64Floor:
		return MutationRounding
	default:
		return MutationArithmetic
	}
}

// Mutation is a proposed, not yet applied defect. It refers to its target by
// index only; applying it requires a fresh copy of the module.
type Mutation struct {
	ID               uint    `yaml:"id"`
	Mutator          Mutator `yaml:"mutator"`
	FunctionIndex    int     `yaml:"function_index"`
	InstructionIndex int     `yaml:"instruction_index"`
	FunctionName     string  `yaml:"function_name,omitempty"`
}

// String implements fmt.Stringer.
func (mu Mutation) String() string {
	return fmt.Sprintf("Mutation<%s, %d, %d>", mu.Mutator.Describe(), mu.FunctionIndex, mu.InstructionIndex)
}

// Verdict is the execution oracle's classification of a harness run.
type Verdict int

const (
	// Passed means the harness completed without a fault.
	Passed Verdict = iota
	// Failed means the harness trapped or exited unsuccessfully.
	Failed
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	if v == Passed {
		return "passed"
	}

	return "failed"
}
