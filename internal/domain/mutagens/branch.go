package mutagens

import (
	m "gooze.dev/pkg/wasmut/internal/model"
)

// ConditionToFalse builds the mutator that makes conditional branches never taken.
func ConditionToFalse() m.Mutator {
	return m.Mutator{Kind: m.KindConditionToFalse}
}
