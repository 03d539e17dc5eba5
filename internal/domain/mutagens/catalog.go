// Package mutagens holds the mutation catalog: the rewrite rules that turn one
// instruction of a function body into a small defect.
package mutagens

import (
	m "gooze.dev/pkg/wasmut/internal/model"
)

// DefaultCatalog returns the full mutation catalog in application order:
// relational, arithmetic, logical and rounding swaps, then set-cancelling,
// then condition-to-false. Each call returns a fresh slice.
func DefaultCatalog() []m.Mutator {
	catalog := RelationalMutators()
	catalog = append(catalog, ArithmeticMutators()...)
	catalog = append(catalog, LogicalMutators()...)
	catalog = append(catalog, RoundingMutators()...)
	catalog = append(catalog, SetCancelling(), ConditionToFalse())

	return catalog
}

// CatalogFor returns the catalog entries belonging to the given defect
// classes, preserving catalog order. No classes means the full catalog.
func CatalogFor(types ...m.MutationType) []m.Mutator {
	catalog := DefaultCatalog()
	if len(types) == 0 {
		return catalog
	}

	wanted := make(map[m.MutationType]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	filtered := catalog[:0]

	for _, mutator := range catalog {
		if wanted[mutator.Type()] {
			filtered = append(filtered, mutator)
		}
	}

	return filtered
}
