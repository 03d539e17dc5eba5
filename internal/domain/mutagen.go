// Package domain contains the core mutation testing workflow and logic.
package domain

import (
	"log/slog"

	"gooze.dev/pkg/wasmut/internal/domain/mutagens"
	m "gooze.dev/pkg/wasmut/internal/model"
)

// Mutagen defines the interface for mutation generation.
type Mutagen interface {
	GenerateMutations(module *m.Module, candidates []m.Candidate) []m.Mutation
	Catalog() []m.Mutator
}

// mutagen handles pure mutation generation logic over an immutable catalog.
type mutagen struct {
	catalog []m.Mutator
}

// NewMutagen creates a Mutagen for the given catalog, or for the default
// catalog when none is given.
func NewMutagen(catalog ...m.Mutator) Mutagen {
	if len(catalog) == 0 {
		catalog = mutagens.DefaultCatalog()
	}

	return &mutagen{catalog: append([]m.Mutator(nil), catalog...)}
}

func (mg *mutagen) Catalog() []m.Mutator {
	return append([]m.Mutator(nil), mg.catalog...)
}

// GenerateMutations enumerates mutations grouped by candidate, then by catalog
// entry, then by instruction index. IDs are positions in that order, so the
// result is identical across calls on the same input.
func (mg *mutagen) GenerateMutations(module *m.Module, candidates []m.Candidate) []m.Mutation {
	var mutations []m.Mutation

	for _, candidate := range candidates {
		fn, ok := module.Function(candidate.Index)
		if !ok {
			slog.Debug("Skipping candidate outside the code section", "index", candidate.Index)
			continue
		}

		for _, mutator := range mg.catalog {
			for _, mutation := range mutagens.Find(mutator, &fn.Body, candidate.Index) {
				mutation.ID = uint(len(mutations))
				mutation.FunctionName = candidate.Name
				mutations = append(mutations, mutation)
			}
		}
	}

	return mutations
}
