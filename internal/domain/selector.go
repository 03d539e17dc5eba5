package domain

import (
	"fmt"
	"log/slog"
	"strings"

	"gooze.dev/pkg/wasmut/internal/adapter"
	m "gooze.dev/pkg/wasmut/internal/model"
)

// Selector chooses the functions eligible for mutation.
type Selector interface {
	SelectCandidates(module *m.Module, include, exclude []string) ([]m.Candidate, error)
}

type selector struct {
	adapter.Demangler
}

// NewSelector creates a Selector that matches demangled function names.
func NewSelector(demangler adapter.Demangler) Selector {
	return &selector{Demangler: demangler}
}

// SelectCandidates returns, in ascending index order and without duplicates,
// every defined function whose demangled name starts with an include prefix
// and with no exclude prefix. Functions without a name never qualify.
func (s *selector) SelectCandidates(module *m.Module, include, exclude []string) ([]m.Candidate, error) {
	if !module.HasNames() {
		return nil, fmt.Errorf("%w: %w", ErrBaselineInvalid, ErrMissingNameTable)
	}

	var candidates []m.Candidate

	for index := range module.Functions {
		raw, ok := module.Names[index]
		if !ok {
			continue
		}

		name := s.Demangle(raw)
		if !hasAnyPrefix(name, include) || hasAnyPrefix(name, exclude) {
			continue
		}

		candidates = append(candidates, m.Candidate{Index: index, Name: name})
	}

	slog.Debug("Selected candidate functions", "functions", len(module.Functions), "candidates", len(candidates))

	return candidates, nil
}

func hasAnyPrefix(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}

	return false
}
