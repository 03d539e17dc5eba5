package domain

import (
	"sort"

	m "gooze.dev/pkg/wasmut/internal/model"
	pkg "gooze.dev/pkg/wasmut/pkg"
)

// mutationScoreFromResults streams the spilled results and scores them.
// Errored mutants are excluded from the denominator.
func mutationScoreFromResults(results pkg.FileSpill[m.MutantResult]) (float64, error) {
	detected := 0
	total := 0

	err := results.Range(func(_ uint64, result m.MutantResult) error {
		switch result.Status {
		case m.Killed, m.Timeout:
			detected++
			total++
		case m.Survived:
			total++
		case m.Error:
		}

		return nil
	})
	if err != nil {
		return 0.0, err
	}

	if total == 0 {
		return 1.0, nil
	}

	return float64(detected) / float64(total), nil
}

// resultsFromSpill reads the spilled results back in generation order.
// Workers append them in completion order.
func resultsFromSpill(spill pkg.FileSpill[m.MutantResult]) ([]m.MutantResult, error) {
	results := make([]m.MutantResult, 0, spill.Len())

	err := spill.Range(func(_ uint64, result m.MutantResult) error {
		results = append(results, result)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Mutation.ID < results[j].Mutation.ID
	})

	return results, nil
}
