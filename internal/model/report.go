package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

// TestStatus represents the outcome of testing one mutant.
type TestStatus int

const (
	// Killed indicates the mutation was detected by the harness.
	Killed TestStatus = iota
	// Survived indicates the mutation was not detected by the harness.
	Survived
	// Timeout indicates the harness did not finish within the mutation timeout.
	Timeout
	// Error indicates the mutant could not be executed (encode or oracle failure).
	Error
)

var testStatusNames = map[TestStatus]string{
	Killed:   "killed",
	Survived: "survived",
	Timeout:  "timeout",
	Error:    "error",
}

// String implements fmt.Stringer.
func (s TestStatus) String() string {
	if name, ok := testStatusNames[s]; ok {
		return name
	}

	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s TestStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *TestStatus) UnmarshalText(text []byte) error {
	for status, name := range testStatusNames {
		if name == strings.ToLower(string(text)) {
			*s = status
			return nil
		}
	}

	return fmt.Errorf("unknown test status %q", text)
}

// Detected reports whether the harness noticed the mutant.
func (s TestStatus) Detected() bool {
	return s == Killed || s == Timeout
}

// MutantResult is the classification of one mutation. Error is kept as a
// string so results survive gob and YAML round trips.
type MutantResult struct {
	Mutation Mutation      `yaml:"mutation"`
	Status   TestStatus    `yaml:"status"`
	Error    string        `yaml:"error,omitempty"`
	Diff     string        `yaml:"diff,omitempty"`
	Duration time.Duration `yaml:"duration"`
}

// Err returns the execution error of the result, if any.
func (r MutantResult) Err() error {
	if r.Error == "" {
		return nil
	}

	return fmt.Errorf("mutation %d (%s): %s", r.Mutation.ID, r.Mutation.Mutator.Describe(), r.Error)
}

// Report is the persisted outcome of one run (or one shard of it).
type Report struct {
	RunID      string         `yaml:"run_id"`
	Module     Path           `yaml:"module"`
	ModuleHash string         `yaml:"module_hash"`
	Include    []string       `yaml:"include"`
	Exclude    []string       `yaml:"exclude,omitempty"`
	ShardIndex int            `yaml:"shard_index"`
	ShardCount int            `yaml:"shard_count"`
	CreatedAt  time.Time      `yaml:"created_at"`
	Results    []MutantResult `yaml:"results"`
}

// Survivors returns the surviving mutations in result order.
func (r Report) Survivors() []Mutation {
	var survivors []Mutation

	for _, result := range r.Results {
		if result.Status == Survived {
			survivors = append(survivors, result.Mutation)
		}
	}

	return survivors
}

// Errors aggregates the per-mutant execution errors, or returns nil.
func (r Report) Errors() error {
	var result *multierror.Error

	for _, res := range r.Results {
		if err := res.Err(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

// Counts returns the number of results per status.
func (r Report) Counts() map[TestStatus]int {
	counts := make(map[TestStatus]int, len(testStatusNames))
	for _, result := range r.Results {
		counts[result.Status]++
	}

	return counts
}

// Score returns the mutation score as a fraction in [0, 1]. Errored mutants
// are excluded from the denominator; a run without scored mutants scores 1.
func (r Report) Score() float64 {
	return ScoreOf(r.Results)
}

// ScoreOf computes the mutation score of a result set.
func ScoreOf(results []MutantResult) float64 {
	detected, total := 0, 0

	for _, result := range results {
		switch result.Status {
		case Killed, Timeout:
			detected++
			total++
		case Survived:
			total++
		case Error:
		}
	}

	if total == 0 {
		return 1
	}

	return float64(detected) / float64(total)
}

// SurvivingMutant is one entry of the engine's external result: the mutator
// description and the location of the defect.
type SurvivingMutant struct {
	Mutator          string
	FunctionIndex    int
	InstructionIndex int
}

// SurvivorReport is the result of FindSurvivingMutants: every surviving mutant
// in generation order plus the mutants that could not be executed.
type SurvivorReport struct {
	Survivors []SurvivingMutant
	Errors    []MutantResult
}

// Err aggregates the execution errors of the report the same way
// Report.Errors does, or returns nil.
func (sr SurvivorReport) Err() error {
	return Report{Results: sr.Errors}.Errors()
}
