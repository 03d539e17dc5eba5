package model

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestReport_Score(t *testing.T) {
	tests := []struct {
		name     string
		statuses []TestStatus
		want     float64
	}{
		{"empty", nil, 1},
		{"all killed", []TestStatus{Killed, Killed}, 1},
		{"half survived", []TestStatus{Killed, Survived}, 0.5},
		{"timeout counts as detected", []TestStatus{Timeout, Survived, Survived, Killed}, 0.5},
		{"errors are ignored", []TestStatus{Error, Survived}, 0},
		{"only errors", []TestStatus{Error}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Report{}
			for _, status := range tt.statuses {
				report.Results = append(report.Results, MutantResult{Status: status})
			}

			assert.InDelta(t, tt.want, report.Score(), 1e-9)
		})
	}
}

func TestReport_SurvivorsAndErrors(t *testing.T) {
	report := Report{Results: []MutantResult{
		{Mutation: Mutation{ID: 0}, Status: Killed},
		{Mutation: Mutation{ID: 1}, Status: Survived},
		{Mutation: Mutation{ID: 2}, Status: Error, Error: "compile failed"},
		{Mutation: Mutation{ID: 3}, Status: Survived},
	}}

	survivors := report.Survivors()
	require.Len(t, survivors, 2)
	assert.Equal(t, uint(1), survivors[0].ID)
	assert.Equal(t, uint(3), survivors[1].ID)

	err := report.Errors()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile failed")

	assert.Equal(t, 2, report.Counts()[Survived])
	assert.NoError(t, Report{}.Errors())
}

func TestSurvivorReport_ErrMatchesReportErrors(t *testing.T) {
	failed := []MutantResult{
		{Mutation: Mutation{ID: 1}, Status: Error, Error: "encode: boom"},
		{Mutation: Mutation{ID: 2}, Status: Error, Error: "oracle: bang"},
	}

	err := SurvivorReport{Errors: failed}.Err()
	require.Error(t, err)
	assert.Equal(t, Report{Results: failed}.Errors().Error(), err.Error())

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)

	assert.NoError(t, SurvivorReport{}.Err())
}

func TestTestStatus_YAML(t *testing.T) {
	result := MutantResult{
		Mutation: Mutation{ID: 7, Mutator: Mutator{Kind: KindSwap, From: OpI32GeS, To: OpI32GtS}},
		Status:   Timeout,
	}

	data, err := yaml.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), "status: timeout")
	assert.Contains(t, string(data), "from: i32.ge_s")

	var decoded MutantResult
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, result, decoded)
}

func TestMutator_DescribeAndType(t *testing.T) {
	tests := []struct {
		mutator  Mutator
		describe string
		typ      MutationType
	}{
		{Mutator{Kind: KindSwap, From: OpI32GeS, To: OpI32GtS}, "i32.ge_s -> i32.gt_s", MutationRelational},
		{Mutator{Kind: KindSwap, From: OpI64Add, To: OpI64Sub}, "i64.add -> i64.sub", MutationArithmetic},
		{Mutator{Kind: KindSwap, From: OpI32And, To: OpI32Or}, "i32.and -> i32.or", MutationLogical},
		{Mutator{Kind: KindSwap, From: OpF64Ceil, To: OpF64Floor}, "f64.ceil -> f64.floor", MutationRounding},
		{Mutator{Kind: KindSetCancelling}, "SetCancelling", MutationAssignment},
		{Mutator{Kind: KindConditionToFalse}, "IfConditionToFalse", MutationBranch},
	}

	for _, tt := range tests {
		t.Run(tt.describe, func(t *testing.T) {
			assert.Equal(t, tt.describe, tt.mutator.Describe())
			assert.Equal(t, tt.typ, tt.mutator.Type())
		})
	}
}
