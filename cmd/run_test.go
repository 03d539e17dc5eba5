package cmd

import (
	"bytes"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/wasmut/internal/domain"
	domainmocks "gooze.dev/pkg/wasmut/internal/domain/mocks"
	m "gooze.dev/pkg/wasmut/internal/model"
)

func newTestRunCmd(t *testing.T) (*domainmocks.MockWorkflow, func(args ...string) error) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newRunCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow, func(args ...string) error {
		cmd.SetArgs(args)
		return cmd.Execute()
	}
}

func TestRunCmd_TestMode(t *testing.T) {
	mockWorkflow, execute := newTestRunCmd(t)

	mockWorkflow.EXPECT().Test(mock.Anything, mock.MatchedBy(func(args domain.TestArgs) bool {
		return args.Threads == 2 &&
			args.Module == m.Path("app.wasm") &&
			len(args.Include) == 1 && args.Include[0] == "lib::" &&
			len(args.Exclude) == 0 &&
			args.ShardIndex == 0 &&
			args.TotalShardCount == 1 &&
			args.Reports == m.Path(".wasmut-reports") &&
			args.Harness == m.Harness{Entry: "main", Timeout: 2 * time.Minute}
	})).Return(nil)

	err := execute("run", "--parallel", "2", "-i", "lib::", "app.wasm")
	require.NoError(t, err)
}

func TestRunCmd_DefaultParallelUsesEveryCPU(t *testing.T) {
	mockWorkflow, execute := newTestRunCmd(t)

	mockWorkflow.EXPECT().Test(mock.Anything, mock.MatchedBy(func(args domain.TestArgs) bool {
		return args.Threads == runtime.NumCPU()
	})).Return(nil)

	require.NoError(t, execute("run", "-i", "lib::", "app.wasm"))
}

func TestRunCmd_WithSharding(t *testing.T) {
	mockWorkflow, execute := newTestRunCmd(t)

	mockWorkflow.EXPECT().Test(mock.Anything, mock.MatchedBy(func(args domain.TestArgs) bool {
		return args.ShardIndex == 1 && args.TotalShardCount == 3
	})).Return(nil)

	require.NoError(t, execute("run", "--shard", "1/3", "-i", "lib::", "app.wasm"))
}

func TestRunCmd_WithScopePrefixes(t *testing.T) {
	mockWorkflow, execute := newTestRunCmd(t)

	mockWorkflow.EXPECT().Test(mock.Anything, mock.MatchedBy(func(args domain.TestArgs) bool {
		return assert.ObjectsAreEqual([]string{"lib::", "core::"}, args.Include) &&
			assert.ObjectsAreEqual([]string{"lib::fmt"}, args.Exclude)
	})).Return(nil)

	require.NoError(t, execute("run", "-i", "lib::", "--include", "core::", "-x", "lib::fmt", "app.wasm"))
}

func TestRunCmd_HarnessFlags(t *testing.T) {
	mockWorkflow, execute := newTestRunCmd(t)

	mockWorkflow.EXPECT().Test(mock.Anything, mock.MatchedBy(func(args domain.TestArgs) bool {
		return args.Harness == m.Harness{Entry: "_start", WASI: true, Timeout: 5 * time.Second}
	})).Return(nil)

	err := execute("run", "-i", "lib::", "--entry", "_start", "--wasi", "--mutation-timeout", "5s", "app.wasm")
	require.NoError(t, err)
}

func TestRunCmd_OutputFlag(t *testing.T) {
	mockWorkflow, execute := newTestRunCmd(t)

	mockWorkflow.EXPECT().Test(mock.Anything, mock.MatchedBy(func(args domain.TestArgs) bool {
		return args.Reports == m.Path("./out")
	})).Return(nil)

	require.NoError(t, execute("-o", "./out", "run", "-i", "lib::", "app.wasm"))
}

func TestRunCmd_WorkflowErrorIsReturned(t *testing.T) {
	mockWorkflow, execute := newTestRunCmd(t)

	mockWorkflow.EXPECT().Test(mock.Anything, mock.Anything).Return(domain.ErrBaselineFailing)

	err := execute("run", "-i", "lib::", "app.wasm")
	require.ErrorIs(t, err, domain.ErrBaselineFailing)
}

func TestRunCmd_RejectsMissingArguments(t *testing.T) {
	t.Run("no module", func(t *testing.T) {
		_, execute := newTestRunCmd(t)
		require.Error(t, execute("run", "-i", "lib::"))
	})

	t.Run("no include prefix", func(t *testing.T) {
		_, execute := newTestRunCmd(t)
		require.ErrorIs(t, execute("run", "app.wasm"), errNoInclude)
	})
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run <module.wasm>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, runLongDescription, cmd.Long)

	for _, name := range []string{runParallelFlagName, runShardFlagName, mutationTimeoutFlagName, entryFlagName, wasiFlagName} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
