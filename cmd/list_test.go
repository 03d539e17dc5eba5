package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/wasmut/internal/domain"
	domainmocks "gooze.dev/pkg/wasmut/internal/domain/mocks"
	m "gooze.dev/pkg/wasmut/internal/model"
)

func TestListCmd_PassesScope(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.EXPECT().Estimate(mock.Anything, domain.EstimateArgs{
		Module:  m.Path("app.wasm"),
		Include: []string{"lib::"},
		Exclude: []string{"lib::fmt"},
	}).Return(nil)

	cmd.SetArgs([]string{"list", "-i", "lib::", "-x", "lib::fmt", "app.wasm"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_RequiresModule(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"list"})
	require.Error(t, cmd.Execute())
}
