package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	err = cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), configFileName)
	assert.Contains(t, out.String(), includeConfigKey)

	targetPath := filepath.Join(tempDir, configFileName)
	t.Cleanup(func() { _ = os.Remove(targetPath) })
	info, err := os.Stat(targetPath)
	require.NoError(t, err)
	require.False(t, info.IsDir())

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)

	var written struct {
		Version int            `yaml:"version"`
		Output  string         `yaml:"output"`
		Scope   map[string]any `yaml:"scope"`
		Run     map[string]any `yaml:"run"`
		Oracle  map[string]any `yaml:"oracle"`
		Log     map[string]any `yaml:"log"`
	}
	require.NoError(t, yaml.Unmarshal(contents, &written))

	assert.Equal(t, currentConfigVersion, written.Version)
	assert.Equal(t, defaultReportsDir, written.Output)
	assert.Contains(t, written.Scope, "include")
	assert.Contains(t, written.Scope, "exclude")
	assert.Contains(t, written.Run, "parallel")
	assert.Contains(t, written.Run, "mutation_timeout")
	assert.Contains(t, written.Oracle, "entry")
	assert.Contains(t, written.Oracle, "wasi")
	assert.Equal(t, defaultLogFilename, written.Log["filename"])
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))
	t.Cleanup(func() { _ = os.Remove(targetPath) })

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	err = cmd.Execute()
	require.Error(t, err)
}
