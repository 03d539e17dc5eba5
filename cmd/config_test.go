package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/wasmut/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "wasmut", configBaseName)
	assert.Equal(t, "wasmut.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "include", includeFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "parallel", runParallelFlagName)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "scope.include", includeConfigKey)
	assert.Equal(t, "scope.exclude", excludeConfigKey)
	assert.Equal(t, "oracle.entry", entryConfigKey)
	assert.Equal(t, ".wasmut-reports", defaultReportsDir)
	assert.Equal(t, 0, defaultRunParallel)
	assert.Equal(t, "WASMUT", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, m.DefaultMutationTimeout, viper.GetDuration(mutationTimeoutKey))
	assert.Equal(t, m.DefaultEntry, viper.GetString(entryConfigKey))
	assert.False(t, viper.GetBool(wasiConfigKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "wasmut.log")

	configureLogger(logPath, true)

	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(context.Background(), slog.LevelDebug))

	slog.Debug("Mutant evaluated", "id", 7)

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "Mutant evaluated")
	assert.Contains(t, string(contents), "id=7")
}
