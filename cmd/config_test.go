package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "apkrepack", configBaseName)
	assert.Equal(t, "apkrepack.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "tools-dir", toolsDirFlagName)
	assert.Equal(t, "hook", hookFlagName)
	assert.Equal(t, "verbose", verboseFlagName)
	assert.Equal(t, "reports", reportsFlagName)
	assert.Equal(t, "tools.base_dir", toolsBaseDirKey)
	assert.Equal(t, "run.native_hook", nativeHookKey)
	assert.Equal(t, "report.dir", reportDirKey)
	assert.Equal(t, ".apkrepack-reports", defaultReportsDir)
	assert.Equal(t, "apkeditor", defaultDecompilerPrefix)
	assert.Equal(t, "lib_Pairip_CoreX.so", defaultHookPayload)
	assert.Equal(t, false, defaultNativeHook)
	assert.Equal(t, "APKREPACK", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
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

func TestProcessTimeout(t *testing.T) {
	original := viper.Get(processTimeoutKey)
	defer viper.Set(processTimeoutKey, original)

	viper.Set(processTimeoutKey, 0)
	assert.Equal(t, time.Duration(0), processTimeout())

	viper.Set(processTimeoutKey, -5)
	assert.Equal(t, time.Duration(0), processTimeout())

	viper.Set(processTimeoutKey, 90)
	assert.Equal(t, 90*time.Second, processTimeout())
}

func TestDefaultToolsBaseDir(t *testing.T) {
	assert.NotEmpty(t, defaultToolsBaseDir())
}

func TestReadConfig_WarnsOnMalformedFile(t *testing.T) {
	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	var logs bytes.Buffer
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(originalLogger) })

	readConfig()
	assert.Empty(t, logs.String(), "a missing file is not reported")

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, configFileName), []byte("tools: [unterminated\n"), 0o644))

	readConfig()
	assert.Contains(t, logs.String(), "Ignoring unreadable config file")
	assert.Equal(t, defaultHookPayload, viper.GetString(hookPayloadKey))
}
