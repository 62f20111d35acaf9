package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/ozpath/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigFile, "")
	for _, k := range []string{
		"OZPATH_DB", "OZPATH_LOG_CALLS", "OZPATH_LOG_FILE",
		"OZPATH_AI_API_KEY", "OZPATH_AI_ENDPOINT", "OZPATH_AI_MODEL",
		"OZPATH_AI_TEMPERATURE", "OZPATH_AI_MAX_TOKENS", "OZPATH_AI_TIMEOUT_MS",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".ozpath", "ozpath.db"), cfg.DBPath)
	assert.False(t, cfg.LogCalls)
	assert.Equal(t, llm.DefaultConfig(), cfg.LLM())
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("OZPATH_DB", "/tmp/custom.db")
	t.Setenv("OZPATH_LOG_CALLS", "true")
	t.Setenv("OZPATH_AI_API_KEY", "sk-test")
	t.Setenv("OZPATH_AI_ENDPOINT", "http://localhost:9999/v1/")
	t.Setenv("OZPATH_AI_MODEL", "gpt-4o-mini")
	t.Setenv("OZPATH_AI_TEMPERATURE", "0.2")
	t.Setenv("OZPATH_AI_MAX_TOKENS", "300")
	t.Setenv("OZPATH_AI_TIMEOUT_MS", "5000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	got := cfg.LLM()
	assert.Equal(t, "sk-test", got.APIKey)
	assert.Equal(t, "http://localhost:9999/v1", got.Endpoint)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.InDelta(t, 0.2, got.Temperature, 1e-9)
	assert.Equal(t, 300, got.MaxTokens)
	assert.Equal(t, 5000, got.TimeoutMs)
	assert.True(t, got.LogCalls)
}

func TestLoad_DefaultConfigFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".ozpath")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"ai:\n  model: gpt-4o\n  max_tokens: 800\nlog_calls: true\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.AI.Model)
	assert.Equal(t, 800, cfg.AI.MaxTokens)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, llm.DefaultEndpoint, cfg.AI.Endpoint)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ai:\n  model: from-file\n"), 0o600))
	t.Setenv(EnvConfigFile, path)
	t.Setenv("OZPATH_AI_MODEL", "from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.AI.Model)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("OZPATH_AI_MAX_TOKENS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_tokens")
}

func TestValidate(t *testing.T) {
	base := Config{DBPath: "x.db", AI: AIConfig{Temperature: 0.7, MaxTokens: 10, TimeoutMs: 10}}
	assert.NoError(t, base.Validate())

	hot := base
	hot.AI.Temperature = 2.5
	assert.Error(t, hot.Validate())

	noTimeout := base
	noTimeout.AI.TimeoutMs = 0
	assert.Error(t, noTimeout.Validate())

	noDB := base
	noDB.DBPath = ""
	assert.Error(t, noDB.Validate())
}

func TestLogSink(t *testing.T) {
	assert.Nil(t, Config{}.LogSink())

	stderr := Config{LogCalls: true}.LogSink()
	require.NotNil(t, stderr)
	assert.NoError(t, stderr.Close())

	file := Config{LogCalls: true, LogFile: filepath.Join(t.TempDir(), "ozpath.log")}.LogSink()
	lj, ok := file.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, 10, lj.MaxSize)
	assert.NoError(t, lj.Close())
}

func TestNewLogger(t *testing.T) {
	assert.Nil(t, NewLogger(nil))

	var buf bytes.Buffer
	NewLogger(&buf).Info("use_case", "name", "login")
	assert.Contains(t, buf.String(), "name=login")
}
