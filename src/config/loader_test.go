package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Defaults(t *testing.T) {
	loader := NewLoader()
	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	// A named but missing file is still resolved; only blank falls back
	require.Error(t, err)

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, "ado-auto-review", cfg.Agent.Name)
	assert.Equal(t, 10, cfg.Detectors.Complexity.MaxBranchTokens)
	assert.Equal(t, 300, cfg.Detectors.Size.MaxFileLines)
	assert.Equal(t, 5, cfg.Concurrency.MaxParallelFiles)
}

func TestLoader_FileOverridesAndEnvExpansion(t *testing.T) {
	t.Setenv("REVIEW_TOKEN", "tok-123")

	content := `
provider:
  url: http://host.example:9090
  token: ${REVIEW_TOKEN}
detectors:
  size:
    enabled: true
    max_file_lines: 500
logging:
  level: ${REVIEW_LOG_LEVEL:-debug}
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://host.example:9090", cfg.Provider.URL)
	assert.Equal(t, "tok-123", cfg.Provider.Token)
	assert.Equal(t, 30*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, 500, cfg.Detectors.Size.MaxFileLines)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Untouched sections keep their defaults
	assert.Equal(t, 10, cfg.Detectors.Complexity.MaxBranchTokens)
}
