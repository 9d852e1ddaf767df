package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8090", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10, cfg.PageSize)
	assert.EqualValues(t, 10485760, cfg.MaxUploadSize)
	assert.False(t, cfg.Verbose)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("THESISLEDGER_API_BASE_URL", "https://ledger.example.edu")
	t.Setenv("THESISLEDGER_PAGE_SIZE", "25")
	t.Setenv("THESISLEDGER_VERBOSE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://ledger.example.edu", cfg.APIBaseURL)
	assert.Equal(t, 25, cfg.PageSize)
	assert.True(t, cfg.Verbose)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("THESISLEDGER_API_BASE_URL", "https://ledger.example.edu")

	origArgs := os.Args
	os.Args = []string{"cli", "-a", "http://127.0.0.1:9000", "-s", "5"}
	defer func() { os.Args = origArgs }()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.APIBaseURL)
	assert.Equal(t, 5, cfg.PageSize)
}
