package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kerbaras/librarian/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LIBRARIAN_API_URL", "LIBRARIAN_USER", "LIBRARIAN_LOG_FILE", "LIBRARIAN_QUANTITY",
		"LIBRARIAN_FINE_PER_DAY", "LIBRARIAN_BORROW_PERIOD_DAYS", "LIBRARIAN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, data.DefaultFinePolicy, cfg.FinePolicy())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LIBRARIAN_API_URL", "http://localhost:9999")
	t.Setenv("LIBRARIAN_QUANTITY", "25")
	t.Setenv("LIBRARIAN_FINE_PER_DAY", "3")
	t.Setenv("LIBRARIAN_BORROW_PERIOD_DAYS", "7")
	t.Setenv("LIBRARIAN_USER", "alice")
	t.Setenv("LIBRARIAN_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.APIURL)
	assert.Equal(t, 25, cfg.Quantity)
	assert.Equal(t, data.FinePolicy{PerDay: 3, BorrowPeriodDays: 7}, cfg.FinePolicy())
	assert.Equal(t, "alice", cfg.User)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set
	os.Unsetenv("LIBRARIAN_QUANTITY")
	os.Unsetenv("LIBRARIAN_USER")
	t.Cleanup(func() {
		os.Unsetenv("LIBRARIAN_QUANTITY")
		os.Unsetenv("LIBRARIAN_USER")
	})

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LIBRARIAN_QUANTITY=4\nLIBRARIAN_USER=bob\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Quantity)
	assert.Equal(t, "bob", cfg.User)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"LIBRARIAN_QUANTITY", "ten"},
		{"LIBRARIAN_QUANTITY", "0"},
		{"LIBRARIAN_FINE_PER_DAY", "-1"},
		{"LIBRARIAN_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "failed to load env file")
}
