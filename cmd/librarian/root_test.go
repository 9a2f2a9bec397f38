package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LIBRARIAN_API_URL", "LIBRARIAN_QUANTITY", "LIBRARIAN_FINE_PER_DAY",
		"LIBRARIAN_BORROW_PERIOD_DAYS", "LIBRARIAN_USER", "LIBRARIAN_TIMEOUT",
		"LIBRARIAN_LOG_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// Flag values stick to rootCmd between runs, so each case sets what it needs.

func TestFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LIBRARIAN_QUANTITY", "5")
	t.Setenv("LIBRARIAN_USER", "env-user")

	rootCmd.SetArgs([]string{
		"fine", "--borrowed", "2024-01-01", "--on", "2024-01-02",
		"--quantity", "3", "--api-url", "http://localhost:9999",
	})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, 3, cfg.Quantity)
	assert.Equal(t, "http://localhost:9999", cfg.APIURL)
	assert.Equal(t, "env-user", cfg.User)
}

func TestInvalidQuantityFlag(t *testing.T) {
	clearEnv(t)
	rootCmd.SilenceUsage = true
	defer func() { rootCmd.SilenceUsage = false }()

	rootCmd.SetArgs([]string{"fine", "--borrowed", "2024-01-01", "--quantity", "0"})
	assert.Error(t, rootCmd.Execute())
}

func TestMissingEnvFileFlag(t *testing.T) {
	clearEnv(t)
	rootCmd.SilenceUsage = true
	defer func() { rootCmd.SilenceUsage = false }()

	rootCmd.SetArgs([]string{
		"fine", "--borrowed", "2024-01-01", "--quantity", "3",
		"--env-file", filepath.Join(t.TempDir(), "missing.env"),
	})
	assert.ErrorContains(t, rootCmd.Execute(), "failed to load env file")
}
