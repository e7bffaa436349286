package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/monshunter/rft/pkg/envar"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAliasesFromFile(t *testing.T) {
	path := writeConfig(t, "hosts:\n  lab: lab42.internal.example.com\n")
	t.Setenv(envar.RFT_CONFIG, path)
	t.Setenv(envar.RFT_HOME_HOST, "")
	t.Setenv(envar.RFT_WORK_HOST, "")

	aliases := LoadAliases()
	require.Equal(t, "lab42.internal.example.com", aliases["lab"])
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "hosts:\n  home: stale.example.com\n")
	t.Setenv(envar.RFT_CONFIG, path)
	t.Setenv(envar.RFT_HOME_HOST, "h.example.com")

	aliases := LoadAliases()
	require.Equal(t, "h.example.com", aliases["home"])
}

func TestMissingFileIsNotAnError(t *testing.T) {
	t.Setenv(envar.RFT_CONFIG, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv(envar.RFT_HOME_HOST, "")
	t.Setenv(envar.RFT_WORK_HOST, "")

	aliases := LoadAliases()
	require.Empty(t, aliases)
}

func TestNoHomeDirectoryFallsBackToEnv(t *testing.T) {
	t.Setenv(envar.RFT_CONFIG, "")
	t.Setenv("HOME", "")
	t.Setenv(envar.RFT_HOME_HOST, "h.example.com")
	t.Setenv(envar.RFT_WORK_HOST, "")

	aliases := LoadAliases()
	require.Equal(t, map[string]string{"home": "h.example.com"}, aliases)
}

func TestMalformedFileIsSkipped(t *testing.T) {
	path := writeConfig(t, "hosts: [not a map\n")
	t.Setenv(envar.RFT_CONFIG, path)
	t.Setenv(envar.RFT_HOME_HOST, "")
	t.Setenv(envar.RFT_WORK_HOST, "w.example.com")

	aliases := LoadAliases()
	require.Equal(t, map[string]string{"work": "w.example.com"}, aliases)
}
