package envar

import (
	"os"
	"path/filepath"
)

const (
	// RFT_HOME_HOST and RFT_WORK_HOST resolve the symbolic host aliases
	// "home" and "work". An unset variable leaves the alias unresolved.
	RFT_HOME_HOST = "RFT_HOME_HOST"
	RFT_WORK_HOST = "RFT_WORK_HOST"
	// RFT_CLIENT overrides the transfer client binary, default "sftp".
	RFT_CLIENT = "RFT_CLIENT"
	// RFT_CONFIG overrides the alias configuration file path.
	RFT_CONFIG = "RFT_CONFIG"
)

// DefaultClient is the transfer client invoked when RFT_CLIENT is unset.
const DefaultClient = "sftp"

// ClientPath returns the transfer client binary to invoke.
func ClientPath() string {
	if client := os.Getenv(RFT_CLIENT); client != "" {
		return client
	}
	return DefaultClient
}

// ConfigPath returns the alias configuration file path. Empty means no
// file applies: under schedulers the home directory may be undefined,
// and that must not stop a transfer.
func ConfigPath() string {
	if path := os.Getenv(RFT_CONFIG); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rft", "config.yaml")
}

// HostAliases returns the aliases defined by environment variables.
// Only set variables produce entries.
func HostAliases() map[string]string {
	aliases := make(map[string]string)
	if host := os.Getenv(RFT_HOME_HOST); host != "" {
		aliases["home"] = host
	}
	if host := os.Getenv(RFT_WORK_HOST); host != "" {
		aliases["work"] = host
	}
	return aliases
}
