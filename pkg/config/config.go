// Package config loads the host alias table. Aliases come from an
// optional YAML file plus the RFT_HOME_HOST / RFT_WORK_HOST environment
// variables; environment entries win on conflict.
package config

import (
	"fmt"
	"os"

	"github.com/monshunter/rft/pkg/envar"
	"github.com/monshunter/rft/pkg/log"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk alias file format:
//
//	hosts:
//	  lab: lab42.internal.example.com
type Config struct {
	Hosts map[string]string `yaml:"hosts"`
}

// LoadAliases returns the merged alias table. A missing alias file is not
// an error; a malformed one is reported and skipped so a broken config
// never blocks a transfer.
func LoadAliases() map[string]string {
	var aliases map[string]string
	if path := envar.ConfigPath(); path != "" {
		var err error
		aliases, err = loadFile(path)
		if err != nil {
			log.Warnf("Ignoring alias configuration: %v", err)
			aliases = nil
		}
	}
	if aliases == nil {
		aliases = make(map[string]string)
	}
	for name, host := range envar.HostAliases() {
		aliases[name] = host
	}
	return aliases
}

func loadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg.Hosts, nil
}
