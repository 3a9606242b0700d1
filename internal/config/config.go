// Package config loads and validates the hook's optional TOML configuration
// file. A missing file at the default path is not an error; everything has a
// usable default.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"libvirt-resolved-hook/internal/hookerr"
	"libvirt-resolved-hook/internal/log"
	"libvirt-resolved-hook/internal/resolver"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ResolvectlPath:        resolver.DefaultCommand,
		CommandTimeoutSeconds: 5,
		PublicSuffixFile:      DefaultPublicSuffixFile,
		PublicSuffixFilter:    true,
		DNSArgsTemplate:       resolver.DefaultDNSArgs,
		DomainArgsTemplate:    resolver.DefaultDomainArgs,
	}
}

// Load reads the configuration file at path, layered over the defaults.
// When required is false (the built-in default path), a missing file yields
// the defaults; an explicitly requested file must exist.
func Load(path string, required bool) (*Config, error) {
	configFile := filepath.Clean(path)

	content, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) && !required {
			log.Debugf("No configuration file at %s, using defaults", configFile)
			return Default(), nil
		}
		return nil, hookerr.NewConfigError("failed to read configuration file", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(content, cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			log.Errorf("%s", derr.String())
			log.Errorf("Error at line %d, column %d", row, col)
		}
		return nil, hookerr.NewConfigError("failed to parse configuration file", err)
	}

	log.Debugf("Loaded configuration from %s", configFile)
	return cfg, nil
}
