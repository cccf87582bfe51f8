// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the `env` and
// `envPrefix` tags on [StructuredConfig], then folds the PORT and
// DATABASE_URI shortcuts into the server address and the DSN.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return applyEnvShortcuts(cfg)
}

// applyEnvShortcuts folds the short PORT and DATABASE_URI variables into
// their structured counterparts. The structured variables win when both
// are set for the DSN; PORT always replaces the port of the address.
func applyEnvShortcuts(cfg *StructuredConfig) error {
	if cfg.Storage.DB.DSN == "" && cfg.DatabaseURI != "" {
		cfg.Storage.DB.DSN = cfg.DatabaseURI
	}

	if cfg.Port == "" {
		return nil
	}

	host := ""
	if cfg.Server.HTTPAddress != "" {
		h, _, err := net.SplitHostPort(cfg.Server.HTTPAddress)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
		}
		host = h
	}
	cfg.Server.HTTPAddress = net.JoinHostPort(host, cfg.Port)

	return nil
}
