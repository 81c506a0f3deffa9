// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	// Unprefixed variables are honoured for platforms that only inject a
	// port number and for deployments configured for the legacy names.
	legacy, err := env.ParseAs[legacyEnv]()
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	if cfg.Server.HTTPAddress == "" && legacy.Port != "" {
		cfg.Server.HTTPAddress = ":" + legacy.Port
	}
	if legacy.EnableGlobalErrorLogging {
		cfg.App.EnableGlobalErrorLogging = true
	}

	return nil
}

type legacyEnv struct {
	Port                     string `env:"PORT"`
	EnableGlobalErrorLogging bool   `env:"ENABLE_GLOBAL_ERROR_LOGGING"`
}
