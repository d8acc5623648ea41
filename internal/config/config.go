// Package config declares the environment-driven configuration structs of
// the application. Each binary composes the sections it needs and loads
// them with New.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// New populates a configuration struct of type T from environment
// variables.
func New[T any]() (T, error) {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
