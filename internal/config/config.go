// Package config holds the environment configuration.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Host       string `envconfig:"HOST" default:""`
	Port       int    `envconfig:"PORT" default:"8080"`
	DataDir    string `envconfig:"DATA_DIR" default:"data"`
	BudgetFile string `envconfig:"BUDGET_FILE" default:""` // overrides the remembered file
	Currency   string `envconfig:"CURRENCY" default:"USD"` // ISO 4217 code used for display formatting
}

// FromEnv reads the configuration from the environment.
func FromEnv() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
