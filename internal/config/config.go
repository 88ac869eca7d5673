// Package config loads the simulator run configuration from a JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"cpusched/internal/sched"
)

var ErrInvalidConfig = errors.New("invalid config")

const DefaultQuantum = 2

// Config selects what the simulator runs. Policies holds policy names as
// understood by sched.ParsePolicy; an empty list means every policy.
type Config struct {
	Input    string   `json:"input"`
	Policies []string `json:"policies"`
	Quantum  int64    `json:"quantum"`
	LogLevel string   `json:"log_level"`
}

func Default() Config {
	return Config{Quantum: DefaultQuantum, LogLevel: "info"}
}

// Load decodes the JSON file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	configFile, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: opening %s: %v", ErrInvalidConfig, path, err)
	}
	defer func() {
		_ = configFile.Close()
	}()

	jsonParser := json.NewDecoder(configFile)
	jsonParser.DisallowUnknownFields()
	if err := jsonParser.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: decoding %s: %v", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

// SelectedPolicies resolves Policies, defaulting to every policy.
func (c Config) SelectedPolicies() ([]sched.Policy, error) {
	if len(c.Policies) == 0 {
		return sched.Policies, nil
	}

	policies := make([]sched.Policy, 0, len(c.Policies))
	for _, name := range c.Policies {
		p, err := sched.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, nil
}
