package io

import (
	"github.com/caarlos0/env/v11"
)

// EnvConfig holds values which can be overridden from the environment. Zero
// values mean the variable was not set.
type EnvConfig struct {
	Seed    int64  `env:"BILLIARDS_SEED"`
	Workers int    `env:"BILLIARDS_WORKERS"`
	Results string `env:"BILLIARDS_RESULTS"`
	PlotDir string `env:"BILLIARDS_PLOT_DIR"`
}

// ReadEnv reads an EnvConfig from the process environment.
func ReadEnv() (*EnvConfig, error) {
	ec := &EnvConfig{}
	if err := env.Parse(ec); err != nil {
		return nil, err
	}
	return ec, nil
}

// ReadEnvFrom reads an EnvConfig from the given variables instead of the
// process environment.
func ReadEnvFrom(vars map[string]string) (*EnvConfig, error) {
	ec := &EnvConfig{}
	if err := env.ParseWithOptions(ec, env.Options{Environment: vars}); err != nil {
		return nil, err
	}
	return ec, nil
}

// Apply overwrites every value of wrap that is set in ec and re-validates the
// result.
func (ec *EnvConfig) Apply(wrap *BatchWrapper) error {
	if ec.Seed != 0 {
		wrap.Generate.Seed = ec.Seed
	}
	if ec.Workers != 0 {
		wrap.Generate.Workers = ec.Workers
	}
	if ec.Results != "" {
		wrap.Output.Results = ec.Results
	}
	if ec.PlotDir != "" {
		wrap.Output.PlotDir = ec.PlotDir
	}
	return wrap.CheckInit()
}
