package config

import (
	"errors"
	"fmt"
	"io/fs"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error

	// exitOnFailure holds booleans set explicitly by a source, keyed by that
	// source. mergo never lets a false value override a true one, so these
	// are applied on top after the source is merged.
	exitOnFailure map[*StructuredConfig]bool
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:       make([]*StructuredConfig, 0, 4),
		exitOnFailure: make(map[*StructuredConfig]bool),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
		if exit, ok := b.exitOnFailure[cfg]; ok {
			config.App.ExitOnStartupFailure = exit
		}
	}

	return config, config.validate()
}

// withDotEnv loads a .env file into the process environment. Variables that
// are already set are left untouched and a missing file is not an error.
func (b *configBuilder) withDotEnv(files ...string) *configBuilder {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		b.err = errors.Join(b.err, fmt.Errorf("error loading .env file: %w", err))
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(c *cli.Context) *configBuilder {
	if c == nil {
		return b
	}

	flagCfg := parseFlags(c)
	if c.IsSet(FlagExitOnStartupFailure) {
		b.exitOnFailure[flagCfg] = flagCfg.App.ExitOnStartupFailure
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
