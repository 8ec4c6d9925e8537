package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gqlgo/gqlgenphp/config"
	"github.com/gqlgo/gqlgenphp/plugins"
)

type options struct {
	configFile string
	verbose    bool
}

func run(ctx context.Context, opts options) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfgFile := opts.configFile
	if cfgFile == "" {
		cfgFile, err = config.FindConfigFile(".", config.DefaultConfigFilenames)
		if err != nil {
			return fmt.Errorf("failed to find config file: %w", err)
		}
	}
	logger.Debug("loading config", zap.String("file", cfgFile))

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}

	if err := cfg.LoadSchema(ctx); err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}
	for _, source := range cfg.GQLGenConfig.Sources {
		logger.Debug("schema source loaded", zap.String("name", source.Name))
	}

	if err := plugins.GenerateCode(cfg, logger); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true

	return cfg.Build()
}
