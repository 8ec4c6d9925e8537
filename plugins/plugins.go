package plugins

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gqlgo/gqlgenphp/config"
	"github.com/gqlgo/gqlgenphp/plugins/phpgen"
)

// GenerateCode runs every plugin enabled by cfg against the loaded schema.
func GenerateCode(cfg *config.Config, logger *zap.Logger) error {
	// php
	phpGen := phpgen.New(cfg.PHP, logger)
	if err := phpGen.MutateConfig(cfg.GQLGenConfig); err != nil {
		return fmt.Errorf("%s failed: %w", phpGen.Name(), err)
	}

	return nil
}
