package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/mwpack/internal/config"
	"github.com/imamik/mwpack/internal/logging"
)

// Validate checks the memo path and, when given, the cluster config.
func Validate(ctx context.Context, memoPath, configPath string) error {
	log := logging.FromContext(ctx)

	if err := config.ValidateMemoPath(memoPath); err != nil {
		return err
	}
	log.V(1).Info("memo ok", "path", memoPath)

	if configPath != "" {
		if _, err := config.LoadClusterConfig(configPath); err != nil {
			return err
		}
		log.V(1).Info("config ok", "path", configPath)
	}

	fmt.Println("Validation passed")
	return nil
}
