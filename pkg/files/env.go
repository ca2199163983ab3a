package files

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/ventiq/ventiq-terminal/pkg/models"
)

// EnvPrefix prefixes every settings environment variable
const EnvPrefix = "VENTIQ_"

// ApplyEnv overrides settings with the VENTIQ_* variables that are set.
// Unset variables leave the current value alone.
func ApplyEnv(settings *models.Settings) error {
	if err := env.ParseWithOptions(settings, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
