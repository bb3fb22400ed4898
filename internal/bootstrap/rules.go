package bootstrap

import (
	"fmt"

	"github.com/osse101/ColorRush_Go/internal/config"
	"github.com/osse101/ColorRush_Go/internal/rules"
	"github.com/osse101/ColorRush_Go/internal/validation"
)

// LoadRules reads the game rules file named in cfg and checks it against its schema.
// A missing rules file yields the built-in defaults.
func LoadRules(cfg *config.Config) (rules.Rules, error) {
	loader := rules.NewLoader(cfg.RulesPath, cfg.RulesSchemaPath, validation.NewSchemaValidator())

	r, err := loader.Load()
	if err != nil {
		return rules.Rules{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadRules, err)
	}
	return r, nil
}
