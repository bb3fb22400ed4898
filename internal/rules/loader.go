package rules

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/ColorRush_Go/internal/domain"
	"github.com/osse101/ColorRush_Go/internal/validation"
)

// Loader reads game rules from a YAML file checked against a JSON schema
type Loader struct {
	path       string
	schemaPath string
	schemas    validation.SchemaValidator
}

// NewLoader creates a rules loader
func NewLoader(path, schemaPath string, schemas validation.SchemaValidator) *Loader {
	return &Loader{
		path:       path,
		schemaPath: schemaPath,
		schemas:    schemas,
	}
}

// Load returns the rules from the file, or the defaults when the file does not exist.
// Keys absent from the file keep their default values.
func (l *Loader) Load() (Rules, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info(LogMsgRulesFileMissing, "path", l.path)
		return Default(), nil
	}
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}

	r, err := l.Parse(data)
	if err != nil {
		return Rules{}, err
	}

	slog.Info(LogMsgRulesLoaded,
		"path", l.path,
		"starting_balance", r.StartingBalance,
		"bet_amount", r.BetAmount,
		"win_amount", r.WinAmount,
		"selection_seconds", r.SelectionSeconds)
	return r, nil
}

// Parse decodes and validates a YAML rules document
func (l *Loader) Parse(data []byte) (Rules, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Rules{}, fmt.Errorf("%w: failed to parse YAML: %v", domain.ErrInvalidRules, err)
	}
	// An empty file decodes to nil; treat it as an empty mapping
	if doc == nil {
		doc = map[string]interface{}{}
	}

	if l.schemas != nil {
		if err := l.schemas.ValidateDocument(doc, l.schemaPath); err != nil {
			return Rules{}, fmt.Errorf("%w: %v", domain.ErrInvalidRules, err)
		}
	}

	r := Default()
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("%w: %v", domain.ErrInvalidRules, err)
	}

	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}
