package policy

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/tracker-tv/actions-lint/models"
)

//go:embed policies/*.json
var embeddedPolicies embed.FS

type Command struct {
	Pattern *regexp.Regexp
	Message string
	Fix     string
}

// Tables is the compiled form of models.PolicyTables. It is immutable after
// Compile and safe to share between goroutines.
type Tables struct {
	DeprecatedActions  map[string]string
	DeprecatedCommands []Command
	SecretPatterns     []*regexp.Regexp
	Injection          *regexp.Regexp
}

func FromJSON(data []byte) (*models.PolicyTables, error) {
	var tables models.PolicyTables
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, err
	}
	return &tables, nil
}

// Default returns the tables shipped with the binary.
func Default() (*Tables, error) {
	data, err := embeddedPolicies.ReadFile("policies/default.json")
	if err != nil {
		return nil, err
	}
	return parse(data)
}

// Load reads tables from a JSON file on disk, replacing the embedded defaults.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy file %s: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Tables, error) {
	raw, err := FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decoding policy tables: %w", err)
	}
	return Compile(raw)
}

func Compile(raw *models.PolicyTables) (*Tables, error) {
	tables := &Tables{
		DeprecatedActions: make(map[string]string, len(raw.DeprecatedActions)),
	}
	for action, advice := range raw.DeprecatedActions {
		tables.DeprecatedActions[action] = advice
	}

	for _, cmd := range raw.DeprecatedCommands {
		re, err := regexp.Compile(cmd.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling deprecated command pattern %q: %w", cmd.Pattern, err)
		}
		tables.DeprecatedCommands = append(tables.DeprecatedCommands, Command{
			Pattern: re,
			Message: cmd.Message,
			Fix:     cmd.Fix,
		})
	}

	for _, pattern := range raw.SecretPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling secret pattern %q: %w", pattern, err)
		}
		tables.SecretPatterns = append(tables.SecretPatterns, re)
	}

	if raw.InjectionPattern != "" {
		re, err := regexp.Compile(raw.InjectionPattern)
		if err != nil {
			return nil, fmt.Errorf("compiling injection pattern: %w", err)
		}
		tables.Injection = re
	}

	return tables, nil
}
