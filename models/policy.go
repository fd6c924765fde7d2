package models

// PolicyTables is the static data the checks match against. It is loaded once
// and shared read-only between checks.
type PolicyTables struct {
	DeprecatedActions  map[string]string   `json:"deprecated_actions"`
	DeprecatedCommands []DeprecatedCommand `json:"deprecated_commands"`
	SecretPatterns     []string            `json:"secret_patterns"`
	InjectionPattern   string              `json:"injection_pattern"`
}

type DeprecatedCommand struct {
	Pattern string `json:"pattern"`
	Message string `json:"message"`
	Fix     string `json:"fix"`
}
