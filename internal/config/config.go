package config

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment. Inside GitHub Actions the action
// inputs arrive as INPUT_<NAME> variables.
type Config struct {
	GithubActions bool `env:"GITHUB_ACTIONS"`

	Path            string `env:"INPUT_PATH"`
	FailOnErrorFlag string `env:"INPUT_FAIL-ON-ERROR"`
	Format          string `env:"INPUT_FORMAT"`
	CheckRunFlag    string `env:"INPUT_CHECK-RUN"`

	GithubToken string `env:"GITHUB_TOKEN"`
	Repository  string `env:"GITHUB_REPOSITORY"`
	HeadSHA     string `env:"GITHUB_SHA"`

	LogLevel string `env:"ACTIONS_LINT_LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FailOnError is true unless the input is literally "false".
func (c *Config) FailOnError() bool {
	return strings.TrimSpace(c.FailOnErrorFlag) != "false"
}

func (c *Config) CheckRun() bool {
	return strings.TrimSpace(c.CheckRunFlag) == "true"
}

// Owner and repo name of GITHUB_REPOSITORY, empty when unset or malformed.
func (c *Config) RepositoryParts() (string, string) {
	owner, name, ok := strings.Cut(c.Repository, "/")
	if !ok || owner == "" || name == "" {
		return "", ""
	}
	return owner, name
}
