package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON(t *testing.T) {
	data := []byte(`{
		"deprecated_actions": {"actions/create-release": "Use softprops/action-gh-release instead"},
		"deprecated_commands": [
			{"pattern": "set-output\\s+name=", "message": "deprecated", "fix": "use GITHUB_OUTPUT"}
		],
		"secret_patterns": ["ghp_[a-zA-Z0-9]{36}"],
		"injection_pattern": "github\\.head_ref"
	}`)

	tables, err := FromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, "Use softprops/action-gh-release instead", tables.DeprecatedActions["actions/create-release"])
	assert.Len(t, tables.DeprecatedCommands, 1)
	assert.Equal(t, "use GITHUB_OUTPUT", tables.DeprecatedCommands[0].Fix)
	assert.Equal(t, []string{"ghp_[a-zA-Z0-9]{36}"}, tables.SecretPatterns)
	assert.Equal(t, `github\.head_ref`, tables.InjectionPattern)
}

func TestFromJSON_Invalid(t *testing.T) {
	_, err := FromJSON([]byte(`{"deprecated_actions": [`))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	tables, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name   string
		action string
		advice string
	}{
		{name: "create-release", action: "actions/create-release", advice: "Use softprops/action-gh-release instead"},
		{name: "upload-release-asset", action: "actions/upload-release-asset", advice: "Use softprops/action-gh-release instead"},
		{name: "rust toolchain", action: "actions-rs/toolchain", advice: "Use dtolnay/rust-toolchain instead"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.advice, tables.DeprecatedActions[tt.action])
		})
	}

	assert.Len(t, tables.DeprecatedCommands, 4)
	assert.Len(t, tables.SecretPatterns, 6)
	require.NotNil(t, tables.Injection)
	assert.True(t, tables.Injection.MatchString("${{ github.event.issue.title }}"))
	assert.True(t, tables.Injection.MatchString("${{github.head_ref}}"))
	assert.False(t, tables.Injection.MatchString("${{ github.event.issue.number }}"))
	assert.True(t, tables.SecretPatterns[0].MatchString(`PASSWORD: "hunter2"`))
	assert.False(t, tables.SecretPatterns[0].MatchString(`password: ${{ secrets.X }}`))
}

func TestCompile_InvalidPattern(t *testing.T) {
	raw, err := FromJSON([]byte(`{"secret_patterns": ["(unclosed"]}`))
	require.NoError(t, err)

	_, err = Compile(raw)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "compiling secret pattern")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"deprecated_actions": {"foo/bar": "use baz"}}`), 0o600))

	tables, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"foo/bar": "use baz"}, tables.DeprecatedActions)
	assert.Nil(t, tables.Injection)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reading policy file")
}
