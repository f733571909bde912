package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codingchica/patterns/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// execute runs the CLI with args against a fresh command tree
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"PATTERNS_OUTPUT_FORMAT", "PATTERNS_NO_COLOR", "PATTERNS_LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	a := &app{logger: zap.NewNop()}
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestHumanCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "adult flies by airplane",
			args: []string{"human", "Alice", "a person", "--adult"},
			want: []string{"Alice (Person)", "Strategy:    airplane", "Board an airplane and fly inside it.", "Species:    Homo sapiens"},
		},
		{
			name: "child cannot fly",
			args: []string{"human", "Alice", "a person"},
			want: []string{"Strategy:    none", "Unable to fly"},
		},
		{
			name: "strategy override",
			args: []string{"human", "Alice", "a person", "--strategy", "flap-wings"},
			want: []string{"Strategy:    flap_wings", "Flap wings and fly."},
		},
		{
			name:    "strategy cleared",
			args:    []string{"human", "Alice", "a person", "--adult", "--strategy", "none"},
			want:    []string{"Unable to fly"},
			notWant: []string{"airplane"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
		})
	}
}

func TestSquirrelCommand(t *testing.T) {
	out, err := execute(t, "squirrel", "Rocky", "a squirrel", "--adult")
	require.NoError(t, err)
	assert.Contains(t, out, "Rocky (Flying Squirrel)")
	assert.Contains(t, out, "Spread wings and glide.")
	assert.Contains(t, out, "Tribe:      Pteromyini")
	assert.NotContains(t, out, "Genus", "absent ranks are not printed")

	out, err = execute(t, "squirrel", "Rocky", "a squirrel")
	require.NoError(t, err)
	assert.Contains(t, out, "Unable to fly")
}

func TestCreateCommand_Errors(t *testing.T) {
	_, err := execute(t, "human", "Alice")
	assert.Error(t, err, "description is required")

	_, err = execute(t, "human", "Alice", "a person", "--strategy", "rocket")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flying strategy")

	_, err = execute(t, "human", " ", "a person")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create person: animal: name is required")
}

func TestHumanCommand_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "human", "Alice", "a person", "--adult")
	require.NoError(t, err)

	var doc struct {
		Name           string            `json:"name"`
		Description    string            `json:"description"`
		FlyingStrategy string            `json:"flying_strategy"`
		FlyingMessage  string            `json:"flying_message"`
		Classification map[string]string `json:"classification"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Alice", doc.Name)
	assert.Equal(t, "a person", doc.Description)
	assert.Equal(t, "airplane", doc.FlyingStrategy)
	assert.Equal(t, "Board an airplane and fly inside it.", doc.FlyingMessage)
	assert.Equal(t, "Homo", doc.Classification["genus"])
}

func TestSquirrelCommand_YAML(t *testing.T) {
	out, err := execute(t, "-o", "yaml", "squirrel", "Rocky", "a squirrel")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Rocky", doc["name"])
	assert.Equal(t, "Unable to fly", doc["flying_message"])
	assert.NotContains(t, doc, "flying_strategy")
}

func TestStrategiesCommand(t *testing.T) {
	out, err := execute(t, "strategies")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "airplane\tBoard an airplane and fly inside it.", lines[0])
	assert.Equal(t, "unable_to_fly\tUnable to fly", lines[3])

	out, err = execute(t, "--format", "json", "strategies")
	require.NoError(t, err)
	var docs []strategyDocument
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 4)
	assert.Equal(t, "Spread wings and glide.", docs[2].Message)
}

func TestTaxonomyCommand(t *testing.T) {
	out, err := execute(t, "taxonomy", "person")
	require.NoError(t, err)
	assert.Contains(t, out, "Person")
	assert.Contains(t, out, "Infraorder: Simiformes")

	out, err = execute(t, "-o", "json", "taxonomy", "flying-squirrel")
	require.NoError(t, err)
	var doc map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Glaucomys sabrinus", doc["species"])

	_, err = execute(t, "taxonomy", "bat")
	assert.Error(t, err)
}

func TestStatusCommand(t *testing.T) {
	out, err := execute(t, "status", "200", "404", "418")
	require.NoError(t, err)
	assert.Contains(t, out, "200\tOK\tsuccessful")
	assert.Contains(t, out, "404\tNot Found\tclient_error")
	assert.Contains(t, out, "418\tunknown")

	out, err = execute(t, "-o", "json", "status", "500")
	require.NoError(t, err)
	var docs []statusDocument
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 1)
	assert.True(t, docs[0].Known)
	assert.Equal(t, "server_error", string(docs[0].Class))

	_, err = execute(t, "status", "two-hundred")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status code")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_format: json\n"), 0o600))

	out, err := execute(t, "--config", path, "strategies")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), "config file should switch output to JSON")

	// Flags win over the file
	out, err = execute(t, "--config", path, "--format", "text", "strategies")
	require.NoError(t, err)
	assert.False(t, json.Valid([]byte(out)))
}

func TestInvalidFormatFlag(t *testing.T) {
	_, err := execute(t, "--format", "xml", "strategies")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output_format")
}

func TestSetup_ResolvesConfig(t *testing.T) {
	t.Setenv("PATTERNS_OUTPUT_FORMAT", "yaml")
	t.Setenv("PATTERNS_LOG_LEVEL", "")
	t.Setenv("PATTERNS_NO_COLOR", "")

	a := &app{logger: zap.NewNop(), verbose: true}
	cmd := newRootCmd(a)
	require.NoError(t, a.setup(cmd))

	assert.Equal(t, config.FormatYAML, a.cfg.OutputFormat)
	assert.Equal(t, "debug", a.cfg.LogLevel, "--verbose forces debug logging")
}
