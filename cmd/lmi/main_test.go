package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HendryAvila/lifemorale/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate keeps config discovery away from the developer's files.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func payload(t *testing.T, score float64) []byte {
	t.Helper()
	answers := make([]pipeline.Answer, pipeline.AnswerCount)
	for i := range answers {
		answers[i] = pipeline.Answer{Score: pipeline.Some(score)}
	}
	data, err := json.Marshal(pipeline.Input{Answers: answers})
	require.NoError(t, err)
	return data
}

// result is the part of the score output the tests inspect.
type result struct {
	Current struct {
		Calibrated []pipeline.Value `json:"calibrated"`
		FinalLMI   float64          `json:"finalLMI"`
	} `json:"current"`
}

func execute(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// --- score ---

func TestScore_Stdin(t *testing.T) {
	isolate(t)
	out, err := execute(t, payload(t, 10), "score")
	require.NoError(t, err)

	var got result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, (119*8.75+49*9.375)/168*0.98, got.Current.FinalLMI, 1e-9)
}

func TestScore_FileYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "week.json")
	require.NoError(t, os.WriteFile(path, payload(t, 5), 0o600))

	out, err := execute(t, nil, "score", path, "--output", "yaml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Contains(t, got, "current")
	assert.Contains(t, got, "topDrainers")
}

func TestScore_ConfigFileApplies(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("scoring:\n  calibration:\n    max: 10\n"), 0o600))

	out, err := execute(t, payload(t, 10), "score", "--config", cfgPath)
	require.NoError(t, err)

	var got result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	first, ok := got.Current.Calibrated[0].Get()
	require.True(t, ok)
	assert.InDelta(t, 10.0, first, 1e-9)
}

func TestScore_InvalidPayload(t *testing.T) {
	isolate(t)
	_, err := execute(t, []byte("{"), "score")
	require.Error(t, err)
	assert.ErrorIs(t, err, pipeline.ErrInvalidRequest)
}

func TestScore_UnknownOutput(t *testing.T) {
	isolate(t)
	_, err := execute(t, payload(t, 5), "score", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestScore_MissingFile(t *testing.T) {
	isolate(t)
	_, err := execute(t, nil, "score", "does-not-exist.json")
	require.Error(t, err)
}

// --- version ---

func TestVersion(t *testing.T) {
	out, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "lmi v"), out)
}
