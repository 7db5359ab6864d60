package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/atlas/internal/country"
)

type listPayload struct {
	Count     int              `json:"count" yaml:"count"`
	Countries []country.Record `json:"countries" yaml:"countries"`
}

func TestListCommand_TableOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "list")
	require.NoError(t, err)

	require.Contains(t, stdout, "NAME")
	require.Contains(t, stdout, "Afghanistan")
	require.Contains(t, stdout, "Kabul")
	require.Contains(t, stdout, "France")
	// buffers are not terminals, so borders fall back to ASCII
	require.NotContains(t, stdout, "╭")
}

func TestListCommand_SearchAndRegionJSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "list", "--search", "fra", "--region", "europe", "--format", "json")
	require.NoError(t, err)

	var payload listPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, 1, payload.Count)
	require.Equal(t, "France", payload.Countries[0].Name)
	require.Equal(t, "Paris", payload.Countries[0].Capital)
}

func TestListCommand_SearchAcrossRegions(t *testing.T) {
	stdout, _, err := executeCommand(t, "list", "--search", "FRA", "--format", "json")
	require.NoError(t, err)

	var payload listPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	for _, c := range payload.Countries {
		require.Contains(t, strings.ToLower(c.Name), "fra")
	}
	require.GreaterOrEqual(t, payload.Count, 1)
}

func TestListCommand_NoMatches(t *testing.T) {
	stdout, _, err := executeCommand(t, "list", "--search", "fra", "--region", "Asia")
	require.NoError(t, err)
	require.Contains(t, stdout, "No countries match")
}

func TestListCommand_DataFlagYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "small.yaml", smallDataset)

	stdout, _, err := executeCommand(t, "list", "--data", path, "--format", "yaml")
	require.NoError(t, err)

	var payload listPayload
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, 3, payload.Count)
	require.Equal(t, "Iceland", payload.Countries[0].Name)
}

func TestListCommand_UnknownRegion(t *testing.T) {
	path := writeFile(t, t.TempDir(), "small.yaml", smallDataset)

	_, _, err := executeCommand(t, "list", "--data", path, "--region", "Atlantis")
	require.Error(t, err)

	var cmdErr *commandError
	require.ErrorAs(t, err, &cmdErr)
	require.Contains(t, err.Error(), `region "Atlantis"`)
	require.Contains(t, err.Error(), "Available regions: Europe, Americas.")
}

func TestListCommand_InvalidFormat(t *testing.T) {
	_, _, err := executeCommand(t, "list", "--format", "csv")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown format")
}

func TestListCommand_DataFlagMissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "list", "--data", "/nonexistent/countries.json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "dataset file does not exist")
}

func TestListCommand_DatasetFromConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data/small.yaml", smallDataset)
	configPath := writeFile(t, dir, "config.yaml", "dataset: data/small.yaml\nascii: true\n")

	stdout, _, err := executeCommand(t, "list", "--config", configPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "Chile")
	require.NotContains(t, stdout, "Afghanistan")
}

func TestListCommand_InvalidConfig(t *testing.T) {
	configPath := writeFile(t, t.TempDir(), "config.yaml", "theme: neon\n")

	_, _, err := executeCommand(t, "list", "--config", configPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load configuration")
	require.Contains(t, err.Error(), "theme")
}

func TestListCommand_VerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "list", "-v", "--format", "json")
	require.NoError(t, err)
	require.Contains(t, stdout, `"countries"`)
	require.Contains(t, stderr, "countries loaded")
}
