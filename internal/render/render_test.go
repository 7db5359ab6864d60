package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/atlas/internal/country"
)

func sampleRecords() []country.Record {
	return []country.Record{
		{Name: "France", Alpha3Code: "FRA", Capital: "Paris", Region: "Europe", Subregion: "Western Europe", Population: 67391582},
		{Name: "Japan", Alpha3Code: "JPN", Capital: "Tokyo", Region: "Asia", Subregion: "Eastern Asia", Population: 125836021},
		{Name: "Antarctica", Alpha3Code: "ATA", Region: "Polar", Population: 1000},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatTable},
		{input: "table", want: FormatTable},
		{input: " JSON ", want: FormatJSON},
		{input: "yaml", want: FormatYAML},
		{input: "yml", want: FormatYAML},
		{input: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "table, json, yaml")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, sampleRecords(), Options{ASCII: true}))

	out := buf.String()
	for _, want := range []string{"NAME", "POPULATION", "France", "Paris", "Western Europe", "67,391,582", "Antarctica"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "—")
	assert.Less(t, strings.Index(out, "France"), strings.Index(out, "Japan"))
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, nil, Options{}))
	assert.Equal(t, EmptyMessage+"\n", buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleRecords()))

	var payload struct {
		Count     int              `json:"count"`
		Countries []country.Record `json:"countries"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, 3, payload.Count)
	assert.Equal(t, sampleRecords(), payload.Countries)
}

func TestJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, nil))
	assert.Contains(t, buf.String(), `"countries": []`)
	assert.Contains(t, buf.String(), `"count": 0`)
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, sampleRecords()[:1]))

	var payload map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, 1, payload["count"])
	assert.Contains(t, buf.String(), "name: France")
	assert.Contains(t, buf.String(), "capital: Paris")
}

func TestWriteDispatches(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleRecords(), Options{}))
	assert.True(t, strings.HasPrefix(buf.String(), "{"))

	buf.Reset()
	require.NoError(t, Write(&buf, FormatYAML, sampleRecords(), Options{}))
	assert.True(t, strings.HasPrefix(buf.String(), "count: 3"))
}

func TestRegions(t *testing.T) {
	regions := []string{"Europe", "Asia"}

	var plain bytes.Buffer
	require.NoError(t, Regions(&plain, regions, nil))
	assert.Equal(t, "Europe\nAsia\n", plain.String())

	var counted bytes.Buffer
	require.NoError(t, Regions(&counted, regions, map[string]int{"Europe": 2, "Asia": 1}))
	lines := strings.Split(strings.TrimSpace(counted.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "REGION")
	assert.Regexp(t, `^Europe\s+2$`, lines[1])
	assert.Regexp(t, `^Asia\s+1$`, lines[2])

	var empty bytes.Buffer
	require.NoError(t, Regions(&empty, nil, nil))
	assert.Contains(t, empty.String(), "No regions")
}
