package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/atlas/internal/country"
)

type listPayload struct {
	Count     int              `json:"count" yaml:"count"`
	Countries []country.Record `json:"countries" yaml:"countries"`
}

func newPayload(records []country.Record) listPayload {
	if records == nil {
		records = []country.Record{}
	}
	return listPayload{Count: len(records), Countries: records}
}

// JSON writes records as an indented {count, countries} document.
func JSON(w io.Writer, records []country.Record) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newPayload(records))
}

// YAML writes records with the same envelope as JSON.
func YAML(w io.Writer, records []country.Record) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newPayload(records)); err != nil {
		return err
	}
	return encoder.Close()
}

// Write dispatches to the writer for format.
func Write(w io.Writer, format Format, records []country.Record, opts Options) error {
	switch format {
	case FormatJSON:
		return JSON(w, records)
	case FormatYAML:
		return YAML(w, records)
	default:
		return Table(w, records, opts)
	}
}
