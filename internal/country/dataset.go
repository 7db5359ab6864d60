package country

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	atlaserrors "github.com/alexisbeaulieu97/atlas/pkg/errors"
)

//go:embed data/countries.json
var embeddedData embed.FS

const (
	embeddedPath = "data/countries.json"
	// EmbeddedSourceName identifies the built-in dataset in logs and errors.
	EmbeddedSourceName = "embedded:countries.json"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Format is a dataset encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	default:
		return "json"
	}
}

// FormatFromPath picks the dataset encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatJSON, fmt.Errorf("unsupported dataset extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Source supplies the dataset. Load is called once per session.
type Source interface {
	Name() string
	Load() ([]Record, error)
}

// EmbeddedSource serves the dataset compiled into the binary.
type EmbeddedSource struct{}

// Name implements Source.
func (EmbeddedSource) Name() string { return EmbeddedSourceName }

// Load implements Source.
func (EmbeddedSource) Load() ([]Record, error) { return LoadEmbedded() }

// FileSource reads a JSON or YAML dataset from disk.
type FileSource struct {
	Path string
}

// Name implements Source.
func (s FileSource) Name() string { return s.Path }

// Load implements Source.
func (s FileSource) Load() ([]Record, error) { return LoadFile(s.Path) }

// SourceFor returns a FileSource for a non-empty path and the embedded dataset otherwise.
func SourceFor(path string) Source {
	if strings.TrimSpace(path) == "" {
		return EmbeddedSource{}
	}
	return FileSource{Path: path}
}

// LoadEmbedded decodes and validates the built-in dataset.
func LoadEmbedded() ([]Record, error) {
	data, err := embeddedData.ReadFile(embeddedPath)
	if err != nil {
		return nil, atlaserrors.NewParseError(EmbeddedSourceName, 0, err)
	}
	return decodeBytes(EmbeddedSourceName, data, FormatJSON)
}

// LoadFile reads, decodes and validates a dataset file.
func LoadFile(path string) ([]Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, atlaserrors.NewParseError(path, 0, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, atlaserrors.NewParseError(path, 0, err)
	}
	defer file.Close()

	return Decode(file, format, path)
}

// Decode reads a dataset from r. source names the input in errors.
func Decode(r io.Reader, format Format, source string) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, atlaserrors.NewParseError(source, 0, err)
	}
	return decodeBytes(source, data, format)
}

func decodeBytes(source string, data []byte, format Format) ([]Record, error) {
	var records []Record

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, atlaserrors.NewParseError(source, extractYAMLLine(err), err)
		}
	default:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, atlaserrors.NewParseError(source, 0, errors.New("empty document"))
		}
		decoder := json.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(&records); err != nil {
			return nil, atlaserrors.NewParseError(source, jsonErrorLine(data, err), err)
		}
		var trailing json.RawMessage
		if err := decoder.Decode(&trailing); !errors.Is(err, io.EOF) {
			line := lineAt(data, decoder.InputOffset())
			return nil, atlaserrors.NewParseError(source, line, errors.New("unexpected data after dataset"))
		}
	}

	if records == nil {
		records = []Record{}
	}

	if err := Validate(source, records); err != nil {
		return nil, err
	}

	return records, nil
}

func extractYAMLLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}

func jsonErrorLine(data []byte, err error) int {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}

	return lineAt(data, offset)
}

func lineAt(data []byte, offset int64) int {
	offset = min(max(offset, 0), int64(len(data)))
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
