package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a dataset or config decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RecordError describes one malformed dataset record.
type RecordError struct {
	Index   int
	Name    string
	Field   string
	Message string
}

// Error implements error so records can be matched through DatasetError.Unwrap.
func (e RecordError) Error() string {
	return e.String()
}

func (e RecordError) String() string {
	label := fmt.Sprintf("record %d", e.Index)
	if e.Name != "" {
		label = fmt.Sprintf("record %d (%s)", e.Index, e.Name)
	}
	return fmt.Sprintf("%s: %s: %s", label, e.Field, e.Message)
}

// DatasetError reports every malformed record found while loading a dataset.
type DatasetError struct {
	Source  string
	Records []RecordError
}

// NewDatasetError constructs a DatasetError for the given source.
func NewDatasetError(source string, records []RecordError) error {
	return &DatasetError{Source: source, Records: append([]RecordError(nil), records...)}
}

func (e *DatasetError) Error() string {
	if e == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "dataset error: %s: %d malformed record(s)", e.Source, len(e.Records))
	for _, rec := range e.Records {
		b.WriteString("\n  - ")
		b.WriteString(rec.String())
	}
	return b.String()
}

// Unwrap exposes each malformed record as its own error.
func (e *DatasetError) Unwrap() []error {
	if e == nil {
		return nil
	}
	errs := make([]error, 0, len(e.Records))
	for _, rec := range e.Records {
		errs = append(errs, rec)
	}
	return errs
}

// Fields returns the distinct offending field names in report order.
func (e *DatasetError) Fields() []string {
	if e == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(e.Records))
	fields := make([]string, 0, len(e.Records))
	for _, rec := range e.Records {
		if _, ok := seen[rec.Field]; ok {
			continue
		}
		seen[rec.Field] = struct{}{}
		fields = append(fields, rec.Field)
	}
	return fields
}
