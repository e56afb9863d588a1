package ingest

import (
	"errors"
	"strings"
)

var (
	// ErrUnreadable is returned when the input cannot be decoded into a table.
	ErrUnreadable = errors.New("unreadable input")
	// ErrMissingValue marks a mandatory cell that is empty.
	ErrMissingValue = errors.New("missing value")
	// ErrInvalidDate marks a date cell that cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
)

// MissingColumnsError lists the required fields no header could be resolved to.
type MissingColumnsError struct {
	Fields []Field
}

func (e *MissingColumnsError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return "missing required columns: " + strings.Join(names, ", ")
}
