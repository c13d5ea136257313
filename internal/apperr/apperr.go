// Package apperr defines the error kinds shared by the map pipeline stages.
//
// Stages wrap one of the sentinels with context (path, row, column) using
// fmt.Errorf and %w, so callers can match the kind with errors.Is.
package apperr

import "errors"

var (
	// ErrMissingFile reports an input path that does not exist.
	ErrMissingFile = errors.New("missing file")
	// ErrParse reports malformed GeoJSON or an unreadable spreadsheet.
	ErrParse = errors.New("parse error")
	// ErrMissingField reports an absent required spreadsheet column or value.
	ErrMissingField = errors.New("missing required field")
	// ErrWrite reports an output document that could not be written.
	ErrWrite = errors.New("write error")
)
