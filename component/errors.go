package component

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownColor      = errors.New("unknown color")
	ErrInvalidHexFormat  = errors.New("invalid hex color format")
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

const (
	ReasonMissingDiscriminant = "missing discriminant"
	ReasonInvalidType         = "invalid type for field"
	ReasonMalformed           = "malformed object"
	ReasonInvalidValue        = "invalid value"
	ReasonUnknownAction       = "unknown action"
	ReasonInvalidJSON         = "invalid json"
)

// DecodeError reports malformed wire input. Path is the dotted location of the
// offending value inside the document, empty for the root.
type DecodeError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := "decode component"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErr(path, reason string, err error) error {
	return &DecodeError{Path: path, Reason: reason, Err: err}
}

func fieldPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}
