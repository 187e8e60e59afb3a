package appconfig

import "errors"

var (
	// ErrEmptyLocation is returned by NewSource when no location is given.
	ErrEmptyLocation = errors.New("empty config location")
	// ErrUnexpectedStatus is returned by the HTTP source for non-2xx answers.
	ErrUnexpectedStatus = errors.New("unexpected config response status")
	// ErrInvalidDocument is returned when the fetched document is not a JSON object.
	ErrInvalidDocument = errors.New("config document is not a JSON object")
)
