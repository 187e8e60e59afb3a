package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid. The concrete field errors are joined to them.
var (
	// ErrInvalidServerConfigs indicates invalid listener, timeout or
	// published client settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAnalysisConfigs indicates non-positive analysis limits.
	ErrInvalidAnalysisConfigs = errors.New("invalid analysis configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing config URL or load timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero health interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidLoggingConfigs indicates an unknown log level.
	ErrInvalidLoggingConfigs = errors.New("invalid logging configuration")
)
