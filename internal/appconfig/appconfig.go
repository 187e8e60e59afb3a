package appconfig

import (
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
)

// Document keys with a typed meaning. Every other key is kept in
// [AppConfig.Values] untouched.
const (
	KeyAPIBaseURL = "apiBaseUrl"
	KeyAPITimeout = "apiTimeout"
)

const (
	DefaultAPIBaseURL = "http://localhost:8080/api"
	DefaultAPITimeout = 30 * time.Second
)

// AppConfig is the resolved runtime configuration.
type AppConfig struct {
	// APIBaseURL is the prefix of every API endpoint, without a trailing slash.
	APIBaseURL string
	// APITimeout bounds a single API request.
	APITimeout time.Duration
	// Values is the whole merged document, unknown keys included.
	Values map[string]any
}

// Defaults returns a fresh copy of the built-in configuration.
func Defaults() *AppConfig {
	return &AppConfig{
		APIBaseURL: DefaultAPIBaseURL,
		APITimeout: DefaultAPITimeout,
		Values: map[string]any{
			KeyAPIBaseURL: DefaultAPIBaseURL,
			KeyAPITimeout: DefaultAPITimeout.Milliseconds(),
		},
	}
}

// Get returns the raw value stored under key.
func (c *AppConfig) Get(key string) (any, bool) {
	v, ok := c.Values[key]
	return v, ok
}

// merge lays doc over the defaults. Keys in doc win. Typed fields whose value
// is empty or has the wrong type keep their default and are reported in the
// returned warnings. The typed keys of Values always hold the normalized
// typed fields, apiTimeout as milliseconds.
func merge(doc map[string]any) (*AppConfig, []error) {
	cfg := Defaults()

	if err := mergo.Merge(&cfg.Values, doc, mergo.WithOverride); err != nil {
		return Defaults(), []error{fmt.Errorf("error merging config document: %w", err)}
	}

	var warnings []error

	if raw, ok := doc[KeyAPIBaseURL]; ok {
		s, isString := raw.(string)
		url := strings.TrimRight(strings.TrimSpace(s), "/")
		switch {
		case !isString:
			warnings = append(warnings, fmt.Errorf("%s: expected string, got %T", KeyAPIBaseURL, raw))
		case url == "":
			warnings = append(warnings, fmt.Errorf("%s: empty", KeyAPIBaseURL))
		default:
			cfg.APIBaseURL = url
		}
	}

	if raw, ok := doc[KeyAPITimeout]; ok {
		d, err := parseTimeout(raw)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("%s: %w", KeyAPITimeout, err))
		} else {
			cfg.APITimeout = d
		}
	}

	cfg.Values[KeyAPIBaseURL] = cfg.APIBaseURL
	cfg.Values[KeyAPITimeout] = cfg.APITimeout.Milliseconds()

	return cfg, warnings
}

// parseTimeout accepts a JSON number of milliseconds or a duration string.
func parseTimeout(raw any) (time.Duration, error) {
	switch v := raw.(type) {
	case float64:
		if v <= 0 {
			return 0, fmt.Errorf("must be positive, got %v", v)
		}
		return time.Duration(v * float64(time.Millisecond)), nil
	case int:
		return parseTimeout(float64(v))
	case int64:
		return parseTimeout(float64(v))
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, err
		}
		if d <= 0 {
			return 0, fmt.Errorf("must be positive, got %s", v)
		}
		return d, nil
	default:
		return 0, fmt.Errorf("expected number of milliseconds or duration string, got %T", raw)
	}
}
