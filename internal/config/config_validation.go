// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var logLevels = []any{"debug", "info", "warn", "error"}

// validate checks that the merged server configuration can be used to
// start the HTTP server.
func (cfg *StructuredConfig) validate() error {
	if err := validation.ValidateStruct(&cfg.Server,
		validation.Field(&cfg.Server.HTTPAddress, validation.Required, validation.By(validateHostPort)),
		validation.Field(&cfg.Server.RequestTimeout, validation.By(positiveDuration)),
		validation.Field(&cfg.Server.ShutdownTimeout, validation.By(positiveDuration)),
		validation.Field(&cfg.Server.PublicAPIBaseURL, validation.Required, validation.By(validateAbsoluteURL)),
		validation.Field(&cfg.Server.PublicAPITimeout, validation.By(positiveDuration)),
	); err != nil {
		return errors.Join(ErrInvalidServerConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Analysis,
		validation.Field(&cfg.Analysis.MaxCIDRs, validation.Required, validation.Min(1)),
		validation.Field(&cfg.Analysis.MaxComparisons, validation.Required, validation.Min(1)),
	); err != nil {
		return errors.Join(ErrInvalidAnalysisConfigs, err)
	}

	if err := validateLogLevel(cfg.Logging.Level); err != nil {
		return errors.Join(ErrInvalidLoggingConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validation.ValidateStruct(&cfg.Adapter,
		validation.Field(&cfg.Adapter.ConfigURL, validation.Required),
		validation.Field(&cfg.Adapter.ConfigLoadTimeout, validation.By(positiveDuration)),
	); err != nil {
		return errors.Join(ErrInvalidAdapterConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Workers,
		validation.Field(&cfg.Workers.HealthInterval, validation.By(positiveDuration)),
	); err != nil {
		return errors.Join(ErrInvalidWorkerConfigs, err)
	}

	if err := validateLogLevel(cfg.Logging.Level); err != nil {
		return errors.Join(ErrInvalidLoggingConfigs, err)
	}

	return nil
}

func validateLogLevel(level string) error {
	return validation.Validate(level, validation.Required, validation.In(logLevels...))
}

func validateHostPort(value interface{}) error {
	s, _ := value.(string)
	if _, _, err := net.SplitHostPort(s); err != nil {
		return validation.NewError("validation_host_port", "must be in host:port format")
	}
	return nil
}

func validateAbsoluteURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return validation.NewError("validation_absolute_url", "must be an absolute URL")
	}
	return nil
}

func positiveDuration(value interface{}) error {
	d, ok := value.(time.Duration)
	if !ok {
		return validation.NewError("validation_invalid_type", fmt.Sprintf("must be a duration, got %T", value))
	}
	if d <= 0 {
		return validation.NewError("validation_positive_duration", "must be a positive duration")
	}
	return nil
}
