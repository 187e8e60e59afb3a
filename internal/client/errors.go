package client

import "errors"

var (
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrNoCIDRsProvided     = errors.New("no CIDRs provided")
	ErrAPIUnhealthy        = errors.New("API is unhealthy")
)
