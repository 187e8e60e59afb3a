package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrTooManyCIDRs    = errors.New("too many CIDRs in request")
	ErrCIDRTooLong     = errors.New("CIDR string is too long")
	ErrInvalidMaxCIDRs = errors.New("max CIDRs must be positive")
)
