package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cidr-viewer/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldCIDRs targets the legacy uncategorized list of an analysis request.
	FieldCIDRs = "cidrs"

	// FieldVPCCIDRs targets the VPC list of an analysis request.
	FieldVPCCIDRs = "vpc_cidrs"

	// FieldSubnetCIDRs targets the subnet list of an analysis request.
	FieldSubnetCIDRs = "subnet_cidrs"

	// FieldTotal targets the combined size of all lists of an analysis request.
	FieldTotal = "total"

	// FieldCIDR targets the single CIDR of a validation request.
	FieldCIDR = "cidr"
)

// MaxCIDRLength bounds a single CIDR string. The longest IPv4 CIDR is 18
// characters; the slack leaves room for whitespace and mistakes that still
// deserve a parse error rather than a rejection.
const MaxCIDRLength = 64

// CIDRRequestValidator checks the shape of analysis and validation requests
// before any address arithmetic runs. It does not judge whether a CIDR is
// well formed: malformed CIDRs are reported in the analysis result.
type CIDRRequestValidator struct {
	maxCIDRs int
}

// NewCIDRRequestValidator returns a Validator accepting at most maxCIDRs
// strings per analysis request.
func NewCIDRRequestValidator(maxCIDRs int) (Validator, error) {
	if maxCIDRs <= 0 {
		return nil, ErrInvalidMaxCIDRs
	}
	return &CIDRRequestValidator{maxCIDRs: maxCIDRs}, nil
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of models.AnalysisRequest and models.ValidationRequest are accepted.
// When fields is empty every field is validated.
func (v *CIDRRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AnalysisRequest:
		return v.validateAnalysisRequest(value, fields...)
	case *models.AnalysisRequest:
		if value == nil {
			return fmt.Errorf("%w: nil analysis request", ErrUnsupportedType)
		}
		return v.validateAnalysisRequest(*value, fields...)
	case models.ValidationRequest:
		return v.validateValidationRequest(value, fields...)
	case *models.ValidationRequest:
		if value == nil {
			return fmt.Errorf("%w: nil validation request", ErrUnsupportedType)
		}
		return v.validateValidationRequest(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CIDRRequestValidator) validateAnalysisRequest(req models.AnalysisRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTotal, FieldVPCCIDRs, FieldSubnetCIDRs, FieldCIDRs}
	}

	var errs []error
	for _, field := range fields {
		var err error
		switch field {
		case FieldTotal:
			if req.Len() > v.maxCIDRs {
				err = fmt.Errorf("%w: %d given, at most %d allowed", ErrTooManyCIDRs, req.Len(), v.maxCIDRs)
			}
		case FieldVPCCIDRs:
			err = validateCIDRList(FieldVPCCIDRs, req.VPCCIDRs)
		case FieldSubnetCIDRs:
			err = validateCIDRList(FieldSubnetCIDRs, req.SubnetCIDRs)
		case FieldCIDRs:
			err = validateCIDRList(FieldCIDRs, req.CIDRs)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (v *CIDRRequestValidator) validateValidationRequest(req models.ValidationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCIDR}
	}

	for _, field := range fields {
		if field != FieldCIDR {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err := validation.Validate(req.CIDR, validation.RuneLength(0, MaxCIDRLength)); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCIDRTooLong, FieldCIDR, err)
		}
	}

	return nil
}

func validateCIDRList(name string, cidrs []string) error {
	err := validation.Validate(cidrs, validation.Each(validation.RuneLength(0, MaxCIDRLength)))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCIDRTooLong, name, err)
	}
	return nil
}
