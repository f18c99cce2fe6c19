package translator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultMaxLength is used when a caller does not bound the generation.
	DefaultMaxLength = 256
	// MinMaxLength and MaxMaxLength bound the max_length field.
	MinMaxLength = 1
	MaxMaxLength = 512
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Request is a validated translation request. Build one through NewRequest;
// a zero Request is not valid.
type Request struct {
	Text      string    `validate:"required"`
	Direction Direction `validate:"required,oneof=en vi"`
	MaxLength int       `validate:"min=1,max=512"`
}

// NewRequest validates raw inputs into a Request. Whitespace-only text is
// rejected. MaxLength must already be resolved by the caller: pass
// DefaultMaxLength when the field was not supplied.
func NewRequest(text, sourceLang string, maxLength int) (Request, error) {
	if strings.TrimSpace(text) == "" {
		return Request{}, &ValidationError{Field: "text", Message: "text must not be empty"}
	}

	direction, err := ParseDirection(sourceLang)
	if err != nil {
		return Request{}, err
	}

	req := Request{
		Text:      text,
		Direction: direction,
		MaxLength: maxLength,
	}
	if err := validate.Struct(req); err != nil {
		return Request{}, asValidationError(err)
	}

	return req, nil
}

func asValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: "request", Message: err.Error()}
	}

	switch fieldErrs[0].StructField() {
	case "MaxLength":
		return &ValidationError{
			Field:   "max_length",
			Message: fmt.Sprintf("max_length must be between %d and %d", MinMaxLength, MaxMaxLength),
		}
	case "Direction":
		return &ValidationError{Field: "source_lang", Message: "source_lang must be one of: en, vi"}
	default:
		return &ValidationError{Field: "text", Message: "text must not be empty"}
	}
}
