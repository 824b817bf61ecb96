package slot

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldErrors maps a field name to the message shown next to that input.
// An empty map means the draft is valid.
type FieldErrors map[string]string

// Valid reports whether no field has an error.
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// FeeRule selects how strictly the fee-per-hour input is checked.
type FeeRule int

const (
	// FeeStrict requires a non-negative number.
	FeeStrict FeeRule = iota
	// FeePresence only requires the field to be filled in.
	FeePresence
)

const (
	MessageNumberRequired      = "Slot number is required"
	MessageSizeRequired        = "Slot size is required"
	MessageVehicleTypeRequired = "Vehicle type is required"
	MessageLocationRequired    = "Location is required"
	MessageFeeRequired         = "Fee per hour is required"
	MessageFeeInvalid          = "Valid positive charging fee is required"
)

var requiredMessages = map[string]string{
	FieldNumber:      MessageNumberRequired,
	FieldSize:        MessageSizeRequired,
	FieldVehicleType: MessageVehicleTypeRequired,
	FieldLocation:    MessageLocationRequired,
	FieldFeePerHour:  MessageFeeRequired,
}

const feeTag = "fee"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their json names so errors line up with form inputs.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation(feeTag, func(fl validator.FieldLevel) bool {
		_, err := ParseFee(fl.Field().String())
		return err == nil
	})
	return v
}

// ErrNegativeFee is returned by ParseFee for values below zero.
var ErrNegativeFee = errors.New("fee must not be negative")

// ParseFee parses a fee-per-hour input. Surrounding whitespace is ignored.
func ParseFee(s string) (decimal.Decimal, error) {
	fee, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if fee.IsNegative() {
		return decimal.Zero, ErrNegativeFee
	}
	return fee, nil
}

// Validate checks every field of d and returns the errors found. All fields
// are checked on each call; the result never depends on other drafts.
func Validate(d Draft, rule FeeRule) FieldErrors {
	errs := FieldErrors{}

	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if msg, ok := requiredMessages[fe.Field()]; ok {
					errs[fe.Field()] = msg
				}
			}
		}
	}

	if rule == FeeStrict {
		if err := validate.Var(d.FeePerHour, feeTag); err != nil {
			errs[FieldFeePerHour] = MessageFeeInvalid
		}
	}

	return errs
}
