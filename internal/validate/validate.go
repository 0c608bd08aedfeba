package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"cinebooking/internal/domain"
	"github.com/go-playground/validator/v10"
)

const (
	SchemaUser         = "user"
	SchemaBooking      = "booking"
	SchemaPayment      = "payment"
	SchemaNotification = "notification"
)

// Validator checks raw inputs against a named schema. It holds no state
// besides the rule engine, has no side effects and is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

func (val *Validator) Validate(input any, schema string) error {
	if err := checkSchemaType(input, schema); err != nil {
		return err
	}

	err := val.v.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &domain.ValidationError{
			Schema: schema,
			Field:  fieldPath(fe),
			Reason: reason(fe),
		}
	}
	return &domain.ValidationError{Schema: schema, Reason: err.Error()}
}

func checkSchemaType(input any, schema string) error {
	ok := false
	switch schema {
	case SchemaUser:
		_, ok = input.(domain.User)
	case SchemaBooking:
		_, ok = input.(domain.BookingRequest)
	case SchemaPayment:
		_, ok = input.(domain.PaymentOrder)
	case SchemaNotification:
		_, ok = input.(domain.NotificationPayload)
	default:
		return &domain.ValidationError{Schema: schema, Reason: "unknown schema"}
	}
	if !ok {
		return &domain.ValidationError{Schema: schema, Reason: fmt.Sprintf("unexpected payload type %T", input)}
	}
	return nil
}

// fieldPath strips the top-level struct name so errors read "totalAmount",
// not "BookingRequest.totalAmount".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must have length %s", fe.Param())
	case "unique":
		return "must not contain duplicates"
	case "credit_card":
		return "must be a valid card number"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
