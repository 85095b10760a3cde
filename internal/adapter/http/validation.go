package http

import (
	"reflect"
	"strings"

	advertDomain "shopadmin-backend/internal/domain/advert"
	notifDomain "shopadmin-backend/internal/domain/notification"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report field errors under the json name the caller actually sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// advert lifecycle status (wire-exact, case-sensitive)
	_ = v.RegisterValidation("advertstatus", func(fl validator.FieldLevel) bool {
		return advertDomain.Status(fl.Field().String()).Valid()
	})
	// notification delivery status
	_ = v.RegisterValidation("notifstatus", func(fl validator.FieldLevel) bool {
		return notifDomain.Status(fl.Field().String()).Valid()
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// ToFieldErrors maps validator.ValidationErrors into the field-keyed message
// map of the response envelope.
func ToFieldErrors(err error) map[string]string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out[field] = "is required"
		case "required_if":
			out[field] = "is required for this action"
		case "uuid4":
			out[field] = "must be a UUID"
		case "advertstatus":
			out[field] = "must be one of PENDING, APPROVED, ACTIVE, REJECTED, EXPIRED, CANCELLED, PAUSED"
		case "notifstatus":
			out[field] = "must be one of PENDING, FAILED, SENT, RETRYING"
		case "oneof":
			out[field] = "must be one of " + e.Param()
		case "gte":
			out[field] = "must be greater than or equal to " + e.Param()
		case "lte":
			out[field] = "must be less than or equal to " + e.Param()
		case "min":
			out[field] = "must have length at least " + e.Param()
		case "max":
			out[field] = "must have length at most " + e.Param()
		case "datetime":
			out[field] = "must be an RFC3339 datetime"
		default:
			out[field] = e.Tag() + " validation failed"
		}
	}
	return out
}
