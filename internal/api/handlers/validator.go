package handlers

import (
	"reflect"
	"strings"

	"jobboard-api/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// maxSalary is the first value that no longer fits numeric(12,2).
var maxSalary = decimal.New(1, 10)

// NewValidator returns a validator that reports JSON/query field names and
// knows the enum tags used by the DTOs.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				continue
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("job_type", func(fl validator.FieldLevel) bool {
		return models.JobType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("application_status", func(fl validator.FieldLevel) bool {
		return models.ApplicationStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("visibility", func(fl validator.FieldLevel) bool {
		return models.Visibility(fl.Field().String()).IsValid()
	})

	// Decimals are validated through their string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("salary", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return !d.IsNegative() && d.LessThan(maxSalary) && d.Equal(d.Round(2))
	})

	return v
}
