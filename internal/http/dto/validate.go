package dto

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	dateYMDRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	phoneKRRe = regexp.MustCompile(`^01[0-9]-?[0-9]{3,4}-?[0-9]{4}$`)
	bizRegRe  = regexp.MustCompile(`^\d{3}-\d{2}-\d{5}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("dateymd", func(fl validator.FieldLevel) bool {
		return dateYMDRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phonekr", func(fl validator.FieldLevel) bool {
		return phoneKRRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("bizregno", func(fl validator.FieldLevel) bool {
		return bizRegRe.MatchString(fl.Field().String())
	})
	return v
}

// ValidateStruct checks a request against its schema tags and returns a
// client-facing description of the first violations.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := snakeCase(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", field)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "eq":
		return fmt.Sprintf("%s must be accepted", field)
	case "dateymd":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	case "phonekr":
		return fmt.Sprintf("%s must be a valid mobile number", field)
	case "bizregno":
		return fmt.Sprintf("%s must match NNN-NN-NNNNN", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				prev := rune(s[i-1])
				if prev >= 'a' && prev <= 'z' || prev >= '0' && prev <= '9' {
					b.WriteByte('_')
				}
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
