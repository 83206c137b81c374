// Package validation wraps go-playground/validator so request DTOs are checked
// in one pass and every violated field is reported, not just the first.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their JSON names so error maps match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Accepts a full RFC 3339 timestamp or a plain calendar date.
	_ = v.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		if _, err := time.Parse(time.RFC3339, raw); err == nil {
			return true
		}
		_, err := time.Parse("2006-01-02", raw)
		return err == nil
	})

	return v
}

// Struct validates s and returns a field→message map, keyed by the JSON path
// relative to s (e.g. "personalInfo.firstName"). Returns nil when valid.
func Struct(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = message(fe)
	}
	return fields
}

// Merge copies src into dst, prefixing keys when prefix is non-empty.
func Merge(dst, src map[string]string, prefix string) map[string]string {
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		if prefix != "" {
			k = prefix + "." + k
		}
		dst[k] = v
	}
	return dst
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "valid email is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s items", fe.Field(), fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("at least %s %s required", fe.Param(), fe.Field())
	case "oneof":
		return fmt.Sprintf("invalid %s", fe.Field())
	case "iso8601":
		return fmt.Sprintf("%s must be a valid ISO 8601 date", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
