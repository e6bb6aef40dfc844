package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/ajg/form"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/ShwetaPawar0705/IRIS/internal/errors"
	"github.com/ShwetaPawar0705/IRIS/internal/infrastructure"
)

// QueryValidator decodes URL query parameters into structs tagged with
// `form:"name"` and validates them with go-playground/validator.
//
// Use *string fields: a parameter that is present but empty decodes to a
// pointer to "", so `validate:"required"` only rejects absent ones.
type QueryValidator struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// NewQueryValidator reports violations under the parameter's form name
func NewQueryValidator(logger *slog.Logger) *QueryValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	return &QueryValidator{
		validate: v,
		logger:   infrastructure.WithComponent(logger, "query_validator"),
	}
}

// BindQuery fills dst, a pointer to a struct, from r's query string and
// validates it. Only the first value of a repeated parameter is used.
// Validation failures are returned as a 422 *APIError.
func (v *QueryValidator) BindQuery(r *http.Request, dst interface{}) error {
	if rv := reflect.ValueOf(dst); rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind query: destination must be a pointer to struct, got %T", dst)
	}

	dec := form.NewDecoder(nil)
	dec.IgnoreUnknownKeys(true)
	if err := dec.DecodeValues(dst, firstValues(r.URL.Query())); err != nil {
		return fmt.Errorf("bind query: %w", err)
	}

	return v.ValidateStruct(r, dst)
}

// firstValues keeps the first value of every named parameter
func firstValues(query url.Values) url.Values {
	out := make(url.Values, len(query))
	for k, vs := range query {
		if k == "" || len(vs) == 0 {
			continue
		}
		out.Set(k, vs[0])
	}
	return out
}

// ValidateStruct validates s and converts failures to a 422 APIError
func (v *QueryValidator) ValidateStruct(r *http.Request, s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate %T: %w", s, err)
	}

	details := make([]apierrors.ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fieldViolation(fe))
	}

	v.logger.DebugContext(r.Context(), "query validation failed",
		slog.String("path", r.URL.Path),
		slog.Int("violations", len(details)))

	return apierrors.NewValidationErrors(details)
}

func fieldViolation(fe validator.FieldError) apierrors.ValidationError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return apierrors.MissingParameter(field)
	case "max":
		return apierrors.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %s characters", field, fe.Param()),
		}
	default:
		return apierrors.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s failed %s validation", field, fe.Tag()),
		}
	}
}
