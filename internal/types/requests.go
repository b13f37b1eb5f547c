// Package types provides the request and response shapes exchanged with the
// browser client, validated at the HTTP boundary.
package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultCountry is used when a job search request names no country.
const DefaultCountry = "us"

// SkillExtractionRequest is the body of POST /api/extract-skills.
type SkillExtractionRequest struct {
	ResumeText string `json:"resumeText" validate:"required"`
}

// Validate validates the SkillExtractionRequest using the validator.
func (r *SkillExtractionRequest) Validate() error {
	return validateStruct(r)
}

// JobSearchRequest is the body of POST /api/search-jobs.
type JobSearchRequest struct {
	Skills  []string `json:"skills" validate:"required,min=1"`
	Country string   `json:"country,omitempty"`
}

// Validate validates the JobSearchRequest using the validator.
func (r *JobSearchRequest) Validate() error {
	return validateStruct(r)
}

// CountryCode returns the requested country upper-cased, defaulting to US.
// Any other value is passed upstream as sent.
func (r *JobSearchRequest) CountryCode() string {
	if r.Country == "" {
		return strings.ToUpper(DefaultCountry)
	}
	return strings.ToUpper(r.Country)
}

// Validatable is implemented by every request type.
type Validatable interface {
	Validate() error
}

// DecodeError indicates a request body that is not a well-formed JSON object of
// the expected shape.
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid request body: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid request body: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// ValidationError indicates a decoded request that fails field validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Decode reads a single JSON object from r into v, rejecting unknown fields,
// then validates it.
func Decode(r io.Reader, v Validatable) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return &DecodeError{Message: "request body is empty"}
		}
		return &DecodeError{Message: "malformed JSON", Cause: err}
	}

	return v.Validate()
}

func validateStruct(s any) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Field: fe.Field(), Message: describeTag(fe)}
	}
	return err
}

// jsonFieldName reports validation failures under the JSON names the client sent.
func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
