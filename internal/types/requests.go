// Package types provides type definitions for structured data used throughout the ats-scanner system.
package types

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// validate is safe for concurrent use and caches struct metadata
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("failed to register notblank validation: %v", err))
	}
	// Report JSON field names so errors match request bodies
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// ScoreRequest is the request body for scoring a resume.
type ScoreRequest struct {
	Resume string `json:"resume" validate:"required,notblank"`
}

// TargetRequest is the request body for matching a resume against a job description.
type TargetRequest struct {
	JobDescription string `json:"job_description" validate:"required,notblank"`
	Resume         string `json:"resume" validate:"required,notblank"`
}

// KeywordsRequest is the request body for scanning a job description.
type KeywordsRequest struct {
	JobDescription string `json:"job_description" validate:"required,notblank"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the TargetRequest using the validator.
func (r *TargetRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the KeywordsRequest using the validator.
func (r *KeywordsRequest) Validate() error {
	return validate.Struct(r)
}
