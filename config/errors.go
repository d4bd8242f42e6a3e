// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// A ValidationError lists the configuration keys that failed validation.
type ValidationError struct {
	Fields []FieldError
}

// A FieldError describes one invalid configuration value.
type FieldError struct {
	// Field is the dotted struct path, for example "Config.Retry.MaxRetries".
	Field string
	// Rule is the validation rule that failed, such as "oneof".
	Rule string
	// Value is the offending value.
	Value string
}

func newValidationError(errs validator.ValidationErrors) *ValidationError {
	fields := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, FieldError{
			Field: fe.Namespace(),
			Rule:  fe.Tag(),
			Value: fmt.Sprintf("%v", fe.Value()),
		})
	}
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s=%q fails %s", f.Field, f.Value, f.Rule)
	}
	return "adagx/config: invalid configuration: " + strings.Join(parts, "; ")
}
