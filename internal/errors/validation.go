package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationBuilder accumulates field problems and turns them into a single
// InvalidArgument error. Build returns nil when nothing was recorded.
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field records a problem with a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// RequiredField records a missing field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField records a field with an unusable value
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Field(field, "is invalid: "+reason)
}

// Range records a problem when value falls outside [lo, hi]
func (vb *ValidationBuilder) Range(field string, value, lo, hi int) *ValidationBuilder {
	if value < lo || value > hi {
		vb.Field(field, fmt.Sprintf("must be between %d and %d", lo, hi))
	}
	return vb
}

// HasErrors reports whether any field problem was recorded
func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.fields) > 0
}

// Build returns the accumulated error or nil
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}

	names := make([]string, 0, len(vb.fields))
	for name := range vb.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	err := InvalidArgument("")
	for i, name := range names {
		msg := strings.Join(vb.fields[name], ", ")
		parts[i] = name + ": " + msg
		err.WithMeta(name, msg)
	}
	err.Message = "validation failed: " + strings.Join(parts, "; ")
	return err
}
