package core

import "fmt"

// ValidationError reports a malformed node literal: a missing or unknown
// discriminant, a missing required field, or a value outside its domain.
type ValidationError struct {
	Kind   string // node kind being built, empty when the discriminant itself is bad
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Kind != "" && e.Field != "":
		return fmt.Sprintf("invalid %s: %s %s", e.Kind, e.Field, e.Reason)
	case e.Field != "":
		return fmt.Sprintf("invalid literal: %s %s", e.Field, e.Reason)
	case e.Kind != "":
		return fmt.Sprintf("invalid %s: %s", e.Kind, e.Reason)
	default:
		return "invalid literal: " + e.Reason
	}
}

// NewValidationError creates a ValidationError
func NewValidationError(kind, field, reason string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Reason: fmt.Sprintf(reason, args...)}
}

// StructuralError reports a malformed composition graph. Path locates the
// offending node, e.g. "world[2].children[0].child".
type StructuralError struct {
	Path   string
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Path == "" {
		return "structural error: " + e.Reason
	}
	return fmt.Sprintf("structural error at %s: %s", e.Path, e.Reason)
}

// NewStructuralError creates a StructuralError
func NewStructuralError(path, reason string, args ...interface{}) *StructuralError {
	return &StructuralError{Path: path, Reason: fmt.Sprintf(reason, args...)}
}

// ConfigurationError reports a Project, Scene or Settings invariant violation
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "configuration error: " + e.Reason
	}
	return fmt.Sprintf("configuration error: %s %s", e.Field, e.Reason)
}

// NewConfigurationError creates a ConfigurationError
func NewConfigurationError(field, reason string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(reason, args...)}
}
