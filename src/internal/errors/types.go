package errors

import (
	stderrors "errors"
	"fmt"
)

// MissingRequiredFieldError is returned when a message is constructed without
// a field its payload needs
type MissingRequiredFieldError struct {
	Method string `json:"method"`
	Field  string `json:"field"`
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field '%s' for %s", e.Field, e.Method)
}

// Code returns the JSON-RPC style code for this error
func (e *MissingRequiredFieldError) Code() int { return MissingParameter }

// UnsupportedConfigValueError is returned when a configuration value has no
// JSON representation
type UnsupportedConfigValueError struct {
	Path   string `json:"path"`
	Type   string `json:"type"`
	Reason string `json:"reason,omitempty"`
}

func (e *UnsupportedConfigValueError) Error() string {
	msg := fmt.Sprintf("unsupported config value of type %s at %s", e.Type, displayPath(e.Path))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Code returns the JSON-RPC style code for this error
func (e *UnsupportedConfigValueError) Code() int { return InvalidParameterType }

// CyclicConfigError is returned when a configuration value contains itself
type CyclicConfigError struct {
	Path string `json:"path"`
}

func (e *CyclicConfigError) Error() string {
	return fmt.Sprintf("cyclic config value at %s", displayPath(e.Path))
}

// Code returns the JSON-RPC style code for this error
func (e *CyclicConfigError) Code() int { return CyclicConfiguration }

// ConfigError wraps failures to load or validate the configuration file
type ConfigError struct {
	Path  string
	Cause error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %v", e.Path, e.Cause)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Code returns the JSON-RPC style code for this error
func (e *ConfigError) Code() int { return ConfigurationError }

func displayPath(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}

// Error constructors

// NewMissingRequiredFieldError creates a new MissingRequiredFieldError
func NewMissingRequiredFieldError(method, field string) *MissingRequiredFieldError {
	return &MissingRequiredFieldError{Method: method, Field: field}
}

// NewUnsupportedConfigValueError creates a new UnsupportedConfigValueError
func NewUnsupportedConfigValueError(path string, value interface{}, reason string) *UnsupportedConfigValueError {
	return &UnsupportedConfigValueError{
		Path:   path,
		Type:   fmt.Sprintf("%T", value),
		Reason: reason,
	}
}

// NewCyclicConfigError creates a new CyclicConfigError
func NewCyclicConfigError(path string) *CyclicConfigError {
	return &CyclicConfigError{Path: path}
}

// NewConfigError creates a new ConfigError
func NewConfigError(path string, cause error) *ConfigError {
	return &ConfigError{Path: path, Cause: cause}
}

// Error classification helpers

// IsMissingRequiredFieldError checks if err is or wraps a MissingRequiredFieldError
func IsMissingRequiredFieldError(err error) bool {
	var target *MissingRequiredFieldError
	return stderrors.As(err, &target)
}

// IsUnsupportedConfigValueError checks if err is or wraps an UnsupportedConfigValueError
func IsUnsupportedConfigValueError(err error) bool {
	var target *UnsupportedConfigValueError
	return stderrors.As(err, &target)
}

// IsCyclicConfigError checks if err is or wraps a CyclicConfigError
func IsCyclicConfigError(err error) bool {
	var target *CyclicConfigError
	return stderrors.As(err, &target)
}

// IsConfigError checks if err is or wraps a ConfigError
func IsConfigError(err error) bool {
	var target *ConfigError
	return stderrors.As(err, &target)
}

// CodeOf returns the code carried by err, or InternalError
func CodeOf(err error) int {
	var coded interface{ Code() int }
	if stderrors.As(err, &coded) {
		return coded.Code()
	}
	return InternalError
}
