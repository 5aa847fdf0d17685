// Package errors provides standardized error handling for the GXplorer
// application. It defines common error types, constants, and helper functions
// for consistent error creation, wrapping, and handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	NotFound
	AlreadyExists
	AccessDenied
	InvalidPath
	InvalidName
	OperationFailed
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Plugin error kinds
	InvalidPlugin
	PluginNotFound
)

// Common error constants for frequently occurring errors
var (
	ErrNotFound      = NewFileError("path not found", "", NotFound, nil)
	ErrAlreadyExists = NewFileError("path already exists", "", AlreadyExists, nil)
	ErrAccessDenied  = NewFileError("access denied", "", AccessDenied, nil)
	ErrInvalidConfig = NewConfigError("invalid configuration", "", InvalidConfig, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to filesystem operations
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// PluginError represents errors related to plugin descriptors
type PluginError struct {
	ApplicationError
	pluginName string
}

// NewPluginError creates a new plugin error
func NewPluginError(msg string, pluginName string, kind ErrorKind, err error) *PluginError {
	return &PluginError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		pluginName: pluginName,
	}
}

// Error returns the plugin error message
func (e *PluginError) Error() string {
	if e.pluginName != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.pluginName, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.pluginName)
	}
	return e.ApplicationError.Error()
}

// PluginName returns the plugin name associated with the error
func (e *PluginError) PluginName() string {
	return e.pluginName
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// kindOf extracts the error kind from the first typed error in the chain
func kindOf(err error) ErrorKind {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind()
	}
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return Unknown
}

// IsNotFound checks if the error is a path not found error
func IsNotFound(err error) bool {
	return kindOf(err) == NotFound
}

// IsAlreadyExists checks if the error is a collision error
func IsAlreadyExists(err error) bool {
	return kindOf(err) == AlreadyExists
}

// IsAccessDenied checks if the error is an access denied error
func IsAccessDenied(err error) bool {
	return kindOf(err) == AccessDenied
}

// IsInvalidName checks if the error is an invalid name error
func IsInvalidName(err error) bool {
	return kindOf(err) == InvalidName
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsInvalidPlugin checks if the error is an invalid plugin error
func IsInvalidPlugin(err error) bool {
	var pluginErr *PluginError
	if errors.As(err, &pluginErr) {
		return pluginErr.Kind() == InvalidPlugin
	}
	return false
}
