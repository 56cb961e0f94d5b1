package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the categories of failure a command can end with.
type ErrorType string

const (
	ErrorTypeInvalidName     ErrorType = "invalid_name"
	ErrorTypeAlreadyExists   ErrorType = "already_exists"
	ErrorTypeTemplateLoad    ErrorType = "template_load"
	ErrorTypeWrite           ErrorType = "write"
	ErrorTypeExternalProcess ErrorType = "external_process"
	ErrorTypePromptCancelled ErrorType = "prompt_cancelled"
	ErrorTypeConfig          ErrorType = "config"
)

// Common error codes.
const (
	ErrCodeEmptyName         = "ERR_EMPTY_NAME"
	ErrCodeUnsafeName        = "ERR_UNSAFE_NAME"
	ErrCodeArtifactExists    = "ERR_ARTIFACT_EXISTS"
	ErrCodeTemplateMissing   = "ERR_TEMPLATE_MISSING"
	ErrCodeTemplateInvalid   = "ERR_TEMPLATE_INVALID"
	ErrCodeDirectoryMissing  = "ERR_DIRECTORY_MISSING"
	ErrCodeWriteFailed       = "ERR_WRITE_FAILED"
	ErrCodeCommandFailed     = "ERR_COMMAND_FAILED"
	ErrCodeCommandNotAllowed = "ERR_COMMAND_NOT_ALLOWED"
	ErrCodeCloneFailed       = "ERR_CLONE_FAILED"
	ErrCodePromptCancelled   = "ERR_PROMPT_CANCELLED"
	ErrCodeConfigInvalid     = "ERR_CONFIG_INVALID"
)

// ContextCommand is the Context key naming the command that failed.
const ContextCommand = "command"

// ExpressorError is a structured error type with context.
type ExpressorError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Path        string
	Recoverable bool
}

// Error implements the error interface.
func (e *ExpressorError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Path != "" {
		parts = append(parts, e.Path)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *ExpressorError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *ExpressorError) Is(target error) bool {
	var t *ExpressorError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *ExpressorError) WithContext(key string, value interface{}) *ExpressorError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithMessage replaces the user-facing message.
func (e *ExpressorError) WithMessage(message string) *ExpressorError {
	e.Message = message

	return e
}

// Error creation functions

// NewInvalidNameError creates an error for a missing or unusable name.
func NewInvalidNameError(code, message string) *ExpressorError {
	return &ExpressorError{
		Type:        ErrorTypeInvalidName,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewAlreadyExistsError reports that an artifact is already on disk.
// It is the only error kind that ends a command successfully.
func NewAlreadyExistsError(label, path string) *ExpressorError {
	return &ExpressorError{
		Type:        ErrorTypeAlreadyExists,
		Code:        ErrCodeArtifactExists,
		Message:     label + " already exists.",
		Path:        path,
		Recoverable: true,
	}
}

// NewTemplateLoadError creates an error for a missing or corrupt template resource.
func NewTemplateLoadError(code, templateID string, cause error) *ExpressorError {
	return &ExpressorError{
		Type:        ErrorTypeTemplateLoad,
		Code:        code,
		Message:     "cannot load template " + templateID,
		Cause:       cause,
		Recoverable: false,
	}
}

// NewWriteError creates a file-system write error.
func NewWriteError(code, path string, cause error) *ExpressorError {
	return &ExpressorError{
		Type:        ErrorTypeWrite,
		Code:        code,
		Message:     "cannot write file",
		Cause:       cause,
		Path:        path,
		Recoverable: false,
	}
}

// NewExternalProcessError creates an error for a failed git or package-manager call.
func NewExternalProcessError(code, command string, output string, cause error) *ExpressorError {
	err := &ExpressorError{
		Type:        ErrorTypeExternalProcess,
		Code:        code,
		Message:     "command failed: " + command,
		Cause:       cause,
		Recoverable: false,
	}
	if output = strings.TrimSpace(output); output != "" {
		err.WithContext("output", output)
	}

	return err
}

// NewPromptCancelledError creates an error for an interrupted interactive prompt.
func NewPromptCancelledError(cause error) *ExpressorError {
	return &ExpressorError{
		Type:        ErrorTypePromptCancelled,
		Code:        ErrCodePromptCancelled,
		Message:     "Cancel.",
		Cause:       cause,
		Recoverable: false,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string, cause error) *ExpressorError {
	return &ExpressorError{
		Type:        ErrorTypeConfig,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// TypeOf returns the ErrorType carried by err, or "" for foreign errors.
func TypeOf(err error) ErrorType {
	var ee *ExpressorError
	if errors.As(err, &ee) {
		return ee.Type
	}

	return ""
}

// IsAlreadyExists checks if an error reports an existing artifact.
func IsAlreadyExists(err error) bool {
	return TypeOf(err) == ErrorTypeAlreadyExists
}

// IsPromptCancelled checks if the user aborted a prompt.
func IsPromptCancelled(err error) bool {
	return TypeOf(err) == ErrorTypePromptCancelled
}

// IsInvalidName checks if an error rejects a name.
func IsInvalidName(err error) bool {
	return TypeOf(err) == ErrorTypeInvalidName
}

// IsTemplateLoad checks if an error comes from a broken template resource.
func IsTemplateLoad(err error) bool {
	return TypeOf(err) == ErrorTypeTemplateLoad
}

// IsWrite checks if an error is a file-system write failure.
func IsWrite(err error) bool {
	return TypeOf(err) == ErrorTypeWrite
}

// IsExternalProcess checks if an error comes from git or the package manager.
func IsExternalProcess(err error) bool {
	return TypeOf(err) == ErrorTypeExternalProcess
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var ee *ExpressorError
	if errors.As(err, &ee) {
		return ee.Recoverable
	}

	return false
}

// ExitCode maps a command result to the process exit status.
// An existing artifact is a soft stop and exits 0.
func ExitCode(err error) int {
	if err == nil || IsAlreadyExists(err) {
		return 0
	}

	return 1
}

// reportedError marks an error whose message was already shown to the user.
type reportedError struct {
	err error
}

func (r *reportedError) Error() string { return r.err.Error() }
func (r *reportedError) Unwrap() error { return r.err }

// Reported marks err as already printed so the command boundary only
// logs it and sets the exit code.
func Reported(err error) error {
	if err == nil {
		return nil
	}

	return &reportedError{err: err}
}

// IsReported checks if err was marked with Reported.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// WithCommand records the failing command on err when it is an
// ExpressorError. Other errors are returned unchanged.
func WithCommand(err error, command string) error {
	var ee *ExpressorError
	if errors.As(err, &ee) {
		ee.WithContext(ContextCommand, command)
	}

	return err
}
