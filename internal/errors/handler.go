package errors

import (
	"context"
	"errors"
	"fmt"
)

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
}

// Reporter prints user-facing error output.
type Reporter interface {
	ErrorLog(message string)
	Hint(message string)
}

// ErrorHandler provides centralized error handling at the command boundary.
type ErrorHandler struct {
	logger   Logger
	reporter Reporter
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger Logger, reporter Reporter) *ErrorHandler {
	return &ErrorHandler{
		logger:   logger,
		reporter: reporter,
	}
}

// Handle reports err to the user and returns the process exit code.
func (h *ErrorHandler) Handle(ctx context.Context, err error) int {
	if err == nil {
		return 0
	}

	if IsReported(err) {
		if h.logger != nil && !IsAlreadyExists(err) {
			h.logger.Error(ctx, err, "Command failed")
		}
		return ExitCode(err)
	}

	var ee *ExpressorError
	if errors.As(err, &ee) {
		h.handleExpressorError(ctx, ee)
	} else {
		h.handleGenericError(ctx, err)
	}

	return ExitCode(err)
}

func (h *ErrorHandler) handleExpressorError(ctx context.Context, err *ExpressorError) {
	switch err.Type {
	case ErrorTypeAlreadyExists:
		// The generator already told the user; nothing else to say.
		return
	case ErrorTypePromptCancelled:
		h.print(err.Message)
		return
	}

	if h.logger != nil {
		fields := []interface{}{"type", err.Type, "code", err.Code, "path", err.Path}
		if IsRecoverable(err) {
			h.logger.Warn(ctx, err, "Command stopped", fields...)
		} else {
			h.logger.Error(ctx, err, "Command failed", fields...)
		}
	}

	h.print("Error: " + UserMessage(err))
	if h.reporter == nil {
		return
	}
	for _, s := range Suggestions(err) {
		if s.Command != "" {
			h.reporter.Hint(fmt.Sprintf("%s: %s", s.Title, s.Command))
		} else {
			h.reporter.Hint(s.Title)
		}
	}
}

func (h *ErrorHandler) handleGenericError(ctx context.Context, err error) {
	if h.logger != nil {
		h.logger.Error(ctx, err, "Unhandled error occurred")
	}
	h.print("Error: " + err.Error())
}

func (h *ErrorHandler) print(message string) {
	if h.reporter != nil {
		h.reporter.ErrorLog(message)
	}
}

// UserMessage renders err without its error code.
func UserMessage(err error) string {
	var ee *ExpressorError
	if !errors.As(err, &ee) {
		return err.Error()
	}

	msg := ee.Message
	if ee.Path != "" {
		msg += " " + ee.Path
	}
	if ee.Cause != nil {
		msg += ": " + UserMessage(ee.Cause)
	}
	if output, ok := ee.Context["output"].(string); ok && output != "" {
		msg += "\n" + output
	}

	return msg
}
