// Package lexerrors defines coded errors for the I/O layer around the
// scanner. Lexical problems inside source text are never represented here;
// those become Error-kind tokens and the scan keeps going.
package lexerrors

import (
	"errors"
	"fmt"
)

// Error carries a stable code plus enough context for a user to act on.
type Error struct {
	// Code is the stable error code (e.g. "SOURCE_NOT_FOUND")
	Code string
	// Message is the human-readable error message
	Message string
	// Cause describes why the error occurred
	Cause string
	// Action suggests what the user should do
	Action string
	// Underlying is the wrapped error
	Underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *Error) Unwrap() error {
	return e.Underlying
}

// New creates a new Error
func New(code, message, cause, action string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
		Action:  action,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, code, message, cause, action string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Cause:      cause,
		Action:     action,
		Underlying: err,
	}
}

// Common error codes
const (
	ErrCodeSourceNotFound   = "SOURCE_NOT_FOUND"
	ErrCodeSourceRead       = "SOURCE_READ_ERROR"
	ErrCodeKeywordsNotFound = "KEYWORDS_NOT_FOUND"
	ErrCodeKeywordsRead     = "KEYWORDS_READ_ERROR"
	ErrCodeKeywordsParse    = "KEYWORDS_PARSE_ERROR"
)

// SourceNotFound creates a missing source file error
func SourceNotFound(path string) *Error {
	return New(
		ErrCodeSourceNotFound,
		fmt.Sprintf("Source file not found: %s", path),
		"The specified source file does not exist",
		"Check the file path, or pass '-' to read from stdin",
	)
}

// SourceReadError creates an unreadable source file error
func SourceReadError(path string, err error) *Error {
	return Wrap(
		err,
		ErrCodeSourceRead,
		fmt.Sprintf("Failed to read source file: %s", path),
		"Permission denied or the file is not readable",
		"Check file permissions with 'ls -l' and ensure the file is readable",
	)
}

// KeywordsNotFound creates a missing keyword file error
func KeywordsNotFound(path string) *Error {
	return New(
		ErrCodeKeywordsNotFound,
		fmt.Sprintf("Keyword file not found: %s", path),
		"The specified keyword file does not exist",
		"Check the path given to --keywords, or omit the flag to use the built-in set",
	)
}

// KeywordsReadError creates an unreadable keyword file error
func KeywordsReadError(path string, err error) *Error {
	return Wrap(
		err,
		ErrCodeKeywordsRead,
		fmt.Sprintf("Failed to read keyword file: %s", path),
		"Permission denied or the file is not readable",
		"Check file permissions and ensure the file is readable",
	)
}

// KeywordsParseError creates a keyword file parse error
func KeywordsParseError(path string, err error) *Error {
	return Wrap(
		err,
		ErrCodeKeywordsParse,
		fmt.Sprintf("Failed to parse keyword file: %s", path),
		"Invalid YAML syntax, structure, or unknown fields (check for typos)",
		"Expected a document of the form 'keywords: [word, ...]'",
	)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
