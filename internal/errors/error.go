package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/vango-dev/mirror/pkg/convert"
)

// Category represents the type of error.
type Category string

const (
	CategoryConversion Category = "conversion"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// Location represents a position in a file the user supplied.
type Location struct {
	File string
	Line int
}

// String returns the location as file:line.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Line > 0 {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return l.File
}

// Error is a structured error with a code, an explanation and a hint.
type Error struct {
	// Code is a unique error identifier (e.g., "M001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location points into the file that caused the error, if any.
	Location *Location

	// Context contains the lines around Location.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithLocation points the error at a line of a file and loads the lines
// around it.
func (e *Error) WithLocation(file string, line int) *Error {
	e.Location = &Location{File: file, Line: line}
	if line > 0 {
		e.Context = readContextLines(file, line, 5)
	}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new Error with a formatted message (no code).
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps err in an Error. Conversion failures get their own codes;
// anything else is wrapped under code.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	var ce *convert.ConversionError
	if stderrors.As(err, &ce) {
		if ce.TooDeep() {
			return New("M002").Wrap(err)
		}
		return New("M001").Wrap(err)
	}
	return New(code).Wrap(err)
}
