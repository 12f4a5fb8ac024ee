package convert

import (
	"errors"
	"fmt"
)

// ReasonNoRule is the Reason of a ConversionError raised when no rule in the
// chain accepted the value.
const ReasonNoRule = "no rule accepted the value"

// ConversionError reports a value a registry could not convert.
type ConversionError struct {
	Family string
	Value  any
	Reason string
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.TooDeep() {
		// The value may be self-referential; printing it would not terminate.
		return fmt.Sprintf("convert: could not convert %T to a %s node: %s", e.Value, e.Family, e.Reason)
	}
	return fmt.Sprintf("convert: could not convert %s (%T) to a %s node: %s",
		describe(e.Value), e.Value, e.Family, e.Reason)
}

// describe quotes the String form of Stringers and falls back to Go syntax.
func describe(v any) string {
	if _, ok := v.(fmt.Stringer); ok {
		return fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("%#v", v)
}

// TooDeep reports whether the error came from the nesting guard.
func (e *ConversionError) TooDeep() bool {
	return e.Reason != ReasonNoRule
}

// IsConversionError reports whether err is, or wraps, a ConversionError.
func IsConversionError(err error) bool {
	var ce *ConversionError
	return errors.As(err, &ce)
}
