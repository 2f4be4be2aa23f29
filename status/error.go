package status

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error is a middleware-reported failure. Op is the boundary operation that
// produced it (for example "Studio_System_GetEvent"), Code the raw status,
// Message the middleware's diagnostic text. Message retrieval is not bound,
// so both backends leave it empty today.
type Error struct {
	Op      string
	Code    Code
	Message string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Code.String())
	if e.Message != "" {
		b.WriteString(" - ")
		b.WriteString(e.Message)
	}
	b.WriteString(" (")
	b.WriteString(strconv.FormatInt(int64(e.Code), 10))
	b.WriteByte(')')
	return b.String()
}

// Is matches another *Error by code. A target with an empty Op matches any
// operation, so errors.Is(err, &status.Error{Code: status.ErrInvalidHandle})
// tests the code alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op != "" && t.Op != e.Op {
		return false
	}
	return e.Code == t.Code
}

// Check converts a raw status integer from a binding call into an error.
// It returns nil for OK and a *Error for everything else, mapping
// unrecognized integers to Unknown.
func Check(op string, raw int32) error {
	code := CodeFromInt(raw)
	if code == OK {
		return nil
	}
	return &Error{Op: op, Code: code}
}

// IsCode reports whether err carries the given middleware status code.
func IsCode(err error, code Code) bool {
	var se *Error
	return errors.As(err, &se) && se.Code == code
}

// DiscriminantError reports an enum value that crossed the boundary but
// matches no known discriminant. The two runtimes encode these constants
// independently, so a mismatch means the tables have drifted.
type DiscriminantError struct {
	Op    string
	Enum  string
	Value int32
}

func (e *DiscriminantError) Error() string {
	return fmt.Sprintf("%s: value %d matches no %s discriminant", e.Op, e.Value, e.Enum)
}

// UTF8Error reports a string payload that arrived as invalid UTF-8.
type UTF8Error struct {
	Op string
}

func (e *UTF8Error) Error() string {
	return e.Op + ": string payload is not valid UTF-8"
}

// NulError reports an outbound string with an embedded NUL byte, which
// cannot be represented on the far side of either binding.
type NulError struct {
	Op string
}

func (e *NulError) Error() string {
	return e.Op + ": string argument contains a NUL byte"
}
