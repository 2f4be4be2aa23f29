package fmod

import (
	"strings"
	"unicode/utf8"

	"github.com/audioforge/studio-bridge/status"
)

// checkString rejects strings the far side cannot represent. Both variants
// enforce the same rule so the same input yields the same error.
func checkString(op, s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return &status.NulError{Op: op}
	}
	return nil
}

// decodePath validates a path payload received from the middleware.
func decodePath(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", &status.UTF8Error{Op: "Studio_EventDescription_GetPath"}
	}
	return string(b), nil
}
