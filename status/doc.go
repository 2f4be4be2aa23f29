// Package status maps FMOD result codes to a closed Go error taxonomy.
//
// Every fallible binding call returns an FMOD_RESULT integer before any
// payload is meaningful. This package owns the numeric table for those
// codes and the error types both backend variants report through, so that
// call sites see identical errors regardless of which binding produced them.
//
// The table is a copy of FMOD's published FMOD_RESULT values. Codes this
// package does not recognize degrade to Unknown instead of failing, so a
// newer middleware build cannot crash an older client.
//
// The package also carries the marshalling failure types specific to the
// interop binding: enum discriminants that match no known value, strings
// that arrive as invalid UTF-8, and outbound strings with embedded NUL
// bytes.
package status
