package status

import "testing"

func TestCodeFromInt(t *testing.T) {
	tests := []struct {
		name string
		in   int32
		want Code
	}{
		{"ok", 0, OK},
		{"first error", 1, ErrBadCommand},
		{"invalid handle", 30, ErrInvalidHandle},
		{"event not found", 74, ErrEventNotFound},
		{"last published", 81, ErrTooManySamples},
		{"one past table", 82, Unknown},
		{"future code", 4000, Unknown},
		{"negative", -1, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeFromInt(tt.in); got != tt.want {
				t.Errorf("CodeFromInt(%d) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// Every integer in the published range must round-trip through CodeFromInt
// unchanged, and every code must have a distinct name.
func TestCodeTableTotal(t *testing.T) {
	seen := make(map[string]Code)
	for i := int32(0); i <= int32(Unknown); i++ {
		c := CodeFromInt(i)
		if i < int32(Unknown) && int32(c) != i {
			t.Errorf("CodeFromInt(%d) = %d, want identity", i, int32(c))
		}
		name := c.String()
		if name == "" {
			t.Errorf("code %d has empty name", i)
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("codes %d and %d share name %q", prev, c, name)
		}
		seen[name] = c
	}
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{OK, "OK"},
		{ErrBadCommand, "ERR_BADCOMMAND"},
		{ErrInvalidHandle, "ERR_INVALID_HANDLE"},
		{ErrEventNotFound, "ERR_EVENT_NOTFOUND"},
		{ErrTooManySamples, "ERR_TOOMANYSAMPLES"},
		{Unknown, "ERR_UNKNOWN"},
		{Code(-5), "ERR_UNKNOWN(-5)"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Code(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}
