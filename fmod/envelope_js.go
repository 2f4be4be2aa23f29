//go:build js && wasm

package fmod

import (
	"fmt"
	"syscall/js"
	"unicode/utf8"

	"github.com/audioforge/studio-bridge/status"
)

// Result Envelope destructuring. Every boundary function returns one JS
// object {result, value0?, value1?}; the helpers below reconstruct the
// (status, payload...) shape the native binding returns as Go values.
// Payload fields are only read when the status is OK, and an OK envelope
// missing a field its shape requires surfaces as an EnvelopeError rather
// than a syscall/js panic.

// member reads one envelope field, rejecting absent ones.
func member(op string, v js.Value, name string) (js.Value, error) {
	f := v.Get(name)
	if f.IsUndefined() || f.IsNull() {
		return js.Undefined(), &EnvelopeError{Op: op, Field: name}
	}
	return f, nil
}

// envStatus decodes a status-only envelope.
func envStatus(op string, v js.Value) error {
	res, err := member(op, v, "result")
	if err != nil {
		return err
	}
	return status.Check(op, int32(res.Int()))
}

// envRef decodes a status+handle envelope into a boundary reference.
func envRef(op string, v js.Value) (js.Value, error) {
	if err := envStatus(op, v); err != nil {
		return js.Undefined(), err
	}
	return member(op, v, "value0")
}

// envRefList decodes a status+handle-list envelope. The payload arrives as
// a boundary-native array and is mapped element-wise.
func envRefList(op string, v js.Value) ([]js.Value, error) {
	arr, err := envRef(op, v)
	if err != nil {
		return nil, err
	}
	n := arr.Length()
	refs := make([]js.Value, 0, n)
	for i := 0; i < n; i++ {
		refs = append(refs, arr.Index(i))
	}
	return refs, nil
}

// envInt decodes a status+i32 envelope.
func envInt(op string, v js.Value) (int32, error) {
	payload, err := envRef(op, v)
	if err != nil {
		return 0, err
	}
	return int32(payload.Int()), nil
}

// envFloat decodes a status+f32 envelope.
func envFloat(op string, v js.Value) (float32, error) {
	payload, err := envRef(op, v)
	if err != nil {
		return 0, err
	}
	return float32(payload.Float()), nil
}

// envFloat2 decodes a status+f32+f32 envelope (set value, final value).
func envFloat2(op string, v js.Value) (float32, float32, error) {
	value, err := envRef(op, v)
	if err != nil {
		return 0, 0, err
	}
	finalValue, err := member(op, v, "value1")
	if err != nil {
		return 0, 0, err
	}
	return float32(value.Float()), float32(finalValue.Float()), nil
}

// envBool decodes a status+bool envelope.
func envBool(op string, v js.Value) (bool, error) {
	payload, err := envRef(op, v)
	if err != nil {
		return false, err
	}
	return payload.Truthy(), nil
}

// envString decodes a status+string envelope, re-validating the payload as
// UTF-8 before it is handed to callers.
func envString(op string, v js.Value) (string, error) {
	payload, err := envRef(op, v)
	if err != nil {
		return "", err
	}
	s := payload.String()
	if !utf8.ValidString(s) {
		return "", &status.UTF8Error{Op: op}
	}
	return s, nil
}

// envPlaybackState decodes a status+enum envelope and re-tags the
// discriminant, rejecting values outside the known table.
func envPlaybackState(op string, v js.Value) (PlaybackState, error) {
	raw, err := envInt(op, v)
	if err != nil {
		return PlaybackStopped, err
	}
	ps := PlaybackState(raw)
	if !ps.Valid() {
		return PlaybackStopped, &status.DiscriminantError{Op: op, Enum: "PlaybackState", Value: raw}
	}
	return ps, nil
}

// envAttributes decodes a status+attributes envelope. The boundary has no
// transparent layout sharing for compound types, so the record is rebuilt
// field by field.
func envAttributes(op string, v js.Value) (Attributes3D, error) {
	attrs, err := envRef(op, v)
	if err != nil {
		return Attributes3D{}, err
	}

	var out Attributes3D
	for _, part := range []struct {
		name string
		dst  *Vector
	}{
		{"position", &out.Position},
		{"velocity", &out.Velocity},
		{"forward", &out.Forward},
		{"up", &out.Up},
	} {
		vec, err := member(op, attrs, part.name)
		if err != nil {
			return Attributes3D{}, err
		}
		*part.dst = jsVector(vec)
	}
	return out, nil
}

func jsVector(v js.Value) Vector {
	return Vector{
		X: float32(v.Get("x").Float()),
		Y: float32(v.Get("y").Float()),
		Z: float32(v.Get("z").Float()),
	}
}

// vectorArg flattens a Vector for the boundary.
func vectorArg(v Vector) map[string]any {
	return map[string]any{"x": v.X, "y": v.Y, "z": v.Z}
}

// attributesArg flattens Attributes3D for the boundary.
func attributesArg(a Attributes3D) js.Value {
	return js.ValueOf(map[string]any{
		"position": vectorArg(a.Position),
		"velocity": vectorArg(a.Velocity),
		"forward":  vectorArg(a.Forward),
		"up":       vectorArg(a.Up),
	})
}

// bytesArg copies a Go buffer into a fresh boundary-side Uint8Array.
func bytesArg(buffer []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(buffer))
	js.CopyBytesToJS(arr, buffer)
	return arr
}

// MissingFunctionsError is returned when the JS shim does not export the
// full boundary function table.
type MissingFunctionsError struct {
	Names []string
}

func (e *MissingFunctionsError) Error() string {
	return fmt.Sprintf("fmod: JS shim is missing %d boundary function(s): %v", len(e.Names), e.Names)
}

// EnvelopeError is returned when a Result Envelope from the JS shim lacks
// a member its declared shape requires.
type EnvelopeError struct {
	Op    string
	Field string
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("%s: result envelope is missing %q", e.Op, e.Field)
}
