// Package fmod binds the FMOD Studio API behind a single backend-agnostic
// contract.
//
// Two structurally different bindings implement the same interfaces, and
// exactly one is selected at build time:
//
//   - Native: direct FFI into libfmodstudio via purego. Handles are raw
//     pointers, out-parameters become Go return values, and C structs are
//     mirrored with explicit layouts. Built everywhere except GOOS=js.
//   - Interop: proxies every call across the host/guest boundary to a
//     JavaScript shim that owns the real (Emscripten-built) middleware.
//     Built under GOOS=js only.
//
// # Boundary contract (interop binding)
//
// The interop binding calls named functions on the JS global object. Each
// returns a single Result Envelope object with a "result" field carrying the
// raw FMOD_RESULT and, on success, up to two payload fields "value0" and
// "value1". The shim and this package must keep the table below, and the
// numeric constants in types.go and package status, byte-for-byte in sync;
// nothing type-checks the two runtimes against each other.
//
//	Studio_System_Create()                                  -> {result, value0: ref}
//	Studio_System_Initialize(ref, i32, u32, u32)            -> {result}
//	Studio_System_LoadBankMemory(ref, Uint8Array, u32)      -> {result, value0: ref}
//	Studio_System_UnloadAll(ref)                            -> {result}
//	Studio_System_GetEvent(ref, string)                     -> {result, value0: ref}
//	Studio_System_GetBus(ref, string)                       -> {result, value0: ref}
//	Studio_System_SetParameterByName(ref, string, f32, bool)-> {result}
//	Studio_System_SetListenerAttributes(ref, i32, attrs)    -> {result}
//	Studio_System_Update(ref)                               -> {result}
//	Studio_Bank_GetEventCount(ref)                          -> {result, value0: i32}
//	Studio_Bank_GetEventList(ref, i32)                      -> {result, value0: ref[]}
//	Studio_EventDescription_GetPath(ref)                    -> {result, value0: string}
//	Studio_EventDescription_CreateInstance(ref)             -> {result, value0: ref}
//	Studio_EventDescription_GetInstanceCount(ref)           -> {result, value0: i32}
//	Studio_EventInstance_Start(ref)                         -> {result}
//	Studio_EventInstance_Release(ref)                       -> {result}
//	Studio_EventInstance_Stop(ref, i32)                     -> {result}
//	Studio_EventInstance_SetPaused(ref, bool)               -> {result}
//	Studio_EventInstance_GetPaused(ref)                     -> {result, value0: bool}
//	Studio_EventInstance_SetPitch(ref, f32)                 -> {result}
//	Studio_EventInstance_GetPitch(ref)                      -> {result, value0: f32, value1: f32}
//	Studio_EventInstance_SetVolume(ref, f32)                -> {result}
//	Studio_EventInstance_GetVolume(ref)                     -> {result, value0: f32, value1: f32}
//	Studio_EventInstance_Set3DAttributes(ref, attrs)        -> {result}
//	Studio_EventInstance_Get3DAttributes(ref)               -> {result, value0: attrs}
//	Studio_EventInstance_SetProperty(ref, i32, f32)         -> {result}
//	Studio_EventInstance_GetProperty(ref, i32)              -> {result, value0: f32}
//	Studio_EventInstance_SetTimelinePosition(ref, i32)      -> {result}
//	Studio_EventInstance_GetTimelinePosition(ref)           -> {result, value0: i32}
//	Studio_EventInstance_SetParameterByName(ref, string, f32, bool) -> {result}
//	Studio_EventInstance_GetParameterByName(ref, string)    -> {result, value0: f32, value1: f32}
//	Studio_EventInstance_GetPlaybackState(ref)              -> {result, value0: i32}
//	Studio_EventInstance_IsVirtual(ref)                     -> {result, value0: bool}
//	Studio_Bus_SetMute(ref, bool)                           -> {result}
//
// "attrs" is a plain object {position, velocity, forward, up}, each a
// {x, y, z} of numbers; the boundary has no transparent layout sharing for
// compound types, so both sides rebuild it field by field. Enum payloads
// travel as plain integers and are re-validated on return.
//
// # Errors
//
// Both variants report middleware failures as *status.Error carrying the
// operation name and raw code. The interop variant can additionally produce
// the marshalling errors in package status when payloads are malformed.
package fmod
