// Package fakefmod is a scripted in-memory stand-in for the FMOD Studio
// middleware, implementing the fmod binding contract for tests.
//
// Banks are built with BankData and parsed from a trivial fixture format.
// The instance table models the middleware's observable lifecycle: Starting
// becomes Playing on Update, Stopping becomes Stopped on Update, and a
// released instance in the stopped state is reclaimed on Update, after
// which every operation on it returns ERR_INVALID_HANDLE. Final pitch,
// volume, and parameter values converge one Update after the set, the way
// the middleware recalculates them once per frame.
//
// FailNext injects a failure into the next call of a named operation, and
// Calls records the operation sequence for pump assertions.
package fakefmod
