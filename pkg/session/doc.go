// Package session manages the lifecycle of browser sessions used by
// end-to-end checks.
//
// Every test case gets its own Session: the Manager launches a fresh browser
// through a Driver before the test body runs and closes it afterwards, on
// every exit path. Two entry points are provided:
//
//   - Manager.Run runs a body outside of `go test` and returns a Result.
//     Body errors and panics are recorded; release errors are logged and kept
//     apart from the outcome.
//   - Manager.Test is the `go test` fixture. Acquisition failures abort the
//     test as an environment error, release is registered with t.Cleanup.
//
// Blocking operations on a Session (navigation and element lookup) are
// bounded by the timeouts in Config.
package session
