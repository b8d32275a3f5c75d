//go:build e2e

// Package e2e runs every scenario against a real browser.
//
// These tests are isolated from the standard test suite via build tags.
// They require a Chrome browser (auto-downloaded by Rod if not present)
// and are intended for CI pipelines or explicit local testing.
//
// Running E2E tests:
//
//	go test -tags=e2e ./e2e/...
//	UICHECK_DRIVER=playwright go test -tags=e2e ./e2e/...
//
// Running all tests except E2E:
//
//	go test ./...
//
// E2E tests use:
//   - the driver named by UICHECK_DRIVER (rod by default)
//   - the demosite server for local replicas of the demo pages
//   - session.Manager.Test so every test gets its own browser
//
// Test isolation:
// Each test starts its own server on a random port and every scenario
// launches its own browser instance, released through t.Cleanup.
package e2e
