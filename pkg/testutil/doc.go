// Package testutil provides fixtures for testing t6modm components.
//
// Key components:
//   - TestEnvironment: a root directory on either an in-memory or a real
//     filesystem, cleaned up with the test
//   - TestProject: declarative project tree builder (manifest, src assets,
//     zone files, dependencies)
//   - FailingFS: wraps a filesystem and injects errors for chosen paths
//
// Parser and model tests should use EnvMemoryOnly. Tests that hand files to
// an external process (archives, linker fakes) need EnvIsolated.
package testutil
