// Package testutil provides utilities for testing terraformer components.
//
// Key components:
//   - TestEnvironment: isolated home/repository/storage layout with env vars
//     pointed at it and cleanup handled by the testing package
//   - File helpers: create files, directories and symlinks, assert on them
//   - Snapshot: a comparable picture of a directory tree, used to prove a
//     pass changed nothing
//   - Confirmers: deterministic answers for the overwrite prompt
//
// Usage guidelines:
//   - Reconciliation tests use EnvIsolated, symlinks need a real filesystem
//   - EnvMemoryOnly is for behaviour on filesystems without symlink support
//   - All test data should be defined inline, not in external files
package testutil
