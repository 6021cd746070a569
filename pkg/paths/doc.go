// Package paths provides centralized path handling for terraformer.
//
// It resolves the repository root (the directory holding the storage tree,
// the run log and the root config file), expands home and environment
// references in configured directories, locates XDG config and state
// directories, and validates tracked paths before any reconciliation runs.
package paths
