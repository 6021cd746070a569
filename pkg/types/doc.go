// Package types defines the core types and interfaces used throughout terraformer.
// This includes the FS abstraction, tracked paths and their locations, the
// reconciliation direction, the per-path report, and the Confirmer capability
// used to ask the operator before anything is overwritten.
package types
