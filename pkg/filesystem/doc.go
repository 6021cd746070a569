// Package filesystem provides filesystem implementations for terraformer.
//
// This package contains implementations of the types.FS interface (the OS
// filesystem and any afero backend), location classification, and the
// copy/move primitives the reconciler builds on.
package filesystem
