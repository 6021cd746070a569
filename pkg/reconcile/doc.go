// Package reconcile brings tracked configuration paths into a consistent
// state between a home directory and a storage directory.
//
// A backup moves each home entry into storage and leaves a symlink behind.
// A restore copies each storage entry into home as a real file or tree.
// Every path is handled on its own: a failure is recorded in the report and
// the remaining paths still run. Only a failed confirmation prompt stops a
// pass early.
//
// Locations are classified fresh on every call. Nothing from a previous pass
// is trusted.
package reconcile
