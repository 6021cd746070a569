// Package inventory records what is installed on the machine next to the
// tracked configuration: application folders, Homebrew packages and the
// VSCode extension list.
//
// Every external tool runs through a Runner so tests never spawn processes.
// A missing tool or missing directory is a warning, never a failure of the
// surrounding command.
package inventory
