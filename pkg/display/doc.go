// Package display turns reconciliation reports, status checks and
// inventory results into a view model shared by every output format, and
// renders that model for terminals and plain text.
package display
