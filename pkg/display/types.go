package display

import (
	"time"

	"github.com/arthur-debert/terraformer/pkg/types"
)

// CommandResult is the display form of a backup or restore run
type CommandResult struct {
	// Command is the verb that was executed (backup, restore)
	Command   string             `json:"command" yaml:"command"`
	DryRun    bool               `json:"dry_run" yaml:"dry_run"`
	Groups    []GroupResult      `json:"groups" yaml:"groups"`
	Inventory []InventoryItem    `json:"inventory,omitempty" yaml:"inventory,omitempty"`
	Summary   types.ReportCounts `json:"summary" yaml:"summary"`
	// Message is an optional closing hint
	Message   string    `json:"message,omitempty" yaml:"message,omitempty"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// GroupResult holds the per-path results of one group
type GroupResult struct {
	Name      string             `json:"name" yaml:"name"`
	Direction types.Direction    `json:"direction" yaml:"direction"`
	Home      string             `json:"home" yaml:"home"`
	Storage   string             `json:"storage" yaml:"storage"`
	Files     []FileResult       `json:"files" yaml:"files"`
	Counts    types.ReportCounts `json:"counts" yaml:"counts"`
}

// FileResult is one row of output
type FileResult struct {
	Path        string           `json:"path" yaml:"path"`
	Destination string           `json:"destination" yaml:"destination"`
	Outcome     types.Outcome    `json:"outcome" yaml:"outcome"`
	Reason      types.SkipReason `json:"reason,omitempty" yaml:"reason,omitempty"`
	Overwrote   bool             `json:"overwrote,omitempty" yaml:"overwrote,omitempty"`
	Message     string           `json:"message" yaml:"message"`
	ErrorCode   string           `json:"error_code,omitempty" yaml:"error_code,omitempty"`
}

// InventoryItem is the display form of one inventory task
type InventoryItem struct {
	Task    string `json:"task" yaml:"task"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Status  string `json:"status" yaml:"status"`
	Count   int    `json:"count" yaml:"count"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// StatusResult is the display form of the status command
type StatusResult struct {
	Groups []StatusGroup           `json:"groups" yaml:"groups"`
	Counts map[types.PathState]int `json:"counts" yaml:"counts"`
}

// StatusGroup lists the path states of one group
type StatusGroup struct {
	Name    string        `json:"name" yaml:"name"`
	Home    string        `json:"home" yaml:"home"`
	Storage string        `json:"storage" yaml:"storage"`
	Entries []StatusEntry `json:"entries" yaml:"entries"`
}

// StatusEntry is one path in a status listing
type StatusEntry struct {
	Path       string          `json:"path" yaml:"path"`
	State      types.PathState `json:"state" yaml:"state"`
	Message    string          `json:"message,omitempty" yaml:"message,omitempty"`
	LinkTarget string          `json:"link_target,omitempty" yaml:"link_target,omitempty"`
}

// DiscoverResult lists home entries that no group tracks yet
type DiscoverResult struct {
	Home      string   `json:"home" yaml:"home"`
	Untracked []string `json:"untracked" yaml:"untracked"`
}

// MessageResult wraps a plain message so every format can render it
type MessageResult struct {
	Message string `json:"message" yaml:"message"`
}
