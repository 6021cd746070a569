package types

// PathState is the read-only classification of one tracked path, comparing
// what sits in home with what sits in storage
type PathState string

const (
	// PathStateLinked means home is a symlink to the storage entry
	PathStateLinked PathState = "linked"

	// PathStateUnlinked means home has a real entry and storage has none
	PathStateUnlinked PathState = "unlinked"

	// PathStateConflict means both sides hold real content
	PathStateConflict PathState = "conflict"

	// PathStateStorageOnly means only storage has the entry, ready to restore
	PathStateStorageOnly PathState = "storage_only"

	// PathStateForeignLink means home is a symlink pointing somewhere else
	PathStateForeignLink PathState = "foreign_link"

	// PathStateMissing means neither side has the entry
	PathStateMissing PathState = "missing"

	// PathStateError means the path could not be inspected
	PathStateError PathState = "error"
)

// PathStatus is the status of a single tracked path within a group
type PathStatus struct {
	Group   string    `json:"group" yaml:"group"`
	Path    string    `json:"path" yaml:"path"`
	Home    string    `json:"home" yaml:"home"`
	Storage string    `json:"storage" yaml:"storage"`
	State   PathState `json:"state" yaml:"state"`
	Message string    `json:"message,omitempty" yaml:"message,omitempty"`
	// LinkTarget is the raw link text when home is a symlink
	LinkTarget string `json:"link_target,omitempty" yaml:"link_target,omitempty"`
}
