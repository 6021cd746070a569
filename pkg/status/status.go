// Package status classifies tracked paths without changing anything.
package status

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/terraformer/pkg/filesystem"
	"github.com/arthur-debert/terraformer/pkg/internal/hashutil"
	"github.com/arthur-debert/terraformer/pkg/types"
)

// Group is the part of a resolved group the checker needs
type Group struct {
	Name    string
	Home    string
	Storage string
	Paths   []string
}

// Check returns the status of every path in g, in order. Inspection errors
// are reported as PathStateError entries rather than failing the call.
func Check(fsys types.FS, g Group) []types.PathStatus {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	statuses := make([]types.PathStatus, 0, len(g.Paths))
	for _, p := range g.Paths {
		statuses = append(statuses, checkPath(fsys, g, p))
	}
	return statuses
}

func checkPath(fsys types.FS, g Group, p string) types.PathStatus {
	homePath := filepath.Join(g.Home, p)
	storagePath := filepath.Join(g.Storage, p)
	st := types.PathStatus{
		Group:   g.Name,
		Path:    p,
		Home:    homePath,
		Storage: storagePath,
	}

	homeLoc, err := filesystem.Classify(fsys, homePath)
	if err != nil {
		return withError(st, err)
	}
	storageLoc, err := filesystem.Classify(fsys, storagePath)
	if err != nil {
		return withError(st, err)
	}
	storageReal := storageLoc.Exists() && !storageLoc.Dangling

	if homeLoc.Kind == types.LocationSymlink {
		st.LinkTarget = homeLoc.Target
		if filesystem.PointsTo(homeLoc, homePath, storagePath) {
			if storageReal {
				st.State = types.PathStateLinked
				return st
			}
			st.State = types.PathStateMissing
			st.Message = "home links into storage but the storage entry is gone"
			return st
		}
		if homeLoc.Dangling {
			// A dangling foreign link hides nothing worth backing up.
			if storageReal {
				st.State = types.PathStateStorageOnly
				st.Message = fmt.Sprintf("home has a dangling link to %s", homeLoc.Target)
				return st
			}
			st.State = types.PathStateMissing
			st.Message = fmt.Sprintf("home has a dangling link to %s", homeLoc.Target)
			return st
		}
		st.State = types.PathStateForeignLink
		st.Message = fmt.Sprintf("home links to %s", homeLoc.Target)
		return st
	}

	switch {
	case homeLoc.Exists() && storageReal:
		st.State = types.PathStateConflict
		st.Message = conflictMessage(fsys, homePath, storagePath, homeLoc, storageLoc)
	case homeLoc.Exists():
		st.State = types.PathStateUnlinked
	case storageReal:
		st.State = types.PathStateStorageOnly
	default:
		st.State = types.PathStateMissing
	}
	return st
}

// conflictMessage tells identical file copies apart from diverged ones
func conflictMessage(fsys types.FS, homePath, storagePath string, home, storage types.Location) string {
	if home.Kind == types.LocationFile && storage.Kind == types.LocationFile {
		same, err := hashutil.SameContent(fsys, homePath, storagePath)
		switch {
		case err != nil:
			return fmt.Sprintf("cannot compare copies: %v", err)
		case same:
			return "home and storage hold identical copies"
		default:
			return "home and storage copies differ"
		}
	}
	return fmt.Sprintf("home %s and storage %s both exist", home.Kind, storage.Kind)
}

func withError(st types.PathStatus, err error) types.PathStatus {
	st.State = types.PathStateError
	st.Message = err.Error()
	return st
}

// Summary counts statuses by state
func Summary(statuses []types.PathStatus) map[types.PathState]int {
	counts := make(map[types.PathState]int)
	for _, st := range statuses {
		counts[st.State]++
	}
	return counts
}
