package display

import (
	stderrors "errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/arthur-debert/terraformer/pkg/inventory"
	"github.com/arthur-debert/terraformer/pkg/types"
)

// Converter transforms reports and statuses into display results
type Converter struct {
	// homeDir is used to shorten paths under the home directory
	homeDir string
}

// NewConverter creates a new display converter
func NewConverter(homeDir string) *Converter {
	return &Converter{homeDir: homeDir}
}

// ConvertReports builds the result of a backup or restore run. Reports are
// shown in the given order.
func (c *Converter) ConvertReports(command string, dryRun bool, reports []*types.Report, inv []inventory.Result) *CommandResult {
	result := &CommandResult{
		Command:   command,
		DryRun:    dryRun,
		Groups:    make([]GroupResult, 0, len(reports)),
		Timestamp: time.Now(),
	}

	for _, report := range reports {
		if report == nil {
			continue
		}
		group := c.ConvertReport(report)
		result.Groups = append(result.Groups, group)
		result.Summary.Applied += group.Counts.Applied
		result.Summary.Skipped += group.Counts.Skipped
		result.Summary.Failed += group.Counts.Failed
	}

	for _, r := range inv {
		result.Inventory = append(result.Inventory, c.ConvertInventoryResult(r))
	}

	return result
}

// ConvertReport converts one group's report
func (c *Converter) ConvertReport(report *types.Report) GroupResult {
	group := GroupResult{
		Name:      report.Group,
		Direction: report.Direction,
		Home:      c.ShortenPath(report.Home),
		Storage:   c.ShortenPath(report.Storage),
		Files:     make([]FileResult, 0, len(report.Results)),
		Counts:    report.Counts(),
	}
	for _, res := range report.Results {
		group.Files = append(group.Files, c.ConvertPathResult(report.Direction, report.DryRun, res))
	}
	return group
}

// ConvertPathResult converts a single path result
func (c *Converter) ConvertPathResult(direction types.Direction, dryRun bool, res types.PathResult) FileResult {
	file := FileResult{
		Path:        res.Path.String(),
		Destination: c.ShortenPath(res.Destination),
		Outcome:     res.Outcome,
		Reason:      res.Reason,
		Overwrote:   res.Overwrote,
		Message:     outcomeMessage(direction, dryRun, res),
	}
	if res.Err != nil {
		if code := errors.GetErrorCode(res.Err); code != "" {
			file.ErrorCode = string(code)
		}
		if at, ok := errors.GetErrorDetails(res.Err)["content_at"].(string); ok {
			file.Message += " (content is at " + c.ShortenPath(at) + ")"
		}
	}
	return file
}

// ConvertInventoryResult converts one inventory task result
func (c *Converter) ConvertInventoryResult(r inventory.Result) InventoryItem {
	item := InventoryItem{
		Task:    r.Task,
		Path:    c.ShortenPath(r.Path),
		Status:  string(r.Status),
		Count:   r.Count,
		Message: r.Message,
	}
	if item.Message == "" && r.Err != nil {
		item.Message = r.Err.Error()
	}
	return item
}

// ConvertStatus groups path statuses by group, keeping their order
func (c *Converter) ConvertStatus(statuses []types.PathStatus) *StatusResult {
	result := &StatusResult{
		Groups: []StatusGroup{},
		Counts: make(map[types.PathState]int),
	}

	index := make(map[string]int)
	for _, st := range statuses {
		i, ok := index[st.Group]
		if !ok {
			i = len(result.Groups)
			index[st.Group] = i
			result.Groups = append(result.Groups, StatusGroup{
				Name:    st.Group,
				Home:    c.ShortenPath(baseOf(st.Home, st.Path)),
				Storage: c.ShortenPath(baseOf(st.Storage, st.Path)),
			})
		}
		result.Groups[i].Entries = append(result.Groups[i].Entries, StatusEntry{
			Path:       st.Path,
			State:      st.State,
			Message:    st.Message,
			LinkTarget: st.LinkTarget,
		})
		result.Counts[st.State]++
	}

	return result
}

// ShortenPath replaces the home directory prefix with ~
func (c *Converter) ShortenPath(path string) string {
	if c.homeDir == "" || path == "" {
		return path
	}
	if path == c.homeDir {
		return "~"
	}
	rel, err := filepath.Rel(c.homeDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.Join("~", rel)
}

func outcomeMessage(direction types.Direction, dryRun bool, res types.PathResult) string {
	switch res.Outcome {
	case types.OutcomeApplied:
		return appliedMessage(direction, dryRun, res.Overwrote)
	case types.OutcomeSkipped:
		switch res.Reason {
		case types.SkipNotFound:
			if direction == types.DirectionBackup {
				return "not found in home"
			}
			return "not found in storage"
		case types.SkipUserDeclined:
			return "kept existing copy"
		case types.SkipAlreadyLinked:
			return "already linked"
		default:
			return "skipped"
		}
	case types.OutcomeFailed:
		if res.Err != nil {
			return failureMessage(res.Err)
		}
		return "failed"
	default:
		return string(res.Outcome)
	}
}

func appliedMessage(direction types.Direction, dryRun, overwrote bool) string {
	switch {
	case direction == types.DirectionBackup && overwrote:
		if dryRun {
			return "would replace storage copy and link"
		}
		return "replaced storage copy and linked"
	case direction == types.DirectionBackup:
		if dryRun {
			return "would move to storage and link"
		}
		return "moved to storage and linked"
	case overwrote:
		if dryRun {
			return "would replace home copy from storage"
		}
		return "replaced home copy from storage"
	default:
		if dryRun {
			return "would copy from storage"
		}
		return "copied from storage"
	}
}

// baseOf strips the tracked path rel from the end of full
func baseOf(full, rel string) string {
	return strings.TrimSuffix(full, string(filepath.Separator)+filepath.FromSlash(rel))
}

// failureMessage returns the structured message without the code prefix
func failureMessage(err error) string {
	var terr *errors.TerraformerError
	if stderrors.As(err, &terr) {
		if terr.Wrapped != nil {
			return terr.Message + ": " + terr.Wrapped.Error()
		}
		return terr.Message
	}
	return err.Error()
}
