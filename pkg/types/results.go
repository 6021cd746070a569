package types

// Outcome is the final state of a single tracked path after a pass
type Outcome string

const (
	OutcomeApplied Outcome = "applied"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// SkipReason explains a benign skip
type SkipReason string

const (
	SkipNone          SkipReason = ""
	SkipNotFound      SkipReason = "not_found"
	SkipUserDeclined  SkipReason = "user_declined"
	SkipAlreadyLinked SkipReason = "already_linked"
)

// PathResult records what happened to one tracked path
type PathResult struct {
	Path        TrackedPath
	Source      string
	Destination string
	Outcome     Outcome
	Reason      SkipReason
	// Overwrote is set when an existing destination was (or, in a dry run,
	// would be) replaced after confirmation.
	Overwrote bool
	Err       error
}

// ReportCounts summarises a report by outcome
type ReportCounts struct {
	Applied int `json:"applied" yaml:"applied"`
	Skipped int `json:"skipped" yaml:"skipped"`
	Failed  int `json:"failed" yaml:"failed"`
}

// Report is the per-path outcome record of a reconciliation pass
type Report struct {
	Group     string
	Direction Direction
	Home      string
	Storage   string
	DryRun    bool
	Results   []PathResult
}

// NewReport creates an empty report for the given direction and roots
func NewReport(direction Direction, home, storage string) *Report {
	return &Report{
		Direction: direction,
		Home:      home,
		Storage:   storage,
		Results:   []PathResult{},
	}
}

// Add appends a result
func (r *Report) Add(result PathResult) {
	r.Results = append(r.Results, result)
}

// Counts tallies results by outcome
func (r *Report) Counts() ReportCounts {
	var c ReportCounts
	if r == nil {
		return c
	}
	for _, res := range r.Results {
		switch res.Outcome {
		case OutcomeApplied:
			c.Applied++
		case OutcomeSkipped:
			c.Skipped++
		case OutcomeFailed:
			c.Failed++
		}
	}
	return c
}

// Result returns the result recorded for path, if any
func (r *Report) Result(path TrackedPath) (PathResult, bool) {
	for _, res := range r.Results {
		if res.Path == path {
			return res, true
		}
	}
	return PathResult{}, false
}

// Failures returns the failed results in order
func (r *Report) Failures() []PathResult {
	var failed []PathResult
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			failed = append(failed, res)
		}
	}
	return failed
}
