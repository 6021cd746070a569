package reconcile

import (
	"path/filepath"

	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/arthur-debert/terraformer/pkg/filesystem"
	"github.com/arthur-debert/terraformer/pkg/logging"
	"github.com/arthur-debert/terraformer/pkg/types"
	"github.com/rs/zerolog"
)

// Reconcile runs one pass over opts.Paths and returns the per-path report.
//
// Invalid options fail with an InvalidInput error before anything is
// touched. A confirmer error aborts the pass with a PROMPT error; the report
// returned alongside it holds every path handled so far. Any other failure
// is recorded against its path and the pass continues.
func Reconcile(opts Options) (*types.Report, error) {
	logger := logging.GetLogger("reconcile")

	pl, err := opts.validate()
	if err != nil {
		return nil, err
	}

	report := types.NewReport(pl.direction, pl.home, pl.storage)
	report.Group = pl.group
	report.DryRun = pl.dryRun

	logger.Info().
		Str("group", pl.group).
		Str("direction", string(pl.direction)).
		Str("home", pl.home).
		Str("storage", pl.storage).
		Int("paths", len(pl.paths)).
		Bool("dry_run", pl.dryRun).
		Msg("Starting reconciliation")

	done := logging.LogOperationStart(logger, "reconcile")
	defer done()

	for _, p := range pl.paths {
		result, fatal := pl.reconcilePath(logger, p)
		report.Add(result)
		logResult(logger, result)
		if fatal != nil {
			logger.Error().Err(fatal).Str("path", p.String()).Msg("Aborting reconciliation")
			return report, fatal
		}
	}

	counts := report.Counts()
	logger.Info().
		Int("applied", counts.Applied).
		Int("skipped", counts.Skipped).
		Int("failed", counts.Failed).
		Msg("Reconciliation finished")

	return report, nil
}

// reconcilePath handles a single tracked path. The returned error is only
// set for failures that must stop the pass.
func (pl *plan) reconcilePath(logger zerolog.Logger, p types.TrackedPath) (types.PathResult, error) {
	src, dst := pl.endpoints(p)
	result := types.PathResult{Path: p, Source: src, Destination: dst}

	srcLoc, err := filesystem.Classify(pl.fs, src)
	if err != nil {
		return failed(result, errors.Wrapf(err, errors.ErrIO, "cannot inspect %s", src)), nil
	}
	if !srcLoc.Exists() || srcLoc.Dangling {
		return skipped(result, types.SkipNotFound), nil
	}

	dstLoc, err := filesystem.Classify(pl.fs, dst)
	if err != nil {
		return failed(result, errors.Wrapf(err, errors.ErrIO, "cannot inspect %s", dst)), nil
	}

	if pl.direction == types.DirectionBackup && filesystem.PointsTo(srcLoc, src, dst) && dstLoc.Exists() && !dstLoc.Dangling {
		return skipped(result, types.SkipAlreadyLinked), nil
	}

	if dstLoc.Exists() {
		result.Overwrote = true
		if pl.dryRun {
			result.Outcome = types.OutcomeApplied
			return result, nil
		}

		ok, err := pl.confirm.Confirm(dst)
		if err != nil {
			perr := errors.Wrapf(err, errors.ErrPrompt, "confirmation for %s failed", dst).WithDetail("path", p.String())
			result.Overwrote = false
			return failed(result, perr), perr
		}
		if !ok {
			result.Overwrote = false
			return skipped(result, types.SkipUserDeclined), nil
		}

		// The answer may have taken a while; look again.
		if dstLoc, err = filesystem.Classify(pl.fs, dst); err != nil {
			result.Overwrote = false
			return failed(result, errors.Wrapf(err, errors.ErrIO, "cannot inspect %s", dst)), nil
		}
		result.Overwrote = dstLoc.Exists()
	}

	if pl.dryRun {
		result.Outcome = types.OutcomeApplied
		return result, nil
	}

	if err := pl.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		result.Overwrote = false
		return failed(result, errors.Wrapf(err, errors.ErrIO, "cannot create parent directory of %s", dst)), nil
	}

	var parked string
	if dstLoc.Exists() {
		parked = filesystem.StagingPath(dst, "old")
		if err := pl.fs.Rename(dst, parked); err != nil {
			result.Overwrote = false
			return failed(result, errors.Wrapf(err, errors.ErrIO, "cannot move existing %s aside", dst)), nil
		}
		logger.Debug().Str("path", dst).Str("parked", parked).Msg("Moved existing destination aside")
	}

	var matErr error
	if pl.direction == types.DirectionBackup {
		matErr = pl.backup(src, dst, parked)
	} else {
		matErr = pl.restore(src, dst, parked)
	}
	if matErr != nil {
		return failed(result, matErr), nil
	}

	pl.discard(logger, parked)
	result.Outcome = types.OutcomeApplied
	return result, nil
}

// discard removes a parked destination once its replacement is in place.
// A leftover only wastes space, so failure is logged and ignored.
func (pl *plan) discard(logger zerolog.Logger, parked string) {
	if parked == "" {
		return
	}
	if err := pl.fs.RemoveAll(parked); err != nil {
		logger.Warn().Err(err).Str("path", parked).Msg("Failed to remove replaced content")
	}
}

// unpark puts a parked destination back where it was
func (pl *plan) unpark(dst, parked string) error {
	if parked == "" {
		return nil
	}
	if err := pl.fs.RemoveAll(dst); err != nil {
		return err
	}
	return pl.fs.Rename(parked, dst)
}

func failed(result types.PathResult, err error) types.PathResult {
	result.Outcome = types.OutcomeFailed
	result.Err = err
	return result
}

func skipped(result types.PathResult, reason types.SkipReason) types.PathResult {
	result.Outcome = types.OutcomeSkipped
	result.Reason = reason
	return result
}

func logResult(logger zerolog.Logger, result types.PathResult) {
	event := logger.Info()
	if result.Outcome == types.OutcomeFailed {
		event = logger.Error().Err(result.Err)
	}
	event.
		Str("path", result.Path.String()).
		Str("source", result.Source).
		Str("destination", result.Destination).
		Str("outcome", string(result.Outcome)).
		Str("reason", string(result.Reason)).
		Bool("overwrote", result.Overwrote).
		Msg("Path reconciled")
}
