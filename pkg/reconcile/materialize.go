package reconcile

import (
	"github.com/arthur-debert/terraformer/pkg/errors"
	"github.com/arthur-debert/terraformer/pkg/filesystem"
	"github.com/arthur-debert/terraformer/pkg/logging"
)

// backup moves src into dst and links src to it. A failed move restores
// the parked destination. A failed link, or a source left half removed by a
// cross-device move, does not undo the move: the content stays at dst and
// the error says why src is not a link.
func (pl *plan) backup(src, dst, parked string) error {
	logger := logging.GetLogger("reconcile.backup")

	if err := filesystem.Move(pl.fs, src, dst); err != nil {
		if filesystem.IsSourceCleanup(err) {
			// dst holds the only complete copy now
			pl.discard(logger, parked)
			logger.Error().
				Err(err).
				Str("source", src).
				Str("target", dst).
				Msg("Content moved to storage but the source could not be removed")
			return errors.Wrapf(err, errors.ErrIO, "moved %s to %s but could not remove the source", src, dst).
				WithDetail("content_at", dst)
		}
		moveErr := errors.Wrapf(err, errors.ErrIO, "cannot move %s to %s", src, dst)
		if uerr := pl.unpark(dst, parked); uerr != nil {
			logger.Error().Err(uerr).Str("parked", parked).Str("path", dst).Msg("Failed to restore replaced content")
			return moveErr.WithDetail("parked", parked)
		}
		return moveErr
	}

	if err := pl.fs.Symlink(dst, src); err != nil {
		// The move went through, so the replaced content is obsolete.
		pl.discard(logger, parked)

		code := errors.ErrIO
		if filesystem.IsSymlinkUnsupported(err) {
			code = errors.ErrUnsupported
		}
		logger.Error().
			Err(err).
			Str("link", src).
			Str("target", dst).
			Msg("Content moved to storage but the link could not be created")
		return errors.Wrapf(err, code, "moved %s to %s but could not link it back", src, dst).
			WithDetail("content_at", dst)
	}

	return nil
}

// restore copies src into a staging sibling of dst and renames it into
// place, so dst is never observed half written.
func (pl *plan) restore(src, dst, parked string) error {
	logger := logging.GetLogger("reconcile.restore")

	staging := filesystem.StagingPath(dst, "new")
	err := filesystem.Copy(pl.fs, src, staging)
	if err == nil {
		err = pl.fs.Rename(staging, dst)
	}
	if err == nil {
		return nil
	}

	if rmErr := pl.fs.RemoveAll(staging); rmErr != nil {
		logger.Warn().Err(rmErr).Str("path", staging).Msg("Failed to remove staged copy")
	}
	copyErr := errors.Wrapf(err, errors.ErrIO, "cannot copy %s to %s", src, dst)
	if uerr := pl.unpark(dst, parked); uerr != nil {
		logger.Error().Err(uerr).Str("parked", parked).Str("path", dst).Msg("Failed to restore replaced content")
		return copyErr.WithDetail("parked", parked)
	}
	return copyErr
}
