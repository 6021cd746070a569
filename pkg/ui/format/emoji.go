// Package format provides formatting utilities for UI presentation.
package format

import "github.com/arthur-debert/terraformer/pkg/types"

// Emojis used in command output
const (
	EmojiBackup  = "💾"
	EmojiRestore = "📂"
	EmojiSkip    = "⏭️"
	EmojiDone    = "✅"
	EmojiFailed  = "❌"
	EmojiWarning = "⚠️"
)

// DirectionEmoji returns the emoji announcing a pass in the given direction
func DirectionEmoji(direction types.Direction) string {
	switch direction {
	case types.DirectionBackup:
		return EmojiBackup
	case types.DirectionRestore:
		return EmojiRestore
	default:
		return EmojiWarning
	}
}

// OutcomeEmoji returns the emoji shown next to a per-path outcome
func OutcomeEmoji(direction types.Direction, outcome types.Outcome) string {
	switch outcome {
	case types.OutcomeApplied:
		return DirectionEmoji(direction)
	case types.OutcomeSkipped:
		return EmojiSkip
	case types.OutcomeFailed:
		return EmojiFailed
	default:
		return EmojiWarning
	}
}
