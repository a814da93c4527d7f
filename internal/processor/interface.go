package processor

import (
	"github.com/pokernight/awards-board/internal/notifier"
	"github.com/pokernight/awards-board/internal/poker"
)

// Store defines the database operations required by the processor.
type Store interface {
	UpsertSummary(summary *poker.TournamentSummary) error
}

// Notifier defines the notification operations required by the processor.
// This is now an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
