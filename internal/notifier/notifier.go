package notifier

import (
	"github.com/pokernight/awards-board/internal/poker"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For a freshly parsed tournament
	SendAwardsNotification(summary *poker.TournamentSummary, dryRun bool) error
}
