package tournament

import "github.com/pokernight/awards-board/internal/poker"

// Store defines the interface for persisting and reading tournament
// summaries.
type Store interface {
	UpsertSummary(summary *poker.TournamentSummary) error
	GetLatest() (*StoredSummary, error)
	GetSummary(id string) (*StoredSummary, error)
	ListSummaries() ([]*StoredSummary, error)
	Clear()
	ClearTournament(id string)
}
