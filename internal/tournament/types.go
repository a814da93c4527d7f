package tournament

import (
	"database/sql"
	"sync"

	"github.com/pokernight/awards-board/internal/poker"
)

// store handles all database operations for tournament summaries.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// StoredSummary is a tournament summary as persisted, with the bookkeeping
// the board needs to show freshness.
type StoredSummary struct {
	poker.TournamentSummary
	UpdatedAt int64 `json:"updated_at"`
}
