package tournament

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pokernight/awards-board/internal/poker"
)

// New creates a new Store backed by the given database handle.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// UpsertSummary inserts a new tournament summary or replaces an existing one.
// Re-uploading the same tournament log simply overwrites the previous
// summary; the most recent upload wins.
func (s *store) UpsertSummary(summary *poker.TournamentSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	awardsJSON, err := json.Marshal(summary.Awards)
	if err != nil {
		return err
	}
	badBeatsJSON, err := json.Marshal(summary.BadBeatLog)
	if err != nil {
		return err
	}

	noData := 0
	if summary.NoData {
		noData = 1
	}

	_, err = s.db.Exec(`
		INSERT INTO tournaments (id, played_at, total_players, no_data, awards_json, bad_beats_json, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			played_at = excluded.played_at,
			total_players = excluded.total_players,
			no_data = excluded.no_data,
			awards_json = excluded.awards_json,
			bad_beats_json = excluded.bad_beats_json,
			updated_at = excluded.updated_at;
	`, summary.ID, summary.Date, summary.TotalPlayers, noData, string(awardsJSON), string(badBeatsJSON), time.Now().Unix())
	return err
}

// GetLatest returns the most recently updated summary, or nil when the
// board is empty.
func (s *store) GetLatest() (*StoredSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, played_at, total_players, no_data, awards_json, bad_beats_json, updated_at
		FROM tournaments
		ORDER BY updated_at DESC
		LIMIT 1
	`)
	summary, err := s.scanSummary(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return summary, err
}

// GetSummary returns one tournament by id, or nil when unknown.
func (s *store) GetSummary(id string) (*StoredSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, played_at, total_players, no_data, awards_json, bad_beats_json, updated_at
		FROM tournaments
		WHERE id = ?
	`, id)
	summary, err := s.scanSummary(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return summary, err
}

// ListSummaries returns every stored tournament, newest first.
func (s *store) ListSummaries() ([]*StoredSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, played_at, total_players, no_data, awards_json, bad_beats_json, updated_at
		FROM tournaments
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*StoredSummary
	for rows.Next() {
		summary, err := s.scanSummary(rows)
		if err != nil {
			log.Error("Failed to scan tournament row", "error", err)
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// Clear wipes every stored tournament.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM tournaments"); err != nil {
		log.Error("Failed to clear tournaments", "error", err)
	}
}

// ClearTournament removes a single tournament by id.
func (s *store) ClearTournament(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM tournaments WHERE id = ?", id); err != nil {
		log.Error("Failed to clear tournament", "error", err, "tournamentID", id)
	}
}

// scanSummary is a helper function to scan a single tournament row.
func (s *store) scanSummary(scanner interface{ Scan(...any) error }) (*StoredSummary, error) {
	var summary StoredSummary
	var noData int
	var awardsJSON, badBeatsJSON sql.NullString

	err := scanner.Scan(
		&summary.ID, &summary.Date, &summary.TotalPlayers, &noData,
		&awardsJSON, &badBeatsJSON, &summary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	summary.NoData = noData != 0

	summary.Awards = map[string]poker.AwardRecord{}
	if awardsJSON.Valid && awardsJSON.String != "" {
		if err := json.Unmarshal([]byte(awardsJSON.String), &summary.Awards); err != nil {
			log.Error("Failed to unmarshal awards_json", "error", err, "tournamentID", summary.ID)
		}
	}

	if badBeatsJSON.Valid && badBeatsJSON.String != "" {
		if err := json.Unmarshal([]byte(badBeatsJSON.String), &summary.BadBeatLog); err != nil {
			log.Error("Failed to unmarshal bad_beats_json", "error", err, "tournamentID", summary.ID)
		}
	}

	return &summary, nil
}
