package tournament_test

import (
	"testing"

	"github.com/pokernight/awards-board/internal/database"
	"github.com/pokernight/awards-board/internal/poker"
	"github.com/pokernight/awards-board/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (tournament.Store, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := tournament.New(db)
	return store, dbTeardown
}

func sampleSummary(id string) *poker.TournamentSummary {
	return &poker.TournamentSummary{
		Date:         "2025/08/12 19:30:00",
		ID:           id,
		TotalPlayers: 6,
		Awards: map[string]poker.AwardRecord{
			poker.AwardChampion: {Winner: "Alice", Description: "Survived the chaos and claimed the crown", Stat: "Outlasted 5 other players"},
		},
		BadBeatLog: []poker.BadBeatEntry{
			{HandNumber: 12, Victim: "Bob", Winner: "Alice", VictimHand: "[Kh Kd] a full house, Kings full of Twos", WinnerHand: "[7c 2c] a flush, Seven high", Description: "Bob's full house was cracked by Alice's flush"},
		},
	}
}

func TestUpsertAndGetSummary(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertSummary(sampleSummary("t1")))

	got, err := store.GetSummary("t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "t1", got.ID)
	assert.Equal(t, 6, got.TotalPlayers)
	assert.Equal(t, "Alice", got.Awards[poker.AwardChampion].Winner)
	require.Len(t, got.BadBeatLog, 1)
	assert.Equal(t, 12, got.BadBeatLog[0].HandNumber)
	assert.NotZero(t, got.UpdatedAt)
}

func TestUpsertSummary_ReuploadOverwrites(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	first := sampleSummary("t1")
	require.NoError(t, store.UpsertSummary(first))

	second := sampleSummary("t1")
	second.TotalPlayers = 8
	second.Awards[poker.AwardChampion] = poker.AwardRecord{Winner: "Bob", Description: "Survived the chaos and claimed the crown", Stat: "Outlasted 7 other players"}
	require.NoError(t, store.UpsertSummary(second))

	got, err := store.GetSummary("t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 8, got.TotalPlayers)
	assert.Equal(t, "Bob", got.Awards[poker.AwardChampion].Winner)

	all, err := store.ListSummaries()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetSummary_Unknown(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	got, err := store.GetSummary("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetLatest(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	t.Run("empty board", func(t *testing.T) {
		got, err := store.GetLatest()
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("returns a stored summary", func(t *testing.T) {
		require.NoError(t, store.UpsertSummary(sampleSummary("t1")))

		got, err := store.GetLatest()
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "t1", got.ID)
	})
}

func TestClear(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertSummary(sampleSummary("t1")))
	require.NoError(t, store.UpsertSummary(sampleSummary("t2")))

	store.ClearTournament("t1")
	all, err := store.ListSummaries()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "t2", all[0].ID)

	store.Clear()
	all, err = store.ListSummaries()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpsertSummary_NoData(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	summary := &poker.TournamentSummary{ID: "empty", Awards: map[string]poker.AwardRecord{}, NoData: true}
	require.NoError(t, store.UpsertSummary(summary))

	got, err := store.GetSummary("empty")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.NoData)
	assert.Empty(t, got.Awards)
	assert.Empty(t, got.BadBeatLog)
}
