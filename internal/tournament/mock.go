package tournament

import (
	"sync"

	"github.com/pokernight/awards-board/internal/poker"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertSummaryFunc   func(summary *poker.TournamentSummary) error
	GetLatestFunc       func() (*StoredSummary, error)
	GetSummaryFunc      func(id string) (*StoredSummary, error)
	ListSummariesFunc   func() ([]*StoredSummary, error)
	ClearFunc           func()
	ClearTournamentFunc func(id string)

	// Call records
	UpsertSummaryCalls   []*poker.TournamentSummary
	GetSummaryCalls      []string
	ClearCalls           int
	ClearTournamentCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertSummaryCalls = nil
	m.GetSummaryCalls = nil
	m.ClearCalls = 0
	m.ClearTournamentCalls = nil
}

func (m *MockStore) UpsertSummary(summary *poker.TournamentSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertSummaryCalls = append(m.UpsertSummaryCalls, summary)
	if m.UpsertSummaryFunc != nil {
		return m.UpsertSummaryFunc(summary)
	}
	return nil
}

func (m *MockStore) GetLatest() (*StoredSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetLatestFunc != nil {
		return m.GetLatestFunc()
	}
	return nil, nil
}

func (m *MockStore) GetSummary(id string) (*StoredSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetSummaryCalls = append(m.GetSummaryCalls, id)
	if m.GetSummaryFunc != nil {
		return m.GetSummaryFunc(id)
	}
	return nil, nil
}

func (m *MockStore) ListSummaries() ([]*StoredSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListSummariesFunc != nil {
		return m.ListSummariesFunc()
	}
	return nil, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}

func (m *MockStore) ClearTournament(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearTournamentCalls = append(m.ClearTournamentCalls, id)
	if m.ClearTournamentFunc != nil {
		m.ClearTournamentFunc(id)
	}
}
