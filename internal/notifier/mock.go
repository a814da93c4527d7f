package notifier

import (
	"sync"

	"github.com/pokernight/awards-board/internal/poker"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendAwardsNotificationFunc func(summary *poker.TournamentSummary, dryRun bool) error

	// Call records
	SendAwardsNotificationCalls []struct {
		Summary *poker.TournamentSummary
		DryRun  bool
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendAwardsNotificationCalls = nil
}

func (m *Mock) SendAwardsNotification(summary *poker.TournamentSummary, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendAwardsNotificationCalls = append(m.SendAwardsNotificationCalls, struct {
		Summary *poker.TournamentSummary
		DryRun  bool
	}{summary, dryRun})
	if m.SendAwardsNotificationFunc != nil {
		return m.SendAwardsNotificationFunc(summary, dryRun)
	}
	return nil
}
