package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                sync.Mutex
	uploadsReceived   int
	tournamentsParsed int
	parseDurations    []float64
	slackNotifSent    int
	slackNotifFailed  int
	startupTime       float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		parseDurations: make([]float64, 0),
	}
}

func (m *Mock) IncUploadsReceived() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadsReceived++
}

func (m *Mock) IncTournamentsParsed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tournamentsParsed++
}

func (m *Mock) ObserveParseDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parseDurations = append(m.parseDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// UploadsReceived returns the number of times IncUploadsReceived was called.
func (m *Mock) UploadsReceived() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uploadsReceived
}

// TournamentsParsed returns the number of times IncTournamentsParsed was called.
func (m *Mock) TournamentsParsed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tournamentsParsed
}

// ParseDurations returns the observed parse durations.
func (m *Mock) ParseDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.parseDurations...)
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
