package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventTournamentParsed EventType = "tournament-parsed"
	EventBoardCleared     EventType = "board-cleared"
)

// TournamentParsedEvent is the payload published after a transcript has been
// parsed and stored.
type TournamentParsedEvent struct {
	TournamentID string
	TotalPlayers int
	NoData       bool
}

// BoardClearedEvent is published when summaries are removed from the store.
// An empty TournamentID means the whole store was cleared.
type BoardClearedEvent struct {
	TournamentID string
}
