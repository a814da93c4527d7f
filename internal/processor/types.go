package processor

import (
	"github.com/pokernight/awards-board/internal/metrics"
	"github.com/pokernight/awards-board/internal/poker"
	"github.com/pokernight/awards-board/internal/pubsub"
)

// Processor handles the business logic of turning an uploaded transcript
// into a stored, announced tournament summary.
type Processor struct {
	store    Store
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
	parser   *poker.Parser
}
