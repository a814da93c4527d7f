package http

import (
	"net/http"

	"github.com/pokernight/awards-board/internal/config"
	"github.com/pokernight/awards-board/internal/metrics"
	"github.com/pokernight/awards-board/internal/notifier"
	"github.com/pokernight/awards-board/internal/processor"
	"github.com/pokernight/awards-board/internal/pubsub"
	"github.com/pokernight/awards-board/internal/tournament"
)

type Server struct {
	Store          tournament.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
	broadcaster    *Broadcaster
}
