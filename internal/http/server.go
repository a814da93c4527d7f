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

func NewServer(store tournament.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
		broadcaster:    NewBroadcaster(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/board", Chain(s.BoardHandler(), paramsMiddleware))
	s.Router.Handle("/tournaments", Chain(s.ListTournamentsHandler(), paramsMiddleware))
	s.Router.Handle("/events", s.EventsHandler())
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/tournament-parsed", Chain(s.TournamentParsedPushHandler(), paramsMiddleware))
	// The upload path doubles as the shared secret. The handler compares it
	// against config so a wrong guess reads as a plain 404.
	s.Router.Handle("POST /upload/{secret}", Chain(s.UploadHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
