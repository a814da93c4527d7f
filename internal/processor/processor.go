package processor

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pokernight/awards-board/internal/metrics"
	"github.com/pokernight/awards-board/internal/poker"
	"github.com/pokernight/awards-board/internal/pubsub"
)

// New creates a new Processor.
func New(store Store, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient, parser *poker.Parser) *Processor {
	return &Processor{
		store:    store,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
		parser:   parser,
	}
}

// ProcessTranscript parses an uploaded tournament log, persists the summary
// and announces it. In dry-run mode nothing is persisted or published; the
// notifier logs what it would have sent.
func (p *Processor) ProcessTranscript(transcript string, dryRun bool) (*poker.TournamentSummary, error) {
	log.Info("Processing uploaded transcript", "bytes", len(transcript), "dry_run", dryRun)

	startTime := time.Now()
	summary := p.parser.Parse(transcript)
	p.metrics.ObserveParseDuration(time.Since(startTime).Seconds())
	p.metrics.IncTournamentsParsed()

	log.Info("Transcript parsed", "tournamentID", summary.ID, "players", summary.TotalPlayers, "awards", len(summary.Awards), "badBeats", len(summary.BadBeatLog), "noData", summary.NoData)

	if !dryRun {
		if err := p.store.UpsertSummary(summary); err != nil {
			return nil, fmt.Errorf("failed to store tournament summary: %w", err)
		}
		if err := p.pubsub.SendMessage(pubsub.EventTournamentParsed, pubsub.TournamentParsedEvent{
			TournamentID: summary.ID,
			TotalPlayers: summary.TotalPlayers,
			NoData:       summary.NoData,
		}); err != nil {
			// The summary is already stored; a missed event is worth a log
			// line, not a failed upload.
			log.Error("Failed to publish tournament-parsed event", "error", err, "tournamentID", summary.ID)
		}
	}

	if err := p.notifier.SendAwardsNotification(summary, dryRun); err != nil {
		log.Error("Failed to send awards notification", "error", err, "tournamentID", summary.ID)
	}

	return summary, nil
}
