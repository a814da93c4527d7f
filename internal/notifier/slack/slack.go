package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pokernight/awards-board/internal/metrics"
	"github.com/pokernight/awards-board/internal/notifier"
	"github.com/pokernight/awards-board/internal/poker"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendAwardsNotification posts the night's award catalog to the channel.
func (s *Notifier) SendAwardsNotification(summary *poker.TournamentSummary, dryRun bool) error {
	msg := s.formatAwardsNotification(summary)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// awardEmojis keeps the announcement readable at a glance. Categories
// without an entry fall back to the generic trophy.
var awardEmojis = map[string]string{
	poker.AwardChampion:       "👑",
	poker.AwardRunnerUp:       "🥈",
	poker.AwardBubbleBoy:      "🫧",
	poker.AwardMostAggressive: "🔥",
	poker.AwardCallingStation: "📞",
	poker.AwardTightest:       "🔒",
	poker.AwardComebackKid:    "🚀",
	poker.AwardYOLO:           "🎲",
	poker.AwardDoggyPaddling:  "🐶",
	poker.AwardHollywood:      "🎬",
	poker.AwardSevenDeuceHero: "🃏",
	poker.AwardDonkey:         "🐴",
	poker.AwardABCPlayer:      "📖",
}

// displayOrder fixes the announcement layout: podium first, then the
// behavioral categories. Anything not listed sorts alphabetically at the end.
var displayOrder = []string{
	poker.AwardChampion,
	poker.AwardRunnerUp,
	poker.AwardBubbleBoy,
	poker.AwardMostAggressive,
	poker.AwardCallingStation,
	poker.AwardTightest,
	poker.AwardComebackKid,
	poker.AwardYOLO,
	poker.AwardDoggyPaddling,
	poker.AwardHollywood,
	poker.AwardSevenDeuceHero,
	poker.AwardDonkey,
	poker.AwardABCPlayer,
}

// formatAwardsNotification creates the Slack message for a parsed tournament using Block Kit.
func (s *Notifier) formatAwardsNotification(summary *poker.TournamentSummary) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Poker Night Results 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if summary.NoData {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject("plain_text", "The uploaded log contained no playable hands. Nothing to award tonight.", false, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	detailsText := fmt.Sprintf("Tournament #%s\n%s\n%d players", summary.ID, summary.Date, summary.TotalPlayers)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, false, false), nil, nil))

	for _, name := range orderedAwardNames(summary.Awards) {
		rec := summary.Awards[name]
		emoji := awardEmojis[name]
		if emoji == "" {
			emoji = "🏆"
		}
		awardText := fmt.Sprintf("%s %s: %s\n%s\n_%s_", emoji, name, rec.Winner, rec.Description, rec.Stat)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", awardText, false, false), nil, nil))
	}

	if len(summary.BadBeatLog) > 0 {
		var contextElements []slack.MixedElement
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", fmt.Sprintf("💔 Bad beats of the night: %d", len(summary.BadBeatLog)), true, false))
		// Cap the recap at three beats so a cooler-heavy night does not
		// bury the awards.
		for i, entry := range summary.BadBeatLog {
			if i == 3 {
				break
			}
			contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", fmt.Sprintf("Hand #%d: %s", entry.HandNumber, entry.Description), false, false))
		}
		blocks = append(blocks, slack.NewContextBlock("", contextElements...))
	}

	return slack.NewBlockMessage(blocks...)
}

// orderedAwardNames returns the award names present in the map, in display
// order.
func orderedAwardNames(awards map[string]poker.AwardRecord) []string {
	rank := make(map[string]int, len(displayOrder))
	for i, name := range displayOrder {
		rank[name] = i + 1
	}

	names := make([]string, 0, len(awards))
	for name := range awards {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := rank[names[i]], rank[names[j]]
		if ri == 0 && rj == 0 {
			return names[i] < names[j]
		}
		if ri == 0 || rj == 0 {
			return rj == 0
		}
		return ri < rj
	})
	return names
}
