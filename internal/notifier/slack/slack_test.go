package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/pokernight/awards-board/internal/metrics"
	"github.com/pokernight/awards-board/internal/poker"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func sampleSummary() *poker.TournamentSummary {
	return &poker.TournamentSummary{
		Date:         "2025/08/12 19:30:00",
		ID:           "987654",
		TotalPlayers: 6,
		Awards: map[string]poker.AwardRecord{
			poker.AwardChampion:       {Winner: "Alice", Description: "Survived the chaos and claimed the crown", Stat: "Outlasted 5 other players"},
			poker.AwardMostAggressive: {Winner: "Bob", Description: "Fearless bets and raises kept everyone on edge", Stat: "1.50 aggressive moves per hand"},
		},
		BadBeatLog: []poker.BadBeatEntry{
			{HandNumber: 12, Victim: "Bob", Winner: "Alice", Description: "Bob's full house was cracked by Alice's flush"},
		},
	}
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	postMessageCalled := false
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

// Test the public method to ensure it calls the private sender.
func TestSendAwardsNotification_CallsSender(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics)

	err := notifier.SendAwardsNotification(sampleSummary(), false)
	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called via SendAwardsNotification")
}

func TestFormatAwardsNotification(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	msg := client.formatAwardsNotification(sampleSummary())

	// Header, details, two award sections and the bad-beat context block.
	require.Len(t, msg.Blocks.BlockSet, 5, "Expected 5 blocks")

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "First block should be a HeaderBlock")
	assert.Contains(t, header.Text.Text, "Poker Night Results")

	details, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok, "Second block should be a SectionBlock")
	assert.Contains(t, details.Text.Text, "Tournament #987654")
	assert.Contains(t, details.Text.Text, "6 players")

	// Champion sorts before behavioral awards.
	champion, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
	require.True(t, ok, "Third block should be a SectionBlock")
	assert.Contains(t, champion.Text.Text, "Alice")
	assert.Contains(t, champion.Text.Text, poker.AwardChampion)

	context, ok := msg.Blocks.BlockSet[4].(*slackapi.ContextBlock)
	require.True(t, ok, "Last block should be a ContextBlock")
	require.NotEmpty(t, context.ContextElements.Elements)
}

func TestFormatAwardsNotification_NoData(t *testing.T) {
	client := &Notifier{channelID: "C123"}
	msg := client.formatAwardsNotification(&poker.TournamentSummary{ID: "empty", NoData: true})

	require.Len(t, msg.Blocks.BlockSet, 2)
	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "no playable hands")
}

func TestOrderedAwardNames(t *testing.T) {
	awards := map[string]poker.AwardRecord{
		poker.AwardDonkey:   {Winner: "Dee"},
		poker.AwardChampion: {Winner: "Ann"},
		"Mystery Award":     {Winner: "Zed"},
		poker.AwardRunnerUp: {Winner: "Ben"},
	}

	names := orderedAwardNames(awards)
	assert.Equal(t, []string{poker.AwardChampion, poker.AwardRunnerUp, poker.AwardDonkey, "Mystery Award"}, names)
}
