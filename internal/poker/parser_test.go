package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Trimmed-down transcript in the room software's export format: one hand,
// three seats, a showdown and a single pot collection.
const singleHandTranscript = `Hand #1: Tournament #987654, Hold'em No Limit - 2025/08/12 19:30:00
Seat 1: Alice (1000 in chips)
Seat 2: Bob (500 in chips)
Seat 3: Charlie (300 in chips)
Alice: raises 100 to 200
Bob: calls 200
Charlie: folds
*** SHOW DOWN ***
Alice: shows [Ah Ad] (a full house, Aces full of Kings)
Bob: shows [7h 7c] (a pair of Sevens)
Alice collected 1800 from pot
`

const threeHandTranscript = `Hand #1: Tournament #555001, Hold'em No Limit - 2025/07/04 20:00:00
Seat 1: Dana (2000 in chips)
Seat 2: Eli (1800 in chips)
Seat 3: Fay (900 in chips)
Dana: raises 50 to 100
Eli: calls 100
Fay: folds before Flop
Dana: bets 200
Eli: folds
Dana collected 450 from pot
Hand #2: Tournament #555001, Hold'em No Limit
Seat 1: Dana (2450 in chips)
Seat 2: Eli (1500 in chips)
Seat 3: Fay (900 in chips)
Fay: raises 100 to 200
Dana: calls 200
Eli: folds before Flop
*** SHOW DOWN ***
Fay: shows [Ac Ad] (a full house, Aces full of Tens)
Dana: shows [Kh Qh] (a flush, King high)
Dana collected 1100 from pot
Hand #3: Tournament #555001, Hold'em No Limit
Seat 1: Dana (3550 in chips)
Seat 2: Eli (1300 in chips)
Seat 3: Fay (200 in chips)
Fay: raises 100 to 200
Dana: calls 200
Eli: folds before Flop
*** SHOW DOWN ***
Dana: shows [Jc Js] (a pair of Jacks)
Fay: shows [9c 8c] (high card Nine)
Dana collected 520 from pot
`

const splitPotTranscript = `Hand #1: Tournament #777, Hold'em No Limit - 2025/06/01 18:00:00
Seat 1: Gus (1000 in chips)
Seat 2: Hal (1000 in chips)
Gus: bets 500
Hal: calls 500
*** SHOW DOWN ***
Gus: shows [Ah Kd] (a full house, Aces full of Kings)
Hal: shows [Ad Kc] (a full house, Aces full of Kings)
Gus collected 500 from main pot
Hal collected 500 from side pot
`

const sidePotTranscript = `Hand #1: Tournament #778, Hold'em No Limit - 2025/06/08 18:00:00
Seat 1: Alice (2000 in chips)
Seat 2: Bob (400 in chips)
Seat 3: Carol (900 in chips)
Bob: raises 200 to 400
Carol: calls 400
Alice: calls 400
*** SHOW DOWN ***
Bob: shows [Th Td] (a full house, Tens full of Fours)
Alice: shows [Kh Kd] (a flush, King high)
Alice collected 900 from main pot
Alice collected 400 from side pot
`

func TestParse_EmptyTranscript(t *testing.T) {
	p := NewParser()
	summary := p.Parse("")

	require.NotNil(t, summary)
	assert.True(t, summary.NoData)
	assert.Equal(t, 0, summary.TotalPlayers)
	assert.Empty(t, summary.Awards)
	assert.Empty(t, summary.BadBeatLog)
}

func TestParse_SingleHand(t *testing.T) {
	p := NewParser()
	summary := p.Parse(singleHandTranscript)

	require.NotNil(t, summary)
	assert.False(t, summary.NoData)
	assert.Equal(t, "987654", summary.ID)
	assert.Equal(t, "2025/08/12 19:30:00", summary.Date)
	assert.Equal(t, 3, summary.TotalPlayers)

	champion, ok := summary.Awards[AwardChampion]
	require.True(t, ok, "the pot collector of the last hand is the champion")
	assert.Equal(t, "Alice", champion.Winner)

	// A pair is below the two-pair threshold: losing it to a full house is
	// unremarkable, not a bad beat.
	assert.Empty(t, summary.BadBeatLog)
}

func TestParse_StatExtraction(t *testing.T) {
	p := NewParser()
	st := newTournamentState()
	for i, hand := range p.splitHands(threeHandTranscript) {
		p.extractHandStats(hand, st)
		p.detectBadBeats(i+1, hand, st)
	}

	require.Len(t, st.players, 3)
	dana, eli, fay := st.players["Dana"], st.players["Eli"], st.players["Fay"]
	require.NotNil(t, dana)
	require.NotNil(t, eli)
	require.NotNil(t, fay)

	assert.Equal(t, 3, dana.HandsPlayed)
	assert.Equal(t, 1, dana.Raises)
	assert.Equal(t, 2, dana.Calls)
	assert.Equal(t, 1, dana.Bets)
	assert.Equal(t, 2, dana.AggressiveActions)
	assert.Equal(t, 2, dana.PassiveActions)
	assert.Equal(t, 3550, dana.MaxChips)
	assert.Equal(t, 450+1100+520, dana.TotalWon)
	assert.Equal(t, 2, dana.Showdowns)
	assert.Equal(t, 2, dana.ShowdownWins)

	// Eli folded before the flop in hands 2 and 3: only hand 1's fold was
	// a real decision.
	assert.Equal(t, 1, eli.HandsVoluntarilyPlayed)
	assert.Equal(t, 3, eli.Folds)
	assert.Equal(t, 0, eli.Showdowns)

	assert.Equal(t, 2, fay.HandsVoluntarilyPlayed)
	assert.Equal(t, 2, fay.Showdowns)
	assert.Equal(t, 0, fay.ShowdownWins)

	for _, ps := range st.players {
		assert.LessOrEqual(t, ps.HandsVoluntarilyPlayed, ps.HandsPlayed, "voluntary plays can never exceed hands played for %s", ps.Name)
	}
}

func TestParse_BadBeatRecorded(t *testing.T) {
	p := NewParser()
	summary := p.Parse(threeHandTranscript)

	// Hand 2: Fay's full house lost to Dana's flush. Full house is over
	// the trips threshold, so the beat is logged even though the winning
	// tier is textually lower.
	require.Len(t, summary.BadBeatLog, 1)
	entry := summary.BadBeatLog[0]
	assert.Equal(t, 2, entry.HandNumber)
	assert.Equal(t, "Fay", entry.Victim)
	assert.Equal(t, "Dana", entry.Winner)
	assert.Contains(t, entry.VictimHand, "full house")
	assert.Contains(t, entry.WinnerHand, "flush")
}

func TestParse_BadBeatMirroredOnPlayers(t *testing.T) {
	p := NewParser()
	st := newTournamentState()
	for i, hand := range p.splitHands(threeHandTranscript) {
		p.extractHandStats(hand, st)
		p.detectBadBeats(i+1, hand, st)
	}

	require.Len(t, st.players["Fay"].BadBeats, 1)
	require.Len(t, st.players["Dana"].Suckouts, 1)
	assert.Equal(t, "Dana", st.players["Fay"].BadBeats[0].Winner)
	assert.Equal(t, "Fay", st.players["Dana"].Suckouts[0].Victim)
}

func TestParse_SplitPotProducesNoBadBeat(t *testing.T) {
	p := NewParser()
	summary := p.Parse(splitPotTranscript)

	assert.Empty(t, summary.BadBeatLog, "two distinct pot collections mean a split, never a bad beat")
}

func TestParse_SidePotProducesNoBadBeat(t *testing.T) {
	p := NewParser()
	summary := p.Parse(sidePotTranscript)

	// Alice swept main and side pot, so only one name collected, but two
	// collection events still mean the pot was divided.
	assert.Empty(t, summary.BadBeatLog, "multiple pot collections disqualify the hand even with a single collector")
}

func TestParse_FinalPositions(t *testing.T) {
	p := NewParser()
	st := newTournamentState()
	hands := p.splitHands(threeHandTranscript)
	for _, hand := range hands {
		p.extractHandStats(hand, st)
	}
	p.resolvePositions(hands, st)

	// Last hand: Dana collected, Fay was the first other player shown at
	// the showdown, Eli falls back to 3rd on chip count.
	assert.Equal(t, 1, st.players["Dana"].FinalPosition)
	assert.Equal(t, 2, st.players["Fay"].FinalPosition)
	assert.Equal(t, 3, st.players["Eli"].FinalPosition)
}

func TestParse_Idempotent(t *testing.T) {
	p := NewParser()
	first := p.Parse(threeHandTranscript)
	second := p.Parse(threeHandTranscript)
	assert.Equal(t, first, second, "parsing is deterministic")
}

func TestSplitHands(t *testing.T) {
	p := NewParser()

	t.Run("zero hands", func(t *testing.T) {
		assert.Empty(t, p.splitHands("no headers in here"))
	})

	t.Run("three hands", func(t *testing.T) {
		hands := p.splitHands(threeHandTranscript)
		require.Len(t, hands, 3)
		assert.Contains(t, hands[0], "Hand #1")
		assert.Contains(t, hands[2], "Hand #3")
	})

	t.Run("truncated last hand is still returned", func(t *testing.T) {
		truncated := "Hand #1: Tournament #9, Hold'em\nSeat 1: Ivy (500 in chips)\nSeat 2: J"
		hands := p.splitHands(truncated)
		require.Len(t, hands, 1)
		assert.Contains(t, hands[0], "Ivy")
	})
}
