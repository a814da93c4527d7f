package poker

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Parser turns one raw tournament transcript into a TournamentSummary.
// It is stateless; a single Parser may be shared by concurrent callers
// since every Parse call owns its own player map.
type Parser struct {
	patterns *patterns
}

func NewParser() *Parser {
	return &Parser{patterns: newPatterns()}
}

// tournamentState is the invocation-scoped mutable state of one parse.
// order records first-seen transcript order so every downstream decision
// (ties, "first player with...") is reproducible.
type tournamentState struct {
	players  map[string]*PlayerStat
	order    []string
	badBeats []BadBeatEntry
}

func newTournamentState() *tournamentState {
	return &tournamentState{players: make(map[string]*PlayerStat)}
}

// register returns the stat record for name, creating it on first sight.
func (st *tournamentState) register(name string) *PlayerStat {
	if ps, ok := st.players[name]; ok {
		return ps
	}
	ps := &PlayerStat{Name: name, FinalPosition: PositionUnranked}
	st.players[name] = ps
	st.order = append(st.order, name)
	return ps
}

// lookup returns nil for players never seen on a seat line. Actions by
// unknown names (observers, malformed lines) are ignored, not errors.
func (st *tournamentState) lookup(name string) *PlayerStat {
	return st.players[name]
}

// Parse processes a full transcript. It never fails: structural degeneracy
// (zero hands, zero players) yields a no-data summary, and any field a
// pattern cannot recover is simply left at its zero value.
func (p *Parser) Parse(transcript string) *TournamentSummary {
	id := "Unknown"
	if m := p.patterns.TournamentID.FindStringSubmatch(transcript); m != nil {
		id = m[1]
	}
	date := p.patterns.Timestamp.FindString(transcript)

	hands := p.splitHands(transcript)
	st := newTournamentState()
	for i, hand := range hands {
		p.extractHandStats(hand, st)
		p.detectBadBeats(i+1, hand, st)
	}
	p.resolvePositions(hands, st)

	if len(st.players) == 0 {
		log.Warn("Transcript yielded no players, returning no-data summary", "tournamentID", id, "hands", len(hands))
		return noDataSummary(id, date)
	}

	awards, err := AssignAwards(st.players, st.order)
	if err != nil {
		// Unreachable after the pre-check above, but the contract of the
		// award engine is explicit so honor it.
		log.Error("Award assignment refused", "error", err, "tournamentID", id)
		return noDataSummary(id, date)
	}

	return &TournamentSummary{
		Date:         date,
		ID:           id,
		TotalPlayers: len(st.players),
		Awards:       awards,
		BadBeatLog:   st.badBeats,
	}
}

// noDataSummary is the documented zero-player result. Callers can branch on
// NoData without inspecting counters.
func noDataSummary(id, date string) *TournamentSummary {
	return &TournamentSummary{
		Date:         date,
		ID:           id,
		TotalPlayers: 0,
		Awards:       map[string]AwardRecord{},
		BadBeatLog:   nil,
		NoData:       true,
	}
}

// splitHands slices the transcript into hand records, each starting at a
// hand header and running to the next header or end of text. A truncated
// final hand is still returned as a best-effort record.
func (p *Parser) splitHands(transcript string) []string {
	starts := p.patterns.HandHeader.FindAllStringIndex(transcript, -1)
	if len(starts) == 0 {
		return nil
	}
	hands := make([]string, 0, len(starts))
	for i, loc := range starts {
		end := len(transcript)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		hands = append(hands, transcript[loc[0]:end])
	}
	return hands
}

// extractHandStats folds one hand record into the per-player counters.
func (p *Parser) extractHandStats(hand string, st *tournamentState) {
	for _, m := range p.patterns.Seat.FindAllStringSubmatch(hand, -1) {
		name := strings.TrimSpace(m[1])
		chips, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		ps := st.register(name)
		ps.HandsPlayed++
		if chips > ps.MaxChips {
			ps.MaxChips = chips
		}
	}

	voluntary := make(map[string]bool)
	for _, m := range p.patterns.Action.FindAllStringSubmatch(hand, -1) {
		name, verb, tail := strings.TrimSpace(m[1]), m[2], m[3]
		ps := st.lookup(name)
		if ps == nil {
			continue
		}
		switch verb {
		case "raises":
			ps.Raises++
			ps.AggressiveActions++
		case "bets":
			ps.Bets++
			ps.AggressiveActions++
		case "calls":
			ps.Calls++
			ps.PassiveActions++
		case "checks":
			ps.Checks++
			ps.PassiveActions++
		case "folds":
			ps.Folds++
		}
		// Voluntary play: raised, called or folded for a reason, not the
		// uncontested pre-flop default. At most one increment per hand per
		// player, applied below.
		if (verb == "raises" || verb == "calls" || verb == "folds") && !strings.Contains(tail, "before Flop") {
			voluntary[name] = true
		}
	}
	for name := range voluntary {
		if ps := st.lookup(name); ps != nil {
			ps.HandsVoluntarilyPlayed++
		}
	}

	collects := p.patterns.Collected.FindAllStringSubmatch(hand, -1)
	for _, m := range collects {
		name := strings.TrimSpace(m[1])
		ps := st.lookup(name)
		if ps == nil {
			continue
		}
		if amount, err := strconv.Atoi(m[2]); err == nil {
			ps.TotalWon += amount
		}
	}

	if idx := strings.Index(hand, showdownMarker); idx >= 0 {
		section := hand[idx:]
		revealed := make(map[string]bool)
		for _, m := range p.patterns.Shows.FindAllStringSubmatch(section, -1) {
			name := strings.TrimSpace(m[1])
			ps := st.lookup(name)
			if ps == nil {
				continue
			}
			ps.Showdowns++
			revealed[name] = true
		}
		for _, m := range collects {
			name := strings.TrimSpace(m[1])
			if ps := st.lookup(name); ps != nil && revealed[name] {
				ps.ShowdownWins++
			}
		}
	}
}

// resolvePositions derives podium places from the closing hand. Only the
// last hand is consulted; everyone else stays unranked apart from the
// chip-count fallback for 3rd. This is a deliberate heuristic: the
// transcript does not carry a full elimination order.
func (p *Parser) resolvePositions(hands []string, st *tournamentState) {
	if len(hands) == 0 {
		return
	}
	last := hands[len(hands)-1]

	var winner string
	if m := p.patterns.Collected.FindStringSubmatch(last); m != nil {
		winner = strings.TrimSpace(m[1])
		if ps := st.lookup(winner); ps != nil {
			ps.FinalPosition = 1
		}
	}

	if idx := strings.Index(last, showdownMarker); idx >= 0 {
		for _, m := range p.patterns.Shows.FindAllStringSubmatch(last[idx:], -1) {
			name := strings.TrimSpace(m[1])
			if name == winner {
				continue
			}
			if ps := st.lookup(name); ps != nil {
				ps.FinalPosition = 2
				break
			}
		}
	}

	// Fallback 3rd place: the unranked player with the single highest
	// chip count. A tie at the top leaves 3rd vacant.
	var third *PlayerStat
	unique := true
	for _, name := range st.order {
		ps := st.players[name]
		if ps.FinalPosition != PositionUnranked || ps.MaxChips == 0 {
			continue
		}
		switch {
		case third == nil || ps.MaxChips > third.MaxChips:
			third = ps
			unique = true
		case ps.MaxChips == third.MaxChips:
			unique = false
		}
	}
	if third != nil && unique {
		third.FinalPosition = 3
	}
}
