package poker

import (
	"fmt"
	"strings"
)

// detectBadBeats inspects one hand's showdown for genuine bad beats and
// records linked victim/winner entries. Hands without a showdown, split
// pots and potless hands never produce entries.
func (p *Parser) detectBadBeats(handNumber int, hand string, st *tournamentState) {
	idx := strings.Index(hand, showdownMarker)
	if idx < 0 {
		return
	}
	section := hand[idx:]

	type reveal struct {
		name  string
		cards string
		desc  string
	}
	var reveals []reveal
	for _, m := range p.patterns.Shows.FindAllStringSubmatch(section, -1) {
		reveals = append(reveals, reveal{strings.TrimSpace(m[1]), m[2], m[3]})
	}
	if len(reveals) < 2 {
		return
	}

	// A split pot rules out a bad beat: more than one pot-collection
	// event (side pots included, even for a single collector), or the
	// transcript says so outright.
	collections := p.patterns.Collected.FindAllStringSubmatch(hand, -1)
	if len(collections) != 1 || p.patterns.Split.MatchString(hand) {
		return
	}
	winner := strings.TrimSpace(collections[0][1])

	var winnerCards, winnerDesc string
	var winnerStrength HandStrength
	winnerRevealed := false
	for _, r := range reveals {
		if r.name == winner {
			winnerCards, winnerDesc = r.cards, r.desc
			winnerStrength = ClassifyHand(r.desc)
			winnerRevealed = true
			break
		}
	}

	winnerStat := st.lookup(winner)
	for _, r := range reveals {
		if r.name == winner {
			continue
		}
		victim := st.lookup(r.name)
		if victim == nil {
			continue
		}
		loserStrength := ClassifyHand(r.desc)

		// A genuine bad beat needs a hand worth crying about: trips or
		// better always qualifies, two pair or better qualifies when the
		// winner's hand outranks it. Weaker losses stay out of the log.
		qualifies := loserStrength.Tier >= TierThreeOfAKind ||
			(winnerRevealed && loserStrength.Tier >= TierTwoPair && loserStrength.Tier < winnerStrength.Tier)
		if !qualifies {
			continue
		}

		victimHand := fmt.Sprintf("%s %s", r.cards, r.desc)
		winnerHand := "an unseen hand"
		if winnerRevealed {
			winnerHand = fmt.Sprintf("%s %s", winnerCards, winnerDesc)
		}
		description := fmt.Sprintf("%s's %s was cracked by %s's %s", r.name, loserStrength.Label, winner, winnerHand)

		victim.BadBeats = append(victim.BadBeats, BadBeatInfo{
			Winner:      winner,
			VictimHand:  victimHand,
			WinnerHand:  winnerHand,
			Description: description,
		})
		if winnerStat != nil {
			winnerStat.Suckouts = append(winnerStat.Suckouts, SuckoutInfo{
				Victim:      r.name,
				VictimHand:  victimHand,
				WinnerHand:  winnerHand,
				Description: description,
			})
		}
		st.badBeats = append(st.badBeats, BadBeatEntry{
			HandNumber:  handNumber,
			Victim:      r.name,
			Winner:      winner,
			VictimHand:  victimHand,
			WinnerHand:  winnerHand,
			Description: description,
		})
	}
}
