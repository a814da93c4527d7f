package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoPlayers is returned when the award engine is invoked with an empty
// player map. Callers must pre-filter zero-player tournaments and
// substitute a no-data summary instead.
var ErrNoPlayers = errors.New("poker: no players to assign awards to")

// minHandsDefault is the candidacy floor for behavioral awards; the Donkey
// rule tightens it.
const (
	minHandsDefault = 5
	minHandsDonkey  = 10
)

// weakHoldingTokens flag a conventionally bad starting hand in a suckout
// description.
var weakHoldingTokens = []string{"7", "2", "offsuit", "unsuited"}

// AssignAwards computes the award catalog from a completed stat map.
// order must list the players in first-seen transcript order; it decides
// every tie and every "first player with..." rule, which makes the output
// reproducible for a fixed transcript.
//
// Placement awards are independent of each other and of the behavioral
// catalog. Behavioral awards are evaluated in a fixed priority order with
// first-writer-wins exclusivity: once a player takes one, they are out of
// the running for all later behavioral categories.
func AssignAwards(players map[string]*PlayerStat, order []string) (map[string]AwardRecord, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	awards := make(map[string]AwardRecord)
	n := len(players)

	ordered := make([]*PlayerStat, 0, n)
	for _, name := range order {
		if ps, ok := players[name]; ok {
			ordered = append(ordered, ps)
		}
	}

	assignPlacementAwards(awards, ordered, n)

	claimed := make(map[string]bool)
	for _, rule := range behavioralRules {
		minHands := rule.minHands
		if minHands == 0 {
			minHands = minHandsDefault
		}
		var cands []*PlayerStat
		for _, ps := range ordered {
			if !claimed[ps.Name] && ps.HandsPlayed > minHands {
				cands = append(cands, ps)
			}
		}
		winner, stat := rule.pick(cands, ordered, n)
		if winner == nil {
			continue
		}
		awards[rule.name] = AwardRecord{Winner: winner.Name, Description: rule.description, Stat: stat}
		claimed[winner.Name] = true
	}

	return awards, nil
}

func assignPlacementAwards(awards map[string]AwardRecord, ordered []*PlayerStat, n int) {
	byPosition := func(pos int) *PlayerStat {
		for _, ps := range ordered {
			if ps.FinalPosition == pos {
				return ps
			}
		}
		return nil
	}

	if champ := byPosition(1); champ != nil {
		awards[AwardChampion] = AwardRecord{
			Winner:      champ.Name,
			Description: "Survived the chaos and claimed the crown",
			Stat:        fmt.Sprintf("Outlasted %d other players", n-1),
		}
	}
	if second := byPosition(2); second != nil {
		awards[AwardRunnerUp] = AwardRecord{
			Winner:      second.Name,
			Description: "So close to glory, yet so far",
			Stat:        "Heads-up warrior",
		}
	}
	if n >= 4 {
		if bubble := byPosition((n + 1) / 2); bubble != nil {
			awards[AwardBubbleBoy] = AwardRecord{
				Winner:      bubble.Name,
				Description: "Knocked out just before the money in heartbreaking fashion",
				Stat:        "So close to cashing, yet so far",
			}
		}
	}
}

// behavioralRule picks one winner out of the still-unclaimed candidates.
// cands is pre-filtered by the hands-played floor; all and n give rules the
// tournament-wide context some of them need. pick returns nil when no
// candidate qualifies, which skips the category.
type behavioralRule struct {
	name        string
	description string
	minHands    int
	pick        func(cands, all []*PlayerStat, n int) (*PlayerStat, string)
}

// ratio divides counters without tripping over zero denominators.
func ratio(num, den int) float64 {
	return float64(num) / float64(max(den, 1))
}

// argmax keeps the earliest candidate on ties (strict >), preserving
// transcript order as the tiebreak.
func argmax(cands []*PlayerStat, score func(*PlayerStat) float64) (*PlayerStat, float64) {
	var best *PlayerStat
	var bestScore float64
	for _, ps := range cands {
		s := score(ps)
		if best == nil || s > bestScore {
			best, bestScore = ps, s
		}
	}
	return best, bestScore
}

func argmin(cands []*PlayerStat, score func(*PlayerStat) float64) (*PlayerStat, float64) {
	best, bestScore := argmax(cands, func(ps *PlayerStat) float64 { return -score(ps) })
	return best, -bestScore
}

// The behavioral catalog. Order is part of the contract: it decides which
// award a multi-qualifying player actually takes home.
var behavioralRules = []behavioralRule{
	{
		name:        AwardMostAggressive,
		description: "Fearless bets and raises kept everyone on edge",
		pick: func(cands, _ []*PlayerStat, _ int) (*PlayerStat, string) {
			best, score := argmax(cands, func(ps *PlayerStat) float64 { return ratio(ps.AggressiveActions, ps.HandsPlayed) })
			if best == nil {
				return nil, ""
			}
			return best, fmt.Sprintf("%.2f aggressive moves per hand", score)
		},
	},
	{
		name:        AwardCallingStation,
		description: "Never saw a bet they didn't want to call",
		pick: func(cands, _ []*PlayerStat, _ int) (*PlayerStat, string) {
			best, score := argmax(cands, func(ps *PlayerStat) float64 { return ratio(ps.Calls, ps.HandsPlayed) })
			if best == nil {
				return nil, ""
			}
			return best, fmt.Sprintf("%.2f calls per hand, the human slot machine", score)
		},
	},
	{
		name:        AwardTightest,
		description: "Waited patiently for the premiums",
		pick: func(cands, _ []*PlayerStat, _ int) (*PlayerStat, string) {
			best, score := argmin(cands, func(ps *PlayerStat) float64 { return ratio(ps.HandsVoluntarilyPlayed, ps.HandsPlayed) })
			if best == nil {
				return nil, ""
			}
			return best, fmt.Sprintf("Voluntarily played only %.0f%% of hands", score*100)
		},
	},
	{
		name:        AwardComebackKid,
		description: "Rose from the ashes when all seemed lost",
		pick: func(cands, all []*PlayerStat, n int) (*PlayerStat, string) {
			// Tournament-wide short-stack line: twice the smallest
			// non-zero peak stack anyone held.
			minChips := 0
			for _, ps := range all {
				if ps.MaxChips > 0 && (minChips == 0 || ps.MaxChips < minChips) {
					minChips = ps.MaxChips
				}
			}
			if minChips == 0 {
				return nil, ""
			}
			midfield := (n + 1) / 2
			var qualified []*PlayerStat
			for _, ps := range cands {
				if ps.MaxChips <= 2*minChips && ps.FinalPosition != PositionUnranked && ps.FinalPosition <= midfield {
					qualified = append(qualified, ps)
				}
			}
			best, _ := argmax(qualified, func(ps *PlayerStat) float64 {
				return float64(n-ps.FinalPosition) / float64(max(ps.MaxChips, 1))
			})
			if best == nil {
				return nil, ""
			}
			return best, fmt.Sprintf("Finished #%d off a peak stack of just %d", best.FinalPosition, best.MaxChips)
		},
	},
	{
		name:        AwardYOLO,
		description: "Jumped in with rags and got there anyway",
		pick: func(cands, _ []*PlayerStat, _ int) (*PlayerStat, string) {
			for _, ps := range cands {
				for _, so := range ps.Suckouts {
					desc := strings.ToLower(so.Description)
					for _, token := range weakHoldingTokens {
						if strings.Contains(desc, token) {
							return ps, "Won with " + so.WinnerHand
						}
					}
				}
			}
			return nil, ""
		},
	},
	{
		name:        AwardDoggyPaddling,
		description: "Always in the mix, never got anywhere",
		pick: func(cands, _ []*PlayerStat, n int) (*PlayerStat, string) {
			var qualified []*PlayerStat
			for _, ps := range cands {
				if ps.FinalPosition != PositionUnranked && float64(ps.FinalPosition) > 0.6*float64(n) {
					qualified = append(qualified, ps)
				}
			}
			best, _ := argmax(qualified, func(ps *PlayerStat) float64 { return float64(ps.HandsPlayed) })
			if best == nil {
				return nil, ""
			}
			return best, fmt.Sprintf("Ground out %d hands going nowhere", best.HandsPlayed)
		},
	},
	{
		name:        AwardHollywood,
		description: "Firing barrels with air, keeping the table guessing",
		pick: func(cands, _ []*PlayerStat, _ int) (*PlayerStat, string) {
			var qualified []*PlayerStat
			for _, ps := range cands {
				if ps.Bets > 2 {
					qualified = append(qualified, ps)
				}
			}
			best, _ := argmax(qualified, func(ps *PlayerStat) float64 { return ratio(ps.Bets, max(ps.Showdowns, 1)) })
			if best == nil {
				return nil, ""
			}
			return best, fmt.Sprintf("%d bets but only %d showdowns", best.Bets, best.Showdowns)
		},
	},
	{
		name:        AwardSevenDeuceHero,
		description: "Took down a pot with the worst hand in poker",
		pick: func(cands, _ []*PlayerStat, _ int) (*PlayerStat, string) {
			for _, ps := range cands {
				for _, so := range ps.Suckouts {
					hand := strings.ToLower(so.WinnerHand)
					if (strings.Contains(hand, "7") && strings.Contains(hand, "2")) || strings.Contains(hand, "worst") {
						return ps, "Dragged a pot holding " + so.WinnerHand
					}
				}
			}
			return nil, ""
		},
	},
	{
		name:        AwardDonkey,
		description: "Played everything, won nothing, regretted nothing",
		minHands:    minHandsDonkey,
		pick: func(cands, _ []*PlayerStat, _ int) (*PlayerStat, string) {
			var qualified []*PlayerStat
			for _, ps := range cands {
				vpip := ratio(ps.HandsVoluntarilyPlayed, ps.HandsPlayed)
				winRate := ratio(ps.ShowdownWins, max(ps.Showdowns, 1))
				if vpip > 0.4 && winRate < 0.3 {
					qualified = append(qualified, ps)
				}
			}
			best, score := argmax(qualified, func(ps *PlayerStat) float64 {
				vpip := ratio(ps.HandsVoluntarilyPlayed, ps.HandsPlayed)
				winRate := ratio(ps.ShowdownWins, max(ps.Showdowns, 1))
				return vpip / (winRate + 0.1)
			})
			if best == nil || score <= 1.5 {
				return nil, ""
			}
			return best, fmt.Sprintf("Donkey score %.2f: in every pot, out of every showdown", score)
		},
	},
	{
		name:        AwardABCPlayer,
		description: "Played it straight out of the textbook",
		pick: func(cands, _ []*PlayerStat, _ int) (*PlayerStat, string) {
			var qualified []*PlayerStat
			for _, ps := range cands {
				agg := ratio(ps.AggressiveActions, ps.HandsPlayed)
				if agg > 0.15 && agg < 0.35 {
					qualified = append(qualified, ps)
				}
			}
			best, _ := argmax(qualified, func(ps *PlayerStat) float64 { return float64(ps.ShowdownWins) })
			if best == nil {
				return nil, ""
			}
			return best, fmt.Sprintf("%d showdown wins without ever leaving the book", best.ShowdownWins)
		},
	},
}
