package poker

import "strings"

// Strength tiers, low to high. The room software's textual hand description
// is trusted; these tiers only order outcomes for the bad-beat test.
const (
	TierHighCard = iota + 1
	TierPair
	TierTwoPair
	TierThreeOfAKind
	TierStraight
	TierFlush
	TierFullHouse
	TierFourOfAKind
	TierStraightFlush
	TierRoyalFlush
)

// HandStrength is the classified form of a textual made-hand description.
type HandStrength struct {
	Tier  int
	Label string
}

// rankWords in descending rank order, so the first hit is the high rank of
// the description ("kings and aces" still reads as aces).
var rankWords = []string{
	"aces", "kings", "queens", "jacks", "tens", "nines", "eights",
	"sevens", "sixes", "fives", "fours", "threes", "deuces", "twos",
}

// premiumRanks promote a two pair one notional tier. The asymmetry (premium
// two pair ties three of a kind) is deliberate and load-bearing for the
// bad-beat threshold.
var premiumRanks = map[string]bool{"aces": true, "kings": true, "queens": true}

// ClassifyHand maps a textual hand description to a strength tier and a
// canonical label. Unrecognized descriptions classify as high card.
func ClassifyHand(description string) HandStrength {
	desc := strings.ToLower(description)

	switch {
	case strings.Contains(desc, "royal flush"):
		return HandStrength{TierRoyalFlush, "royal flush"}
	case strings.Contains(desc, "straight flush"):
		return HandStrength{TierStraightFlush, "straight flush"}
	case strings.Contains(desc, "four of a kind"), strings.Contains(desc, "quads"):
		return HandStrength{TierFourOfAKind, withRank("four of a kind", desc)}
	case strings.Contains(desc, "full house"):
		return HandStrength{TierFullHouse, "full house"}
	case strings.Contains(desc, "flush"):
		return HandStrength{TierFlush, "flush"}
	case strings.Contains(desc, "straight"):
		return HandStrength{TierStraight, "straight"}
	case strings.Contains(desc, "three of a kind"), strings.Contains(desc, "trips"), strings.Contains(desc, "a set of"):
		return HandStrength{TierThreeOfAKind, withRank("three of a kind", desc)}
	case strings.Contains(desc, "two pair"):
		tier := TierTwoPair
		label := "two pair"
		if rank := highRank(desc); rank != "" {
			label = "two pair, " + rank + " up"
			if premiumRanks[rank] {
				tier++
			}
		}
		return HandStrength{tier, label}
	case strings.Contains(desc, "pair"):
		return HandStrength{TierPair, withRankOf("pair", desc)}
	default:
		return HandStrength{TierHighCard, "high card"}
	}
}

// highRank returns the highest rank word present in the description, or "".
func highRank(desc string) string {
	for _, rank := range rankWords {
		if strings.Contains(desc, rank) {
			return rank
		}
	}
	return ""
}

func withRank(label, desc string) string {
	if rank := highRank(desc); rank != "" {
		return label + ", " + rank
	}
	return label
}

func withRankOf(label, desc string) string {
	if rank := highRank(desc); rank != "" {
		return label + " of " + rank
	}
	return label
}
