package poker

import "regexp"

const showdownMarker = "*** SHOW DOWN ***"

// patterns holds the compiled line patterns the parser consumes. The
// transcript is the room software's line-oriented text export; every field
// the engine needs is recovered by one of these.
type patterns struct {
	HandHeader   *regexp.Regexp // start of one hand record
	TournamentID *regexp.Regexp
	Timestamp    *regexp.Regexp
	Seat         *regexp.Regexp // seat line with starting chip count
	Action       *regexp.Regexp // "<player>: <verb> ..." betting action
	Shows        *regexp.Regexp // showdown reveal with cards and description
	Collected    *regexp.Regexp // pot collection event
	Split        *regexp.Regexp // explicit split/tie language
}

func newPatterns() *patterns {
	return &patterns{
		// Format: "Hand #12: Tournament #987654, Hold'em No Limit ..."
		HandHeader:   regexp.MustCompile(`(?m)^Hand #(\d+): Tournament #(\d+)`),
		TournamentID: regexp.MustCompile(`Tournament #(\d+)`),

		// First embedded timestamp, e.g. "2025/08/12 19:30:00"
		Timestamp: regexp.MustCompile(`\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}`),

		// "Seat 3: Fuzzy Nips (1500 in chips)"
		Seat: regexp.MustCompile(`(?m)^Seat \d+: (.+?) \((\d+) in chips\)`),

		// "<player>: raises 200 to 400" / calls / bets / checks / folds.
		// The trailing capture lets the caller inspect qualifiers like
		// "folds before Flop"; RE2 has no lookahead to exclude them here.
		Action: regexp.MustCompile(`(?m)^([^:\r\n]+): (raises|bets|calls|checks|folds)\b(.*)$`),

		// "<player>: shows [Ah Ad] (a full house, Aces full of Kings)"
		Shows: regexp.MustCompile(`(?m)^([^:\r\n]+): shows (\[[^\]]*\]) \(([^)]+)\)`),

		// "<player> collected 1800 from pot" (also main/side pots)
		Collected: regexp.MustCompile(`(?m)^(.+?) collected (\d+) from (?:the )?(?:main |side )?pot`),

		Split: regexp.MustCompile(`(?i)\bsplit\b|\btied?\b|\bchop(?:ped)?\b`),
	}
}
