package poker

// PositionUnranked marks players whose finishing position could not be
// derived from the transcript. Positions are 1-based.
const PositionUnranked = 0

// PlayerStat holds the cumulative counters for a single player across one
// tournament transcript. Counters only ever grow while hands are folded in.
type PlayerStat struct {
	Name                   string        `json:"name"`
	HandsPlayed            int           `json:"hands_played"`
	Raises                 int           `json:"raises"`
	Calls                  int           `json:"calls"`
	Folds                  int           `json:"folds"`
	Bets                   int           `json:"bets"`
	Checks                 int           `json:"checks"`
	Showdowns              int           `json:"showdowns"`
	ShowdownWins           int           `json:"showdown_wins"`
	TotalWon               int           `json:"total_won"`
	AggressiveActions      int           `json:"aggressive_actions"`
	PassiveActions         int           `json:"passive_actions"`
	HandsVoluntarilyPlayed int           `json:"hands_voluntarily_played"`
	MaxChips               int           `json:"max_chips"`
	FinalPosition          int           `json:"final_position"`
	BadBeats               []BadBeatInfo `json:"bad_beats,omitempty"`
	Suckouts               []SuckoutInfo `json:"suckouts,omitempty"`
}

// BadBeatInfo is attached to the losing player of a genuine bad beat.
type BadBeatInfo struct {
	Winner      string `json:"winner"`
	VictimHand  string `json:"victim_hand"`
	WinnerHand  string `json:"winner_hand"`
	Description string `json:"description"`
}

// SuckoutInfo is the mirror record attached to the winning player.
type SuckoutInfo struct {
	Victim      string `json:"victim"`
	VictimHand  string `json:"victim_hand"`
	WinnerHand  string `json:"winner_hand"`
	Description string `json:"description"`
}

// BadBeatEntry is one row of the tournament-wide bad-beat log, in the order
// the beats occurred in the transcript.
type BadBeatEntry struct {
	HandNumber  int    `json:"hand_number"`
	Victim      string `json:"victim"`
	Winner      string `json:"winner"`
	VictimHand  string `json:"victim_hand"`
	WinnerHand  string `json:"winner_hand"`
	Description string `json:"description"`
}

// AwardRecord names the single winner of one award category.
type AwardRecord struct {
	Winner      string `json:"winner"`
	Description string `json:"description"`
	Stat        string `json:"stat"`
}

// TournamentSummary is the immutable result of one parse call.
type TournamentSummary struct {
	Date         string                 `json:"tournament_date"`
	ID           string                 `json:"tournament_id"`
	TotalPlayers int                    `json:"total_players"`
	Awards       map[string]AwardRecord `json:"awards"`
	BadBeatLog   []BadBeatEntry         `json:"bad_beat_log"`
	NoData       bool                   `json:"no_data,omitempty"`
}

// Award category names. The behavioral order in awardRules is part of the
// contract; these constants are just the stable map keys.
const (
	AwardChampion       = "Tournament Champion"
	AwardRunnerUp       = "Runner-Up"
	AwardBubbleBoy      = "Bubble Boy"
	AwardMostAggressive = "Most Aggressive"
	AwardCallingStation = "Calling Station"
	AwardTightest       = "Tightest Player"
	AwardComebackKid    = "Comeback Kid"
	AwardYOLO           = "YOLO Award"
	AwardDoggyPaddling  = "Doggy Paddling Award"
	AwardHollywood      = "Hollywood Actor"
	AwardSevenDeuceHero = "7-2 Hero"
	AwardDonkey         = "Donkey"
	AwardABCPlayer      = "ABC Player"
)
