package model

// Game is a fully-formed result card payload. It is produced upstream and
// only ever read here.
type Game struct {
	ID       string     `json:"id"                 yaml:"id"`
	Sport    Sport      `json:"sport"              yaml:"sport"`
	League   string     `json:"league"             yaml:"league"`
	Date     string     `json:"date"               yaml:"date"`
	Time     string     `json:"time,omitempty"     yaml:"time,omitempty"`
	Status   GameStatus `json:"status"             yaml:"status"`
	HomeTeam Team       `json:"homeTeam"           yaml:"homeTeam"`
	AwayTeam Team       `json:"awayTeam"           yaml:"awayTeam"`

	GameRecords []GameRecord `json:"gameRecords,omitempty" yaml:"gameRecords,omitempty"`
	HeadToHead  *HeadToHead  `json:"headToHead,omitempty"  yaml:"headToHead,omitempty"`
	Standings   []Standings  `json:"standings,omitempty"   yaml:"standings,omitempty"`

	// Soccer only.
	Goals         []Goal `json:"goals,omitempty"         yaml:"goals,omitempty"`
	CurrentPeriod string `json:"currentPeriod,omitempty" yaml:"currentPeriod,omitempty"`
	CurrentMinute int    `json:"currentMinute,omitempty" yaml:"currentMinute,omitempty"`
	AddedTime     int    `json:"addedTime,omitempty"     yaml:"addedTime,omitempty"`

	// Volleyball only.
	CurrentSet int `json:"currentSet,omitempty" yaml:"currentSet,omitempty"`
}

type Team struct {
	Name           string       `json:"name"                     yaml:"name"`
	ShortName      string       `json:"shortName"                yaml:"shortName"`
	Logo           string       `json:"logo,omitempty"           yaml:"logo,omitempty"`
	Score          int          `json:"score"                    yaml:"score"`
	Record         string       `json:"record,omitempty"         yaml:"record,omitempty"`
	PrimaryColor   string       `json:"primaryColor,omitempty"   yaml:"primaryColor,omitempty"`
	SecondaryColor string       `json:"secondaryColor,omitempty" yaml:"secondaryColor,omitempty"`
	RecentGames    []FormResult `json:"recentGames,omitempty"    yaml:"recentGames,omitempty"`
	Players        []Player     `json:"players,omitempty"        yaml:"players,omitempty"`

	QuarterScores *QuarterScores `json:"quarterScores,omitempty" yaml:"quarterScores,omitempty"`
	HalfScores    *HalfScores    `json:"halfScores,omitempty"    yaml:"halfScores,omitempty"`
	SetsWon       int            `json:"setsWon,omitempty"       yaml:"setsWon,omitempty"`
	SetScores     *SetScores     `json:"setScores,omitempty"     yaml:"setScores,omitempty"`
}

// QuarterScores holds basketball points per quarter. OT has one entry per overtime.
type QuarterScores struct {
	Q1 int   `json:"q1"           yaml:"q1"`
	Q2 int   `json:"q2"           yaml:"q2"`
	Q3 int   `json:"q3"           yaml:"q3"`
	Q4 int   `json:"q4"           yaml:"q4"`
	OT []int `json:"ot,omitempty" yaml:"ot,omitempty"`
}

type HalfScores struct {
	FirstHalf       int  `json:"firstHalf"                 yaml:"firstHalf"`
	SecondHalf      int  `json:"secondHalf"                yaml:"secondHalf"`
	ExtraFirstHalf  *int `json:"extraFirstHalf,omitempty"  yaml:"extraFirstHalf,omitempty"`
	ExtraSecondHalf *int `json:"extraSecondHalf,omitempty" yaml:"extraSecondHalf,omitempty"`
	Penalties       *int `json:"penalties,omitempty"       yaml:"penalties,omitempty"`
}

type SetScores struct {
	Set1 int  `json:"set1"           yaml:"set1"`
	Set2 int  `json:"set2"           yaml:"set2"`
	Set3 int  `json:"set3"           yaml:"set3"`
	Set4 *int `json:"set4,omitempty" yaml:"set4,omitempty"`
	Set5 *int `json:"set5,omitempty" yaml:"set5,omitempty"`
}

// Player carries the union of per-sport box score columns. Columns that are
// optional for a sport are pointers so "not reported" differs from zero.
type Player struct {
	Number   Value  `json:"number"             yaml:"number"`
	Name     string `json:"name"               yaml:"name"`
	Position string `json:"position,omitempty" yaml:"position,omitempty"`
	Minutes  Value  `json:"minutes,omitempty"  yaml:"minutes,omitempty"`

	Points   int  `json:"points,omitempty"   yaml:"points,omitempty"`
	Rebounds int  `json:"rebounds,omitempty" yaml:"rebounds,omitempty"`
	Assists  int  `json:"assists,omitempty"  yaml:"assists,omitempty"`
	FGM      *int `json:"fgm,omitempty"      yaml:"fgm,omitempty"`
	FGA      *int `json:"fga,omitempty"      yaml:"fga,omitempty"`
	TPM      *int `json:"tpm,omitempty"      yaml:"tpm,omitempty"`
	TPA      *int `json:"tpa,omitempty"      yaml:"tpa,omitempty"`
	Steals   *int `json:"steals,omitempty"   yaml:"steals,omitempty"`
	Blocks   *int `json:"blocks,omitempty"   yaml:"blocks,omitempty"`

	Goals       int `json:"goals,omitempty"       yaml:"goals,omitempty"`
	Shots       int `json:"shots,omitempty"       yaml:"shots,omitempty"`
	Passes      int `json:"passes,omitempty"      yaml:"passes,omitempty"`
	Tackles     int `json:"tackles,omitempty"     yaml:"tackles,omitempty"`
	YellowCards int `json:"yellowCards,omitempty" yaml:"yellowCards,omitempty"`
	RedCards    int `json:"redCards,omitempty"    yaml:"redCards,omitempty"`

	Sets  int `json:"sets,omitempty"  yaml:"sets,omitempty"`
	Kills int `json:"kills,omitempty" yaml:"kills,omitempty"`
	Aces  int `json:"aces,omitempty"  yaml:"aces,omitempty"`
	Digs  int `json:"digs,omitempty"  yaml:"digs,omitempty"`
}

// GameRecord is one team-level metric shown side by side. Key is a stable
// metric identifier; older payloads only carry the display label.
type GameRecord struct {
	Key   string `json:"key,omitempty" yaml:"key,omitempty"`
	Label string `json:"label"         yaml:"label"`
	Home  Value  `json:"home"          yaml:"home"`
	Away  Value  `json:"away"          yaml:"away"`
}

type HeadToHead struct {
	TotalGames    int           `json:"totalGames"              yaml:"totalGames"`
	HomeWins      int           `json:"homeWins"                yaml:"homeWins"`
	AwayWins      int           `json:"awayWins"                yaml:"awayWins"`
	Draws         int           `json:"draws,omitempty"         yaml:"draws,omitempty"`
	RecentMatches []PastMeeting `json:"recentMatches,omitempty" yaml:"recentMatches,omitempty"`
}

type PastMeeting struct {
	Date      string `json:"date"               yaml:"date"`
	HomeScore int    `json:"homeScore"          yaml:"homeScore"`
	AwayScore int    `json:"awayScore"          yaml:"awayScore"`
	HomeSets  int    `json:"homeSets,omitempty" yaml:"homeSets,omitempty"`
	AwaySets  int    `json:"awaySets,omitempty" yaml:"awaySets,omitempty"`
	Winner    Winner `json:"winner"             yaml:"winner"`
}

type Standings struct {
	Conference string          `json:"conference,omitempty" yaml:"conference,omitempty"`
	Teams      []StandingsTeam `json:"teams"                yaml:"teams"`
}

type StandingsTeam struct {
	Rank           int          `json:"rank"                     yaml:"rank"`
	Name           string       `json:"name,omitempty"           yaml:"name,omitempty"`
	ShortName      string       `json:"shortName"                yaml:"shortName"`
	Wins           int          `json:"wins"                     yaml:"wins"`
	Losses         int          `json:"losses"                   yaml:"losses"`
	Draws          int          `json:"draws,omitempty"          yaml:"draws,omitempty"`
	WinRate        Value        `json:"winRate,omitempty"        yaml:"winRate,omitempty"`
	GoalDifference int          `json:"goalDifference,omitempty" yaml:"goalDifference,omitempty"`
	Points         int          `json:"points,omitempty"         yaml:"points,omitempty"`
	RecentGames    []FormResult `json:"recentGames,omitempty"    yaml:"recentGames,omitempty"`
}

type Goal struct {
	Minute    int    `json:"minute"              yaml:"minute"`
	AddedTime int    `json:"addedTime,omitempty" yaml:"addedTime,omitempty"`
	Team      Winner `json:"team"                yaml:"team"`
	Scorer    string `json:"scorer"              yaml:"scorer"`
	Assist    string `json:"assist,omitempty"    yaml:"assist,omitempty"`
	IsPenalty bool   `json:"isPenalty,omitempty" yaml:"isPenalty,omitempty"`
	IsOwnGoal bool   `json:"isOwnGoal,omitempty" yaml:"isOwnGoal,omitempty"`
}

// GameSummary is the subset of a game needed for listings.
type GameSummary struct {
	ID     string
	Sport  Sport
	League string
	Date   string
	Status GameStatus
	Home   string
	Away   string
}

func (g *Game) Summary() GameSummary {
	return GameSummary{
		ID:     g.ID,
		Sport:  g.Sport,
		League: g.League,
		Date:   g.Date,
		Status: g.Status,
		Home:   g.HomeTeam.ShortName,
		Away:   g.AwayTeam.ShortName,
	}
}
