package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/dasdy/gamecard/model"
)

type SectionKind string

const (
	SectionHeader       SectionKind = "header"
	SectionScoreboard   SectionKind = "scoreboard"
	SectionPreview      SectionKind = "preview"
	SectionScoreTable   SectionKind = "score-table"
	SectionGoalTimeline SectionKind = "goal-timeline"
	SectionPlayerStats  SectionKind = "player-stats"
	SectionGameRecords  SectionKind = "game-records"
	SectionComparison   SectionKind = "comparison"
	SectionStandings    SectionKind = "standings"
)

// Section is one block of a card. Every section renders itself.
type Section interface {
	templ.Component
	Kind() SectionKind
}

type Theme string

const (
	// ThemeClassic is the flat bordered look used for basketball.
	ThemeClassic Theme = "classic"
	// ThemeVivid paints headers and badges with the team colors.
	ThemeVivid Theme = "vivid"
)

// Card is the render context for a single game card.
type Card struct {
	GameID    string
	Sport     model.Sport
	Variant   string
	Theme     Theme
	HomeColor string
	AwayColor string
	Sections  []Section
}

// Kinds lists section kinds in render order.
func (c *Card) Kinds() []SectionKind {
	kinds := make([]SectionKind, 0, len(c.Sections))
	for _, s := range c.Sections {
		kinds = append(kinds, s.Kind())
	}

	return kinds
}

type Tab string

const (
	TabHome Tab = "home"
	TabAway Tab = "away"
)

// ViewState is the interactive state of a card carried in the query string.
type ViewState struct {
	Tab        Tab
	Conference string
}

type TabLink struct {
	Label  string
	Href   string
	Active bool
	Color  string
}

type TeamBadge struct {
	Name           string
	ShortName      string
	Initials       string
	Logo           string
	Record         string
	PrimaryColor   string
	SecondaryColor string
}

type FormTone string

const (
	FormToneWin  FormTone = "win"
	FormToneDraw FormTone = "draw"
	FormToneLoss FormTone = "loss"
)

type FormChip struct {
	Result string
	Tone   FormTone
}

type Header struct {
	League    string
	Date      string
	Time      string
	Status    string
	Badge     string
	Clock     string
	HomeColor string
	AwayColor string
}

func (*Header) Kind() SectionKind { return SectionHeader }

func (c *Header) Render(ctx context.Context, w io.Writer) error {
	return headerView(c).Render(ctx, w)
}

type Scoreboard struct {
	League     string
	LeagueTone string
	Date       string
	Time       string
	Status     string
	StatusTone string
	// ShowHeader renders the league/date/status strip inside the scoreboard.
	ShowHeader bool

	Home         TeamBadge
	Away         TeamBadge
	HomeScore    string
	AwayScore    string
	HomeEmphasis bool
	AwayEmphasis bool
	Separator    string

	// Result is "WIN" or "DRAW" on finished games, empty otherwise.
	Result     string
	ResultSide Tab
	Clock      string
	Note       string

	Periods *ScoreTable
}

func (*Scoreboard) Kind() SectionKind { return SectionScoreboard }

func (c *Scoreboard) Render(ctx context.Context, w io.Writer) error {
	return scoreboardView(c).Render(ctx, w)
}

type Preview struct {
	Home TeamBadge
	Away TeamBadge
	Date string
	Time string
}

func (*Preview) Kind() SectionKind { return SectionPreview }

func (c *Preview) Render(ctx context.Context, w io.Writer) error {
	return previewView(c).Render(ctx, w)
}

type ScoreCell struct {
	Value   string
	Lead    bool
	Current bool
}

type ScoreRow struct {
	Team  string
	Color string
	Cells []ScoreCell
	Total string
}

type ScoreTable struct {
	Title      string
	Columns    []string
	Current    string
	TotalLabel string
	Home       ScoreRow
	Away       ScoreRow
}

func (*ScoreTable) Kind() SectionKind { return SectionScoreTable }

func (c *ScoreTable) Render(ctx context.Context, w io.Writer) error {
	return scoreTableView(c).Render(ctx, w)
}

type GoalRow struct {
	Clock   string
	Scorer  string
	Assist  string
	Penalty bool
	OwnGoal bool
	Side    Tab
	Color   string
}

type GoalTimeline struct {
	Goals []GoalRow
}

func (*GoalTimeline) Kind() SectionKind { return SectionGoalTimeline }

func (c *GoalTimeline) Render(ctx context.Context, w io.Writer) error {
	return goalTimelineView(c).Render(ctx, w)
}

type PlayerRow struct {
	Number   string
	Name     string
	Position string
	Cells    []string
	Yellow   bool
	Red      bool
}

type PlayerStats struct {
	Title     string
	Tabs      []TabLink
	Columns   []string
	Rows      []PlayerRow
	TeamColor string
}

func (*PlayerStats) Kind() SectionKind { return SectionPlayerStats }

func (c *PlayerStats) Render(ctx context.Context, w io.Writer) error {
	return playerStatsView(c).Render(ctx, w)
}

type RecordRow struct {
	Label    string
	Home     string
	Away     string
	HomeWins bool
	AwayWins bool
}

type GameRecords struct {
	HomeName string
	AwayName string
	Rows     []RecordRow
}

func (*GameRecords) Kind() SectionKind { return SectionGameRecords }

func (c *GameRecords) Render(ctx context.Context, w io.Writer) error {
	return gameRecordsView(c).Render(ctx, w)
}

type MeetingRow struct {
	Date    string
	Home    string
	Away    string
	HomeWon bool
	AwayWon bool
}

type HeadToHeadView struct {
	TotalGames int
	HomeWins   int
	AwayWins   int
	Draws      int
	ShowDraws  bool
	Meetings   []MeetingRow
}

type Comparison struct {
	// ShowTitle hides the section title on the pre-game basketball card where the
	// comparison is the whole card.
	ShowTitle bool
	// ShowTeams renders the team header row with badges.
	ShowTeams bool
	PreGame   bool
	League    string
	Date      string
	Time      string

	Home       TeamBadge
	Away       TeamBadge
	ShowForm   bool
	HomeForm   []FormChip
	AwayForm   []FormChip
	HeadToHead *HeadToHeadView
}

func (*Comparison) Kind() SectionKind { return SectionComparison }

func (c *Comparison) Render(ctx context.Context, w io.Writer) error {
	return comparisonView(c).Render(ctx, w)
}

type StandingsRow struct {
	Rank  string
	Team  string
	Cells []string
	Form  []FormChip
	Side  Tab
	Color string
}

type Standings struct {
	Tabs    []TabLink
	Columns []string
	Rows    []StandingsRow
}

func (*Standings) Kind() SectionKind { return SectionStandings }

func (c *Standings) Render(ctx context.Context, w io.Writer) error {
	return standingsView(c).Render(ctx, w)
}

// IndexEntry is one row of the game listing page.
type IndexEntry struct {
	Href    string
	Sport   string
	League  string
	Date    string
	Status  string
	Matchup string
}
