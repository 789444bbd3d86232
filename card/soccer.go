package card

import (
	"slices"
	"strconv"
	"strings"

	"github.com/dasdy/gamecard/model"
	cs "github.com/dasdy/gamecard/web/components"
)

const soccerMeetings = 3

type soccer struct {
	game  *model.Game
	state cs.ViewState
	rules Rules
}

func (s soccer) before() []cs.Section {
	var out sections
	out.add(s.header(), s.preview(), s.comparison(soccerMeetings), s.standings())

	return out
}

func (s soccer) live() []cs.Section {
	var out sections
	out.add(s.header(), s.scoreboard(), s.halves(), s.goals(), gameRecords(s.game, s.rules),
		s.comparison(0), s.standings())

	return out
}

func (s soccer) after() []cs.Section {
	var out sections
	out.add(s.header(), s.scoreboard(), s.halves(), s.goals(), s.playerStats(), gameRecords(s.game, s.rules),
		s.comparison(soccerMeetings), s.standings())

	return out
}

func (s soccer) isHalfTime() bool {
	return s.game.Status == model.StatusHalfTime
}

// liveClock is "67+2'" while the clock runs, otherwise the reported period.
func (s soccer) liveClock() string {
	if s.game.CurrentMinute > 0 {
		return clock(s.game.CurrentMinute, s.game.AddedTime)
	}

	return s.game.CurrentPeriod
}

func (s soccer) header() cs.Section {
	g := s.game
	h := &cs.Header{
		League:    g.League,
		Date:      g.Date,
		Status:    g.Status.Label(),
		HomeColor: colorOr(g.HomeTeam.PrimaryColor),
		AwayColor: colorOr(g.AwayTeam.PrimaryColor),
	}

	switch SelectVariant(g.Status) {
	case VariantBefore:
		h.Time = g.Time
	case VariantLive:
		h.Clock = s.liveClock()

		h.Badge = "LIVE"
		if s.isHalfTime() {
			h.Badge = "HT"
		}
	case VariantAfter, VariantNone:
	}

	return h
}

func (s soccer) preview() cs.Section {
	return &cs.Preview{
		Home: badge(&s.game.HomeTeam, 3, true),
		Away: badge(&s.game.AwayTeam, 3, true),
		Date: s.game.Date,
		Time: s.game.Time,
	}
}

func (s soccer) scoreboard() cs.Section {
	g := s.game
	home, away := g.HomeTeam.Score, g.AwayTeam.Score

	sb := &cs.Scoreboard{
		Home:      badge(&g.HomeTeam, 3, true),
		Away:      badge(&g.AwayTeam, 3, true),
		HomeScore: strconv.Itoa(home),
		AwayScore: strconv.Itoa(away),
		Separator: "-",
	}

	if g.Status == model.StatusFinished {
		draw := home == away
		sb.HomeEmphasis = home > away || draw
		sb.AwayEmphasis = away > home || draw

		switch {
		case draw:
			sb.Result = "DRAW"
		case home > away:
			sb.Result = "WIN"
			sb.ResultSide = cs.TabHome
		default:
			sb.Result = "WIN"
			sb.ResultSide = cs.TabAway
		}

		return sb
	}

	sb.HomeEmphasis = home > away
	sb.AwayEmphasis = away > home

	switch {
	case s.isHalfTime():
		sb.Note = "Half-time"
	case g.CurrentMinute > 0:
		sb.Clock = clock(g.CurrentMinute, g.AddedTime)
	default:
		sb.Note = g.CurrentPeriod
	}

	return sb
}

type period struct {
	label   string
	aliases []string
}

var soccerPeriods = []period{
	{label: "1H", aliases: []string{"1h", "first half", "1st half", "전반"}},
	{label: "2H", aliases: []string{"2h", "second half", "2nd half", "후반"}},
	{label: "ET1", aliases: []string{"et1", "extra time first half", "연장전반"}},
	{label: "ET2", aliases: []string{"et2", "extra time second half", "연장후반"}},
	{label: "PK", aliases: []string{"pk", "penalties", "승부차기"}},
}

func currentPeriodIndex(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return -1
	}

	for i, p := range soccerPeriods {
		if slices.Contains(p.aliases, name) || strings.ToLower(p.label) == name {
			return i
		}
	}

	return -1
}

func intOr(v *int) int {
	if v == nil {
		return 0
	}

	return *v
}

// halves builds the per-period table. Extra time and penalties appear only
// when the home side reports them.
func (s soccer) halves() cs.Section {
	hs, as := s.game.HomeTeam.HalfScores, s.game.AwayTeam.HalfScores
	if hs == nil || as == nil {
		return nil
	}

	columns := []string{soccerPeriods[0].label, soccerPeriods[1].label}
	home := []int{hs.FirstHalf, hs.SecondHalf}
	away := []int{as.FirstHalf, as.SecondHalf}

	optional := []struct {
		idx        int
		home, away *int
	}{
		{2, hs.ExtraFirstHalf, as.ExtraFirstHalf},
		{3, hs.ExtraSecondHalf, as.ExtraSecondHalf},
		{4, hs.Penalties, as.Penalties},
	}

	// indexes of the shown columns into soccerPeriods
	shown := []int{0, 1}

	for _, o := range optional {
		if o.home == nil {
			continue
		}

		columns = append(columns, soccerPeriods[o.idx].label)
		home = append(home, *o.home)
		away = append(away, intOr(o.away))
		shown = append(shown, o.idx)
	}

	current := -1
	if SelectVariant(s.game.Status) == VariantLive {
		if idx := currentPeriodIndex(s.game.CurrentPeriod); idx >= 0 {
			current = slices.Index(shown, idx)
		}
	}

	hc, ac := scoreTableCells(home, away, current)

	table := &cs.ScoreTable{
		Columns:    columns,
		TotalLabel: "TOTAL",
		Home: cs.ScoreRow{
			Team: s.game.HomeTeam.ShortName, Color: colorOr(s.game.HomeTeam.PrimaryColor),
			Cells: hc, Total: strconv.Itoa(s.game.HomeTeam.Score),
		},
		Away: cs.ScoreRow{
			Team: s.game.AwayTeam.ShortName, Color: colorOr(s.game.AwayTeam.PrimaryColor),
			Cells: ac, Total: strconv.Itoa(s.game.AwayTeam.Score),
		},
	}

	if current >= 0 {
		table.Current = columns[current]
	}

	return table
}

// goals orders goals by match time; stoppage time sorts inside its minute.
func (s soccer) goals() cs.Section {
	if len(s.game.Goals) == 0 {
		return nil
	}

	sorted := slices.Clone(s.game.Goals)
	slices.SortStableFunc(sorted, func(a, b model.Goal) int {
		at := float64(a.Minute) + float64(a.AddedTime)/100
		bt := float64(b.Minute) + float64(b.AddedTime)/100

		switch {
		case at < bt:
			return -1
		case at > bt:
			return 1
		default:
			return 0
		}
	})

	rows := make([]cs.GoalRow, 0, len(sorted))

	for _, goal := range sorted {
		row := cs.GoalRow{
			Clock:   clock(goal.Minute, goal.AddedTime),
			Scorer:  goal.Scorer,
			Assist:  goal.Assist,
			Penalty: goal.IsPenalty,
			OwnGoal: goal.IsOwnGoal,
			Side:    cs.TabHome,
			Color:   colorOr(s.game.HomeTeam.PrimaryColor),
		}

		if goal.Team == model.WinnerAway {
			row.Side = cs.TabAway
			row.Color = colorOr(s.game.AwayTeam.PrimaryColor)
		}

		rows = append(rows, row)
	}

	return &cs.GoalTimeline{Goals: rows}
}

func (s soccer) playerStats() cs.Section {
	team := activeTeam(s.game, s.state)
	if len(team.Players) == 0 {
		return nil
	}

	rows := make([]cs.PlayerRow, 0, len(team.Players))

	for i := range team.Players {
		p := &team.Players[i]
		rows = append(rows, cs.PlayerRow{
			Number:   p.Number.String(),
			Name:     p.Name,
			Position: p.Position,
			Cells: []string{
				p.Minutes.String(),
				strconv.Itoa(p.Goals),
				strconv.Itoa(p.Assists),
				strconv.Itoa(p.Shots),
				strconv.Itoa(p.Passes),
				strconv.Itoa(p.Tackles),
			},
			Yellow: p.YellowCards > 0,
			Red:    p.RedCards > 0,
		})
	}

	return &cs.PlayerStats{
		Title:     "Player stats",
		Tabs:      playerTabs(s.game, s.state, true),
		Columns:   []string{"MIN", "G", "A", "SH", "PASS", "TKL"},
		Rows:      rows,
		TeamColor: colorOr(team.PrimaryColor),
	}
}

func (s soccer) comparison(meetings int) cs.Section {
	return comparison(s.game, comparisonOpts{
		showTitle:   true,
		showDraws:   true,
		meetings:    meetings,
		initialsLen: 3,
		upper:       true,
	})
}

func (s soccer) standings() cs.Section {
	return highlightedStandings(s.game, []string{"W", "D", "L", "GD", "PTS"}, func(t *model.StandingsTeam) []string {
		return []string{
			strconv.Itoa(t.Wins),
			strconv.Itoa(t.Draws),
			strconv.Itoa(t.Losses),
			signed(t.GoalDifference),
			strconv.Itoa(t.Points),
		}
	})
}
