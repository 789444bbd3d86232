package card

import (
	"fmt"
	"strconv"

	"github.com/dasdy/gamecard/model"
	cs "github.com/dasdy/gamecard/web/components"
)

const volleyballMeetings = 3

type volleyball struct {
	game  *model.Game
	state cs.ViewState
	rules Rules
}

func (v volleyball) before() []cs.Section {
	var out sections
	out.add(v.header(), v.preview(), v.comparison(volleyballMeetings), v.standings())

	return out
}

func (v volleyball) live() []cs.Section {
	var out sections
	out.add(v.header(), v.scoreboard(), v.sets(), gameRecords(v.game, v.rules), v.comparison(0), v.standings())

	return out
}

func (v volleyball) after() []cs.Section {
	var out sections
	out.add(v.header(), v.scoreboard(), v.sets(), v.playerStats(), gameRecords(v.game, v.rules),
		v.comparison(volleyballMeetings), v.standings())

	return out
}

func (v volleyball) header() cs.Section {
	g := v.game
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
		h.Badge = "LIVE"
		if g.CurrentSet > 0 {
			h.Clock = fmt.Sprintf("SET%d", g.CurrentSet)
		}
	case VariantAfter, VariantNone:
	}

	return h
}

func (v volleyball) preview() cs.Section {
	return &cs.Preview{
		Home: badge(&v.game.HomeTeam, 3, true),
		Away: badge(&v.game.AwayTeam, 3, true),
		Date: v.game.Date,
		Time: v.game.Time,
	}
}

// scoreboard shows sets won rather than points.
func (v volleyball) scoreboard() cs.Section {
	g := v.game
	home, away := g.HomeTeam.SetsWon, g.AwayTeam.SetsWon

	sb := &cs.Scoreboard{
		Home:         badge(&g.HomeTeam, 3, true),
		Away:         badge(&g.AwayTeam, 3, true),
		HomeScore:    strconv.Itoa(home),
		AwayScore:    strconv.Itoa(away),
		HomeEmphasis: home > away,
		AwayEmphasis: away > home,
		Separator:    "VS",
	}

	switch {
	case g.Status != model.StatusFinished:
		if g.CurrentSet > 0 {
			sb.Note = fmt.Sprintf("SET%d", g.CurrentSet)
		}
	case home > away:
		sb.Result = "WIN"
		sb.ResultSide = cs.TabHome
	case away > home:
		sb.Result = "WIN"
		sb.ResultSide = cs.TabAway
	}

	return sb
}

// sets builds the per-set table. Sets four and five appear only when the home
// side reports them.
func (v volleyball) sets() cs.Section {
	hs, as := v.game.HomeTeam.SetScores, v.game.AwayTeam.SetScores
	if hs == nil || as == nil {
		return nil
	}

	home := []int{hs.Set1, hs.Set2, hs.Set3}
	away := []int{as.Set1, as.Set2, as.Set3}

	if hs.Set4 != nil {
		home = append(home, *hs.Set4)
		away = append(away, intOr(as.Set4))
	}

	if hs.Set5 != nil {
		home = append(home, *hs.Set5)
		away = append(away, intOr(as.Set5))
	}

	columns := make([]string, len(home))
	for i := range home {
		columns[i] = fmt.Sprintf("SET%d", i+1)
	}

	current := -1
	if SelectVariant(v.game.Status) == VariantLive && v.game.CurrentSet > 0 && v.game.CurrentSet <= len(home) {
		current = v.game.CurrentSet - 1
	}

	hc, ac := scoreTableCells(home, away, current)

	table := &cs.ScoreTable{
		Columns:    columns,
		TotalLabel: "SETS",
		Home: cs.ScoreRow{
			Team: v.game.HomeTeam.ShortName, Color: colorOr(v.game.HomeTeam.PrimaryColor),
			Cells: hc, Total: strconv.Itoa(v.game.HomeTeam.SetsWon),
		},
		Away: cs.ScoreRow{
			Team: v.game.AwayTeam.ShortName, Color: colorOr(v.game.AwayTeam.PrimaryColor),
			Cells: ac, Total: strconv.Itoa(v.game.AwayTeam.SetsWon),
		},
	}

	if current >= 0 {
		table.Current = columns[current]
	}

	return table
}

func (v volleyball) playerStats() cs.Section {
	team := activeTeam(v.game, v.state)
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
				strconv.Itoa(p.Sets),
				strconv.Itoa(p.Points),
				strconv.Itoa(p.Kills),
				strconv.Itoa(intOr(p.Blocks)),
				strconv.Itoa(p.Aces),
				strconv.Itoa(p.Digs),
			},
		})
	}

	return &cs.PlayerStats{
		Title:     "Player stats",
		Tabs:      playerTabs(v.game, v.state, true),
		Columns:   []string{"SET", "PTS", "ATK", "BLK", "ACE", "DIG"},
		Rows:      rows,
		TeamColor: colorOr(team.PrimaryColor),
	}
}

func (v volleyball) comparison(meetings int) cs.Section {
	return comparison(v.game, comparisonOpts{
		showTitle:   true,
		meetings:    meetings,
		useSets:     true,
		initialsLen: 3,
		upper:       true,
	})
}

func (v volleyball) standings() cs.Section {
	return highlightedStandings(v.game, []string{"W", "L", "PCT"}, func(t *model.StandingsTeam) []string {
		return []string{strconv.Itoa(t.Wins), strconv.Itoa(t.Losses), t.WinRate.String()}
	})
}
