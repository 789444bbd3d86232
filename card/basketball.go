package card

import (
	"fmt"
	"strconv"

	"github.com/dasdy/gamecard/model"
	cs "github.com/dasdy/gamecard/web/components"
)

const basketballMeetings = 5

type basketball struct {
	game  *model.Game
	state cs.ViewState
	rules Rules
}

func (b basketball) before() []cs.Section {
	var s sections
	s.add(b.comparison(true), b.standings())

	return s
}

func (b basketball) live() []cs.Section {
	var s sections
	s.add(b.scoreboard(), gameRecords(b.game, b.rules), b.comparison(false), b.standings())

	return s
}

func (b basketball) after() []cs.Section {
	var s sections
	s.add(b.scoreboard(), b.playerStats(), gameRecords(b.game, b.rules), b.comparison(false), b.standings())

	return s
}

func leagueTone(league string) string {
	switch league {
	case "NBA":
		return "info"
	case "KBL":
		return "warning"
	case "WKBL":
		return "discovery"
	default:
		return "secondary"
	}
}

func statusTone(status model.GameStatus) string {
	switch status {
	case model.StatusFinished:
		return "secondary"
	case model.StatusLive, model.StatusHalfTime:
		return "danger"
	case model.StatusBefore:
		return "info"
	default:
		return "secondary"
	}
}

func (b basketball) scoreboard() cs.Section {
	g := b.game
	preGame := g.Status == model.StatusBefore

	sb := &cs.Scoreboard{
		ShowHeader: true,
		League:     g.League,
		LeagueTone: leagueTone(g.League),
		Date:       g.Date,
		Status:     g.Status.Label(),
		StatusTone: statusTone(g.Status),
		Home:       badge(&g.HomeTeam, 2, false),
		Away:       badge(&g.AwayTeam, 2, false),
		HomeScore:  strconv.Itoa(g.HomeTeam.Score),
		AwayScore:  strconv.Itoa(g.AwayTeam.Score),
		Separator:  "vs",
	}

	if preGame {
		sb.Time = g.Time
		sb.HomeScore = "-"
		sb.AwayScore = "-"
	}

	if !preGame && g.HomeTeam.QuarterScores != nil && g.AwayTeam.QuarterScores != nil {
		sb.Periods = b.quarterTable()
	}

	return sb
}

func quarterList(q *model.QuarterScores) []int {
	return []int{q.Q1, q.Q2, q.Q3, q.Q4}
}

// quarterTable lays out quarters and overtimes. Overtime columns follow the
// home team's list; a missing away overtime shows as "-".
func (b basketball) quarterTable() *cs.ScoreTable {
	home, away := b.game.HomeTeam.QuarterScores, b.game.AwayTeam.QuarterScores

	columns := []string{"1Q", "2Q", "3Q", "4Q"}
	homeRow := cs.ScoreRow{Team: b.game.HomeTeam.ShortName, Total: strconv.Itoa(b.game.HomeTeam.Score)}
	awayRow := cs.ScoreRow{Team: b.game.AwayTeam.ShortName, Total: strconv.Itoa(b.game.AwayTeam.Score)}

	awayQuarters := quarterList(away)
	for i, v := range quarterList(home) {
		homeRow.Cells = append(homeRow.Cells, cs.ScoreCell{Value: strconv.Itoa(v)})
		awayRow.Cells = append(awayRow.Cells, cs.ScoreCell{Value: strconv.Itoa(awayQuarters[i])})
	}

	for i, v := range home.OT {
		label := "OT"
		if i > 0 {
			label = fmt.Sprintf("OT%d", i+1)
		}

		columns = append(columns, label)
		homeRow.Cells = append(homeRow.Cells, cs.ScoreCell{Value: strconv.Itoa(v)})

		awayCell := cs.ScoreCell{Value: "-"}
		if i < len(away.OT) {
			awayCell.Value = strconv.Itoa(away.OT[i])
		}

		awayRow.Cells = append(awayRow.Cells, awayCell)
	}

	return &cs.ScoreTable{
		Columns:    columns,
		TotalLabel: "Total",
		Home:       homeRow,
		Away:       awayRow,
	}
}

func hasExtendedStats(players []model.Player) bool {
	for i := range players {
		if players[i].FGM != nil || players[i].Steals != nil {
			return true
		}
	}

	return false
}

func (b basketball) playerStats() cs.Section {
	team := activeTeam(b.game, b.state)
	extended := hasExtendedStats(team.Players)

	columns := []string{"MIN", "REB", "AST", "PTS"}
	if extended {
		columns = append(columns, "FGM", "3PM", "STL", "BLK")
	}

	rows := make([]cs.PlayerRow, 0, len(team.Players))

	for i := range team.Players {
		p := &team.Players[i]
		cells := []string{p.Minutes.String(), strconv.Itoa(p.Rebounds), strconv.Itoa(p.Assists), strconv.Itoa(p.Points)}

		if extended {
			cells = append(cells,
				madeAttempted(p.FGM, p.FGA),
				madeAttempted(p.TPM, p.TPA),
				optionalInt(p.Steals),
				optionalInt(p.Blocks))
		}

		rows = append(rows, cs.PlayerRow{
			Number:   p.Number.String(),
			Name:     p.Name,
			Position: p.Position,
			Cells:    cells,
		})
	}

	return &cs.PlayerStats{
		Tabs:    playerTabs(b.game, b.state, false),
		Columns: columns,
		Rows:    rows,
	}
}

func (b basketball) comparison(preGame bool) cs.Section {
	return comparison(b.game, comparisonOpts{
		showTitle:   !preGame,
		showTeams:   true,
		preGame:     preGame,
		meetings:    basketballMeetings,
		initialsLen: 2,
	})
}

// standings shows conference tabs when the league is split into conferences.
func (b basketball) standings() cs.Section {
	all := b.game.Standings
	if len(all) == 0 {
		return nil
	}

	current := &all[0]
	hasConferences := len(all) > 1 && all[0].Conference != ""

	var tabs []cs.TabLink

	if hasConferences {
		active := b.state.Conference
		if active == "" {
			active = all[0].Conference
		}

		for i := range all {
			if all[i].Conference == active {
				current = &all[i]
			}
		}

		for i := range all {
			tabs = append(tabs, cs.TabLink{
				Label:  all[i].Conference,
				Href:   cs.ConferenceHref(b.state, all[i].Conference),
				Active: &all[i] == current,
			})
		}
	}

	rows := make([]cs.StandingsRow, 0, len(current.Teams))

	for i := range current.Teams {
		t := &current.Teams[i]
		rows = append(rows, cs.StandingsRow{
			Rank:  strconv.Itoa(t.Rank),
			Team:  t.ShortName,
			Cells: []string{strconv.Itoa(t.Wins), strconv.Itoa(t.Losses), t.WinRate.String()},
			Form:  formChips(t.RecentGames),
		})
	}

	return &cs.Standings{
		Tabs:    tabs,
		Columns: []string{"W", "L", "PCT"},
		Rows:    rows,
	}
}
