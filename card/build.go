package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dasdy/gamecard/model"
	cs "github.com/dasdy/gamecard/web/components"
)

var ErrUnknownSport = errors.New("unknown sport")

const (
	formLength    = 5
	standingsTopN = 5
	defaultColor  = "#6b7280"
)

// Build selects the view variant for the game status and assembles the card
// sections for the game's sport.
func Build(game *model.Game, state cs.ViewState) (*cs.Card, error) {
	if state.Tab != cs.TabAway {
		state.Tab = cs.TabHome
	}

	variant := SelectVariant(game.Status)

	c := &cs.Card{
		GameID:    game.ID,
		Sport:     game.Sport,
		Variant:   variant.String(),
		HomeColor: colorOr(game.HomeTeam.PrimaryColor),
		AwayColor: colorOr(game.AwayTeam.PrimaryColor),
	}

	var b builder

	switch game.Sport {
	case model.SportBasketball:
		c.Theme = cs.ThemeClassic
		b = basketball{game: game, state: state, rules: RulesFor(game.Sport)}
	case model.SportSoccer:
		c.Theme = cs.ThemeVivid
		b = soccer{game: game, state: state, rules: RulesFor(game.Sport)}
	case model.SportVolleyball:
		c.Theme = cs.ThemeVivid
		b = volleyball{game: game, state: state, rules: RulesFor(game.Sport)}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSport, game.Sport)
	}

	switch variant {
	case VariantBefore:
		c.Sections = b.before()
	case VariantLive:
		c.Sections = b.live()
	case VariantAfter:
		c.Sections = b.after()
	case VariantNone:
		c.Sections = nil
	}

	return c, nil
}

type builder interface {
	before() []cs.Section
	live() []cs.Section
	after() []cs.Section
}

// sections collects non-nil sections, so optional blocks can be appended unconditionally.
type sections []cs.Section

func (s *sections) add(items ...cs.Section) {
	for _, item := range items {
		if item == nil {
			continue
		}

		*s = append(*s, item)
	}
}

func colorOr(c string) string {
	if c == "" {
		return defaultColor
	}

	return c
}

func initials(name string, n int, upper bool) string {
	runes := []rune(name)
	if len(runes) > n {
		runes = runes[:n]
	}

	s := string(runes)
	if upper {
		s = strings.ToUpper(s)
	}

	return s
}

func badge(team *model.Team, initialsLen int, upper bool) cs.TeamBadge {
	return cs.TeamBadge{
		Name:           team.Name,
		ShortName:      team.ShortName,
		Initials:       initials(team.ShortName, initialsLen, upper),
		Logo:           team.Logo,
		Record:         team.Record,
		PrimaryColor:   colorOr(team.PrimaryColor),
		SecondaryColor: colorOr(team.SecondaryColor),
	}
}

func formChips(results []model.FormResult) []cs.FormChip {
	if len(results) > formLength {
		results = results[:formLength]
	}

	chips := make([]cs.FormChip, 0, len(results))

	for _, r := range results {
		tone := cs.FormToneLoss

		switch r {
		case model.FormWin:
			tone = cs.FormToneWin
		case model.FormDraw:
			tone = cs.FormToneDraw
		}

		chips = append(chips, cs.FormChip{Result: string(r), Tone: tone})
	}

	return chips
}

func gameRecords(game *model.Game, rules Rules) cs.Section {
	if len(game.GameRecords) == 0 {
		return nil
	}

	rows := make([]cs.RecordRow, 0, len(game.GameRecords))

	for _, rec := range game.GameRecords {
		winner := rules.Winner(rec)
		rows = append(rows, cs.RecordRow{
			Label:    rec.Label,
			Home:     rec.Home.String(),
			Away:     rec.Away.String(),
			HomeWins: winner == SideHome,
			AwayWins: winner == SideAway,
		})
	}

	return &cs.GameRecords{
		HomeName: game.HomeTeam.ShortName,
		AwayName: game.AwayTeam.ShortName,
		Rows:     rows,
	}
}

type comparisonOpts struct {
	showTitle   bool
	showTeams   bool
	preGame     bool
	showDraws   bool
	meetings    int
	useSets     bool
	initialsLen int
	upper       bool
}

func comparison(game *model.Game, opts comparisonOpts) cs.Section {
	home, away := &game.HomeTeam, &game.AwayTeam

	c := &cs.Comparison{
		ShowTitle: opts.showTitle,
		ShowTeams: opts.showTeams,
		PreGame:   opts.preGame,
		League:    game.League,
		Date:      game.Date,
		Time:      game.Time,
		Home:      badge(home, opts.initialsLen, opts.upper),
		Away:      badge(away, opts.initialsLen, opts.upper),
		ShowForm:  home.RecentGames != nil || away.RecentGames != nil,
		HomeForm:  formChips(home.RecentGames),
		AwayForm:  formChips(away.RecentGames),
	}

	if h2h := game.HeadToHead; h2h != nil {
		view := &cs.HeadToHeadView{
			TotalGames: h2h.TotalGames,
			HomeWins:   h2h.HomeWins,
			AwayWins:   h2h.AwayWins,
			Draws:      h2h.Draws,
			ShowDraws:  opts.showDraws,
		}

		for i, m := range h2h.RecentMatches {
			if i >= opts.meetings {
				break
			}

			hs, as := m.HomeScore, m.AwayScore
			if opts.useSets {
				hs, as = m.HomeSets, m.AwaySets
			}

			view.Meetings = append(view.Meetings, cs.MeetingRow{
				Date:    m.Date,
				Home:    strconv.Itoa(hs),
				Away:    strconv.Itoa(as),
				HomeWon: m.Winner == model.WinnerHome,
				AwayWon: m.Winner == model.WinnerAway,
			})
		}

		c.HeadToHead = view
	}

	return c
}

func playerTabs(game *model.Game, state cs.ViewState, colored bool) []cs.TabLink {
	tabs := []cs.TabLink{
		{Label: game.HomeTeam.ShortName, Href: cs.TabHref(state, cs.TabHome), Active: state.Tab == cs.TabHome},
		{Label: game.AwayTeam.ShortName, Href: cs.TabHref(state, cs.TabAway), Active: state.Tab == cs.TabAway},
	}

	if colored {
		tabs[0].Color = colorOr(game.HomeTeam.PrimaryColor)
		tabs[1].Color = colorOr(game.AwayTeam.PrimaryColor)
	}

	return tabs
}

func activeTeam(game *model.Game, state cs.ViewState) *model.Team {
	if state.Tab == cs.TabAway {
		return &game.AwayTeam
	}

	return &game.HomeTeam
}

// highlightedStandings renders the first table, top rows only, marking the
// rows of the two teams on the card.
func highlightedStandings(game *model.Game, columns []string, cells func(t *model.StandingsTeam) []string) cs.Section {
	if len(game.Standings) == 0 {
		return nil
	}

	teams := game.Standings[0].Teams
	if len(teams) > standingsTopN {
		teams = teams[:standingsTopN]
	}

	rows := make([]cs.StandingsRow, 0, len(teams))

	for i := range teams {
		t := &teams[i]
		row := cs.StandingsRow{
			Rank:  strconv.Itoa(t.Rank),
			Team:  t.ShortName,
			Cells: cells(t),
			Form:  formChips(t.RecentGames),
		}

		switch t.ShortName {
		case game.HomeTeam.ShortName:
			row.Side = cs.TabHome
			row.Color = colorOr(game.HomeTeam.PrimaryColor)
		case game.AwayTeam.ShortName:
			row.Side = cs.TabAway
			row.Color = colorOr(game.AwayTeam.PrimaryColor)
		}

		rows = append(rows, row)
	}

	return &cs.Standings{Columns: columns, Rows: rows}
}

func optionalInt(v *int) string {
	if v == nil {
		return "-"
	}

	return strconv.Itoa(*v)
}

func madeAttempted(made, attempted *int) string {
	if made == nil || attempted == nil {
		return "-"
	}

	return fmt.Sprintf("%d/%d", *made, *attempted)
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}

	return strconv.Itoa(n)
}

func clock(minute, added int) string {
	if added > 0 {
		return fmt.Sprintf("%d+%d'", minute, added)
	}

	return fmt.Sprintf("%d'", minute)
}

func scoreTableCells(home, away []int, current int) ([]cs.ScoreCell, []cs.ScoreCell) {
	hc := make([]cs.ScoreCell, len(home))
	ac := make([]cs.ScoreCell, len(home))

	for i := range home {
		a := 0
		if i < len(away) {
			a = away[i]
		}

		hc[i] = cs.ScoreCell{Value: strconv.Itoa(home[i]), Lead: home[i] > a, Current: i == current}
		ac[i] = cs.ScoreCell{Value: strconv.Itoa(a), Lead: a > home[i], Current: i == current}
	}

	return hc, ac
}
