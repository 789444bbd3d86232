package card

import (
	"strings"

	"github.com/dasdy/gamecard/model"
)

// Side is the team that gets the emphasis for a metric.
type Side int

const (
	SideNone Side = iota
	SideHome
	SideAway
)

func (s Side) String() string {
	switch s {
	case SideHome:
		return "home"
	case SideAway:
		return "away"
	default:
		return "none"
	}
}

// Compare picks the side with the better value. Both values are read
// numerically; ties give SideNone.
func Compare(lowerIsBetter bool, home, away model.Value) Side {
	h, a := home.Float(), away.Float()

	switch {
	case h == a:
		return SideNone
	case lowerIsBetter == (h < a):
		return SideHome
	default:
		return SideAway
	}
}

// Rules is the per-sport table of metrics where the smaller number wins.
type Rules struct {
	lowerIsBetter map[string]struct{}
}

func newRules(names ...string) Rules {
	r := Rules{lowerIsBetter: make(map[string]struct{}, len(names))}
	for _, n := range names {
		r.lowerIsBetter[normalizeMetric(n)] = struct{}{}
	}

	return r
}

var sportRules = map[model.Sport]Rules{
	model.SportBasketball: newRules("turnovers", "턴오버", "fouls", "파울"),
	model.SportSoccer:     newRules("fouls", "파울", "errors", "실책", "offsides", "오프사이드"),
	model.SportVolleyball: newRules("service errors", "서브 실책", "errors", "실책"),
}

// RulesFor returns the rule table of a sport. Unknown sports compare every
// metric as higher-is-better.
func RulesFor(sport model.Sport) Rules {
	return sportRules[sport]
}

// LowerIsBetter reports whether the record is ranked ascending. The record
// key is checked before the display label.
func (r Rules) LowerIsBetter(record model.GameRecord) bool {
	if _, ok := r.lowerIsBetter[normalizeMetric(record.Key)]; ok && record.Key != "" {
		return true
	}

	_, ok := r.lowerIsBetter[normalizeMetric(record.Label)]

	return ok && record.Label != ""
}

// Winner compares both sides of a record under the table.
func (r Rules) Winner(record model.GameRecord) Side {
	return Compare(r.LowerIsBetter(record), record.Home, record.Away)
}

func normalizeMetric(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)

	return strings.Join(strings.Fields(name), " ")
}
