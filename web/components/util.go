package components

import "net/url"

// query returns the query string for a view state, omitting defaults.
func query(state ViewState) string {
	v := url.Values{}
	if state.Tab == TabAway {
		v.Set("tab", string(TabAway))
	}

	if state.Conference != "" {
		v.Set("conference", state.Conference)
	}

	if len(v) == 0 {
		return "?"
	}

	return "?" + v.Encode()
}

// TabHref returns the link that switches the player stats tab and keeps the
// selected conference.
func TabHref(state ViewState, tab Tab) string {
	state.Tab = tab

	return query(state)
}

// ConferenceHref returns the link that switches the standings table and keeps
// the player stats tab.
func ConferenceHref(state ViewState, conference string) string {
	state.Conference = conference

	return query(state)
}

// GameHref returns the card page link for a game.
func GameHref(gameID string) string {
	return "/games/" + url.PathEscape(gameID)
}

// styleMap builds a style attribute from property/value pairs, dropping empty
// values. Values are sanitized when the attribute is rendered.
func styleMap(kv ...string) map[string]string {
	m := make(map[string]string, len(kv)/2)

	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			m[kv[i]] = kv[i+1]
		}
	}

	return m
}

func resultPlacement(c *Scoreboard) string {
	if c.Result == "DRAW" {
		return "center"
	}

	return string(c.ResultSide)
}
