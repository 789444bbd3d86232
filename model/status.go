package model

import (
	"fmt"
	"strings"
)

type Sport string

const (
	SportBasketball Sport = "basketball"
	SportSoccer     Sport = "soccer"
	SportVolleyball Sport = "volleyball"
)

var sportAliases = map[string]Sport{
	"basketball": SportBasketball,
	"농구":         SportBasketball,
	"soccer":     SportSoccer,
	"football":   SportSoccer,
	"축구":         SportSoccer,
	"volleyball": SportVolleyball,
	"배구":         SportVolleyball,
}

func (s *Sport) UnmarshalText(text []byte) error {
	v, ok := sportAliases[strings.ToLower(strings.TrimSpace(string(text)))]
	if !ok {
		return fmt.Errorf("unknown sport %q", string(text))
	}

	*s = v

	return nil
}

// GameStatus is the temporal state of a game. The zero value is not a valid status.
type GameStatus string

const (
	StatusBefore   GameStatus = "before"
	StatusLive     GameStatus = "live"
	StatusHalfTime GameStatus = "halftime"
	StatusFinished GameStatus = "finished"
)

// Payloads produced for the Korean leagues carry display labels instead of keys.
var statusAliases = map[string]GameStatus{
	"before":    StatusBefore,
	"scheduled": StatusBefore,
	"pre":       StatusBefore,
	"경기전":       StatusBefore,
	"live":      StatusLive,
	"경기중":       StatusLive,
	"halftime":  StatusHalfTime,
	"ht":        StatusHalfTime,
	"하프타임":      StatusHalfTime,
	"finished":  StatusFinished,
	"final":     StatusFinished,
	"ft":        StatusFinished,
	"경기종료":      StatusFinished,
}

func ParseGameStatus(text string) (GameStatus, error) {
	v, ok := statusAliases[strings.ToLower(strings.TrimSpace(text))]
	if !ok {
		return "", fmt.Errorf("unknown game status %q", text)
	}

	return v, nil
}

func (s *GameStatus) UnmarshalText(text []byte) error {
	v, err := ParseGameStatus(string(text))
	if err != nil {
		return err
	}

	*s = v

	return nil
}

// Label is the text shown in card headers.
func (s GameStatus) Label() string {
	switch s {
	case StatusBefore:
		return "Scheduled"
	case StatusLive:
		return "Live"
	case StatusHalfTime:
		return "Half-time"
	case StatusFinished:
		return "Final"
	default:
		return string(s)
	}
}

// FormResult is a single entry of a team's recent form.
type FormResult string

const (
	FormWin  FormResult = "W"
	FormDraw FormResult = "D"
	FormLoss FormResult = "L"
)

// Winner names the side that took a match or scored a goal.
type Winner string

const (
	WinnerHome Winner = "home"
	WinnerAway Winner = "away"
	WinnerDraw Winner = "draw"
)
