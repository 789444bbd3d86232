package model_test

import (
	"encoding/json"
	"testing"

	"github.com/dasdy/gamecard/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValue_Float(t *testing.T) {
	tests := []struct {
		name  string
		value model.Value
		want  float64
	}{
		{name: "number", value: model.NumberValue(12), want: 12},
		{name: "plain text number", value: model.TextValue("42"), want: 42},
		{name: "percentage", value: model.TextValue("45%"), want: 45},
		{name: "fraction reads numerator", value: model.TextValue("12/20"), want: 12},
		{name: "clock reads minutes", value: model.TextValue("32:14"), want: 32},
		{name: "decimal", value: model.TextValue(".650"), want: 0.65},
		{name: "negative", value: model.TextValue("-3.5"), want: -3.5},
		{name: "leading spaces", value: model.TextValue("  7 shots"), want: 7},
		{name: "exponent", value: model.TextValue("1e2x"), want: 100},
		{name: "dangling exponent", value: model.TextValue("3e"), want: 3},
		{name: "not a number", value: model.TextValue("n/a"), want: 0},
		{name: "empty", value: model.Value{}, want: 0},
		{name: "lone dot", value: model.TextValue("."), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.value.Float(), 1e-9)
		})
	}
}

func TestValue_JSON(t *testing.T) {
	var got struct {
		A model.Value `json:"a"`
		B model.Value `json:"b"`
		C model.Value `json:"c"`
	}

	err := json.Unmarshal([]byte(`{"a": 12.5, "b": "45%", "c": null}`), &got)
	require.NoError(t, err)

	assert.True(t, got.A.IsNumber())
	assert.Equal(t, "12.5", got.A.String())
	assert.False(t, got.B.IsNumber())
	assert.Equal(t, "45%", got.B.String())
	assert.True(t, got.C.IsZero())

	err = json.Unmarshal([]byte(`{"a": true}`), &got)
	assert.Error(t, err)
}

func TestValue_YAML(t *testing.T) {
	var got struct {
		A model.Value `yaml:"a"`
		B model.Value `yaml:"b"`
		C model.Value `yaml:"c"`
	}

	err := yaml.Unmarshal([]byte("a: 7\nb: \"7\"\nc: 32:14\n"), &got)
	require.NoError(t, err)

	assert.True(t, got.A.IsNumber())
	assert.False(t, got.B.IsNumber())
	assert.Equal(t, "7", got.B.String())
	assert.Equal(t, "32:14", got.C.String())
}

func TestParseGameStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    model.GameStatus
		wantErr bool
	}{
		{in: "before", want: model.StatusBefore},
		{in: "경기전", want: model.StatusBefore},
		{in: "LIVE", want: model.StatusLive},
		{in: "경기중", want: model.StatusLive},
		{in: "하프타임", want: model.StatusHalfTime},
		{in: "final", want: model.StatusFinished},
		{in: "경기종료", want: model.StatusFinished},
		{in: "postponed", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := model.ParseGameStatus(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGameDecode(t *testing.T) {
	payload := `{
		"id": "g1",
		"sport": "축구",
		"league": "K League 1",
		"date": "2025-03-01",
		"status": "경기종료",
		"homeTeam": {"name": "Ulsan HD", "shortName": "ULS", "score": 2,
			"halfScores": {"firstHalf": 1, "secondHalf": 1, "penalties": 4}},
		"awayTeam": {"name": "Jeonbuk", "shortName": "JEO", "score": 2},
		"gameRecords": [{"label": "점유율", "home": "55%", "away": "45%"}]
	}`

	var game model.Game
	require.NoError(t, json.Unmarshal([]byte(payload), &game))

	assert.Equal(t, model.SportSoccer, game.Sport)
	assert.Equal(t, model.StatusFinished, game.Status)
	require.NotNil(t, game.HomeTeam.HalfScores)
	require.NotNil(t, game.HomeTeam.HalfScores.Penalties)
	assert.Equal(t, 4, *game.HomeTeam.HalfScores.Penalties)
	assert.Nil(t, game.HomeTeam.HalfScores.ExtraFirstHalf)
	assert.InDelta(t, 55, game.GameRecords[0].Home.Float(), 1e-9)

	summary := game.Summary()
	assert.Equal(t, "ULS", summary.Home)
	assert.Equal(t, "JEO", summary.Away)
}
