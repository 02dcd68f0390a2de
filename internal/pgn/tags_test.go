package pgn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smitusov/pgnsplit/internal/pgn"
)

func TestTagValue_PresentTags(t *testing.T) {
	pgnText := `[Event "Live Chess"]
[Site "Chess.com"]
[Date "2024.01.15"]
[White "Player1"]
[Black "Player2"]
[Result "1-0"]
[ECO "B20"]

1. e4 c5 2. Nf3 d6`

	assert.Equal(t, "Live Chess", pgn.TagValue(pgnText, "Event"))
	assert.Equal(t, "2024.01.15", pgn.TagValue(pgnText, "Date"))
	assert.Equal(t, "Player1", pgn.TagValue(pgnText, "White"))
	assert.Equal(t, "Player2", pgn.TagValue(pgnText, "Black"))
	assert.Equal(t, "1-0", pgn.TagValue(pgnText, "Result"))
	assert.Equal(t, "B20", pgn.TagValue(pgnText, "ECO"))
}

func TestTagValue_AbsentTag(t *testing.T) {
	pgnText := `[Event "Live Chess"]

1. e4 e5`

	assert.Equal(t, "", pgn.TagValue(pgnText, "ECO"))
	assert.Equal(t, "", pgn.TagValue(pgnText, "event"), "tag names are case-sensitive")
}

func TestTagValue_ValueRoundTrips(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "spaces and punctuation", value: "Mitusov, Semen"},
		{name: "apostrophe", value: "King's Gambit"},
		{name: "non-ascii", value: "Митусов Семен"},
		{name: "brackets inside value", value: "a [b] c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pgnText := `[White "` + tt.value + `"]`
			assert.Equal(t, tt.value, pgn.TagValue(pgnText, "White"))
		})
	}
}

func TestTagValue_FirstOccurrenceWins(t *testing.T) {
	pgnText := `[White "First"]
[White "Second"]`

	assert.Equal(t, "First", pgn.TagValue(pgnText, "White"))
}

func TestTagValue_MalformedLines(t *testing.T) {
	pgnText := `[Event Live Chess]
[Site "Chess.com]
[Invalid header]
["NoName"]
1. e4 e5`

	assert.Equal(t, "", pgn.TagValue(pgnText, "Event"))
	assert.Equal(t, "", pgn.TagValue(pgnText, "Site"))
}

func TestHeaders_AllTags(t *testing.T) {
	pgnText := `[Event "Club Match"]
[White "A"]
[Black "B"]
[Result "1/2-1/2"]

1. d4 d5 1/2-1/2`

	h := pgn.Headers(pgnText)

	assert.Equal(t, "Club Match", h["Event"])
	assert.Equal(t, "A", h["White"])
	assert.Equal(t, "B", h["Black"])
	assert.Equal(t, "1/2-1/2", h["Result"])
	assert.NotContains(t, h, "ECO")
}

func TestHeaders_CarriageReturns(t *testing.T) {
	pgnText := "[White \"A\"]\r\n[Black \"B\"]\r\n"

	h := pgn.Headers(pgnText)

	assert.Equal(t, "A", h["White"])
	assert.Equal(t, "B", h["Black"])
}
