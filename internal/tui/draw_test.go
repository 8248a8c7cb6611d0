package tui

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestSegment_FoldsZeroWidthRunes(t *testing.T) {
	cells := segment("⚔️ Knight")

	// the variation selector rides on the sword
	assert.Len(t, cells, 8)
	assert.Equal(t, '⚔', cells[0].main)
	assert.Equal(t, []rune{emojiPresentation}, cells[0].comb)
	assert.Equal(t, 2, cells[0].width)
	assert.Equal(t, 'K', cells[2].main)
}

func TestSegment_AttachesMarksToPreviousCell(t *testing.T) {
	// keycap: digit, emoji selector, enclosing keycap mark
	cells := segment("1\uFE0F\u20E3")
	assert.Len(t, cells, 1)
	assert.Equal(t, '1', cells[0].main)
	assert.Equal(t, []rune{emojiPresentation, '\u20E3'}, cells[0].comb)
	assert.Equal(t, 2, cells[0].width)

	// text presentation selector keeps the base width
	cells = segment("\u2694\uFE0E!")
	assert.Len(t, cells, 2)
	assert.Equal(t, []rune{'\uFE0E'}, cells[0].comb)
	assert.Equal(t, runewidth.RuneWidth('\u2694'), cells[0].width)

	// combining acute accent
	cells = segment("e\u0301x")
	assert.Len(t, cells, 2)
	assert.Equal(t, []rune{'\u0301'}, cells[0].comb)
	assert.Equal(t, 1, cells[0].width)
	assert.Equal(t, 2, textWidth("e\u0301x"))
}

func TestTextWidth(t *testing.T) {
	assert.Equal(t, 0, textWidth(""))
	assert.Equal(t, 5, textWidth("Queue"))
	assert.Equal(t, 2, textWidth("🐉"))
	assert.Equal(t, 9, textWidth("🐉 Dragon"))
	assert.Equal(t, 9, textWidth("⚔️ Knight"))
}

func TestBar(t *testing.T) {
	assert.Equal(t, "██████████", bar(100, 100, 10))
	assert.Equal(t, "█████░░░░░", bar(50, 100, 10))
	assert.Equal(t, "░░░░░░░░░░", bar(0, 100, 10))
	assert.Equal(t, "░░░░", bar(-10, 100, 4))
	assert.Equal(t, "", bar(10, 0, 10))
	assert.Equal(t, "", bar(10, 100, 0))
}

func TestMarkerLine(t *testing.T) {
	assert.Equal(t, "Attacks: none", markerLine(nil))
}

func TestHealthStyle(t *testing.T) {
	assert.Equal(t, styleHealthy, healthStyle(100, 100))
	assert.Equal(t, styleHurt, healthStyle(60, 100))
	assert.Equal(t, styleDying, healthStyle(20, 100))
	assert.Equal(t, styleDying, healthStyle(0, 0))
}
