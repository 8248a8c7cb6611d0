package tui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// cell is one screen position: a base rune plus any zero-width runes
// (variation selectors, combining marks) that render on top of it.
type cell struct {
	main  rune
	comb  []rune
	width int
}

// emojiPresentation is the variation selector that asks for the two column
// emoji form of the preceding rune.
const emojiPresentation = '\uFE0F'

// combining reports whether r draws on top of the rune before it. Variation
// selectors are checked by range since runewidth gives them a column.
func combining(r rune) bool {
	if r >= '\uFE00' && r <= '\uFE0F' {
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Me)
}

// segment splits text into cells using terminal display widths
func segment(text string) []cell {
	var out []cell
	for _, r := range text {
		w := 0
		if !combining(r) {
			w = runewidth.RuneWidth(r)
		}
		if w == 0 {
			if len(out) > 0 {
				last := &out[len(out)-1]
				last.comb = append(last.comb, r)
				if r == emojiPresentation {
					last.width = 2
				}
			}
			continue
		}
		out = append(out, cell{main: r, width: w})
	}
	return out
}

// textWidth returns the number of columns text occupies
func textWidth(text string) int {
	w := 0
	for _, c := range segment(text) {
		w += c.width
	}
	return w
}

// drawText writes text starting at (x, y), clipped before maxX. It returns
// the column after the last cell written.
func drawText(s tcell.Screen, x, y, maxX int, style tcell.Style, text string) int {
	for _, c := range segment(text) {
		if x+c.width > maxX {
			break
		}
		s.SetContent(x, y, c.main, c.comb, style)
		x += c.width
	}
	return x
}

// drawCentered writes text centered between x0 and x1
func drawCentered(s tcell.Screen, x0, x1, y int, style tcell.Style, text string) {
	x := x0 + (x1-x0-textWidth(text))/2
	if x < x0 {
		x = x0
	}
	drawText(s, x, y, x1, style, text)
}

// drawRight writes text so that it ends just before x1
func drawRight(s tcell.Screen, x0, x1, y int, style tcell.Style, text string) {
	x := x1 - textWidth(text)
	if x < x0 {
		x = x0
	}
	drawText(s, x, y, x1, style, text)
}

// fill paints a rectangle with r
func fill(s tcell.Screen, x0, y0, x1, y1 int, r rune, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.SetContent(x, y, r, nil, style)
		}
	}
}

// drawBox draws a single-line border around the rectangle [x0,x1) x [y0,y1)
// with an optional title in the top edge.
func drawBox(s tcell.Screen, x0, y0, x1, y1 int, style tcell.Style, title string) {
	if x1-x0 < 2 || y1-y0 < 2 {
		return
	}
	for x := x0 + 1; x < x1-1; x++ {
		s.SetContent(x, y0, tcell.RuneHLine, nil, style)
		s.SetContent(x, y1-1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1-1; y++ {
		s.SetContent(x0, y, tcell.RuneVLine, nil, style)
		s.SetContent(x1-1, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	s.SetContent(x1-1, y0, tcell.RuneURCorner, nil, style)
	s.SetContent(x0, y1-1, tcell.RuneLLCorner, nil, style)
	s.SetContent(x1-1, y1-1, tcell.RuneLRCorner, nil, style)

	if title != "" {
		drawText(s, x0+2, y0, x1-2, style.Bold(true), " "+title+" ")
	}
}

// bar renders a horizontal gauge of the given width
func bar(value, max, width int) string {
	if width <= 0 || max <= 0 {
		return ""
	}
	filled := value * width / max
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	out := make([]rune, width)
	for i := range out {
		if i < filled {
			out[i] = '█'
		} else {
			out[i] = '░'
		}
	}
	return string(out)
}
