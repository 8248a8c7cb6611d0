package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/queuecommander/arena/internal/notify"
	"github.com/queuecommander/arena/pkg/core"
)

const (
	minWidth      = 60
	minHeight     = 20
	learningRows  = 5
	maxToastWidth = 48
)

var (
	styleBase    = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBlue    = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	styleRed     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleNext    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	styleHealthy = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHurt    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleDying   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleFallen  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true)
)

var learningLines = []string{
	"1️⃣ Enqueue: add troops to the back of the queue. New troops wait their turn.",
	"2️⃣ Dequeue: remove and deploy troops from the front of the queue. First In, First Out!",
	"3️⃣ Visualize: watch the queue in action. The troop at the front is always deployed next.",
}

func factionStyle(f core.Faction) tcell.Style {
	if f == core.FactionRed {
		return styleRed
	}
	return styleBlue
}

func (a *App) drawTooSmall(w, h int) {
	s := a.deps.Screen
	drawCentered(s, 0, w, h/2, styleTitle, "Terminal too small")
	drawCentered(s, 0, w, h/2+1, styleDim, fmt.Sprintf("need %dx%d", minWidth, minHeight))
}

func (a *App) drawLanding() {
	s := a.deps.Screen
	w, h := s.Size()
	if w < minWidth || h < minHeight {
		a.drawTooSmall(w, h)
		return
	}

	drawText(s, 2, 1, w/2, styleBlue, "🏰 BLUE KINGDOM")
	drawText(s, 2, 2, w/2, styleDim, "Defenders of the Queue")
	drawRight(s, w/2, w-2, 1, styleRed, "RED KINGDOM 🏰")
	drawRight(s, w/2, w-2, 2, styleDim, "Masters of Deployment")

	y := h/2 - 5
	drawCentered(s, 0, w, y, styleTitle, "CLASH ROYALE")
	drawCentered(s, 0, w, y+1, styleBase.Bold(true), "Queue Commander")
	drawCentered(s, 0, w, y+3, styleBase, "Master the art of First In, First Out warfare")
	drawCentered(s, 0, w, y+5, styleDim, "[ Real-time Visualization ]  [ Interactive Learning ]  [ DSA Mastery ]")
	drawCentered(s, 0, w, y+8, styleNext, "⚔️ READY FOR BATTLE ⚔️")
	drawCentered(s, 0, w, y+9, styleDim, "Press Enter to enter the arena, q to quit")
}

func (a *App) drawArena() {
	s := a.deps.Screen
	w, h := s.Size()
	if w < minWidth || h < minHeight {
		a.drawTooSmall(w, h)
		return
	}

	snap := a.deps.Arena.Snapshot()

	drawCentered(s, 0, w, 0, styleTitle, "⚔️ BATTLE ARENA ⚔️")
	drawCentered(s, 0, w, 1, styleDim, "1-8 enqueue · d deploy · c clear queue · b clear field · r reset · Esc back · q quit")

	top, bottom := 2, h-learningRows
	col := w / 3
	a.drawSelection(0, top, col, bottom)
	a.drawQueue(snap, col, top, 2*col, bottom)
	a.drawBattlefield(snap, 2*col, top, w, bottom)
	drawLearning(s, 0, bottom, w, h)
	a.drawToasts(w, h)
}

func (a *App) drawSelection(x0, y0, x1, y1 int) {
	s := a.deps.Screen
	drawBox(s, x0, y0, x1, y1, styleBorder, "🏰 Select Troops")

	catalog := a.deps.Arena.Catalog()
	y := y0 + 1
	for _, f := range []core.Faction{core.FactionBlue, core.FactionRed} {
		if y >= y1-1 {
			return
		}
		heading := "Blue Kingdom"
		if f == core.FactionRed {
			heading = "Red Kingdom"
		}
		drawText(s, x0+2, y, x1-1, factionStyle(f), heading)
		y++
		for _, u := range catalog.ByFaction(f) {
			if y >= y1-1 {
				return
			}
			drawText(s, x0+2, y, x1-1, styleBase, fmt.Sprintf("[%s] %s", u.ID, u.Label()))
			y++
		}
		y++
	}
}

func (a *App) drawQueue(snap core.Snapshot, x0, y0, x1, y1 int) {
	s := a.deps.Screen
	drawBox(s, x0, y0, x1, y1, styleBorder, "📋 Queue (FIFO)")

	footer := y1 - 2
	controls := styleDim
	if len(snap.Queue) > 0 {
		controls = styleNext
	}
	drawText(s, x0+2, footer-1, x1-1, controls, "[d] Deploy Next  [c] Clear")
	drawText(s, x0+2, footer, x1-1, styleBase, fmt.Sprintf("Queue Size: %d troops waiting", len(snap.Queue)))

	if len(snap.Queue) == 0 {
		mid := (y0 + footer) / 2
		drawCentered(s, x0+1, x1-1, mid-1, styleDim, "Queue is empty")
		drawCentered(s, x0+1, x1-1, mid, styleDim, "Select troops to add")
		return
	}

	// Two rows per entry; leave one row for the overflow line.
	rows := footer - 2 - (y0 + 1)
	fits := rows / 2
	if fits < len(snap.Queue) {
		fits = (rows - 1) / 2
	}
	y := y0 + 1
	for i, e := range snap.Queue {
		if i >= fits {
			drawText(s, x0+2, y, x1-1, styleDim, fmt.Sprintf("… +%d more", len(snap.Queue)-i))
			break
		}
		style := factionStyle(e.Unit.Faction)
		position := fmt.Sprintf("Position: %d", i+1)
		if i == 0 {
			style = styleNext
			position += " (Next to deploy)"
		}
		drawText(s, x0+2, y, x1-1, style, e.Unit.Label())
		drawText(s, x0+4, y+1, x1-1, styleDim, position)
		y += 2
	}
}

func (a *App) drawBattlefield(snap core.Snapshot, x0, y0, x1, y1 int) {
	s := a.deps.Screen
	drawBox(s, x0, y0, x1, y1, styleBorder, "🎯 Battlefield")

	footer := y1 - 2
	drawText(s, x0+2, footer-1, x1-1, styleDim, "[b] Clear Battlefield")
	drawText(s, x0+2, footer, x1-1, styleBase, fmt.Sprintf("Deployed: %d troops on field", len(snap.Deployed)))

	y := y0 + 1
	if snap.Battlefield {
		label := fmt.Sprintf(" %d/%d", snap.CastleHealth, snap.CastleMax)
		x := drawText(s, x0+2, y, x1-1, styleBase, "Castle ")
		width := x1 - 1 - x - textWidth(label)
		if width > 20 {
			width = 20
		}
		x = drawText(s, x, y, x1-1, healthStyle(snap.CastleHealth, snap.CastleMax), bar(snap.CastleHealth, snap.CastleMax, width))
		drawText(s, x, y, x1-1, styleBase, label)
		y++
		drawText(s, x0+2, y, x1-1, styleNext, markerLine(snap.Markers))
		y++
	}

	if len(snap.Deployed) == 0 {
		mid := (y + footer) / 2
		drawCentered(s, x0+1, x1-1, mid-1, styleDim, "No troops deployed")
		drawCentered(s, x0+1, x1-1, mid, styleDim, "Deploy from queue")
	} else {
		rows := footer - 1 - y
		for i, e := range snap.Deployed {
			if i >= rows-1 && i < len(snap.Deployed)-1 {
				drawText(s, x0+2, y, x1-1, styleDim, fmt.Sprintf("… +%d more", len(snap.Deployed)-i))
				break
			}
			x := drawText(s, x0+2, y, x1-1, styleDim, fmt.Sprintf("Deployed #%d ", i+1))
			drawText(s, x, y, x1-1, factionStyle(e.Unit.Faction), e.Unit.Label())
			y++
		}
	}

	if snap.CastleDestroyed() {
		mid := (y0 + y1) / 2
		drawCentered(s, x0+1, x1-1, mid, styleFallen, " 💥 CASTLE DESTROYED 💥 ")
	}
}

func healthStyle(health, max int) tcell.Style {
	switch {
	case max <= 0 || health*100 <= max*25:
		return styleDying
	case health*100 <= max*60:
		return styleHurt
	default:
		return styleHealthy
	}
}

// markerLine lists live attack markers as glyph@position, 1-based
func markerLine(markers []core.AttackMarker) string {
	if len(markers) == 0 {
		return "Attacks: none"
	}
	parts := make([]string, 0, len(markers))
	for _, m := range markers {
		glyph := "⚔"
		if m.Kind == core.AttackArea {
			glyph = "✨"
		}
		parts = append(parts, fmt.Sprintf("%s@%d", glyph, m.Position+1))
	}
	return "Attacks: " + strings.Join(parts, " ")
}

func drawLearning(s tcell.Screen, x0, y0, x1, y1 int) {
	drawBox(s, x0, y0, x1, y1, styleBorder, "📚 Queue Operations (FIFO)")
	for i, line := range learningLines {
		if y0+1+i >= y1-1 {
			return
		}
		drawText(s, x0+2, y0+1+i, x1-1, styleBase, line)
	}
}

func toastStyle(l core.Level) tcell.Style {
	switch l {
	case core.LevelError:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed)
	case core.LevelSuccess:
		return tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	}
}

func toastText(t notify.Toast) string {
	if t.Description == "" {
		return " " + t.Title + " "
	}
	return " " + t.Title + " " + t.Description + " "
}

// drawToasts stacks active toasts in the bottom-right corner, newest lowest
func (a *App) drawToasts(w, h int) {
	s := a.deps.Screen
	toasts := a.deps.Feed.Active(a.deps.Clock.Now())
	y := h - 2
	for i := len(toasts) - 1; i >= 0 && y > 2; i-- {
		text := toastText(toasts[i])
		width := textWidth(text)
		if width > maxToastWidth {
			width = maxToastWidth
		}
		x0 := w - 2 - width
		style := toastStyle(toasts[i].Level)
		fill(s, x0, y, w-2, y+1, ' ', style)
		drawText(s, x0, y, w-2, style, text)
		y--
	}
}
