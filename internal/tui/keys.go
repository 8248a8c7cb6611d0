package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/queuecommander/arena/internal/session"
)

// ActionKind is what a key press asks the app to do
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionQuit
	ActionEnter
	ActionBack
	ActionEnqueue
	ActionDeploy
	ActionClearQueue
	ActionClearBattlefield
	ActionReset
)

// Action is a decoded key press. UnitKey is set for ActionEnqueue.
type Action struct {
	Kind    ActionKind
	UnitKey string
}

// keyAction maps a key event to an action for the given screen
func keyAction(screen session.Screen, ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyCtrlC {
		return Action{Kind: ActionQuit}
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'c' || ev.Rune() == 'C') {
			return Action{Kind: ActionQuit}
		}
		return Action{}
	}

	switch screen {
	case session.ScreenLanding:
		switch {
		case ev.Key() == tcell.KeyEnter:
			return Action{Kind: ActionEnter}
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return Action{Kind: ActionQuit}
		}

	case session.ScreenArena:
		if ev.Key() == tcell.KeyEscape {
			return Action{Kind: ActionBack}
		}
		if ev.Key() != tcell.KeyRune {
			return Action{}
		}
		r := ev.Rune()
		switch {
		case r >= '1' && r <= '8':
			return Action{Kind: ActionEnqueue, UnitKey: string(r)}
		case r == 'd' || r == ' ':
			return Action{Kind: ActionDeploy}
		case r == 'c':
			return Action{Kind: ActionClearQueue}
		case r == 'b':
			return Action{Kind: ActionClearBattlefield}
		case r == 'r':
			return Action{Kind: ActionReset}
		case r == 'q':
			return Action{Kind: ActionQuit}
		}
	}

	return Action{}
}
