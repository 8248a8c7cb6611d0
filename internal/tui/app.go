// Package tui is the terminal front end: a landing screen and the arena
// screen with troop selection, the queue, the battlefield and toasts.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/queuecommander/arena/internal/arena"
	"github.com/queuecommander/arena/internal/dispatcher"
	"github.com/queuecommander/arena/internal/handlers"
	"github.com/queuecommander/arena/internal/notify"
	"github.com/queuecommander/arena/internal/scheduler"
	"github.com/queuecommander/arena/internal/session"
)

const frameInterval = 100 * time.Millisecond

// Dependencies holds the collaborators of an App
type Dependencies struct {
	Screen     tcell.Screen
	Arena      *arena.Arena
	Dispatcher *dispatcher.Dispatcher
	Feed       *notify.Feed
	Session    *session.Context
	Clock      scheduler.Clock
	Logger     *slog.Logger
}

// App drives the terminal screens. The caller owns the tcell screen: it
// must Init it before Run and Fini it afterwards.
type App struct {
	deps Dependencies
}

// New creates an App. Screen, Arena, Dispatcher and Session are required.
func New(deps Dependencies) (*App, error) {
	if deps.Screen == nil || deps.Arena == nil || deps.Dispatcher == nil || deps.Session == nil {
		return nil, errors.New("tui: screen, arena, dispatcher and session are required")
	}
	if deps.Feed == nil {
		deps.Feed = notify.NewFeed(notify.DefaultConfig(), notify.Dependencies{})
	}
	if deps.Clock == nil {
		deps.Clock = scheduler.RealClock{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	return &App{deps: deps}, nil
}

// Run draws and processes input until the player quits or ctx is done.
// A panic while running restores the terminal before propagating.
func (a *App) Run(ctx context.Context) error {
	s := a.deps.Screen
	defer func() {
		if r := recover(); r != nil {
			s.Fini()
			panic(r)
		}
	}()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.handleEvent(ev) {
				return nil
			}
			a.Draw()
		case <-ticker.C:
			a.Draw()
		}
	}
}

// handleEvent processes one terminal event. It returns false when the app
// should exit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.deps.Screen.Sync()
	case *tcell.EventKey:
		return a.apply(keyAction(a.deps.Session.Screen(), ev))
	}
	return true
}

// apply carries out an action. It returns false for ActionQuit.
func (a *App) apply(act Action) bool {
	switch act.Kind {
	case ActionQuit:
		a.deps.Logger.Info("Player quit", "screen", string(a.deps.Session.Screen()))
		return false
	case ActionEnter:
		a.switchScreen(session.ScreenArena)
	case ActionBack:
		a.dispatch(handlers.CmdLeave)
		a.switchScreen(session.ScreenLanding)
	case ActionEnqueue:
		a.dispatch(handlers.CmdEnqueue, act.UnitKey)
	case ActionDeploy:
		// The deploy control is disabled while the queue is empty.
		if a.deps.Arena.Size() == 0 {
			return true
		}
		a.dispatch(handlers.CmdDeploy)
	case ActionClearQueue:
		a.dispatch(handlers.CmdClearQueue)
	case ActionClearBattlefield:
		a.dispatch(handlers.CmdClearBattlefield)
	case ActionReset:
		a.dispatch(handlers.CmdReset)
	}
	return true
}

func (a *App) switchScreen(to session.Screen) {
	if a.deps.Session.SetScreen(to) {
		a.deps.Logger.Debug("Screen changed", "screen", string(to))
	}
}

func (a *App) dispatch(command string, args ...string) {
	_, err := a.deps.Dispatcher.Dispatch(dispatcher.Event{
		Command:   command,
		Args:      args,
		Timestamp: a.deps.Clock.Now(),
	})
	if err != nil {
		a.deps.Logger.Warn("Command failed", "command", command, "error", err)
	}
}

// Draw renders the current screen
func (a *App) Draw() {
	s := a.deps.Screen
	s.Clear()
	switch a.deps.Session.Screen() {
	case session.ScreenArena:
		a.drawArena()
	default:
		a.drawLanding()
	}
	s.Show()
}
