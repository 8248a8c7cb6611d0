// Package notify keeps the toast notifications raised by arena actions.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/queuecommander/arena/pkg/core"
)

// Listener is told about every notification as it is raised
type Listener interface {
	OnNotification(n core.Notification)
}

// Config controls how long toasts stay visible and how many are kept
type Config struct {
	ToastDuration time.Duration
	History       int
}

// DefaultConfig keeps five toasts for four seconds each
func DefaultConfig() Config {
	return Config{
		ToastDuration: 4 * time.Second,
		History:       5,
	}
}

// Dependencies holds the collaborators of a Feed
type Dependencies struct {
	Logger    *slog.Logger
	Listeners []Listener
}

// Toast is a notification together with the time it stops being shown
type Toast struct {
	core.Notification
	Expires time.Time
}

// Feed stores the most recent notifications. It implements arena.Notifier.
type Feed struct {
	mu     sync.Mutex
	cfg    Config
	deps   Dependencies
	toasts []Toast
}

// NewFeed creates an empty feed
func NewFeed(cfg Config, deps Dependencies) *Feed {
	def := DefaultConfig()
	if cfg.ToastDuration <= 0 {
		cfg.ToastDuration = def.ToastDuration
	}
	if cfg.History <= 0 {
		cfg.History = def.History
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	return &Feed{cfg: cfg, deps: deps}
}

// AddListener registers l for every future notification
func (f *Feed) AddListener(l Listener) {
	if l == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deps.Listeners = append(f.deps.Listeners, l)
}

// Notify records n, logs it and forwards it to the listeners
func (f *Feed) Notify(n core.Notification) {
	f.mu.Lock()
	f.toasts = append(f.toasts, Toast{Notification: n, Expires: n.At.Add(f.cfg.ToastDuration)})
	if over := len(f.toasts) - f.cfg.History; over > 0 {
		f.toasts = append(f.toasts[:0:0], f.toasts[over:]...)
	}
	listeners := make([]Listener, len(f.deps.Listeners))
	copy(listeners, f.deps.Listeners)
	f.mu.Unlock()

	level := slog.LevelInfo
	if n.Level == core.LevelError {
		level = slog.LevelError
	}
	f.deps.Logger.Log(context.Background(), level, n.Title, "event", string(n.Event), "description", n.Description)

	for _, l := range listeners {
		l.OnNotification(n)
	}
}

// Active returns the toasts still visible at now, oldest first
func (f *Feed) Active(now time.Time) []Toast {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Toast
	for _, t := range f.toasts {
		if now.Before(t.Expires) {
			out = append(out, t)
		}
	}
	return out
}

// Recent returns every kept toast, expired or not, oldest first
func (f *Feed) Recent() []Toast {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Toast, len(f.toasts))
	copy(out, f.toasts)
	return out
}

// Clear drops every kept toast
func (f *Feed) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toasts = nil
}
