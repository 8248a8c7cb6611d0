// Package session holds the identity and navigation state of one run.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Screen is the page currently shown to the player
type Screen string

const (
	ScreenLanding Screen = "landing"
	ScreenArena   Screen = "arena"
)

// Context holds the session identity and the current screen
type Context struct {
	mu      sync.RWMutex
	id      string
	started time.Time
	screen  Screen
}

// NewContext creates a session on the landing screen
func NewContext(started time.Time) *Context {
	return &Context{
		id:      uuid.NewString(),
		started: started,
		screen:  ScreenLanding,
	}
}

// ID returns the session UUID
func (c *Context) ID() string {
	return c.id
}

// Started returns when the session began
func (c *Context) Started() time.Time {
	return c.started
}

// Uptime returns how long the session has been running at now
func (c *Context) Uptime(now time.Time) time.Duration {
	return now.Sub(c.started)
}

// Screen returns the current screen
func (c *Context) Screen() Screen {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.screen
}

// SetScreen switches the current screen and reports whether it changed
func (c *Context) SetScreen(s Screen) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.screen == s {
		return false
	}
	c.screen = s
	return true
}
