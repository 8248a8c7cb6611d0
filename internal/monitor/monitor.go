package monitor

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/queuecommander/arena/internal/arena"
	"github.com/queuecommander/arena/internal/session"
)

// Dependencies holds all dependencies for the monitor service
type Dependencies struct {
	Arena   *arena.Arena
	Session *session.Context
	Logger  *slog.Logger

	// StatusFile, when set, is rewritten with the status lines on every tick
	StatusFile string
	Now        func() time.Time
}

// Service periodically reports the arena status
type Service struct {
	deps      Dependencies
	isRunning bool
	mu        sync.RWMutex
	stopChan  chan struct{}
	done      chan struct{}
}

// NewService creates a new monitor service
func NewService(deps Dependencies) *Service {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Service{deps: deps}
}

// IsRunning returns whether the status monitor is running
func (s *Service) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Status returns the current program status, one line per concern
func (s *Service) Status() []string {
	var out []string

	if s.deps.Session != nil {
		out = append(out, fmt.Sprintf("session %s screen=%s uptime=%s",
			s.deps.Session.ID(),
			s.deps.Session.Screen(),
			s.deps.Session.Uptime(s.deps.Now()).Truncate(time.Second)))
	}

	snap := s.deps.Arena.Snapshot()
	next := "none"
	if e, ok := snap.Next(); ok {
		next = e.Label()
	}
	out = append(out, fmt.Sprintf("queue: %d waiting, next: %s", len(snap.Queue), next))

	field := fmt.Sprintf("battlefield: %d deployed", len(snap.Deployed))
	if snap.Battlefield {
		field += fmt.Sprintf(", castle %d/%d, %d markers", snap.CastleHealth, snap.CastleMax, len(snap.Markers))
		if snap.CastleDestroyed() {
			field += ", CASTLE DESTROYED"
		}
	}
	out = append(out, field)

	return out
}

// Tick logs the status once and refreshes the status file
func (s *Service) Tick() {
	stats := s.deps.Arena.Stats()
	s.deps.Logger.Info("Arena status",
		"waiting", stats.Waiting,
		"deployed", stats.Deployed,
		"counter", stats.Counter,
		"castleHealth", stats.CastleHealth,
		"markers", stats.Markers)

	if s.deps.StatusFile == "" {
		return
	}
	content := strings.Join(s.Status(), "\n") + "\n"
	if err := os.WriteFile(s.deps.StatusFile, []byte(content), 0o644); err != nil {
		s.deps.Logger.Error("Error writing status file", "path", s.deps.StatusFile, "error", err)
	}
}

// Start starts the status monitor goroutine
func (s *Service) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("monitor interval must be positive, got %s", interval)
	}

	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.stopChan = make(chan struct{})
	s.done = make(chan struct{})
	stop, done := s.stopChan, s.done
	s.mu.Unlock()

	go func() {
		defer close(done)

		s.deps.Logger.Debug("Starting status monitor", "interval", interval)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.Tick()
			}
		}
	}()

	return nil
}

// Stop stops the status monitor and waits for its goroutine to exit
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	close(s.stopChan)
	done := s.done
	s.mu.Unlock()

	<-done
}
