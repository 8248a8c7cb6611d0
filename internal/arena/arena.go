// Package arena holds the session's game state: the FIFO queue store, the
// deployment log and, in the battlefield variant, the castle under attack.
package arena

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/queuecommander/arena/internal/scheduler"
	"github.com/queuecommander/arena/pkg/core"
)

// Notifier receives the user-visible notifications raised by arena actions
type Notifier interface {
	Notify(n core.Notification)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(core.Notification)

// Notify calls f(n)
func (f NotifierFunc) Notify(n core.Notification) { f(n) }

// Config controls the battlefield variant
type Config struct {
	Battlefield     bool
	CastleHealth    int
	DamagePerDeploy int
	MarkerLifetime  time.Duration
}

// DefaultConfig returns the battlefield variant with a 100 HP castle, 10
// damage per deploy and 2s attack markers.
func DefaultConfig() Config {
	return Config{
		Battlefield:     true,
		CastleHealth:    100,
		DamagePerDeploy: 10,
		MarkerLifetime:  2 * time.Second,
	}
}

// Dependencies holds the collaborators of an Arena. Nil fields get defaults.
type Dependencies struct {
	Catalog  *core.Catalog
	Notifier Notifier
	Clock    scheduler.Clock
	Logger   *slog.Logger
}

// Stats is a cheap summary of the arena, used for status lines and log context
type Stats struct {
	Waiting      int
	Deployed     int
	Counter      int
	CastleHealth int
	Markers      int
}

// Arena coordinates the queue store, deployment log and battlefield. All
// mutations are serialized; notifications and change listeners run after
// the state lock is released.
type Arena struct {
	mu     sync.Mutex
	cfg    Config
	deps   Dependencies
	store  *QueueStore
	log    *DeploymentLog
	field  *Battlefield
	onChg  []func()
	metric *metrics
}

// New creates an arena in its initial state
func New(cfg Config, deps Dependencies) (*Arena, error) {
	if deps.Catalog == nil {
		deps.Catalog = core.DefaultCatalog()
	}
	if deps.Notifier == nil {
		deps.Notifier = NotifierFunc(func(core.Notification) {})
	}
	if deps.Clock == nil {
		deps.Clock = scheduler.RealClock{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Battlefield && cfg.CastleHealth <= 0 {
		return nil, fmt.Errorf("castle health must be positive, got %d", cfg.CastleHealth)
	}

	a := &Arena{
		cfg:   cfg,
		deps:  deps,
		store: NewQueueStore(),
		log:   NewDeploymentLog(),
	}
	if cfg.Battlefield {
		a.field = NewBattlefield(cfg.CastleHealth, cfg.DamagePerDeploy, cfg.MarkerLifetime, deps.Clock)
	}

	m, err := newMetrics(a)
	if err != nil {
		return nil, err
	}
	a.metric = m

	return a, nil
}

// Catalog returns the units available for enqueuing
func (a *Arena) Catalog() *core.Catalog {
	return a.deps.Catalog
}

// BattlefieldEnabled reports whether castle damage and attack markers are active
func (a *Arena) BattlefieldEnabled() bool {
	return a.field != nil
}

// OnChange registers fn to run after every state change
func (a *Arena) OnChange(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onChg = append(a.onChg, fn)
}

// Enqueue adds u to the back of the queue. It always succeeds.
func (a *Arena) Enqueue(u core.Unit) core.QueueEntry {
	a.mu.Lock()
	entry := a.store.Enqueue(u, a.deps.Clock.Now())
	size := a.store.Size()
	a.mu.Unlock()

	a.metric.recordEnqueue(u.Name)
	a.deps.Logger.Debug("Unit enqueued", "unit", u.Name, "instance", entry.InstanceID, "waiting", size)
	a.notify(core.EventEnqueue, core.LevelSuccess, u.Label()+" added to queue!", "FIFO: First In, First Out")
	a.changed()
	return entry
}

// EnqueueByKey looks up a unit by ID or name and enqueues it
func (a *Arena) EnqueueByKey(key string) (core.QueueEntry, error) {
	u, ok := a.deps.Catalog.Lookup(key)
	if !ok {
		return core.QueueEntry{}, fmt.Errorf("%w: %q", ErrUnknownUnit, key)
	}
	return a.Enqueue(u), nil
}

// Deploy removes the unit at the front of the queue and records it on the
// battlefield. On an empty queue it returns ErrEmptyQueue and changes nothing.
func (a *Arena) Deploy() (core.DeployedEntry, error) {
	a.mu.Lock()
	entry, err := a.store.Dequeue()
	if err != nil {
		a.mu.Unlock()
		a.metric.recordEmptyQueue()
		a.deps.Logger.Debug("Deploy rejected", "error", err)
		a.notify(core.EventEmptyQueue, core.LevelError, "Queue is empty!", "Add troops to the queue first")
		return core.DeployedEntry{}, err
	}

	deployed := a.log.Record(entry)
	health, destroyed := -1, false
	if a.field != nil {
		health, destroyed = a.field.ApplyDamage()
		a.field.SpawnAttackMarker(core.AttackKindFor(entry.Unit), deployed.Position, entry.ID, a.expireMarker)
	}
	a.mu.Unlock()

	a.metric.recordDeploy(entry.Name)
	a.deps.Logger.Debug("Unit deployed",
		"unit", entry.Name,
		"instance", entry.InstanceID,
		"position", deployed.Position,
		"castleHealth", health)
	a.notify(core.EventDeploy, core.LevelSuccess, entry.Label()+" deployed!", "Removed from front of queue")
	if destroyed {
		a.deps.Logger.Info("Castle destroyed", "deployed", deployed.Position+1)
		a.notify(core.EventCastleDestroyed, core.LevelInfo, "Castle destroyed!", "The enemy castle has fallen")
	}
	a.changed()
	return deployed, nil
}

// ClearQueue drops every waiting unit
func (a *Arena) ClearQueue() {
	a.mu.Lock()
	a.store.Clear()
	a.mu.Unlock()

	a.notify(core.EventQueueCleared, core.LevelInfo, "Queue cleared!", "")
	a.changed()
}

// ClearBattlefield empties the deployment log and removes all attack markers,
// cancelling their pending removals. Castle health is kept.
func (a *Arena) ClearBattlefield() {
	a.mu.Lock()
	a.log.Clear()
	cancelled := 0
	if a.field != nil {
		cancelled = a.field.ClearMarkers()
	}
	a.mu.Unlock()

	a.deps.Logger.Debug("Battlefield cleared", "cancelledMarkers", cancelled)
	a.notify(core.EventFieldCleared, core.LevelInfo, "Battlefield cleared!", "")
	a.changed()
}

// ResetAll restores the initial state in one step: empty queue and log,
// counter zero, full castle health and no markers or pending removals.
func (a *Arena) ResetAll() {
	a.reset()
	a.deps.Logger.Debug("Arena reset")
	a.notify(core.EventReset, core.LevelInfo, "Arena reset!", "")
	a.changed()
}

// Leave resets the arena like ResetAll for a player walking away from it.
// No notification is raised.
func (a *Arena) Leave() {
	a.reset()
	a.deps.Logger.Debug("Arena left")
	a.changed()
}

func (a *Arena) reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.store.Reset()
	a.log.Clear()
	if a.field != nil {
		a.field.Reset()
	}
}

// Size returns the number of units waiting in the queue
func (a *Arena) Size() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.Size()
}

// Stats returns counts describing the current state
func (a *Arena) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := Stats{
		Waiting:      a.store.Size(),
		Deployed:     a.log.Len(),
		Counter:      a.store.Counter(),
		CastleHealth: -1,
	}
	if a.field != nil {
		s.CastleHealth = a.field.Health()
		s.Markers = len(a.field.Markers())
	}
	return s
}

// Snapshot returns a copy of the full state
func (a *Arena) Snapshot() core.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	snap := core.Snapshot{
		Queue:    a.store.Entries(),
		Deployed: a.log.Entries(),
		Counter:  a.store.Counter(),
		Markers:  []core.AttackMarker{},
	}
	if a.field != nil {
		snap.Battlefield = true
		snap.CastleHealth = a.field.Health()
		snap.CastleMax = a.field.MaxHealth()
		snap.Markers = a.field.Markers()
		snap.PendingRemoval = a.field.PendingRemovals()
	}
	return snap
}

func (a *Arena) expireMarker(id string) {
	a.mu.Lock()
	removed := a.field != nil && a.field.RemoveMarker(id)
	a.mu.Unlock()

	if removed {
		a.changed()
	}
}

func (a *Arena) notify(event core.Event, level core.Level, title, description string) {
	a.deps.Notifier.Notify(core.Notification{
		Event:       event,
		Level:       level,
		Title:       title,
		Description: description,
		At:          a.deps.Clock.Now(),
	})
}

func (a *Arena) changed() {
	a.mu.Lock()
	listeners := make([]func(), len(a.onChg))
	copy(listeners, a.onChg)
	a.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
