package arena

import (
	"time"

	"github.com/google/uuid"

	"github.com/queuecommander/arena/internal/cache"
	"github.com/queuecommander/arena/internal/scheduler"
	"github.com/queuecommander/arena/pkg/core"
)

// Battlefield turns deployments into damage against the enemy castle and
// tracks the short-lived attack markers each deployment spawns.
type Battlefield struct {
	max      int
	damage   int
	health   int
	lifetime time.Duration

	markers *cache.MarkerCache
	sched   *scheduler.Scheduler
}

// NewBattlefield creates a battlefield with a castle at full health
func NewBattlefield(maxHealth, damage int, lifetime time.Duration, clock scheduler.Clock) *Battlefield {
	return &Battlefield{
		max:      maxHealth,
		damage:   damage,
		health:   maxHealth,
		lifetime: lifetime,
		markers:  cache.NewMarkerCache(),
		sched:    scheduler.New(clock),
	}
}

// ApplyDamage lowers castle health by the per-deploy damage, never below
// zero. destroyed is true only on the hit that brings health to zero.
func (b *Battlefield) ApplyDamage() (health int, destroyed bool) {
	if b.health == 0 {
		return 0, false
	}
	b.health -= b.damage
	if b.health < 0 {
		b.health = 0
	}
	return b.health, b.health == 0
}

// SpawnAttackMarker places a marker and schedules its removal after the
// marker lifetime. expire receives the marker ID when the timer fires.
func (b *Battlefield) SpawnAttackMarker(kind core.AttackKind, position int, unitID string, expire func(id string)) core.AttackMarker {
	m := core.AttackMarker{
		ID:       uuid.NewString(),
		Kind:     kind,
		Position: position,
		UnitID:   unitID,
	}
	b.markers.Add(m)
	b.sched.Schedule(m.ID, b.lifetime, func() {
		expire(m.ID)
	})
	return m
}

// RemoveMarker drops a marker by ID. Unknown IDs are ignored.
func (b *Battlefield) RemoveMarker(id string) bool {
	b.sched.Cancel(id)
	return b.markers.Delete(id)
}

// ClearMarkers removes every marker and cancels their pending removals
func (b *Battlefield) ClearMarkers() int {
	n := b.sched.CancelAll()
	b.markers.Reset()
	return n
}

// Reset clears the markers and restores the castle to full health
func (b *Battlefield) Reset() {
	b.ClearMarkers()
	b.health = b.max
}

// Health returns the current castle health
func (b *Battlefield) Health() int {
	return b.health
}

// MaxHealth returns the castle's full health
func (b *Battlefield) MaxHealth() int {
	return b.max
}

// Destroyed reports whether the castle has fallen
func (b *Battlefield) Destroyed() bool {
	return b.health == 0
}

// Markers returns the live markers, oldest first
func (b *Battlefield) Markers() []core.AttackMarker {
	return b.markers.List()
}

// PendingRemovals returns the number of marker removals still scheduled
func (b *Battlefield) PendingRemovals() int {
	return b.sched.Pending()
}
