// pkg/core/snapshot.go
package core

// Snapshot is a point-in-time copy of the arena state. Slices are owned by
// the caller.
type Snapshot struct {
	Queue          []QueueEntry    `json:"queue"`
	Deployed       []DeployedEntry `json:"deployed"`
	Counter        int             `json:"counter"`
	Battlefield    bool            `json:"battlefield"`
	CastleHealth   int             `json:"castleHealth"`
	CastleMax      int             `json:"castleMax"`
	Markers        []AttackMarker  `json:"markers"`
	PendingRemoval int             `json:"pendingRemoval"`
}

// CastleDestroyed reports whether the castle has fallen
func (s Snapshot) CastleDestroyed() bool {
	return s.Battlefield && s.CastleHealth <= 0
}

// Next returns the entry at the front of the queue
func (s Snapshot) Next() (QueueEntry, bool) {
	if len(s.Queue) == 0 {
		return QueueEntry{}, false
	}
	return s.Queue[0], true
}
