// pkg/core/entry.go
package core

// QueueEntry is a unit waiting in the queue. InstanceID is unique for the
// whole session, so repeated enqueues of one unit stay distinguishable.
type QueueEntry struct {
	Unit
	InstanceID string `json:"instanceId"`
	Seq        int    `json:"seq"`
}

// DeployedEntry is a queue entry that has left the queue. Position is the
// deployment log length at the moment it was recorded.
type DeployedEntry struct {
	QueueEntry
	Position int `json:"position"`
}
