package arena

import "github.com/queuecommander/arena/pkg/core"

// DeploymentLog is the append-only history of deployed entries
type DeploymentLog struct {
	entries []core.DeployedEntry
}

// NewDeploymentLog creates an empty log
func NewDeploymentLog() *DeploymentLog {
	return &DeploymentLog{}
}

// Record appends e. Its position is the log length before the append.
func (l *DeploymentLog) Record(e core.QueueEntry) core.DeployedEntry {
	d := core.DeployedEntry{
		QueueEntry: e,
		Position:   len(l.entries),
	}
	l.entries = append(l.entries, d)
	return d
}

// Clear empties the log
func (l *DeploymentLog) Clear() {
	l.entries = nil
}

// Len returns the number of deployed entries
func (l *DeploymentLog) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the log, oldest first
func (l *DeploymentLog) Entries() []core.DeployedEntry {
	out := make([]core.DeployedEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
