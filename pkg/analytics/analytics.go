// Package analytics records block usage events. Tracking is fire and
// forget everywhere: a failed write must never surface to the flow that
// triggered it, and tracking a block the backing store has never heard
// of is a silent success. The catalog routinely runs ahead of the store.
package analytics

import (
	"time"

	"github.com/google/uuid"
)

// Action is a trackable interaction with a block.
type Action string

const (
	ActionView     Action = "view"
	ActionCopyCode Action = "copy_code"
	ActionCopyCLI  Action = "copy_cli"
)

// Valid reports whether the action is one this package records.
func (a Action) Valid() bool {
	return a == ActionView || a == ActionCopyCode || a == ActionCopyCLI
}

// IsCopy reports whether the action counts against the copy counter.
// Both copy variants share one aggregate; the distinction survives only
// on the raw event.
func (a Action) IsCopy() bool {
	return a == ActionCopyCode || a == ActionCopyCLI
}

// Event is one recorded interaction.
type Event struct {
	ID        uuid.UUID
	BlockID   uuid.UUID
	UserID    *string
	Action    Action
	Metadata  map[string]any
	CreatedAt time.Time
}

// Stats are the aggregate counters for one block.
type Stats struct {
	Views  int64 `json:"views"`
	Copies int64 `json:"copies"`
}
