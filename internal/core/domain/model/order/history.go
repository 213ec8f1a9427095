package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created through NewHistoryEntry or RestoreHistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New(
	"HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry")

// HistoryEntry is one element of an order's append-only status history.
// Entries are immutable once appended and owned by exactly one Order.
type HistoryEntry struct {
	id        kernel.UUID
	status    Status
	note      string
	changedAt time.Time
}

// NewHistoryEntry creates a history entry stamped with the current time.
// The note is optional free text supplied by the caller of the transition.
func NewHistoryEntry(status Status, note string) (HistoryEntry, error) {
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		id:        kernel.NewUUID(),
		status:    status,
		note:      note,
		changedAt: time.Now().UTC(),
	}, nil
}

// RestoreHistoryEntry reconstructs a history entry from persistence.
func RestoreHistoryEntry(id kernel.UUID, status Status, note string, changedAt time.Time) (HistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		id:        id,
		status:    status,
		note:      note,
		changedAt: changedAt,
	}, nil
}

// ID returns the unique identifier of the entry.
func (h HistoryEntry) ID() kernel.UUID {
	return h.id
}

// Status returns the lifecycle state recorded by the entry.
func (h HistoryEntry) Status() Status {
	return h.status
}

// Note returns the optional free-text note attached to the transition.
func (h HistoryEntry) Note() string {
	return h.note
}

// ChangedAt returns the timestamp of the transition.
func (h HistoryEntry) ChangedAt() time.Time {
	return h.changedAt
}

// Validate ensures the entry was built through a constructor.
func (h HistoryEntry) Validate() error {
	if err := h.id.Validate(); err != nil {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}
