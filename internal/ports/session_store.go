package ports

import (
	"time"

	"github.com/SpreadSheets600/pomotroid/internal/domain"
)

// SessionReader reads stored session records. The analyzer depends only on
// this surface.
type SessionReader interface {
	// AllSessions returns every record in creation order.
	AllSessions() []domain.Session
	// SessionsByDateRange returns records whose start time falls inside
	// [start, end], both ends inclusive.
	SessionsByDateRange(start, end time.Time) []domain.Session
	// SessionsByDate returns records started on the given local calendar day.
	SessionsByDate(date domain.LocalDate) []domain.Session
}

// SessionWriter creates and mutates session records.
type SessionWriter interface {
	// CreateSession appends a new open session and persists the document.
	// taskName and taskID are optional; pass "" for none.
	CreateSession(typ domain.SessionType, duration int, taskName, taskID string) domain.Session
	// CompleteSession closes the session with the given outcome. Unknown IDs
	// are logged and ignored. interruptReason only applies when completed is
	// false; pass "" for none.
	CompleteSession(id string, completed bool, interruptReason string)
	// DeleteSession removes the session if present; unknown IDs are ignored.
	DeleteSession(id string)
	// ClearAllSessions removes every record.
	ClearAllSessions()
}

// SessionPorter moves whole documents in and out of the store.
type SessionPorter interface {
	// ExportJSON serializes the full document, pretty-printed.
	ExportJSON() (string, error)
	// ImportJSON replaces the document with the parsed text. Unparsable text
	// is an error; parsable text without an array-typed "sessions" field is a
	// no-op.
	ImportJSON(text string) error
}

// SessionStore is the composite interface.
type SessionStore interface {
	SessionReader
	SessionWriter
	SessionPorter
}
