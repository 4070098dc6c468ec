package domain

import "time"

// SessionType identifies what kind of timed interval a session is.
type SessionType string

const (
	TypeWork       SessionType = "work"
	TypeShortBreak SessionType = "short-break"
	TypeLongBreak  SessionType = "long-break"
)

// DocumentVersion is the schema version written to the sessions file.
const DocumentVersion = "1.0"

// Session represents one timed work/break interval (domain entity).
//
// A session starts open, then transitions exactly once to completed or
// interrupted. EndTime is non-nil iff the session is no longer open, and
// InterruptReason is only set on interrupted sessions.
type Session struct {
	ID              string      `json:"id"`
	Type            SessionType `json:"type"`
	Duration        int         `json:"duration"`
	StartTime       time.Time   `json:"startTime"`
	EndTime         *time.Time  `json:"endTime"`
	Completed       bool        `json:"completed"`
	Interrupted     bool        `json:"interrupted"`
	InterruptReason *string     `json:"interruptReason"`
	TaskName        *string     `json:"taskName"`
	TaskID          *string     `json:"taskId"`
}

// IsOpen reports whether the session has not yet been completed or interrupted.
func (s Session) IsOpen() bool {
	return s.EndTime == nil
}

// IsWork reports whether the session is a work interval. Breaks are excluded
// from completion and streak accounting.
func (s Session) IsWork() bool {
	return s.Type == TypeWork
}

// IsCompletedWork reports whether the session is a completed work interval.
func (s Session) IsCompletedWork() bool {
	return s.IsWork() && s.Completed
}

// Clone returns a deep copy of the session. Pointer fields are duplicated so
// the copy shares no memory with the original.
func (s Session) Clone() Session {
	c := s
	c.EndTime = cloneTime(s.EndTime)
	c.InterruptReason = cloneString(s.InterruptReason)
	c.TaskName = cloneString(s.TaskName)
	c.TaskID = cloneString(s.TaskID)
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Document is the full persisted unit: every session in creation order plus
// the schema version. Load, save, import, and export always move the whole
// document; there is no partial persistence.
type Document struct {
	Sessions []Session `json:"sessions"`
	Version  string    `json:"version"`
}

// NewDocument returns an empty document at the current schema version.
func NewDocument() Document {
	return Document{Sessions: []Session{}, Version: DocumentVersion}
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	sessions := make([]Session, len(d.Sessions))
	for i, s := range d.Sessions {
		sessions[i] = s.Clone()
	}
	return Document{Sessions: sessions, Version: d.Version}
}
