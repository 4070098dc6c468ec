package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/SpreadSheets600/pomotroid/internal/domain"
	"github.com/SpreadSheets600/pomotroid/internal/logging"
	"github.com/SpreadSheets600/pomotroid/internal/ports"
)

// FileStore implements ports.SessionStore on a single JSON document. The
// whole document is rewritten after every mutation; the file is owned
// exclusively by one in-process instance, so there is no locking.
type FileStore struct {
	path string
	doc  domain.Document
	now  func() time.Time
	loc  *time.Location
}

// Verify interface compliance at compile time
var _ ports.SessionStore = (*FileStore)(nil)

// Option configures a FileStore.
type Option func(*FileStore)

// WithClock overrides the time source, used by tests to pin "now".
func WithClock(now func() time.Time) Option {
	return func(f *FileStore) { f.now = now }
}

// WithLocation overrides the calendar location used for day boundaries.
func WithLocation(loc *time.Location) Option {
	return func(f *FileStore) { f.loc = loc }
}

// NewFileStore opens the sessions document at path, creating an empty one if
// the file does not exist. A corrupted file degrades to an empty document so
// the application stays usable; the failure is only logged.
func NewFileStore(path string, opts ...Option) (*FileStore, error) {
	path = expandPath(path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	f := &FileStore{
		path: path,
		now:  time.Now,
		loc:  time.Local,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.doc = f.load()
	logging.Logger.Info("Statistics data loaded", "path", f.path, "sessions", len(f.doc.Sessions))
	return f, nil
}

// Path returns the location of the backing file.
func (f *FileStore) Path() string {
	return f.path
}

// load reads the backing file, creating it when missing and falling back to
// an empty document when it cannot be parsed.
func (f *FileStore) load() domain.Document {
	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		doc := domain.NewDocument()
		f.doc = doc
		f.save()
		return doc
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		logging.Logger.Error("Failed to load statistics data", "path", f.path, "error", err)
		return domain.NewDocument()
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Logger.Error("Failed to parse statistics data", "path", f.path, "error", err)
		return domain.NewDocument()
	}
	if doc.Sessions == nil {
		doc.Sessions = []domain.Session{}
	}
	return doc
}

// save rewrites the whole document. Write failures are logged and swallowed;
// the in-memory state is kept as-is.
func (f *FileStore) save() {
	data, err := json.MarshalIndent(f.doc, "", "  ")
	if err != nil {
		logging.Logger.Error("Failed to serialize statistics data", "error", err)
		return
	}
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		logging.Logger.Error("Failed to save statistics data", "path", f.path, "error", err)
	}
}

// CreateSession appends a new open session and persists the document.
func (f *FileStore) CreateSession(typ domain.SessionType, duration int, taskName, taskID string) domain.Session {
	session := domain.Session{
		ID:        uuid.New().String(),
		Type:      typ,
		Duration:  duration,
		StartTime: f.now(),
		TaskName:  optional(taskName),
		TaskID:    optional(taskID),
	}

	f.doc.Sessions = append(f.doc.Sessions, session)
	f.save()
	logging.Logger.Info("Session created", "id", session.ID, "type", typ)
	return session.Clone()
}

// CompleteSession closes the session with the given outcome. Completing an
// unknown ID is tolerated; re-completing an already closed session simply
// re-applies the completion fields.
func (f *FileStore) CompleteSession(id string, completed bool, interruptReason string) {
	var session *domain.Session
	for i := range f.doc.Sessions {
		if f.doc.Sessions[i].ID == id {
			session = &f.doc.Sessions[i]
			break
		}
	}
	if session == nil {
		logging.Logger.Warn("Session not found", "id", id)
		return
	}

	endTime := f.now()
	session.EndTime = &endTime
	session.Completed = completed
	session.Interrupted = !completed
	session.InterruptReason = optional(interruptReason)

	f.save()
	outcome := "completed"
	if !completed {
		outcome = "interrupted"
	}
	logging.Logger.Info("Session "+outcome, "id", id)
}

// DeleteSession removes the session if present. Unknown IDs are a no-op and
// do not trigger a rewrite.
func (f *FileStore) DeleteSession(id string) {
	for i := range f.doc.Sessions {
		if f.doc.Sessions[i].ID == id {
			f.doc.Sessions = append(f.doc.Sessions[:i], f.doc.Sessions[i+1:]...)
			f.save()
			logging.Logger.Info("Session deleted", "id", id)
			return
		}
	}
}

// ClearAllSessions removes every record and persists.
func (f *FileStore) ClearAllSessions() {
	f.doc.Sessions = []domain.Session{}
	f.save()
	logging.Logger.Info("All sessions cleared")
}

// AllSessions returns every record in creation order.
func (f *FileStore) AllSessions() []domain.Session {
	sessions := make([]domain.Session, len(f.doc.Sessions))
	for i, s := range f.doc.Sessions {
		sessions[i] = s.Clone()
	}
	return sessions
}

// SessionsByDateRange returns records whose start time falls inside
// [start, end], both ends inclusive.
func (f *FileStore) SessionsByDateRange(start, end time.Time) []domain.Session {
	var sessions []domain.Session
	for _, s := range f.doc.Sessions {
		if !s.StartTime.Before(start) && !s.StartTime.After(end) {
			sessions = append(sessions, s.Clone())
		}
	}
	return sessions
}

// SessionsByDate returns records started on the given local calendar day.
func (f *FileStore) SessionsByDate(date domain.LocalDate) []domain.Session {
	return f.SessionsByDateRange(date.StartOfDay(f.loc), date.EndOfDay(f.loc))
}

// ExportJSON serializes the full document, pretty-printed.
func (f *FileStore) ExportJSON() (string, error) {
	data, err := json.MarshalIndent(f.doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize document: %w", err)
	}
	return string(data), nil
}

// ImportJSON replaces the whole document with the parsed text and persists.
// Unparsable text is a reported error and leaves the current document
// untouched. Parsable text without an array-typed "sessions" field is a
// silent no-op.
func (f *FileStore) ImportJSON(text string) error {
	var probe struct {
		Sessions json.RawMessage `json:"sessions"`
	}
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		logging.Logger.Error("Failed to import data", "error", err)
		return fmt.Errorf("%w: %v", domain.ErrInvalidJSON, err)
	}

	if !isJSONArray(probe.Sessions) {
		logging.Logger.Warn("Import payload has no sessions array, ignoring")
		return nil
	}

	var doc domain.Document
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		logging.Logger.Error("Failed to import data", "error", err)
		return fmt.Errorf("%w: %v", domain.ErrInvalidJSON, err)
	}
	if doc.Sessions == nil {
		doc.Sessions = []domain.Session{}
	}

	f.doc = doc
	f.save()
	logging.Logger.Info("Data imported successfully", "sessions", len(doc.Sessions))
	return nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// optional maps "" to nil so empty CLI arguments persist as null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// expandPath expands ~ to home directory in paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if len(path) == 1 {
			return homeDir
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
