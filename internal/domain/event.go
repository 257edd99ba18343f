package domain

type NoteEventType string

const (
	NoteCreated NoteEventType = "note_created"
	NoteUpdated NoteEventType = "note_updated"
	NoteDeleted NoteEventType = "note_deleted"
)

// NoteEvent describes a committed mutation of the note collection.
// Note is nil for deletions.
type NoteEvent struct {
	Type   NoteEventType
	NoteID int64
	Note   *Note
}
