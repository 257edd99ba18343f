package repository

import (
	"errors"
	"sync"

	"notes-service/internal/domain"
)

var ErrNoteNotFound = errors.New("note not found")

type NoteRepository interface {
	Create(note *domain.Note) error
	List() ([]*domain.Note, error)
	Update(id int64, apply func(note *domain.Note)) (*domain.Note, error)
	Delete(id int64) error
}

// memoryNoteRepository keeps notes in insertion order. Every method takes
// the same mutex so id assignment and read-modify-write sequences are
// never interleaved. Notes are copied on the way in and out.
type memoryNoteRepository struct {
	mu     sync.Mutex
	notes  []*domain.Note
	nextID int64
}

func NewMemoryNoteRepository() NoteRepository {
	return &memoryNoteRepository{
		notes:  make([]*domain.Note, 0),
		nextID: 1,
	}
}

// Create assigns the next id to note and appends a copy of it.
func (r *memoryNoteRepository) Create(note *domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note.ID = r.nextID
	r.nextID++
	r.notes = append(r.notes, note.Clone())

	return nil
}

func (r *memoryNoteRepository) List() ([]*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes := make([]*domain.Note, 0, len(r.notes))
	for _, n := range r.notes {
		notes = append(notes, n.Clone())
	}

	return notes, nil
}

// Update runs apply against the stored note while holding the lock. The
// id is restored afterwards so apply cannot re-key a note.
func (r *memoryNoteRepository) Update(id int64, apply func(note *domain.Note)) (*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return nil, ErrNoteNotFound
	}

	updated := r.notes[idx].Clone()
	apply(updated)
	updated.ID = id
	r.notes[idx] = updated

	return updated.Clone(), nil
}

func (r *memoryNoteRepository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return ErrNoteNotFound
	}

	r.notes = append(r.notes[:idx], r.notes[idx+1:]...)

	return nil
}

// indexOf must be called with mu held.
func (r *memoryNoteRepository) indexOf(id int64) int {
	for i, n := range r.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
