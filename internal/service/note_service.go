package service

import (
	"errors"
	"sort"
	"time"

	"notes-service/internal/domain"
	"notes-service/internal/repository"

	"go.uber.org/zap"
)

// EventPublisher receives every committed mutation. It must not block.
type EventPublisher interface {
	Publish(event domain.NoteEvent)
}

type NoteService struct {
	repo      repository.NoteRepository
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

type Option func(*NoteService)

func WithClock(now func() time.Time) Option {
	return func(s *NoteService) {
		s.now = now
	}
}

func WithPublisher(publisher EventPublisher) Option {
	return func(s *NoteService) {
		s.publisher = publisher
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *NoteService) {
		s.logger = logger
	}
}

func NewNoteService(repo repository.NoteRepository, opts ...Option) *NoteService {
	s := &NoteService{
		repo:   repo,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every note ordered by creation time. Notes created within
// the same instant keep their insertion order.
func (s *NoteService) List() ([]*domain.Note, error) {
	notes, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.Before(notes[j].CreatedAt)
	})

	return notes, nil
}

// Create expects title to be trimmed and non-empty already.
func (s *NoteService) Create(title, content string) (*domain.Note, error) {
	now := s.timestamp()

	note := &domain.Note{
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(note); err != nil {
		return nil, err
	}

	s.logger.Debug("note created", zap.Int64("note_id", note.ID))
	s.publish(domain.NoteEvent{Type: domain.NoteCreated, NoteID: note.ID, Note: note.Clone()})

	return note, nil
}

// Update applies the supplied fields of patch and always refreshes
// UpdatedAt, even when the values are unchanged.
func (s *NoteService) Update(id int64, patch domain.NotePatch) (*domain.Note, error) {
	note, err := s.repo.Update(id, func(n *domain.Note) {
		if patch.Title != nil {
			n.Title = *patch.Title
		}
		if patch.Content != nil {
			n.Content = *patch.Content
		}

		now := s.timestamp()
		if now.Before(n.UpdatedAt) {
			now = n.UpdatedAt
		}
		n.UpdatedAt = now
	})
	if err != nil {
		return nil, s.translate(id, err)
	}

	s.logger.Debug("note updated", zap.Int64("note_id", id))
	s.publish(domain.NoteEvent{Type: domain.NoteUpdated, NoteID: id, Note: note.Clone()})

	return note, nil
}

func (s *NoteService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return s.translate(id, err)
	}

	s.logger.Debug("note deleted", zap.Int64("note_id", id))
	s.publish(domain.NoteEvent{Type: domain.NoteDeleted, NoteID: id})

	return nil
}

func (s *NoteService) timestamp() time.Time {
	return s.now().UTC()
}

func (s *NoteService) translate(id int64, err error) error {
	if errors.Is(err, repository.ErrNoteNotFound) {
		return &NotFoundError{ID: id}
	}
	return err
}

func (s *NoteService) publish(event domain.NoteEvent) {
	if s.publisher != nil {
		s.publisher.Publish(event)
	}
}
