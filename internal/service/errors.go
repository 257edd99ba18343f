package service

import (
	"fmt"

	"notes-service/internal/repository"
)

var ErrNoteNotFound = repository.ErrNoteNotFound

type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Note with id %d not found.", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNoteNotFound
}
