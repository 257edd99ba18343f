package domain

import "time"

type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a copy that shares no state with n.
func (n *Note) Clone() *Note {
	c := *n
	return &c
}

type CreateNoteRequest struct {
	Title   *string `json:"title" validate:"required,nonblank"`
	Content *string `json:"content"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title" validate:"omitnil,nonblank"`
	Content *string `json:"content"`
}

// IsEmpty reports whether neither field was supplied.
func (r *UpdateNoteRequest) IsEmpty() bool {
	return r.Title == nil && r.Content == nil
}

// NotePatch carries the fields of an update. A nil field is left untouched.
type NotePatch struct {
	Title   *string
	Content *string
}
