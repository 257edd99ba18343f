package websocket

import (
	"encoding/json"
	"time"

	"notes-service/internal/domain"
)

type MessageType string

const (
	TypeNoteCreated MessageType = MessageType(domain.NoteCreated)
	TypeNoteUpdated MessageType = MessageType(domain.NoteUpdated)
	TypeNoteDeleted MessageType = MessageType(domain.NoteDeleted)
	TypePing        MessageType = "ping"
	TypePong        MessageType = "pong"
	TypeError       MessageType = "error"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

type NoteDeletedPayload struct {
	ID int64 `json:"id"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	var payloadBytes json.RawMessage
	if payload != nil {
		bytes, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		payloadBytes = bytes
	}

	return &Message{
		Type:      msgType,
		Timestamp: time.Now().UTC(),
		Payload:   payloadBytes,
	}, nil
}

// NewEventMessage converts a note event into its wire message. Created and
// updated events carry the note, deletions only its id.
func NewEventMessage(event domain.NoteEvent) (*Message, error) {
	if event.Type == domain.NoteDeleted || event.Note == nil {
		return NewMessage(MessageType(event.Type), NoteDeletedPayload{ID: event.NoteID})
	}
	return NewMessage(MessageType(event.Type), event.Note)
}

func (m *Message) UnmarshalPayload(v interface{}) error {
	if m.Payload == nil {
		return nil
	}
	return json.Unmarshal(m.Payload, v)
}
