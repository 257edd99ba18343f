package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"notes-service/internal/domain"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

const (
	msgInvalidID      = "Invalid note id."
	msgInvalidPayload = "Request body must be a valid JSON object."
	msgCreateTitle    = `Field "title" is required and must be a non-empty string.`
	msgUpdateEmpty    = `At least one of "title" or "content" must be provided.`
	msgUpdateTitle    = `If provided, "title" must be a non-empty string.`
	msgContentType    = `If provided, "content" must be a string.`
)

// newValidator returns a validator with the nonblank rule registered.
// nonblank rejects strings that are empty once whitespace is trimmed.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() == reflect.Ptr {
			if field.IsNil() {
				return false
			}
			field = field.Elem()
		}
		return field.Kind() == reflect.String && strings.TrimSpace(field.String()) != ""
	})
	return v
}

// parseNoteID accepts only positive base-10 integers.
func parseNoteID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(msgInvalidID)
	}
	return id, nil
}

// noteFields holds the raw title and content of a request body so each
// field can be checked in a fixed order, whatever order the client sent.
type noteFields struct {
	Title   json.RawMessage `json:"title"`
	Content json.RawMessage `json:"content"`
}

// decodeBody decodes a single JSON object into dst. An empty body is
// treated as an empty object. Anything after the object is rejected.
func decodeBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return domain.NewValidationError(msgInvalidPayload)
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return domain.NewValidationError(msgInvalidPayload)
	}
	return nil
}

// stringField returns the field as a string pointer. Absent and null
// fields yield nil; ok is false when the field holds any other JSON type.
func stringField(raw json.RawMessage) (value *string, ok bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	return &s, true
}

func decodeCreateRequest(r *http.Request, v *validator.Validate) (title, content string, err error) {
	var fields noteFields
	if err := decodeBody(r, &fields); err != nil {
		return "", "", err
	}

	var req domain.CreateNoteRequest
	var ok bool
	if req.Title, ok = stringField(fields.Title); !ok {
		return "", "", domain.NewValidationError(msgCreateTitle)
	}
	if err := v.Struct(req); err != nil {
		return "", "", domain.NewValidationError(msgCreateTitle)
	}
	if req.Content, ok = stringField(fields.Content); !ok {
		return "", "", domain.NewValidationError(msgContentType)
	}

	title = strings.TrimSpace(*req.Title)
	if req.Content != nil {
		content = *req.Content
	}
	return title, content, nil
}

func decodeUpdateRequest(r *http.Request, v *validator.Validate) (domain.NotePatch, error) {
	var fields noteFields
	if err := decodeBody(r, &fields); err != nil {
		return domain.NotePatch{}, err
	}

	var req domain.UpdateNoteRequest
	var titleOK, contentOK bool
	req.Title, titleOK = stringField(fields.Title)
	req.Content, contentOK = stringField(fields.Content)

	if req.IsEmpty() && titleOK && contentOK {
		return domain.NotePatch{}, domain.NewValidationError(msgUpdateEmpty)
	}
	if !titleOK {
		return domain.NotePatch{}, domain.NewValidationError(msgUpdateTitle)
	}
	if err := v.Struct(req); err != nil {
		return domain.NotePatch{}, domain.NewValidationError(msgUpdateTitle)
	}
	if !contentOK {
		return domain.NotePatch{}, domain.NewValidationError(msgContentType)
	}

	patch := domain.NotePatch{Content: req.Content}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		patch.Title = &title
	}
	return patch, nil
}
