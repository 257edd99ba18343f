package handler

import (
	"errors"
	"net/http"

	"notes-service/internal/domain"
	"notes-service/internal/service"
	"notes-service/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type NoteHandler struct {
	service  *service.NoteService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewNoteHandler(service *service.NoteService, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{
		service:  service,
		validate: newValidator(),
		logger:   logger,
	}
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.service.List()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Success(w, notes)
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	title, content, err := decodeCreateRequest(r, h.validate)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	note, err := h.service.Create(title, content)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Created(w, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseNoteID(mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}

	patch, err := decodeUpdateRequest(r, h.validate)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	note, err := h.service.Update(id, patch)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Success(w, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseNoteID(mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.fail(w, r, err)
		return
	}

	response.NoContent(w)
}

func (h *NoteHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError
	var notFoundErr *service.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		response.BadRequest(w, validationErr.Message)
	case errors.As(err, &notFoundErr):
		response.NotFound(w, notFoundErr.Error())
	default:
		h.logger.Error("note request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		response.InternalError(w, "Internal server error.")
	}
}
