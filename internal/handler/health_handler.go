package handler

import (
	"net/http"
	"time"

	"notes-service/pkg/response"
)

type HealthResponse struct {
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

type HealthHandler struct {
	env string
	now func() time.Time
}

func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{
		env: env,
		now: time.Now,
	}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		Message:     "Service is healthy",
		Timestamp:   h.now().UTC(),
		Environment: h.env,
	})
}
