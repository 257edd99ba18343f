package handler

import (
	"net/http"

	"notes-service/internal/config"
	"notes-service/internal/middleware"
	"notes-service/pkg/response"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handlers struct {
	Notes     *NoteHandler
	Health    *HealthHandler
	Docs      *DocsHandler
	WebSocket *WebSocketHandler
}

// NewRouter registers every route and wraps the router in the middleware
// chain. The chain sits outside the router so unmatched requests are
// logged and CORS preflights never reach route matching.
func NewRouter(h Handlers, cors config.CORSConfig, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Health.Check).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Check).Methods(http.MethodGet)

	r.HandleFunc("/notes", h.Notes.List).Methods(http.MethodGet)
	r.HandleFunc("/notes", h.Notes.Create).Methods(http.MethodPost)
	r.HandleFunc("/notes/{id}", h.Notes.Update).Methods(http.MethodPut)
	r.HandleFunc("/notes/{id}", h.Notes.Delete).Methods(http.MethodDelete)

	if h.Docs != nil {
		r.HandleFunc("/openapi.yaml", h.Docs.YAML).Methods(http.MethodGet)
		r.HandleFunc("/openapi.json", h.Docs.JSON).Methods(http.MethodGet)
		r.HandleFunc("/docs", h.Docs.UI).Methods(http.MethodGet)
	}

	if h.WebSocket != nil {
		r.HandleFunc("/ws", h.WebSocket.HandleConnection).Methods(http.MethodGet)
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route "+r.Method+" "+r.URL.Path+" not found.")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, "Method "+r.Method+" not allowed on "+r.URL.Path+".")
	})

	var handler http.Handler = r
	handler = middleware.CORSMiddleware(cors.AllowedOrigins, cors.AllowedMethods, cors.AllowedHeaders)(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)
	handler = middleware.LoggerMiddleware(logger)(handler)
	handler = middleware.RequestIDMiddleware()(handler)

	return handler
}
