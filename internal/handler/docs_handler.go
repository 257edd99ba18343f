package handler

import (
	"net/http"

	"notes-service/internal/docs"
	"notes-service/pkg/response"

	"go.uber.org/zap"
)

const swaggerPage = `<!DOCTYPE html>
<html>
<head>
  <title>` + docs.Title + `</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>SwaggerUIBundle({url: "/openapi.json", dom_id: "#swagger-ui"});</script>
</body>
</html>
`

type DocsHandler struct {
	doc    *docs.Document
	logger *zap.Logger
}

func NewDocsHandler(doc *docs.Document, logger *zap.Logger) *DocsHandler {
	return &DocsHandler{
		doc:    doc,
		logger: logger,
	}
}

func (h *DocsHandler) YAML(w http.ResponseWriter, r *http.Request) {
	h.write(w, "application/yaml", h.doc.YAML)
}

func (h *DocsHandler) JSON(w http.ResponseWriter, r *http.Request) {
	h.write(w, "application/json", h.doc.JSON)
}

func (h *DocsHandler) UI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(swaggerPage))
}

func (h *DocsHandler) write(w http.ResponseWriter, contentType string, encode func() ([]byte, error)) {
	body, err := encode()
	if err != nil {
		h.logger.Error("failed to render api document", zap.Error(err))
		response.InternalError(w, "Internal server error.")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
