package middleware

import (
	"net/http"

	"notes-service/pkg/response"

	"go.uber.org/zap"
)

func RecoveryMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path),
						zap.String("request_id", GetRequestID(r)),
						zap.Stack("stack"),
					)
					response.InternalError(w, "Internal server error.")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
