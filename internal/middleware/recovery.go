package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Recovery gibt eine Middleware zurück, die Panics abfängt und mit 500 beantwortet.
// http.ErrAbortHandler wird weitergereicht, damit net/http die Verbindung schließt.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("panic abgefangen",
					zap.String("request_id", chimw.GetReqID(r.Context())),
					zap.String("pfad", r.URL.Path),
					zap.Any("fehler", rec),
					zap.ByteString("stack", debug.Stack()),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": "interner serverfehler",
				})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
