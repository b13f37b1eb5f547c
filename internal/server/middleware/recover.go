package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// Recover turns a handler panic into a 500 whose body names the panic value.
// http.ErrAbortHandler is re-panicked so the server can abort the connection.
func Recover(logger *zap.Logger, onPanic func(w http.ResponseWriter, message string)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}

				requestID, _ := GetRequestID(r.Context())
				logger.Error("handler panic",
					zap.Any("panic", p),
					zap.String("path", r.URL.Path),
					zap.String("request_id", requestID),
					zap.ByteString("stack", debug.Stack()))

				onPanic(w, fmt.Sprintf("Internal server error: %v", p))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
