package middleware

import (
	"io"
	"net/http"
)

// MaxRequestBodyBytes caps request bodies. Set logs and session payloads are a few hundred bytes.
const MaxRequestBodyBytes = 1 << 20

// RequestBody limits the body to maxBytes and drains and closes what the handler
// left unread, so keep-alive connections can be reused.
func RequestBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}
			if maxBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		})
	}
}
