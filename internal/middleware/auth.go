package middleware

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/workoutware/internal/telemetry/tracing"
	"github.com/2beens/workoutware/pkg"
)

const (
	HeaderAPIToken   = "X-WORKOUTWARE-TOKEN"
	HeaderAdminToken = "X-WORKOUTWARE-ADMIN-TOKEN"
)

type AuthMiddlewareHandler struct {
	apiSecret      string
	adminTokenHash string
	allowedPaths   map[string]bool
}

// NewAuthMiddlewareHandler guards the API with a shared secret and the /admin routes
// with a bcrypt hashed admin token. An empty api secret turns the secret check off.
func NewAuthMiddlewareHandler(apiSecret, adminTokenHash string) *AuthMiddlewareHandler {
	if apiSecret == "" {
		log.Warn("auth middleware: api secret not set, api routes are open")
	}
	return &AuthMiddlewareHandler{
		apiSecret:      apiSecret,
		adminTokenHash: adminTokenHash,
		allowedPaths: map[string]bool{
			"/health":    true,
			"/exercises": true,
			"/targets":   true,
		},
	}
}

// apiToken reads the secret from the custom header, falling back to a bearer
// Authorization header which MCP clients send.
func apiToken(r *http.Request) string {
	if token := r.Header.Get(HeaderAPIToken); token != "" {
		return token
	}
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			if strings.HasPrefix(r.URL.Path, "/admin/") {
				adminToken := r.Header.Get(HeaderAdminToken)
				if adminToken == "" || h.adminTokenHash == "" || !pkg.CheckTokenHash(adminToken, h.adminTokenHash) {
					log.Errorf("[admin auth] unauthorized request to %s from %s", r.URL.Path, pkg.ClientIP(r))
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "invalid-admin-token")
					return
				}
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			if h.apiSecret == "" {
				span.SetStatus(codes.Ok, "auth-disabled")
				next.ServeHTTP(w, r)
				return
			}

			token := apiToken(r)
			if token == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}
			if token != h.apiSecret {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-auth-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
