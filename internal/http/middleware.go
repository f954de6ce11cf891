package http

import (
	"net"
	"net/http"
	"strings"

	"github.com/gittydia/IMS-BAO/internal/auth"
	rl "github.com/gittydia/IMS-BAO/internal/http/rate_limiter"
	"github.com/gittydia/IMS-BAO/internal/session"
)

var sessionStore session.Store

func SetSessionStore(s session.Store) {
	sessionStore = s
}

// AuthMiddleware verifies the bearer token and rejects tokens that were
// revoked through logout.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		if !strings.HasPrefix(authorization, "Bearer ") {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authorization, "Bearer ")
		if _, _, err := auth.TokenClaims(tokenStr); err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		if sessionStore != nil && !sessionStore.Active(r.Context(), tokenStr) {
			http.Error(w, "session expired or revoked", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RateLimitMiddleware throttles per client IP; applied to the credential
// endpoints.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
