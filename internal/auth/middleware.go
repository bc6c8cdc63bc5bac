package auth

import (
	"encoding/json"
	"net/http"
	"strings"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session"

// RequireAuth gates the admin surface. The token is read from the
// session cookie or a Bearer header; anything missing or invalid gets
// 401 {"error":"Unauthorized"}.
func RequireAuth(s *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := tokenFromRequest(r)
			if tok == "" {
				unauthorized(w)
				return
			}
			if _, err := s.Verify(tok); err != nil {
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
