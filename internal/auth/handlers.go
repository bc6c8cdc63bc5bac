package auth

import (
	"encoding/json"
	"errors"
	"net/http"
)

// LoginHandler implements POST /api/login. A wrong credential answers
// with the site's Indonesian error message, matching what the admin
// panel displays.
func LoginHandler(s *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}

		tok, err := s.Login(req.Username, req.Password)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			status := http.StatusInternalServerError
			if errors.Is(err, ErrInvalidCredentials) {
				status = http.StatusUnauthorized
			}
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "Username atau password salah",
			})
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    tok,
			Path:     "/",
			MaxAge:   int(s.TTL().Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}
}

// LogoutHandler implements GET /api/logout: expire the cookie and send
// the browser back to the login page.
func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
