package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, ttl time.Duration) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return NewService("admin", string(hash), "test-secret", ttl)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	s := newTestService(t, time.Hour)

	tok, err := s.Login("admin", "rahasia")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Sub != "admin" {
		t.Fatalf("Sub = %q, want admin", claims.Sub)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestService(t, time.Hour)

	for _, tc := range []struct{ user, pass string }{
		{"admin", "salah"},
		{"bukan-admin", "rahasia"},
		{"", ""},
	} {
		if _, err := s.Login(tc.user, tc.pass); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("Login(%q, %q) err = %v, want ErrInvalidCredentials", tc.user, tc.pass, err)
		}
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	s := newTestService(t, time.Hour)
	other := NewService("admin", "x", "different-secret", time.Hour)

	tok, err := s.Login("admin", "rahasia")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := other.Verify(tok); err == nil {
		t.Fatal("token signed with another secret verified")
	}
	if _, err := s.Verify(tok + "x"); err == nil {
		t.Fatal("mangled token verified")
	}
	if _, err := s.Verify("not-a-token"); err == nil {
		t.Fatal("garbage verified")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	s := newTestService(t, -time.Minute)

	tok, err := s.Login("admin", "rahasia")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := s.Verify(tok); err == nil {
		t.Fatal("expired token verified")
	}
}

func TestRequireAuthFailsClosed(t *testing.T) {
	s := newTestService(t, time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAuth(s)(next)

	// No credential at all.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/chapters", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d without credential, want 401", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Unauthorized" {
		t.Fatalf(`body = %v, want {"error":"Unauthorized"}`, body)
	}

	// Bogus cookie.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/chapters", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "true"})
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d with unsigned cookie flag, want 401", rec.Code)
	}

	// Valid cookie.
	tok, err := s.Login("admin", "rahasia")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/chapters", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tok})
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d with valid cookie, want 200", rec.Code)
	}

	// Bearer header works too.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/chapters", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d with bearer token, want 200", rec.Code)
	}
}

func TestLoginHandler(t *testing.T) {
	s := newTestService(t, time.Hour)
	handler := LoginHandler(s)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"username":"admin","password":"rahasia"}`))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var ok struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&ok); err != nil || !ok.Success {
		t.Fatalf("body = %s, want success true (err %v)", rec.Body.String(), err)
	}
	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie && c.Value != "" && c.HttpOnly {
			found = true
		}
	}
	if !found {
		t.Fatal("no httpOnly session cookie set on login")
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"username":"admin","password":"salah"}`))
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d for bad password, want 401", rec.Code)
	}
	var fail struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&fail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fail.Success || fail.Message != "Username atau password salah" {
		t.Fatalf("body = %+v", fail)
	}
}

func TestLogoutHandlerClearsCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	LogoutHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/logout", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("session cookie not expired on logout")
	}
}
