package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Login on any username/password
// mismatch.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service guards the admin surface. It holds the single shared
// credential (supplied at construction, never read from globals) and
// issues HMAC-signed session tokens in place of the old plain
// cookie-flag scheme.
type Service struct {
	user     string
	passHash string
	hmac     []byte
	ttl      time.Duration
}

func NewService(user, passHash, secret string, ttl time.Duration) *Service {
	return &Service{user: user, passHash: passHash, hmac: []byte(secret), ttl: ttl}
}

type Claims struct {
	Sub string `json:"sub"`
	jwt.RegisteredClaims
}

// Login checks the shared credential and returns a signed session token.
func (s *Service) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.user)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(s.passHash), []byte(password)) == nil
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return s.issue(username)
}

func (s *Service) issue(sub string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Sub: sub,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "nihongo-cms",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.hmac)
}

// Verify parses and validates a session token. Any failure (bad
// signature, expiry, garbage input) is reported as an error; callers
// fail closed.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.hmac, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	c, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	return c, nil
}

func (s *Service) TTL() time.Duration { return s.ttl }
