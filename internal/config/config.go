package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr  string
	PublicURL string

	DBDriver string
	DBDSN    string

	// Shared admin credential. The hash is bcrypt; there is no
	// multi-user account system.
	AdminUser     string
	AdminPassHash string

	SessionSecret string
	SessionTTL    time.Duration

	CORSOrigins []string

	MaxOpenConns int
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":3000"
	}
	return Config{
		HTTPAddr:  addr,
		PublicURL: os.Getenv("PUBLIC_URL"),
		DBDriver:  envOr("DB_DRIVER", "postgres"),
		DBDSN:     envOr("DATABASE_URL", ""),

		AdminUser: envOr("ADMIN_USERNAME", "admin"),
		// bcrypt("admin"); override in any non-dev deployment.
		AdminPassHash: envOr("ADMIN_PASS_HASH", "$2a$12$4pZsioE3C5raK6WBsprkyO5m0d39xJxmJ.vW86wbmEbTrLMPUh/ba"),

		SessionSecret: envOr("SESSION_SECRET", "nihongo-dev-secret"),
		SessionTTL:    envDuration("SESSION_TTL", 24*time.Hour),

		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),

		MaxOpenConns: envInt("DB_MAX_OPEN_CONNS", 10),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
