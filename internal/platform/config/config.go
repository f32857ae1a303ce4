package config

import (
	"os"
	"strings"
	"time"

	id "warden/pkg/domain"
)

// Server captures process-level configuration. FromEnv keeps main lean.
type Server struct {
	Addr          string
	LedgerPath    string
	FineChannel   id.ChannelID
	ManagerRoles  []string
	AdminToken    string
	JWTSigningKey string
	DisputeTTL    time.Duration

	// RelayURL and RelayToken locate the bot relay that owns the
	// messaging-platform session.
	RelayURL   string
	RelayToken string

	// RedisURL switches the pending-action trackers to the Redis
	// implementations when set; empty keeps them in process memory.
	RedisURL string

	// AuditDSN switches the audit sink to Postgres when set.
	AuditDSN string
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("WARDEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	ledgerPath := os.Getenv("WARDEN_LEDGER_PATH")
	if ledgerPath == "" {
		ledgerPath = "data/fines.json"
	}

	disputeTTL := 24 * time.Hour
	if raw := os.Getenv("WARDEN_DISPUTE_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			disputeTTL = d
		}
	}

	relayURL := os.Getenv("WARDEN_RELAY_URL")
	if relayURL == "" {
		relayURL = "http://localhost:9090"
	}

	jwtSigningKey := os.Getenv("WARDEN_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default - must be overridden in production.
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:          addr,
		LedgerPath:    ledgerPath,
		FineChannel:   id.ChannelID(os.Getenv("WARDEN_FINE_CHANNEL")),
		ManagerRoles:  splitList(os.Getenv("WARDEN_FINE_ROLES")),
		AdminToken:    os.Getenv("WARDEN_ADMIN_TOKEN"),
		JWTSigningKey: jwtSigningKey,
		DisputeTTL:    disputeTTL,
		RelayURL:      relayURL,
		RelayToken:    os.Getenv("WARDEN_RELAY_TOKEN"),
		RedisURL:      os.Getenv("WARDEN_REDIS_URL"),
		AuditDSN:      os.Getenv("WARDEN_AUDIT_DSN"),
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
