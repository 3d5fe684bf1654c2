package config

import (
	"os"
	"strings"
	"time"

	platformstrings "fishbill/pkg/platform/strings"
)

// Business is the issuer identity printed on bills and signed under every
// WhatsApp message.
type Business struct {
	Name    string
	Contact string
	Email   string
	Tagline string
}

// Config captures everything main needs to wire the service. Postgres,
// Redis, and Kafka are optional backends; when their URLs are empty the
// in-memory stores are used.
type Config struct {
	Addr string

	Business Business

	// CountryCode is the required phone prefix (without the plus sign)
	// for issuer contact numbers.
	CountryCode string

	PostgresURL  string
	RedisURL     string
	KafkaBrokers []string
	AuditTopic   string

	// ArtifactTTL bounds how long a rendered bill stays retrievable in the
	// redis-backed artifact store.
	ArtifactTTL time.Duration

	// HandoffFallbackDelay is how long the dispatcher waits before opening
	// the web fallback URL on mobile targets.
	HandoffFallbackDelay time.Duration
}

// FromEnv builds the config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr: envOr("FISHBILL_ADDR", ":8080"),
		Business: Business{
			Name:    envOr("FISHBILL_BUSINESS_NAME", "THANJAVUR FISH SALES"),
			Contact: envOr("FISHBILL_BUSINESS_CONTACT", "+91-9876543210"),
			Email:   envOr("FISHBILL_BUSINESS_EMAIL", "info@thanjavurfish.com"),
			Tagline: envOr("FISHBILL_BUSINESS_TAGLINE", "Fresh fish, honest prices."),
		},
		CountryCode:          envOr("FISHBILL_COUNTRY_CODE", "91"),
		PostgresURL:          os.Getenv("FISHBILL_POSTGRES_URL"),
		RedisURL:             os.Getenv("FISHBILL_REDIS_URL"),
		AuditTopic:           envOr("FISHBILL_AUDIT_TOPIC", "fishbill.audit"),
		ArtifactTTL:          durationOr("FISHBILL_ARTIFACT_TTL", 24*time.Hour),
		HandoffFallbackDelay: durationOr("FISHBILL_HANDOFF_FALLBACK_DELAY", 2*time.Second),
	}

	if brokers := os.Getenv("FISHBILL_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = platformstrings.DedupeAndTrim(strings.Split(brokers, ","))
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
