package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application-wide configuration populated from environment variables.
type Config struct {
	HTTPAddr    string
	Environment string

	// GCP settings
	ProjectID           string
	ServiceAccountEmail string

	// Gmail delegation
	DelegatedUser string
	GmailScopes   []string

	// Firestore collections
	DraftsCollection    string
	FollowupsCollection string
	OpensCollection     string

	// Tracking pixel
	TrackingEnabled  bool
	TrackingPixelURL string

	// Sibling services
	MailTrackerURL  string
	AutoFollowupURL string

	// Follow-up scheduling
	AutoFollowupEnabled bool

	// Default mode for the inbound draft endpoint: "draft" or "send"
	DefaultMode string

	// Optional AMQP event bus; disabled when empty
	AMQPURL string
}

// Load reads environment variables and returns Config with defaults applied.
// A local .env file is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		ProjectID:           getEnv("GCP_PROJECT_ID", ""),
		ServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
		DelegatedUser:       getEnv("GMAIL_USER", ""),
		GmailScopes:         getEnvList("GMAIL_SCOPES", []string{"https://mail.google.com/"}),
		DraftsCollection:    getEnv("FIRESTORE_DRAFTS_COLLECTION", "email_drafts"),
		FollowupsCollection: getEnv("FIRESTORE_FOLLOWUPS_COLLECTION", "email_followups"),
		OpensCollection:     getEnv("FIRESTORE_OPENS_COLLECTION", "email_opens"),
		TrackingEnabled:     getEnvBool("ENABLE_TRACKING_PIXEL", true),
		MailTrackerURL:      getEnv("MAIL_TRACKER_URL", ""),
		AutoFollowupURL:     getEnv("AUTO_FOLLOWUP_URL", ""),
		AutoFollowupEnabled: getEnvBool("ENABLE_AUTO_FOLLOWUP", true),
		DefaultMode:         getEnv("DEFAULT_MODE", "draft"),
		AMQPURL:             getEnv("AMQP_URL", ""),
	}

	cfg.TrackingPixelURL = getEnv("TRACKING_PIXEL_URL", strings.TrimSuffix(cfg.MailTrackerURL, "/")+"/pixel.png")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		switch strings.ToLower(v) {
		case "yes", "on":
			return true
		case "no", "off":
			return false
		}
		return def
	}
	return b
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
