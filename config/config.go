package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings read from the environment
type Config struct {
	Port            string
	DatabasePath    string
	BaseURL         string
	UseHTTPS        bool
	SessionLifetime int64
	LogLevel        slog.Level

	Mail   MailConfig
	Notify NotifyConfig
	OIDC   OIDCConfig
}

// MailConfig holds outgoing mail settings. Mail is disabled without a username.
type MailConfig struct {
	Server   string
	Port     int
	Username string
	Password string
	Sender   string
}

// Enabled reports whether an SMTP account is configured
func (m MailConfig) Enabled() bool {
	return m.Username != ""
}

// NotifyConfig controls the outbox worker
type NotifyConfig struct {
	Interval    time.Duration
	MaxAttempts int
}

// OIDCConfig holds single sign-on settings. SSO is off without a domain.
type OIDCConfig struct {
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Enabled reports whether SSO login is configured
func (o OIDCConfig) Enabled() bool {
	return o.Domain != ""
}

// AdminURL is the admin panel address linked from staff notifications
func (c *Config) AdminURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/admin"
}

// Load reads a .env file when present, then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset values
func FromEnv(getenv func(string) string) (*Config, error) {
	p := parser{getenv: getenv}

	cfg := &Config{
		Port:            p.str("PORT", "8080"),
		DatabasePath:    p.str("DATABASE_PATH", "badapples.db"),
		BaseURL:         p.str("BASE_URL", "http://localhost:8080"),
		UseHTTPS:        p.flag("USE_HTTPS"),
		SessionLifetime: int64(p.num("SESSION_LIFETIME", 3600)),
		LogLevel:        p.level("LOG_LEVEL"),
		Mail: MailConfig{
			Server:   p.str("MAIL_SERVER", "smtp.gmail.com"),
			Port:     p.num("MAIL_PORT", 587),
			Username: p.str("MAIL_USERNAME", ""),
			Password: p.str("MAIL_PASSWORD", ""),
			Sender:   p.str("MAIL_DEFAULT_SENDER", "noreply@badapples.org"),
		},
		Notify: NotifyConfig{
			Interval:    p.duration("NOTIFY_INTERVAL", 30*time.Second),
			MaxAttempts: p.num("NOTIFY_MAX_ATTEMPTS", 5),
		},
		OIDC: OIDCConfig{
			Domain:       p.str("OIDC_DOMAIN", ""),
			ClientID:     p.str("OIDC_CLIENT_ID", ""),
			ClientSecret: p.str("OIDC_CLIENT_SECRET", ""),
			CallbackURL:  p.str("OIDC_CALLBACK_URL", ""),
		},
	}

	if cfg.SessionLifetime <= 0 {
		p.fail("SESSION_LIFETIME", "must be positive")
	}
	if cfg.Notify.Interval <= 0 {
		p.fail("NOTIFY_INTERVAL", "must be positive")
	}
	if cfg.Notify.MaxAttempts < 1 {
		p.fail("NOTIFY_MAX_ATTEMPTS", "must be at least 1")
	}

	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parser collects every invalid variable instead of stopping at the first
type parser struct {
	getenv func(string) string
	errs   []error
}

func (p *parser) fail(key, msg string) {
	p.errs = append(p.errs, fmt.Errorf("invalid %s: %s", key, msg))
}

func (p *parser) str(key, def string) string {
	if v := strings.TrimSpace(p.getenv(key)); v != "" {
		return v
	}
	return def
}

func (p *parser) num(key string, def int) int {
	v := strings.TrimSpace(p.getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, fmt.Sprintf("%q is not a number", v))
		return def
	}
	return n
}

func (p *parser) flag(key string) bool {
	v := strings.TrimSpace(p.getenv(key))
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, fmt.Sprintf("%q is not a boolean", v))
	}
	return b
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(p.getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, fmt.Sprintf("%q is not a duration", v))
		return def
	}
	return d
}

func (p *parser) level(key string) slog.Level {
	var lvl slog.Level
	v := strings.TrimSpace(p.getenv(key))
	if v == "" {
		return slog.LevelInfo
	}
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		p.fail(key, fmt.Sprintf("%q is not a log level", v))
		return slog.LevelInfo
	}
	return lvl
}
