package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		SessionCleanupInterval time.Duration
		StatsSnapshotInterval  time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Session struct {
		CookieSecret string
		TTL          time.Duration
	}

	Admin struct {
		Username string
		Password string
	}

	Contact struct {
		Recipient string
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Session  Session
		Admin    Admin
		Contact  Contact
	}
)

const (
	defaultPort                   = "5000"
	defaultRequestTimeout         = 15 * time.Second
	defaultRateLimiterQPS         = 100
	defaultRateLimiterBurst       = 200
	defaultSessionTTL             = 12 * time.Hour
	defaultSessionCleanupInterval = 10 * time.Minute
	defaultStatsSnapshotInterval  = time.Minute
	defaultAdminUsername          = "admin"
	defaultContactRecipient       = "comercial@expressoitaporanga.com.br"
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS", defaultRateLimiterQPS)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST", defaultRateLimiterBurst)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sessionTTL, err := osGetEnvDuration("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cleanupInterval, err := osGetEnvDuration("BACKGROUND_SESSION_CLEANUP_INTERVAL", defaultSessionCleanupInterval)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	statsInterval, err := osGetEnvDuration("BACKGROUND_STATS_SNAPSHOT_INTERVAL", defaultStatsSnapshotInterval)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			SessionCleanupInterval: cleanupInterval,
			StatsSnapshotInterval:  statsInterval,
		},
		Server: HTTPServer{
			Port:             osGetString("PORT", defaultPort),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Session: Session{
			CookieSecret: os.Getenv("SESSION_COOKIE_SECRET"),
			TTL:          sessionTTL,
		},
		Admin: Admin{
			Username: osGetString("ADMIN_USERNAME", defaultAdminUsername),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		Contact: Contact{
			Recipient: osGetString("CONTACT_RECIPIENT", defaultContactRecipient),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Session.CookieSecret == "" {
		return errors.New("SESSION_COOKIE_SECRET is required")
	}
	if cfg.Session.TTL <= time.Duration(0) {
		return errors.New("SESSION_TTL must be positive")
	}

	if cfg.Admin.Username == "" {
		return errors.New("ADMIN_USERNAME is required")
	}
	if cfg.Admin.Password == "" {
		return errors.New("ADMIN_PASSWORD is required")
	}

	if cfg.Tasks.SessionCleanupInterval <= time.Duration(0) {
		return errors.New("BACKGROUND_SESSION_CLEANUP_INTERVAL must be positive")
	}
	if cfg.Tasks.StatsSnapshotInterval <= time.Duration(0) {
		return errors.New("BACKGROUND_STATS_SNAPSHOT_INTERVAL must be positive")
	}

	return nil
}

func osGetString(s, fallback string) string {
	val := os.Getenv(s)
	if val == "" {
		return fallback
	}
	return val
}

func osGetInt(s string, fallback int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return fallback, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string, fallback time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return fallback, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
