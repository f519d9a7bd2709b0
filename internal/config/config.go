package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	VendorAPIAddress     string
	DatabaseURI          string
	SessionSecret        string
	SessionTTL           time.Duration
	SessionPurgeInterval time.Duration
	OrderRefreshInterval time.Duration
	WorkerPoolSize       int
	MaxVendorsBatch      int
	ShutdownTimeout      time.Duration
}

const (
	defaultRunAddress           = ":8080"
	defaultSessionSecret        = "change-me-in-production"
	defaultSessionTTL           = 720 * time.Hour
	defaultSessionPurgeInterval = time.Hour
	defaultOrderRefreshInterval = 30 * time.Second
	defaultWorkerPoolSize       = 4
	defaultMaxVendorsBatch      = 32
	defaultShutdownTimeout      = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		VendorAPIAddress:     getString(lookup, "VENDOR_API_ADDRESS", ""),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		SessionSecret:        getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:           getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		SessionPurgeInterval: getDuration(lookup, "SESSION_PURGE_INTERVAL", defaultSessionPurgeInterval),
		OrderRefreshInterval: getDuration(lookup, "ORDER_REFRESH_INTERVAL", defaultOrderRefreshInterval),
		WorkerPoolSize:       getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		MaxVendorsBatch:      getInt(lookup, "REFRESH_BATCH_SIZE", defaultMaxVendorsBatch),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("vendordash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		purgeIntervalStr   = cfg.SessionPurgeInterval.String()
		refreshIntervalStr = cfg.OrderRefreshInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.VendorAPIAddress, "r", cfg.VendorAPIAddress, "Vendor API base URL")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for encrypting stored session tokens")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Lifetime of a vendor session")
	fs.StringVar(&purgeIntervalStr, "purge-interval", purgeIntervalStr, "Interval between expired session sweeps")
	fs.StringVar(&refreshIntervalStr, "refresh-interval", refreshIntervalStr, "Interval between order snapshot refreshes")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent refresh workers")
	fs.IntVar(&cfg.MaxVendorsBatch, "refresh-batch", cfg.MaxVendorsBatch, "Maximum vendors per refresh batch")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.SessionPurgeInterval, err = time.ParseDuration(purgeIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid purge interval: %w", err)
	}

	if cfg.OrderRefreshInterval, err = time.ParseDuration(refreshIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid refresh interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.MaxVendorsBatch <= 0 {
		cfg.MaxVendorsBatch = defaultMaxVendorsBatch
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.SessionPurgeInterval <= 0 {
		cfg.SessionPurgeInterval = defaultSessionPurgeInterval
	}

	if cfg.OrderRefreshInterval <= 0 {
		cfg.OrderRefreshInterval = defaultOrderRefreshInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.VendorAPIAddress == "" {
		return nil, fmt.Errorf("vendor API address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
