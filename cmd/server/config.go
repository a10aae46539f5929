package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr             = "127.0.0.1:4239"
	defaultMaxAttempts      = 100000
	defaultPlacementTimeout = 5 * time.Second
)

type config struct {
	Addr             string
	MaxAttempts      int
	PlacementTimeout time.Duration
	MaxJobs          int64
}

// Reads configuration from the environment, after loading .env
// unless STAGE=prod. The first argument, if any, is the bind address.
func loadConfig(args []string) (config, error) {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config{}, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	conf := config{
		Addr:             defaultAddr,
		MaxAttempts:      defaultMaxAttempts,
		PlacementTimeout: defaultPlacementTimeout,
		MaxJobs:          int64(runtime.NumCPU() * 2),
	}

	if len(args) >= 1 {
		conf.Addr = args[0]
	}

	if val, ok := os.LookupEnv("PLACEMENT_MAX_ATTEMPTS"); ok {
		n, err := strconv.Atoi(val)
		if err != nil {
			return config{}, fmt.Errorf("invalid PLACEMENT_MAX_ATTEMPTS: %w", err)
		}
		conf.MaxAttempts = n
	}

	if val, ok := os.LookupEnv("PLACEMENT_TIMEOUT"); ok {
		d, err := time.ParseDuration(val)
		if err != nil {
			return config{}, fmt.Errorf("invalid PLACEMENT_TIMEOUT: %w", err)
		}
		conf.PlacementTimeout = d
	}

	if val, ok := os.LookupEnv("MAX_JOBS"); ok {
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil || n <= 0 {
			return config{}, fmt.Errorf("invalid MAX_JOBS: %q", val)
		}
		conf.MaxJobs = n
	}

	return conf, nil
}
