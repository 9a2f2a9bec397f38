package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kerbaras/librarian/pkg/data"
	"github.com/kerbaras/librarian/pkg/sources"
)

type Config struct {
	APIURL           string
	Quantity         int
	FinePerDay       int
	BorrowPeriodDays int
	User             string
	Timeout          time.Duration
	LogFile          string
}

func Default() Config {
	return Config{
		APIURL:           sources.DefaultFakerAPIURL,
		Quantity:         10,
		FinePerDay:       data.DefaultFinePolicy.PerDay,
		BorrowPeriodDays: data.DefaultFinePolicy.BorrowPeriodDays,
		User:             "User1",
		Timeout:          10 * time.Second,
	}
}

// Load reads envFiles (".env" when none are given) and applies LIBRARIAN_*
// variables over the defaults. Only the implicit .env may be missing.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 {
			return Default(), fmt.Errorf("failed to load env file: %w", err)
		}
		log.Println("No .env file found, using environment variables")
	}

	cfg := Default()
	if v := os.Getenv("LIBRARIAN_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("LIBRARIAN_USER"); v != "" {
		cfg.User = v
	}
	cfg.LogFile = os.Getenv("LIBRARIAN_LOG_FILE")

	ints := []struct {
		key string
		dst *int
	}{
		{"LIBRARIAN_QUANTITY", &cfg.Quantity},
		{"LIBRARIAN_FINE_PER_DAY", &cfg.FinePerDay},
		{"LIBRARIAN_BORROW_PERIOD_DAYS", &cfg.BorrowPeriodDays},
	}
	for _, i := range ints {
		v := os.Getenv(i.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", i.key, err)
		}
		*i.dst = n
	}

	if v := os.Getenv("LIBRARIAN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid LIBRARIAN_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Quantity <= 0:
		return fmt.Errorf("quantity must be positive, got %d", c.Quantity)
	case c.FinePerDay < 0:
		return fmt.Errorf("fine per day must not be negative, got %d", c.FinePerDay)
	case c.BorrowPeriodDays < 0:
		return fmt.Errorf("borrow period must not be negative, got %d", c.BorrowPeriodDays)
	}
	return nil
}

func (c Config) FinePolicy() data.FinePolicy {
	return data.FinePolicy{PerDay: c.FinePerDay, BorrowPeriodDays: c.BorrowPeriodDays}
}
