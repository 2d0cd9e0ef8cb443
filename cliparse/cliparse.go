package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/tokenpoll/identity"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	Authority    identity.Address
}

// ParseFlags validates flags, falling back to environment variables and an
// optional .env file.
func ParseFlags(args []string) (Config, error) {
	// Missing .env is fine; explicit env vars and flags still apply
	_ = godotenv.Load()

	var cfg Config
	var authority string

	fs := flag.NewFlagSet("tokenpoll", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for the event log")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Optional pre-set authority; otherwise POST /authority bootstraps it
	fs.StringVar(&authority, "authority", "", "Authority address (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unknown database type %q (want sqlite or postgres)", cfg.DatabaseType)
	}

	if authority == "" {
		authority = os.Getenv("AUTHORITY_ADDRESS")
	}
	if authority != "" {
		addr, err := identity.Parse(authority)
		if err != nil {
			return Config{}, fmt.Errorf("invalid authority address: %w", err)
		}
		cfg.Authority = addr
	}

	return cfg, nil
}

// DriverName maps the configured database type to its sql driver.
func (c Config) DriverName() string {
	if c.DatabaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}
