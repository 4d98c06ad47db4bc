package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               int
	DatabaseURL        string
	EmbedderURL        string
	MatchThreshold     float64
	MaxImageDim        int
	PartiesFile        string
	RequireVerifyToken bool
	VerifyTokenTTL     time.Duration
}

// ParseFlags validates flags and fills defaults from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// .env is a development convenience; absence is not an error
	_ = godotenv.Load()

	fs := flag.NewFlagSet("facevote", flag.ContinueOnError)

	// Network and collaborator config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.EmbedderURL, "e", "", "Embedding service base URL")

	// Decision policy knobs
	fs.Float64Var(&cfg.MatchThreshold, "threshold", 0, "Max embedding distance for a face match")
	fs.IntVar(&cfg.MaxImageDim, "max-dim", 0, "Max pixel dimension for submitted images")
	fs.StringVar(&cfg.PartiesFile, "parties", "", "Path to a party directory JSON file")
	fs.BoolVar(&cfg.RequireVerifyToken, "require-token", false, "Require a verification token on /vote")
	fs.DurationVar(&cfg.VerifyTokenTTL, "token-ttl", 0, "Verification token lifetime")

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
			cfg.Port = 8423 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.EmbedderURL == "" {
		cfg.EmbedderURL = os.Getenv("EMBEDDER_URL")
	}
	if cfg.EmbedderURL == "" {
		return Config{}, errors.New("embedder URL required (use -e or EMBEDDER_URL env)")
	}

	if cfg.MatchThreshold == 0 {
		if thresholdStr := os.Getenv("MATCH_THRESHOLD"); thresholdStr != "" {
			threshold, err := strconv.ParseFloat(thresholdStr, 64)
			if err != nil {
				return Config{}, errors.New("invalid MATCH_THRESHOLD env variable")
			}
			cfg.MatchThreshold = threshold
		} else {
			cfg.MatchThreshold = 0.6 // default
		}
	}
	if cfg.MatchThreshold <= 0 {
		return Config{}, errors.New("match threshold must be positive")
	}

	if cfg.MaxImageDim == 0 {
		if dimStr := os.Getenv("MAX_IMAGE_DIM"); dimStr != "" {
			dim, err := strconv.Atoi(dimStr)
			if err != nil {
				return Config{}, errors.New("invalid MAX_IMAGE_DIM env variable")
			}
			cfg.MaxImageDim = dim
		} else {
			cfg.MaxImageDim = 500 // default
		}
	}
	if cfg.MaxImageDim <= 0 {
		return Config{}, errors.New("max image dimension must be positive")
	}

	if cfg.PartiesFile == "" {
		cfg.PartiesFile = os.Getenv("PARTIES_FILE")
	}

	if !cfg.RequireVerifyToken {
		cfg.RequireVerifyToken = os.Getenv("REQUIRE_VERIFY_TOKEN") == "true"
	}

	if cfg.VerifyTokenTTL == 0 {
		if ttlStr := os.Getenv("VERIFY_TOKEN_TTL"); ttlStr != "" {
			ttl, err := time.ParseDuration(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid VERIFY_TOKEN_TTL env variable")
			}
			cfg.VerifyTokenTTL = ttl
		} else {
			cfg.VerifyTokenTTL = 10 * time.Minute // default
		}
	}
	if cfg.VerifyTokenTTL <= 0 {
		return Config{}, errors.New("verification token TTL must be positive")
	}

	return cfg, nil
}
