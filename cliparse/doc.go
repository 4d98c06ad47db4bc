// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (via godotenv) so that
development setups can keep their settings out of the shell.

# Config Fields

  - Port: server listen port (default: 8423)
  - DatabaseURL: PostgreSQL connection string (required)
  - EmbedderURL: face embedding service base URL (required)
  - MatchThreshold: max normalized embedding distance for a match (default: 0.6)
  - MaxImageDim: max pixel dimension after downscaling (default: 500)
  - PartiesFile: optional JSON file overriding the built-in party list
  - RequireVerifyToken: whether /vote demands a verification token
  - VerifyTokenTTL: verification token lifetime (default: 10m)

# CLI Flags

	-p             Server port
	-d             Database URL
	-e             Embedding service base URL
	-threshold     Max embedding distance for a face match
	-max-dim       Max pixel dimension for submitted images
	-parties       Path to a party directory JSON file
	-require-token Require a verification token on /vote
	-token-ttl     Verification token lifetime

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	DATABASE_URL         → -d
	EMBEDDER_URL         → -e
	MATCH_THRESHOLD      → -threshold
	MAX_IMAGE_DIM        → -max-dim
	PARTIES_FILE         → -parties
	REQUIRE_VERIFY_TOKEN → -require-token
	VERIFY_TOKEN_TTL     → -token-ttl

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or out of range:

  - DATABASE_URL must be provided
  - EMBEDDER_URL must be provided
  - MATCH_THRESHOLD, MAX_IMAGE_DIM, and VERIFY_TOKEN_TTL must be positive

The threshold and dimension limits are policy constants, not derived values;
they default to the tuning the system was enrolled with (0.6, 500px).
*/
package cliparse
