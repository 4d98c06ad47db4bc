// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the FaceVote API server.

FaceVote is a voter-verification and vote-tallying backend: it checks a
claimed identity (ID pair plus a face photo) against an enrolled registry,
enforces one vote per voter, and maintains per-party tallies.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... EMBEDDER_URL=http://... go run main.go

Or with flags:

	go run main.go -p 8423 -d "postgres://..." -e "http://localhost:9009"

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - EMBEDDER_URL (-e): base URL of the face embedding service

Optional settings:

  - PORT (-p): server port (default: 8423)
  - MATCH_THRESHOLD (-threshold): max embedding distance for a match (default: 0.6)
  - MAX_IMAGE_DIM (-max-dim): max pixel dimension after downscale (default: 500)
  - PARTIES_FILE (-parties): JSON file overriding the built-in party list
  - REQUIRE_VERIFY_TOKEN (-require-token): make /vote demand a verification token
  - VERIFY_TOKEN_TTL (-token-ttl): verification token lifetime (default: 10m)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (verify, vote, counts, dashboard)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types and failure reasons
  - face: embedding math, image bounding, oracle client
  - party: static party directory
  - auth: verification token minting
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
