// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes both schemas and all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Store Separation

Two logical stores live in one PostgreSQL database:

  - registry: voter eligibility data, read-only for this service
  - ballotbox: cast votes, tallies, and verification tokens

# Tables

  - registry.voter: one row per enrolled voter, with the face embedding
    stored as FLOAT8[]
  - ballotbox.vote: one row per cast vote
  - ballotbox.party_tally: running per-party counts
  - ballotbox.verify_token: single-use tokens issued by /verify

# Invariants

	ballotbox.vote.voter_uid UNIQUE

is the duplicate-vote backstop. Concurrent votes for the same voter race on
this constraint and exactly one insert wins; application-level "already
voted" checks are optimizations, not the safety mechanism.

	ballotbox.party_tally.count >= 0

Tally rows are only ever created with count 1 or incremented by the atomic
upsert in the vote handler, inside the same transaction as the vote insert.
*/
package db
