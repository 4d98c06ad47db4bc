// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- The voter registry and the ballot box are kept in separate schemas so
-- eligibility data and cast-vote data stay segregated.
CREATE SCHEMA IF NOT EXISTS registry;
CREATE SCHEMA IF NOT EXISTS ballotbox;

-- Enrolled voters. This service never writes to this table.
CREATE TABLE IF NOT EXISTS registry.voter (
    uid TEXT PRIMARY KEY,
    ec_id TEXT NOT NULL,
    embedding FLOAT8[] NOT NULL,
    enrolled_at TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Cast votes. The UNIQUE constraint on voter_uid is the real one-vote-per-voter
-- guarantee; the handlers' pre-checks are early exits only.
CREATE TABLE IF NOT EXISTS ballotbox.vote (
    id TEXT PRIMARY KEY,
    voter_uid TEXT NOT NULL UNIQUE,
    ec_id TEXT NOT NULL,
    party_id INT NOT NULL,
    cast_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_vote_party_id ON ballotbox.vote(party_id);

-- Running per-party counts, incremented by atomic upsert on each vote.
-- Recomputable from ballotbox.vote.
CREATE TABLE IF NOT EXISTS ballotbox.party_tally (
    party_id INT PRIMARY KEY,
    count BIGINT NOT NULL DEFAULT 0 CHECK (count >= 0)
);

-- Single-use verification tokens issued by /verify, consumed by /vote.
CREATE TABLE IF NOT EXISTS ballotbox.verify_token (
    token TEXT PRIMARY KEY,
    voter_uid TEXT NOT NULL,
    expires_at TIMESTAMP NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_verify_token_voter ON ballotbox.verify_token(voter_uid);
`
