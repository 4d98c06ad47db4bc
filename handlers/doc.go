// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the FaceVote API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - VerifyHandler: identity + face verification (needs the embedding oracle)
  - VoteHandler: vote admission and tally update (needs the party directory)
  - ResultsHandler: vote counts JSON and the commissioner dashboard

	verifyHandler := handlers.NewVerifyHandler(db, cfg, extractor)
	voteHandler := handlers.NewVoteHandler(db, cfg, parties)
	resultsHandler := handlers.NewResultsHandler(db, parties)

# Verification Flow

POST /verify takes a multipart form (unique_id, ec_id, image) and runs
ordered short-circuit checks:

 1. voter exists in registry.voter (unknown_voter)
 2. ec_id matches exactly (credential_mismatch)
 3. no prior vote (already_voted)
 4. image decodes, bounded to MaxImageDim (image_decode_error)
 5. the oracle finds a face (no_face_detected)
 6. normalized Euclidean distance ≤ MatchThreshold (face_mismatch)

Verification is read-only; on success it issues a single-use verification
token with a VerifyTokenTTL expiry.

# Vote Admission

POST /vote takes JSON (unique_id, ec_id, party_id). Field presence and
party validity are checked before any store access. Eligibility is one
combined (uid, ec_id) lookup. The duplicate check here is an early exit;
the UNIQUE constraint on ballotbox.vote.voter_uid decides races, and a
unique-violation maps to already_voted. Vote insert and tally upsert share
one transaction.

When the server runs with REQUIRE_VERIFY_TOKEN, the X-Verify-Token header
is consumed (atomic single-use DELETE) before admission.

# Results

GET /get_vote_counts prefers ballotbox.party_tally and falls back to
counting votes per configured party when no tally rows exist yet.
GET /election_commissioner renders the HTML dashboard with per-party
percentages (two decimals, 0% when no votes).
*/
package handlers
