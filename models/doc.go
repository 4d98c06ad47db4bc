// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CastVoteRequest: unique_id, ec_id, party_id

(/verify takes a multipart form, not JSON, so it has no request type here.)

# Response Types

Types for JSON responses:

  - VerifyResponse: status, message, verify_token
  - CastVoteResponse: status, message
  - VoteCountsResponse: status, party_counts, total_votes
  - PartyCount: party_id, name, count
  - ErrorResponse: status, reason, message

# Domain Types

Internal data structures:

  - Voter: enrolled registry row with face embedding
  - Vote: one cast ballot
  - PartyTally: running per-party count

Voter credentials and embeddings are tagged json:"-" and never serialized.

# Constants

Response status values:

	StatusSuccess = "success"
	StatusError   = "error"

Failure reasons (machine-readable, one per error response):

	ReasonUnknownVoter
	ReasonCredentialMismatch
	ReasonAlreadyVoted
	ReasonImageDecodeError
	ReasonNoFaceDetected
	ReasonFaceMismatch
	ReasonMissingFields
	ReasonInvalidCredentials
	ReasonUnknownParty
	ReasonVerificationRequired
	ReasonInternalError
*/
package models
