package models

import "time"

// Response status constants
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Failure reason codes. Every error response carries one of these so that
// clients can branch without parsing the human-readable message.
const (
	ReasonUnknownVoter         = "unknown_voter"
	ReasonCredentialMismatch   = "credential_mismatch"
	ReasonAlreadyVoted         = "already_voted"
	ReasonImageDecodeError     = "image_decode_error"
	ReasonNoFaceDetected       = "no_face_detected"
	ReasonFaceMismatch         = "face_mismatch"
	ReasonMissingFields        = "missing_fields"
	ReasonInvalidCredentials   = "invalid_credentials"
	ReasonUnknownParty         = "unknown_party"
	ReasonVerificationRequired = "verification_required"
	ReasonInternalError        = "internal_error"
)

// Request types

type CastVoteRequest struct {
	UniqueID string `json:"unique_id"`
	ECID     string `json:"ec_id"`
	PartyID  int    `json:"party_id"`
}

// Response types

type VerifyResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	VerifyToken string `json:"verify_token,omitempty"`
}

type CastVoteResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type PartyCount struct {
	PartyID int    `json:"party_id"`
	Name    string `json:"name"`
	Count   int64  `json:"count"`
}

type VoteCountsResponse struct {
	Status      string       `json:"status"`
	PartyCounts []PartyCount `json:"party_counts"`
	TotalVotes  int64        `json:"total_votes"`
}

// Error response

type ErrorResponse struct {
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}

// Domain types

type Voter struct {
	UID        string    `json:"uid"`
	ECID       string    `json:"-"` // Never expose in JSON
	Embedding  []float64 `json:"-"` // Never expose in JSON
	EnrolledAt time.Time `json:"enrolled_at"`
}

type Vote struct {
	ID       string    `json:"id"`
	VoterUID string    `json:"-"` // Never expose in JSON
	ECID     string    `json:"-"` // Never expose in JSON
	PartyID  int       `json:"party_id"`
	CastAt   time.Time `json:"cast_at"`
}

type PartyTally struct {
	PartyID int   `json:"party_id"`
	Count   int64 `json:"count"`
}
