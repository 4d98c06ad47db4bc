// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/sahithyareddy1/facevote/cliparse"
	"github.com/sahithyareddy1/facevote/middleware"
	"github.com/sahithyareddy1/facevote/models"
	"github.com/sahithyareddy1/facevote/party"
)

// Postgres error code for unique_violation
const pgUniqueViolation = "23505"

type VoteHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	parties *party.Directory
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config, parties *party.Directory) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg, parties: parties}
}

// CastVote handles POST /vote
//
// Admission requires valid credentials, no prior vote, and (when the server
// runs with token enforcement) an unexpired verification token. The vote
// insert and the tally upsert commit in one transaction; a unique-violation
// on the vote insert means a concurrent request won the race and is reported
// as "already voted".
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ReasonMissingFields, "Invalid JSON")
		return
	}

	// All three fields are required; nothing touches the store before this
	if req.UniqueID == "" || req.ECID == "" || req.PartyID == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ReasonMissingFields, "Missing required fields")
		return
	}

	if _, ok := h.parties.Lookup(req.PartyID); !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ReasonUnknownParty, "Unknown party")
		return
	}

	// Consume the verification token when enforcement is on. The DELETE is
	// the atomic single-use guarantee: only one request can remove the row.
	if h.cfg.RequireVerifyToken {
		token := r.Header.Get("X-Verify-Token")
		if token == "" {
			middleware.ErrorResponse(w, http.StatusUnauthorized, models.ReasonVerificationRequired, "Verification required before voting")
			return
		}

		res, err := h.db.Exec(`
			DELETE FROM ballotbox.verify_token
			WHERE token = $1 AND voter_uid = $2 AND expires_at > NOW()
		`, token, req.UniqueID)

		if err != nil {
			slog.Error("failed to consume verification token", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Database error")
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			middleware.ErrorResponse(w, http.StatusUnauthorized, models.ReasonVerificationRequired, "Verification token is invalid or expired")
			return
		}
	}

	// Combined eligibility lookup: uid and ec_id must match the same row
	var eligible bool
	err := h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM registry.voter WHERE uid = $1 AND ec_id = $2)
	`, req.UniqueID, req.ECID).Scan(&eligible)

	if err != nil {
		slog.Error("failed to query voter registry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Database error")
		return
	}
	if !eligible {
		middleware.ErrorResponse(w, http.StatusForbidden, models.ReasonInvalidCredentials, "Invalid voter credentials")
		return
	}

	// Duplicate pre-check; the UNIQUE constraint below is authoritative
	var voted bool
	err = h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM ballotbox.vote WHERE voter_uid = $1)
	`, req.UniqueID).Scan(&voted)

	if err != nil {
		slog.Error("failed to query ballot box", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Database error")
		return
	}
	if voted {
		middleware.ErrorResponse(w, http.StatusConflict, models.ReasonAlreadyVoted, "Voter has already voted")
		return
	}

	// Record the vote and bump the tally atomically
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Database error")
		return
	}
	defer tx.Rollback()

	voteID := uuid.NewString()
	_, err = tx.Exec(`
		INSERT INTO ballotbox.vote (id, voter_uid, ec_id, party_id, cast_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, req.UniqueID, req.ECID, req.PartyID, time.Now())

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			// Lost the race to a concurrent vote for the same voter
			middleware.ErrorResponse(w, http.StatusConflict, models.ReasonAlreadyVoted, "Voter has already voted")
			return
		}
		slog.Error("failed to insert vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Failed to record vote")
		return
	}

	_, err = tx.Exec(`
		INSERT INTO ballotbox.party_tally (party_id, count)
		VALUES ($1, 1)
		ON CONFLICT (party_id) DO UPDATE SET count = party_tally.count + 1
	`, req.PartyID)

	if err != nil {
		slog.Error("failed to update party tally", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Failed to record vote")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded", "unique_id", req.UniqueID, "party_id", req.PartyID, "vote_id", voteID)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		Status:  models.StatusSuccess,
		Message: "Vote recorded successfully",
	})
}
