// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/lib/pq"

	"github.com/sahithyareddy1/facevote/auth"
	"github.com/sahithyareddy1/facevote/cliparse"
	"github.com/sahithyareddy1/facevote/face"
	"github.com/sahithyareddy1/facevote/middleware"
	"github.com/sahithyareddy1/facevote/models"
)

// maxUploadBytes caps the multipart form size; face photos are small and
// DecodeAndBound shrinks them further before extraction.
const maxUploadBytes = 10 << 20

type VerifyHandler struct {
	db        *sql.DB
	cfg       cliparse.Config
	extractor face.Extractor
}

func NewVerifyHandler(db *sql.DB, cfg cliparse.Config, extractor face.Extractor) *VerifyHandler {
	return &VerifyHandler{db: db, cfg: cfg, extractor: extractor}
}

// Verify handles POST /verify
//
// Checks run in strict order and short-circuit on the first failure:
// registry lookup, credential match, duplicate-vote check, image decode,
// embedding extraction, distance comparison. Read-only: a successful
// verification records nothing except the issued verification token.
func (h *VerifyHandler) Verify(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ReasonMissingFields, "Invalid multipart form")
		return
	}

	uniqueID := r.FormValue("unique_id")
	ecID := r.FormValue("ec_id")

	file, _, err := r.FormFile("image")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ReasonMissingFields, "No image file received")
		return
	}
	defer file.Close()

	if uniqueID == "" || ecID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ReasonMissingFields, "Missing required fields")
		return
	}

	imageData, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		slog.Error("failed to read uploaded image", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Failed to read image")
		return
	}

	// Level 1: unique ID lookup in the voter registry
	var storedECID string
	var storedEmbedding pq.Float64Array
	err = h.db.QueryRow(`
		SELECT ec_id, embedding FROM registry.voter WHERE uid = $1
	`, uniqueID).Scan(&storedECID, &storedEmbedding)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, models.ReasonUnknownVoter, "Invalid Unique ID")
		return
	}
	if err != nil {
		slog.Error("failed to query voter registry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Database error")
		return
	}

	// Level 2: election commission ID must match exactly
	if ecID != storedECID {
		middleware.ErrorResponse(w, http.StatusForbidden, models.ReasonCredentialMismatch, "Invalid EC ID")
		return
	}

	// Early duplicate-vote exit. The vote endpoint re-checks independently;
	// the UNIQUE constraint on ballotbox.vote is what actually holds.
	var voted bool
	err = h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM ballotbox.vote WHERE voter_uid = $1)
	`, uniqueID).Scan(&voted)

	if err != nil {
		slog.Error("failed to query ballot box", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Database error")
		return
	}
	if voted {
		middleware.ErrorResponse(w, http.StatusConflict, models.ReasonAlreadyVoted, "You have already voted in this election.")
		return
	}

	// Level 3: face comparison
	img, err := face.DecodeAndBound(imageData, h.cfg.MaxImageDim)
	if err != nil {
		slog.Warn("image decode failed", "unique_id", uniqueID, "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, models.ReasonImageDecodeError, "Could not process the submitted image")
		return
	}

	embeddings, err := h.extractor.Extract(r.Context(), img)
	if err != nil {
		slog.Error("embedding extraction failed", "unique_id", uniqueID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Face processing failed")
		return
	}
	if len(embeddings) == 0 {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, models.ReasonNoFaceDetected, "No face detected")
		return
	}

	// Multiple detected faces: the oracle orders by confidence, use the first
	enrolled := face.Embedding(storedEmbedding).Normalize()
	probe := embeddings[0].Normalize()

	distance, err := face.Distance(enrolled, probe)
	if err != nil {
		slog.Error("embedding comparison failed", "unique_id", uniqueID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Face processing failed")
		return
	}

	if distance > h.cfg.MatchThreshold {
		slog.Info("face mismatch", "unique_id", uniqueID, "distance", distance, "threshold", h.cfg.MatchThreshold)
		middleware.ErrorResponse(w, http.StatusForbidden, models.ReasonFaceMismatch, "Face not recognized")
		return
	}

	// Issue a short-lived single-use token binding this verification to a
	// later vote
	token, err := auth.GenerateVerifyToken()
	if err != nil {
		slog.Error("failed to generate verification token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Verification failed")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO ballotbox.verify_token (token, voter_uid, expires_at)
		VALUES ($1, $2, $3)
	`, token, uniqueID, time.Now().Add(h.cfg.VerifyTokenTTL))

	if err != nil {
		slog.Error("failed to store verification token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Verification failed")
		return
	}

	slog.Info("voter verified", "unique_id", uniqueID, "distance", distance)

	middleware.JSONResponse(w, http.StatusOK, models.VerifyResponse{
		Status:      models.StatusSuccess,
		Message:     "Face verified",
		VerifyToken: token,
	})
}
