// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/sahithyareddy1/facevote/cliparse"
	"github.com/sahithyareddy1/facevote/face"
	"github.com/sahithyareddy1/facevote/handlers"
	"github.com/sahithyareddy1/facevote/middleware"
	"github.com/sahithyareddy1/facevote/party"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, parties *party.Directory, extractor face.Extractor) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	verifyHandler := handlers.NewVerifyHandler(db, cfg, extractor)
	voteHandler := handlers.NewVoteHandler(db, cfg, parties)
	resultsHandler := handlers.NewResultsHandler(db, parties)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Verification and voting
	mux.HandleFunc("POST /verify", middleware.WithLogging(verifyHandler.Verify))
	mux.HandleFunc("POST /vote", middleware.WithLogging(voteHandler.CastVote))

	// Results
	mux.HandleFunc("GET /get_vote_counts", middleware.WithLogging(resultsHandler.GetVoteCounts))
	mux.HandleFunc("GET /election_commissioner", middleware.WithLogging(resultsHandler.ElectionCommissioner))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("facevote API v1"))
	})

	return mux
}
