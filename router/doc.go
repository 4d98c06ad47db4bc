// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the FaceVote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, parties, extractor)

# Endpoints

Health:

	GET /health

Verification and voting:

	POST /verify - Verify identity claim + face photo (multipart form)
	POST /vote   - Cast a vote (JSON body)

Results:

	GET /get_vote_counts       - Per-party counts and total (JSON)
	GET /election_commissioner - Results dashboard (HTML)

# Handler Initialization

The router creates handler instances with dependency injection:

	verifyHandler := handlers.NewVerifyHandler(db, cfg, extractor)
	voteHandler := handlers.NewVoteHandler(db, cfg, parties)
	resultsHandler := handlers.NewResultsHandler(db, parties)

All handlers share the process-owned database pool; nothing opens
connections per request.
*/
package router
