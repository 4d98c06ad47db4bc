// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sahithyareddy1/facevote/models"
	"github.com/sahithyareddy1/facevote/party"
	"github.com/sahithyareddy1/facevote/testutil"
)

func TestGetVoteCounts_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewResultsHandler(db, party.Default())

	w := httptest.NewRecorder()
	h.GetVoteCounts(w, testutil.MakeRequest("GET", "/get_vote_counts", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.VoteCountsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalVotes != 0 {
		t.Errorf("expected 0 total votes, got %d", resp.TotalVotes)
	}
	if len(resp.PartyCounts) != 3 {
		t.Fatalf("expected all 3 configured parties, got %d", len(resp.PartyCounts))
	}
	for _, pc := range resp.PartyCounts {
		if pc.Count != 0 {
			t.Errorf("expected count 0 for party %d, got %d", pc.PartyID, pc.Count)
		}
		if pc.Name == "" {
			t.Errorf("expected a name for party %d", pc.PartyID)
		}
	}
}

func TestGetVoteCounts_FromTallies(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.EnrollTestVoter(t, db, "V1", "EC1", []float64{1, 0})
	testutil.EnrollTestVoter(t, db, "V2", "EC2", []float64{0, 1})
	testutil.EnrollTestVoter(t, db, "V3", "EC3", []float64{1, 1})
	testutil.CastTestVote(t, db, "V1", "EC1", 1)
	testutil.CastTestVote(t, db, "V2", "EC2", 1)
	testutil.CastTestVote(t, db, "V3", "EC3", 2)

	h := NewResultsHandler(db, party.Default())

	w := httptest.NewRecorder()
	h.GetVoteCounts(w, testutil.MakeRequest("GET", "/get_vote_counts", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.VoteCountsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalVotes != 3 {
		t.Errorf("expected 3 total votes, got %d", resp.TotalVotes)
	}

	counts := make(map[int]int64)
	var sum int64
	for _, pc := range resp.PartyCounts {
		counts[pc.PartyID] = pc.Count
		sum += pc.Count
	}
	if counts[1] != 2 || counts[2] != 1 || counts[3] != 0 {
		t.Errorf("unexpected per-party counts: %v", counts)
	}

	// Total must equal the sum of per-party counts
	if sum != resp.TotalVotes {
		t.Errorf("per-party sum %d != total %d", sum, resp.TotalVotes)
	}
}

func TestGetVoteCounts_FallbackScansVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	// Votes exist but the tally table is empty (cold start / rebuilt store)
	_, err := db.Exec(`
		INSERT INTO ballotbox.vote (id, voter_uid, ec_id, party_id)
		VALUES ('a', 'V1', 'EC1', 2), ('b', 'V2', 'EC2', 2), ('c', 'V3', 'EC3', 3)
	`)
	if err != nil {
		t.Fatal(err)
	}

	h := NewResultsHandler(db, party.Default())

	w := httptest.NewRecorder()
	h.GetVoteCounts(w, testutil.MakeRequest("GET", "/get_vote_counts", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.VoteCountsResponse
	testutil.AssertJSON(t, w, &resp)

	counts := make(map[int]int64)
	for _, pc := range resp.PartyCounts {
		counts[pc.PartyID] = pc.Count
	}
	if counts[1] != 0 || counts[2] != 2 || counts[3] != 1 {
		t.Errorf("fallback counts wrong: %v", counts)
	}
	if resp.TotalVotes != 3 {
		t.Errorf("expected total 3, got %d", resp.TotalVotes)
	}
}

func TestElectionCommissioner_RendersPercentages(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.EnrollTestVoter(t, db, "V1", "EC1", []float64{1, 0})
	testutil.EnrollTestVoter(t, db, "V2", "EC2", []float64{0, 1})
	testutil.EnrollTestVoter(t, db, "V3", "EC3", []float64{1, 1})
	testutil.EnrollTestVoter(t, db, "V4", "EC4", []float64{1, 2})
	testutil.CastTestVote(t, db, "V1", "EC1", 1)
	testutil.CastTestVote(t, db, "V2", "EC2", 1)
	testutil.CastTestVote(t, db, "V3", "EC3", 1)
	testutil.CastTestVote(t, db, "V4", "EC4", 2)

	h := NewResultsHandler(db, party.Default())

	w := httptest.NewRecorder()
	h.ElectionCommissioner(w, testutil.MakeRequest("GET", "/election_commissioner", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected HTML content type, got %q", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "75.00%") {
		t.Errorf("expected 75.00%% for party 1, body: %s", body)
	}
	if !strings.Contains(body, "25.00%") {
		t.Errorf("expected 25.00%% for party 2, body: %s", body)
	}
	if !strings.Contains(body, "Liberal Centric Party") {
		t.Error("expected party names in dashboard")
	}
}

func TestElectionCommissioner_ZeroTotal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewResultsHandler(db, party.Default())

	w := httptest.NewRecorder()
	h.ElectionCommissioner(w, testutil.MakeRequest("GET", "/election_commissioner", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	// No votes yet: every row reports 0%, never a division-by-zero artifact
	body := w.Body.String()
	if !strings.Contains(body, "0%") {
		t.Errorf("expected 0%% rows with no votes, body: %s", body)
	}
	if strings.Contains(body, "NaN") {
		t.Error("dashboard must not render NaN percentages")
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		count, total int64
		expected     string
	}{
		{0, 0, "0%"},
		{1, 3, "33.33%"},
		{2, 3, "66.67%"},
		{3, 4, "75.00%"},
		{5, 5, "100.00%"},
	}

	for _, tt := range tests {
		if got := formatPercent(tt.count, tt.total); got != tt.expected {
			t.Errorf("formatPercent(%d, %d) = %q, expected %q", tt.count, tt.total, got, tt.expected)
		}
	}
}
