// Copyright (c) 2025 Sahithya Reddy.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/sahithyareddy1/facevote/middleware"
	"github.com/sahithyareddy1/facevote/models"
	"github.com/sahithyareddy1/facevote/party"
)

type ResultsHandler struct {
	db      *sql.DB
	parties *party.Directory
}

func NewResultsHandler(db *sql.DB, parties *party.Directory) *ResultsHandler {
	return &ResultsHandler{db: db, parties: parties}
}

// GetVoteCounts handles GET /get_vote_counts
//
// Prefers the maintained tally rows; with none present (cold start) it
// derives counts by scanning votes for each configured party. Total is the
// overall vote count regardless of party.
func (h *ResultsHandler) GetVoteCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.partyCounts()
	if err != nil {
		slog.Error("failed to collect vote counts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Database error")
		return
	}

	var total int64
	err = h.db.QueryRow(`SELECT COUNT(*) FROM ballotbox.vote`).Scan(&total)
	if err != nil {
		slog.Error("failed to count votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteCountsResponse{
		Status:      models.StatusSuccess,
		PartyCounts: counts,
		TotalVotes:  total,
	})
}

// partyCounts returns one entry per party, from the tally table when it has
// rows and from a per-party vote scan otherwise.
func (h *ResultsHandler) partyCounts() ([]models.PartyCount, error) {
	rows, err := h.db.Query(`
		SELECT party_id, count FROM ballotbox.party_tally ORDER BY party_id
	`)
	if err != nil {
		return nil, fmt.Errorf("query party tallies: %w", err)
	}
	defer rows.Close()

	tallied := make(map[int]int64)
	for rows.Next() {
		var partyID int
		var count int64
		if err := rows.Scan(&partyID, &count); err != nil {
			return nil, fmt.Errorf("scan party tally: %w", err)
		}
		tallied[partyID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate party tallies: %w", err)
	}

	counts := make([]models.PartyCount, 0, len(h.parties.All()))

	if len(tallied) > 0 {
		for _, p := range h.parties.All() {
			counts = append(counts, models.PartyCount{
				PartyID: p.ID,
				Name:    p.Name,
				Count:   tallied[p.ID],
			})
		}
		return counts, nil
	}

	// Cold start: no tally rows yet, derive from the votes themselves
	for _, p := range h.parties.All() {
		var count int64
		err := h.db.QueryRow(`
			SELECT COUNT(*) FROM ballotbox.vote WHERE party_id = $1
		`, p.ID).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("count votes for party %d: %w", p.ID, err)
		}
		counts = append(counts, models.PartyCount{
			PartyID: p.ID,
			Name:    p.Name,
			Count:   count,
		})
	}
	return counts, nil
}

type dashboardRow struct {
	Name    string
	Logo    string
	Count   int64
	Percent string
}

type dashboardData struct {
	Rows       []dashboardRow
	TotalVotes string
}

// ElectionCommissioner handles GET /election_commissioner
//
// Renders the results dashboard. Percentages come from the authoritative
// vote rows, not the tally cache, so the commissioner view survives a
// missing or rebuilt tally table.
func (h *ResultsHandler) ElectionCommissioner(w http.ResponseWriter, r *http.Request) {
	var total int64
	rows := make([]dashboardRow, 0, len(h.parties.All()))

	for _, p := range h.parties.All() {
		var count int64
		err := h.db.QueryRow(`
			SELECT COUNT(*) FROM ballotbox.vote WHERE party_id = $1
		`, p.ID).Scan(&count)
		if err != nil {
			slog.Error("failed to count votes for dashboard", "error", err, "party_id", p.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, models.ReasonInternalError, "Database error")
			return
		}
		rows = append(rows, dashboardRow{Name: p.Name, Logo: p.Logo, Count: count})
		total += count
	}

	for i := range rows {
		rows[i].Percent = formatPercent(rows[i].Count, total)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := dashboardTmpl.Execute(w, dashboardData{
		Rows:       rows,
		TotalVotes: humanize.Comma(total),
	})
	if err != nil {
		slog.Error("failed to render dashboard", "error", err)
	}
}

// formatPercent renders count/total as a percentage with two decimals,
// reporting 0% when no votes exist yet.
func formatPercent(count, total int64) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.2f%%", float64(count)/float64(total)*100)
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Election Results Dashboard</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.0.2/dist/css/bootstrap.min.css" rel="stylesheet">
</head>
<body>
    <div class="container mt-5">
        <h1 class="text-center mb-4">Election Results Dashboard</h1>
        <div class="row">
            <div class="col-md-8 offset-md-2">
                <div class="card shadow">
                    <div class="card-header bg-primary text-white">
                        <h3 class="card-title mb-0">Vote Counts</h3>
                    </div>
                    <div class="card-body">
                        <table class="table table-striped">
                            <thead>
                                <tr>
                                    <th>Party</th>
                                    <th>Votes</th>
                                    <th>Percentage</th>
                                </tr>
                            </thead>
                            <tbody>
                                {{range .Rows}}
                                <tr>
                                    <td>
                                        <img src="{{.Logo}}" alt="{{.Name}}" width="30" height="30" class="me-2">
                                        {{.Name}}
                                    </td>
                                    <td>{{.Count}}</td>
                                    <td>{{.Percent}}</td>
                                </tr>
                                {{end}}
                            </tbody>
                        </table>
                        <p class="text-muted mb-0">Total votes: {{.TotalVotes}}</p>
                    </div>
                </div>
            </div>
        </div>
    </div>
</body>
</html>
`))
