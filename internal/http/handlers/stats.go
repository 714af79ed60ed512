package handlers

import "net/http"

// StatsSummary handles GET /v1/stats: request counts by lifecycle status.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.Orchestrator.Stats())
}
