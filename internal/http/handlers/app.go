package handlers

import (
	"encoding/json"
	"net/http"

	"paintpreview/internal/infra"
	"paintpreview/internal/orchestrator"
)

// App bundles the dependencies shared by all HTTP handlers.
type App struct {
	Orchestrator *orchestrator.Orchestrator
	Logger       infra.Logger
}

func NewApp(orc *orchestrator.Orchestrator, logger infra.Logger) *App {
	return &App{Orchestrator: orc, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, map[string]string{"error": kind, "message": message})
}
