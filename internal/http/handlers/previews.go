package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"paintpreview/internal/domain"

	"github.com/go-chi/chi/v5"
)

type previewRequest struct {
	Image        string   `json:"image"`
	ProductCodes []string `json:"product_codes"`
	Quality      string   `json:"quality,omitempty"`
	MaxPatterns  int      `json:"max_patterns,omitempty"`
	MaxWidth     int      `json:"max_width,omitempty"`
	MaxHeight    int      `json:"max_height,omitempty"`
}

type artifactResponse struct {
	ID          string    `json:"id"`
	ProductCode string    `json:"product_code"`
	PaintName   string    `json:"paint_name"`
	ColorHex    string    `json:"color_hex"`
	ImageData   string    `json:"image_data"`
	Thumbnail   string    `json:"thumbnail"`
	GeneratedBy string    `json:"generated_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type previewResponse struct {
	RequestID            string             `json:"request_id"`
	Status               domain.Status      `json:"status"`
	Artifacts            []artifactResponse `json:"artifacts"`
	Error                string             `json:"error,omitempty"`
	ProcessingDurationMs int64              `json:"processing_duration_ms"`
}

// PreviewsGenerate handles POST /v1/previews. The call is synchronous: it
// returns once every job has produced an artifact or the request failed to
// resolve any paint.
func (a *App) PreviewsGenerate(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Image) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "image is required")
		return
	}

	res := a.Orchestrator.Submit(r.Context(), req.Image, req.ProductCodes, domain.Options{
		Quality:     req.Quality,
		MaxPatterns: req.MaxPatterns,
		MaxWidth:    req.MaxWidth,
		MaxHeight:   req.MaxHeight,
	})
	if res.Status == domain.StatusFailed {
		a.json(w, http.StatusUnprocessableEntity, toPreviewResponse(res))
		return
	}
	a.json(w, http.StatusOK, toPreviewResponse(res))
}

// PreviewResult handles GET /v1/previews/{id}.
func (a *App) PreviewResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res, ok := a.Orchestrator.GetResult(id)
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "request not found")
		return
	}
	a.json(w, http.StatusOK, toPreviewResponse(res))
}

// PreviewStatus handles GET /v1/previews/{id}/status.
func (a *App) PreviewStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	status := a.Orchestrator.GetStatus(id)
	code := http.StatusOK
	if status == domain.StatusNotFound {
		code = http.StatusNotFound
	}
	a.json(w, code, map[string]any{"request_id": id, "status": status})
}

func toPreviewResponse(res domain.Result) previewResponse {
	out := previewResponse{
		RequestID:            res.RequestID,
		Status:               res.Status,
		Artifacts:            make([]artifactResponse, 0, len(res.Artifacts)),
		Error:                res.Error,
		ProcessingDurationMs: res.ProcessingDurationMs,
	}
	for _, a := range res.Artifacts {
		out.Artifacts = append(out.Artifacts, artifactResponse{
			ID:          a.ID,
			ProductCode: a.Paint.ProductCode,
			PaintName:   a.Paint.Name,
			ColorHex:    a.Paint.ColorHex,
			ImageData:   a.ImageData,
			Thumbnail:   a.Thumbnail,
			GeneratedBy: string(a.GeneratedBy),
			CreatedAt:   a.CreatedAt,
		})
	}
	return out
}
