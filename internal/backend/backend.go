package backend

import (
	"context"

	"paintpreview/internal/domain"
)

// GenerateRequest describes one generation job passed to any backend.
type GenerateRequest struct {
	Image          string
	Paint          domain.Paint
	Prompt         string
	NegativePrompt string
}

// Generator is the capability contract implemented by all generation
// backends. Generate returns a reference to the produced image (for remote
// backends, a URL). Ready reports whether the backend can serve jobs at all;
// callers are expected to skip Generate entirely when it returns false.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	Ready() bool
}
