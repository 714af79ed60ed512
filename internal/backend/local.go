package backend

import (
	"context"
	"fmt"

	"paintpreview/internal/domain"
)

// LocalSDBackend is a placeholder for a locally-hosted Stable Diffusion
// deployment. It exists so the capability set stays extensible without
// touching the orchestrator; until it is wired up it never reports ready and
// every generation attempt fails.
type LocalSDBackend struct{}

func NewLocalSDBackend() *LocalSDBackend {
	return &LocalSDBackend{}
}

func (b *LocalSDBackend) Ready() bool {
	return false
}

func (b *LocalSDBackend) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	return "", fmt.Errorf("%w: local stable diffusion backend not implemented", domain.ErrBackendNotReady)
}

var _ Generator = (*LocalSDBackend)(nil)
