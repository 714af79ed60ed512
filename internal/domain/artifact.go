package domain

import "time"

// ArtifactSource tells which path produced an artifact.
type ArtifactSource string

const (
	ArtifactSourceBackend     ArtifactSource = "backend"
	ArtifactSourcePlaceholder ArtifactSource = "placeholder"
)

// Artifact is one generated preview image for one (request, paint) pair.
// Immutable once created.
type Artifact struct {
	ID          string
	Paint       Paint
	ImageData   string
	Thumbnail   string
	CreatedAt   time.Time
	GeneratedBy ArtifactSource
}
