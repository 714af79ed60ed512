package orchestrator

import (
	"fmt"
	"strings"
	"time"

	"paintpreview/internal/domain"

	"github.com/google/uuid"
)

const (
	// imageRefPrefixLen bounds how much of the source image reference is
	// embedded in a placeholder payload.
	imageRefPrefixLen = 24
	// thumbnailPrefixLen is the fixed thumbnail length for non-URL payloads.
	thumbnailPrefixLen = 64

	thumbnailMarker = "thumb:"
)

// placeholderArtifact synthesizes the deterministic substitute preview used
// when real generation is unavailable or fails. The payload derives from the
// paint's product code and a prefix of the source image reference, so
// retrying the same request yields the same placeholder.
func (o *Orchestrator) placeholderArtifact(req domain.Request, paint domain.Paint) domain.Artifact {
	payload := placeholderPayload(req.OriginalImage, paint)
	return domain.Artifact{
		ID:          uuid.NewString(),
		Paint:       paint,
		ImageData:   payload,
		Thumbnail:   deriveThumbnail(payload),
		CreatedAt:   time.Now(),
		GeneratedBy: domain.ArtifactSourcePlaceholder,
	}
}

func placeholderPayload(image string, paint domain.Paint) string {
	ref := image
	if len(ref) > imageRefPrefixLen {
		ref = ref[:imageRefPrefixLen]
	}
	return fmt.Sprintf("placeholder://repaint/%s/%s", paint.ProductCode, ref)
}

// deriveThumbnail is a pure function. URL payloads are their own thumbnail
// (the remote backend serves pre-sized images); anything else gets a tagged
// fixed-length prefix. No local resizing happens here.
func deriveThumbnail(payload string) string {
	if strings.HasPrefix(payload, "http://") || strings.HasPrefix(payload, "https://") {
		return payload
	}
	if len(payload) > thumbnailPrefixLen {
		payload = payload[:thumbnailPrefixLen]
	}
	return thumbnailMarker + payload
}
