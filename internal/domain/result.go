package domain

// Status enumerates the request lifecycle states.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	// StatusNotFound is reported for request ids the store has never seen.
	StatusNotFound Status = "not_found"
)

// Terminal reports whether a status admits no further mutation.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Result tracks one request from submission to terminal status. The artifact
// order matches the order of the paints that produced them. A failed result
// carries no artifacts and a non-empty error description; the only
// whole-request failure is zero paints resolving.
type Result struct {
	RequestID            string
	Status               Status
	Artifacts            []Artifact
	Error                string
	ProcessingDurationMs int64
}
