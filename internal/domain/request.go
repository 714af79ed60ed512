package domain

import "time"

// Request captures one preview submission. It is created when the caller
// submits and never mutated afterwards; the orchestrator owns it for the
// duration of processing.
type Request struct {
	ID            string
	OriginalImage string
	ProductCodes  []string
	Options       Options
	SubmittedAt   time.Time
}

// Options tunes a single submission. Every field is optional.
//
// MaxPatterns caps how many of the resolved paints are processed, truncating
// from the front while preserving input order. Zero or negative values are
// ignored. MaxWidth, MaxHeight and Quality are accepted for forward
// compatibility but have no effect yet: the remote backend returns images at
// its own resolution and no local resizing is performed.
type Options struct {
	Quality     string
	MaxPatterns int
	MaxWidth    int
	MaxHeight   int
}
