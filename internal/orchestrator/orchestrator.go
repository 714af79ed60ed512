// Package orchestrator owns the preview request lifecycle: resolve paints,
// drive one generation job per paint, assemble artifacts and record the final
// status.
package orchestrator

import (
	"context"
	"time"

	"paintpreview/internal/backend"
	"paintpreview/internal/catalog"
	"paintpreview/internal/domain"
	"paintpreview/internal/infra"
	"paintpreview/internal/prompt"
	"paintpreview/internal/store"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Options configures an Orchestrator instance.
type Options struct {
	Catalog catalog.Resolver
	Prompts prompt.Builder
	// Backend may be nil; jobs then degrade to placeholder previews.
	Backend backend.Generator
	Store   *store.ResultStore
	Logger  infra.Logger
	// MaxConcurrentJobs bounds parallel jobs within one request. Values
	// below 2 keep the original sequential execution.
	MaxConcurrentJobs int
}

// Orchestrator is an explicitly constructed instance owning its result store.
// There is no process-wide state; create one at startup and inject it.
type Orchestrator struct {
	catalog    catalog.Resolver
	prompts    prompt.Builder
	backend    backend.Generator
	store      *store.ResultStore
	logger     infra.Logger
	maxWorkers int
}

func New(opts Options) *Orchestrator {
	st := opts.Store
	if st == nil {
		st = store.New()
	}
	workers := opts.MaxConcurrentJobs
	if workers < 1 {
		workers = 1
	}
	return &Orchestrator{
		catalog:    opts.Catalog,
		prompts:    opts.Prompts,
		backend:    opts.Backend,
		store:      st,
		logger:     opts.Logger,
		maxWorkers: workers,
	}
}

// Submit processes one preview request synchronously and returns its terminal
// result. The only whole-request failure is zero product codes resolving;
// every per-job failure degrades to a placeholder artifact instead.
func (o *Orchestrator) Submit(ctx context.Context, image string, productCodes []string, opts domain.Options) domain.Result {
	req := domain.Request{
		ID:            uuid.NewString(),
		OriginalImage: image,
		ProductCodes:  append([]string(nil), productCodes...),
		Options:       opts,
		SubmittedAt:   time.Now(),
	}
	start := time.Now()

	res := domain.Result{RequestID: req.ID, Status: domain.StatusProcessing, Artifacts: []domain.Artifact{}}
	o.store.Put(res)

	paints := o.catalog.Resolve(req.ProductCodes)
	if len(paints) == 0 {
		res.Status = domain.StatusFailed
		res.Error = domain.ErrNoPaintsResolved.Error()
		res.Artifacts = []domain.Artifact{}
		res.ProcessingDurationMs = time.Since(start).Milliseconds()
		o.store.Put(res)
		o.logger.Warn().Str("request_id", req.ID).Strs("product_codes", req.ProductCodes).Msg("orchestrator: no paints resolved")
		return res
	}

	// Lenient cap: a MaxPatterns beyond the resolved count simply means the
	// full list, and zero or negative values are ignored.
	if limit := opts.MaxPatterns; limit > 0 && limit < len(paints) {
		paints = paints[:limit]
	}

	res.Artifacts = o.runJobs(ctx, req, paints)
	res.Status = domain.StatusCompleted
	res.ProcessingDurationMs = time.Since(start).Milliseconds()
	o.store.Put(res)

	o.logger.Info().
		Str("request_id", req.ID).
		Int("artifacts", len(res.Artifacts)).
		Int64("duration_ms", res.ProcessingDurationMs).
		Msg("orchestrator: request completed")
	return res
}

// runJobs executes one job per paint and returns artifacts in paint order.
// With maxWorkers > 1 jobs run in a bounded pool; results are written into an
// index-addressed slice so ordering never depends on completion timing.
func (o *Orchestrator) runJobs(ctx context.Context, req domain.Request, paints []domain.Paint) []domain.Artifact {
	artifacts := make([]domain.Artifact, len(paints))
	if o.maxWorkers <= 1 {
		for i, paint := range paints {
			artifacts[i] = o.runJob(ctx, req, paint)
		}
		return artifacts
	}

	g := new(errgroup.Group)
	g.SetLimit(o.maxWorkers)
	for i, paint := range paints {
		i, paint := i, paint
		g.Go(func() error {
			artifacts[i] = o.runJob(ctx, req, paint)
			return nil
		})
	}
	// Jobs never return errors; failures already degraded to placeholders.
	_ = g.Wait()
	return artifacts
}

// runJob produces exactly one artifact. It never fails: an unready backend is
// skipped and a failing one is logged, both yielding the deterministic
// placeholder for this paint.
func (o *Orchestrator) runJob(ctx context.Context, req domain.Request, paint domain.Paint) domain.Artifact {
	if o.backend == nil || !o.backend.Ready() {
		o.logger.Debug().
			Str("request_id", req.ID).
			Str("product_code", paint.ProductCode).
			Msg("orchestrator: backend not ready, using placeholder")
		return o.placeholderArtifact(req, paint)
	}

	promptText, negative := o.prompts.Build(paint)
	payload, err := o.backend.Generate(ctx, backend.GenerateRequest{
		Image:          req.OriginalImage,
		Paint:          paint,
		Prompt:         promptText,
		NegativePrompt: negative,
	})
	if err != nil {
		o.logger.Warn().Err(err).
			Str("request_id", req.ID).
			Str("product_code", paint.ProductCode).
			Msg("orchestrator: generation failed, using placeholder")
		return o.placeholderArtifact(req, paint)
	}

	return domain.Artifact{
		ID:          uuid.NewString(),
		Paint:       paint,
		ImageData:   payload,
		Thumbnail:   deriveThumbnail(payload),
		CreatedAt:   time.Now(),
		GeneratedBy: domain.ArtifactSourceBackend,
	}
}

// GetResult returns the stored result for id.
func (o *Orchestrator) GetResult(id string) (domain.Result, bool) {
	return o.store.Get(id)
}

// GetStatus reports the lifecycle state for id, StatusNotFound when unknown.
func (o *Orchestrator) GetStatus(id string) domain.Status {
	return o.store.Status(id)
}

// Stats summarizes all requests ever submitted by status.
func (o *Orchestrator) Stats() store.Stats {
	return o.store.Stats()
}
