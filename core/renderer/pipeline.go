package renderer

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/qrcraft/pkg/imageres"
)

// Request is one configuration update submitted to a Pipeline. LogoRef, when
// set and Config.Logo is nil, is resolved asynchronously before the render;
// a failed resolution renders without a logo.
type Request struct {
	Config  Config
	LogoRef string
}

// RenderFunc produces a surface for a configuration. Replaced in tests.
type RenderFunc func(Config) (*Result, error)

// Pipeline coalesces rapid configuration changes into single render passes.
//
// Every Submit bumps a monotonically increasing version and restarts the
// trailing-edge debounce timer, so only the last update of a burst renders.
// Logo resolutions carry the version they were requested under; a resolution
// that completes after a newer version arrived is discarded instead of
// drawn. A mutex around the render call guarantees one pass at a time.
type Pipeline struct {
	render   RenderFunc
	resolver *imageres.Resolver
	deliver  func(*Result, error)
	debounce time.Duration
	log      *slog.Logger

	mu        sync.Mutex
	version   uint64
	delivered uint64
	pending   Request
	timer     *time.Timer
	closed    bool

	renderMu sync.Mutex
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithDebounce sets the quiet period before a submitted request renders.
// Defaults to 150ms.
func WithDebounce(d time.Duration) PipelineOption {
	return func(p *Pipeline) {
		if d > 0 {
			p.debounce = d
		}
	}
}

// WithResolver replaces the logo resolver.
func WithResolver(r *imageres.Resolver) PipelineOption {
	return func(p *Pipeline) {
		if r != nil {
			p.resolver = r
		}
	}
}

// WithRenderFunc replaces the render function.
func WithRenderFunc(fn RenderFunc) PipelineOption {
	return func(p *Pipeline) {
		if fn != nil {
			p.render = fn
		}
	}
}

// WithLogger sets the pipeline logger. Defaults to discard.
func WithLogger(log *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// NewPipeline returns a Pipeline that calls deliver with the outcome of
// every render pass that survives debouncing and supersession. deliver runs
// on the pipeline's background goroutine and must not block for long.
func NewPipeline(deliver func(*Result, error), opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		render:   Render,
		resolver: imageres.NewResolver(),
		deliver:  deliver,
		debounce: 150 * time.Millisecond,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Submit schedules a render for the request. Calls arriving within the
// debounce window replace the pending request; only the last one renders.
func (p *Pipeline) Submit(req Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	p.version++
	version := p.version
	p.pending = req

	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(p.debounce, func() {
		p.run(version)
	})
}

// Flush renders the pending request immediately, bypassing the debounce
// window. No-op when nothing is pending, the current version has already
// rendered, or the pipeline is closed.
func (p *Pipeline) Flush() {
	p.mu.Lock()
	if p.timer != nil {
		p.timer.Stop()
	}
	version := p.version
	p.mu.Unlock()

	if version > 0 {
		p.run(version)
	}
}

// Close stops the pipeline. Pending requests are dropped; an in-flight
// render finishes but its result is not delivered.
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	if p.timer != nil {
		p.timer.Stop()
	}
}

func (p *Pipeline) run(version uint64) {
	p.mu.Lock()
	if p.closed || version != p.version || p.delivered >= version {
		p.mu.Unlock()
		return
	}
	req := p.pending
	p.mu.Unlock()

	if req.LogoRef != "" && req.Config.Logo == nil {
		res, err := p.resolver.Resolve(context.Background(), req.LogoRef).Await()
		if err != nil {
			p.log.Warn("logo resolution aborted", "ref", req.LogoRef, "error", err)
		} else if !res.Absent() {
			req.Config.Logo = res.Image
		}

		if p.stale(version) {
			p.log.Debug("discarding superseded logo resolution", "version", version)
			return
		}
	}

	p.renderMu.Lock()
	defer p.renderMu.Unlock()

	// Re-check after acquiring the surface; a newer version may have been
	// submitted while this pass waited.
	if p.stale(version) {
		return
	}

	result, err := p.render(req.Config)

	if !p.claim(version) {
		return
	}
	p.deliver(result, err)
}

func (p *Pipeline) stale(version uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed || version != p.version || p.delivered >= version
}

// claim marks the version as delivered. A version delivers at most once,
// even when the debounce timer and an explicit Flush race to render it.
func (p *Pipeline) claim(version uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || version != p.version || p.delivered >= version {
		return false
	}
	p.delivered = version
	return true
}
