package eval

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rulekit/rulekit/expr"
)

// DefaultDebounce is the quiet period auto-evaluation waits for after
// the last expression or context change.
const DefaultDebounce = 300 * time.Millisecond

// Option configures a Previewer.
type Option func(*Previewer)

// WithDebounce overrides the auto-evaluation debounce delay.
func WithDebounce(d time.Duration) Option {
	return func(p *Previewer) { p.delay = d }
}

// WithOnResult registers the callback receiving auto-evaluation
// results. The second argument mirrors Apply's: false means the
// empty-expression guard skipped evaluation.
func WithOnResult(fn func(Result, bool)) Option {
	return func(p *Previewer) { p.onResult = fn }
}

// WithLogger attaches a logger for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(p *Previewer) { p.logger = l }
}

// Previewer evaluates an expression against a context, either once per
// explicit Evaluate call or automatically whenever either input
// changes.
//
// Auto-evaluation is debounced: rapid successive changes within the
// delay window coalesce into a single evaluation of the final
// expression/context pair. At most one timer is outstanding per
// Previewer; scheduling cancels any pending one, and Close cancels
// outright so no callback fires after disposal.
type Previewer struct {
	mu       sync.Mutex
	expr     expr.Expr
	ctx      map[string]any
	auto     bool
	closed   bool
	timer    *time.Timer
	delay    time.Duration
	onResult func(Result, bool)
	logger   *zap.Logger
}

// NewPreviewer returns a Previewer with auto-evaluation disabled.
func NewPreviewer(opts ...Option) *Previewer {
	p := &Previewer{
		delay:  DefaultDebounce,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetExpression replaces the expression under preview.
func (p *Previewer) SetExpression(e expr.Expr) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.expr = e
	p.scheduleLocked()
}

// SetContext replaces the evaluation context.
func (p *Previewer) SetContext(ctx map[string]any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ctx = ctx
	p.scheduleLocked()
}

// SetAutoEvaluate enables or disables automatic re-evaluation.
// Enabling schedules a (debounced) evaluation of the current pair;
// disabling cancels any pending one.
func (p *Previewer) SetAutoEvaluate(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.auto == on {
		return
	}
	p.auto = on
	if on {
		p.scheduleLocked()
	} else {
		p.cancelLocked()
	}
}

// Evaluate runs a single synchronous evaluation of the current
// expression and context, independent of the auto-evaluate state.
func (p *Previewer) Evaluate() (Result, bool) {
	p.mu.Lock()
	e, ctx := p.expr, p.ctx
	p.mu.Unlock()
	return Apply(e, ctx)
}

// Close cancels any pending auto-evaluation. No callback fires after
// Close returns.
func (p *Previewer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelLocked()
	p.closed = true
}

func (p *Previewer) scheduleLocked() {
	if !p.auto || p.closed {
		return
	}
	p.cancelLocked()
	p.timer = time.AfterFunc(p.delay, p.fire)
}

func (p *Previewer) cancelLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *Previewer) fire() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.timer = nil
	e, ctx, fn := p.expr, p.ctx, p.onResult
	p.mu.Unlock()

	res, evaluated := Apply(e, ctx)
	p.logger.Debug("auto-evaluated expression",
		zap.Bool("evaluated", evaluated),
		zap.Error(res.Err),
	)
	if fn != nil {
		fn(res, evaluated)
	}
}
