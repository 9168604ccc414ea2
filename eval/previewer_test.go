package eval

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resultRecorder collects auto-evaluation callbacks for assertions.
type resultRecorder struct {
	mu      sync.Mutex
	results []Result
	flags   []bool
}

func (r *resultRecorder) record(res Result, evaluated bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
	r.flags = append(r.flags, evaluated)
}

func (r *resultRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}

func (r *resultRecorder) last() (Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.results)
	return r.results[n-1], r.flags[n-1]
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, time.Second, 5*time.Millisecond)
}

func TestPreviewer_ManualEvaluate(t *testing.T) {
	p := NewPreviewer()
	defer p.Close()

	p.SetExpression(map[string]any{"==": []any{1, 1}})
	p.SetContext(nil)

	// Auto-evaluation is off; Evaluate still works synchronously.
	res, evaluated := p.Evaluate()
	require.True(t, evaluated)
	require.NoError(t, res.Err)
	assert.Equal(t, true, res.Value)
}

func TestPreviewer_AutoEvaluate(t *testing.T) {
	rec := &resultRecorder{}
	p := NewPreviewer(
		WithDebounce(10*time.Millisecond),
		WithOnResult(rec.record),
	)
	defer p.Close()

	p.SetAutoEvaluate(true)
	p.SetExpression(map[string]any{">": []any{map[string]any{"var": "level"}, 3}})
	p.SetContext(map[string]any{"level": 5})

	waitFor(t, func() bool { return rec.count() >= 1 })

	res, evaluated := rec.last()
	assert.True(t, evaluated)
	require.NoError(t, res.Err)
	assert.Equal(t, true, res.Value)
}

// Rapid changes inside the debounce window coalesce into a single
// evaluation of the final expression/context pair.
func TestPreviewer_DebounceCoalesces(t *testing.T) {
	rec := &resultRecorder{}
	p := NewPreviewer(
		WithDebounce(50*time.Millisecond),
		WithOnResult(rec.record),
	)
	defer p.Close()

	p.SetAutoEvaluate(true)
	for i := 1; i <= 10; i++ {
		p.SetExpression(map[string]any{"==": []any{i, 10}})
	}

	waitFor(t, func() bool { return rec.count() >= 1 })
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, 1, rec.count())
	res, _ := rec.last()
	assert.Equal(t, true, res.Value, "only the final expression evaluates")
}

// The guard flag propagates through auto-evaluation so the caller can
// render "no result" for an empty expression.
func TestPreviewer_EmptyExpression(t *testing.T) {
	rec := &resultRecorder{}
	p := NewPreviewer(
		WithDebounce(10*time.Millisecond),
		WithOnResult(rec.record),
	)
	defer p.Close()

	p.SetAutoEvaluate(true)
	p.SetExpression(map[string]any{})

	waitFor(t, func() bool { return rec.count() >= 1 })

	res, evaluated := rec.last()
	assert.False(t, evaluated)
	assert.Zero(t, res)
}

func TestPreviewer_DisableCancelsPending(t *testing.T) {
	rec := &resultRecorder{}
	p := NewPreviewer(
		WithDebounce(20*time.Millisecond),
		WithOnResult(rec.record),
	)
	defer p.Close()

	p.SetAutoEvaluate(true)
	p.SetExpression(map[string]any{"==": []any{1, 1}})
	p.SetAutoEvaluate(false)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
}

func TestPreviewer_CloseStopsCallbacks(t *testing.T) {
	rec := &resultRecorder{}
	p := NewPreviewer(
		WithDebounce(20*time.Millisecond),
		WithOnResult(rec.record),
	)

	p.SetAutoEvaluate(true)
	p.SetExpression(map[string]any{"==": []any{1, 1}})
	p.Close()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
}
