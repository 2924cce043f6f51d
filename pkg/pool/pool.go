// Package pool implements the multi-tenant execution-context pool: at most
// one shared heavyweight context per proxy user, reference-counted across
// the user's open sessions and torn down when the last one closes.
package pool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/ouyangxiaochen/multi-tenancy-spark/internal/build"
	"github.com/ouyangxiaochen/multi-tenancy-spark/internal/concurrency"
	"github.com/ouyangxiaochen/multi-tenancy-spark/pkg/config"
	"github.com/ouyangxiaochen/multi-tenancy-spark/pkg/engine"
	"github.com/ouyangxiaochen/multi-tenancy-spark/pkg/identity"
	"github.com/ouyangxiaochen/multi-tenancy-spark/pkg/logger"
)

var tracer = otel.Tracer("pkg/pool")

var (
	contextCreationCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: build.ProjectName,
		Name:      "execution_context_creation_total",
		Help:      "The total number of execution contexts constructed.",
	})

	contextReuseCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: build.ProjectName,
		Name:      "execution_context_reuse_total",
		Help:      "The total number of sessions attached to an already active execution context.",
	})

	contextTeardownCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: build.ProjectName,
		Name:      "execution_context_teardown_total",
		Help:      "The total number of execution contexts stopped after their reference count returned to zero.",
	})

	deduplicatedCreationCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: build.ProjectName,
		Name:      "deduplicated_context_creation_total",
		Help:      "The total number of context constructions that were prevented by deduplicating concurrent first acquires.",
	})

	activeContextsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: build.ProjectName,
		Name:      "active_execution_contexts",
		Help:      "The number of execution contexts currently active in the pool.",
	})

	contextCreationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: build.ProjectName,
		Name:      "execution_context_creation_duration_seconds",
		Help:      "Time taken to construct an execution context under impersonation.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
	})
)

// DefaultQueue is the resource queue used when the caller passes none.
const DefaultQueue = "default"

// Construction can lose its context to a concurrent release before the
// caller attaches; each retry rebuilds through the singleflight group.
const maxAcquireAttempts = 3

// ContextPool owns the three consistency-linked mappings of the gateway:
// user to execution context, session handle to user, and user to reference
// count. All mutation goes through Acquire, Release and Close; construction
// is deduplicated per user so concurrent first acquires build at most one
// context.
type ContextPool struct {
	factory      engine.Factory
	impersonator identity.Impersonator
	base         *config.Conf
	logger       logger.Logger

	group singleflight.Group

	mu       sync.Mutex
	closed   bool
	contexts map[string]engine.ExecutionContext
	sessions map[string]string
	refs     map[string]int
}

type Option func(*ContextPool)

func WithLogger(l logger.Logger) Option {
	return func(p *ContextPool) {
		p.logger = l
	}
}

// New returns a pool over the given engine factory and impersonation
// capability. The base configuration is cloned; later mutation of the
// caller's copy does not reach the pool.
func New(factory engine.Factory, impersonator identity.Impersonator, base *config.Conf, opts ...Option) *ContextPool {
	p := &ContextPool{
		factory:      factory,
		impersonator: impersonator,
		base:         base.Clone(),
		logger:       logger.NewNoopLogger(),
		contexts:     make(map[string]engine.ExecutionContext),
		sessions:     make(map[string]string),
		refs:         make(map[string]int),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Acquire binds sessionHandle to user's shared execution context, creating
// the context under user's impersonated identity if none is active, and
// returns a freshly derived session. The cold path blocks for as long as the
// engine takes to construct the context; callers bound it through ctx's
// deadline if they need to.
func (p *ContextPool) Acquire(ctx context.Context, sessionHandle, user, queue string) (engine.Session, error) {
	ctx, span := tracer.Start(ctx, "pool.Acquire")
	defer span.End()

	if user == "" {
		return nil, ErrEmptyUser
	}
	if queue == "" {
		queue = DefaultQueue
	}

	builtHere := false
	for attempt := 0; attempt < maxAcquireAttempts; attempt++ {
		sess, attached, err := p.attach(ctx, sessionHandle, user)
		if err != nil {
			return nil, err
		}
		if attached {
			if !builtHere {
				contextReuseCount.Inc()
			}
			return sess, nil
		}

		isUnique := false
		start := time.Now()
		_, err, _ = p.group.Do(user, func() (interface{}, error) {
			isUnique = true
			return nil, p.buildAndRegister(ctx, user, queue)
		})
		if err != nil {
			return nil, err
		}
		if isUnique {
			builtHere = true
			contextCreationCount.Inc()
			contextCreationDuration.Observe(time.Since(start).Seconds())
		} else {
			deduplicatedCreationCount.Inc()
		}
	}

	return nil, &ContextCreationError{
		User:  user,
		Queue: queue,
		Err:   errors.New("context repeatedly torn down before session could attach"),
	}
}

// attach derives a session from user's active context and records the
// handle and reference count, all under the pool mutex. It reports false
// when no active context exists, sending the caller to the cold path.
func (p *ContextPool) attach(ctx context.Context, sessionHandle, user string) (engine.Session, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, false, ErrPoolClosed
	}

	ec, ok := p.contexts[user]
	if !ok || ec.Stopped() {
		return nil, false, nil
	}

	sess, err := ec.NewSession(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("derive session for user %q: %w", user, err)
	}

	p.refs[user]++
	p.sessions[sessionHandle] = user

	p.logger.DebugWithContext(ctx, "session attached to execution context",
		zap.String("user", user),
		zap.String("session", sessionHandle),
		zap.Int("ref_count", p.refs[user]),
	)

	return sess, true, nil
}

// buildAndRegister constructs a context for user under impersonation and
// publishes it into the pool. Runs inside the per-user singleflight, so at
// most one construction per user is in flight at any time.
func (p *ContextPool) buildAndRegister(ctx context.Context, user, queue string) error {
	p.mu.Lock()
	if ec, ok := p.contexts[user]; ok && !ec.Stopped() {
		// A previous flight finished while we were queued behind it.
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	conf := p.base.Clone()
	conf.Set(config.KeyQueue, queue)
	if !conf.Contains(config.KeyAppName) {
		conf.Set(config.KeyAppName, fmt.Sprintf("%s-%s-%s", build.ProjectName, user, queue))
	}
	conf.Set(config.KeyImpersonationEnabled, "true")
	conf.Set(config.KeyAllowMultipleContexts, "true")

	var ec engine.ExecutionContext
	err := p.impersonator.RunAs(ctx, user, func(ctx context.Context) error {
		built, buildErr := p.factory.Build(ctx, conf)
		if buildErr != nil {
			return buildErr
		}
		ec = built
		return nil
	})
	if err != nil {
		var identityErr *IdentityError
		if errors.As(err, &identityErr) {
			return err
		}
		return &ContextCreationError{User: user, Queue: queue, Err: err}
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		_ = ec.Stop(ctx)
		return ErrPoolClosed
	}
	p.contexts[user] = ec
	p.mu.Unlock()

	activeContextsGauge.Inc()
	p.logger.InfoWithContext(ctx, "created execution context",
		zap.String("user", user),
		zap.String("queue", queue),
		zap.String("context_id", ec.ID()),
	)

	return nil
}

// Release unbinds sessionHandle and, when it was the user's last session,
// stops and removes the shared context. Unknown handles are a logged no-op;
// session teardown never fails the caller.
func (p *ContextPool) Release(ctx context.Context, sessionHandle string) {
	ctx, span := tracer.Start(ctx, "pool.Release")
	defer span.End()

	p.mu.Lock()
	user, ok := p.sessions[sessionHandle]
	if !ok {
		p.mu.Unlock()
		p.logger.DebugWithContext(ctx, "release of unregistered session handle",
			zap.String("session", sessionHandle))
		return
	}

	delete(p.sessions, sessionHandle)
	p.refs[user]--
	remaining := p.refs[user]

	var victim engine.ExecutionContext
	if remaining <= 0 {
		delete(p.refs, user)
		victim = p.contexts[user]
		delete(p.contexts, user)
	}
	p.mu.Unlock()

	if victim == nil {
		p.logger.DebugWithContext(ctx, "session released",
			zap.String("user", user),
			zap.String("session", sessionHandle),
			zap.Int("ref_count", remaining),
		)
		return
	}

	// The entries are already gone, so the stop happens exactly once even
	// if it blocks; a concurrent Acquire just builds a fresh context.
	if err := victim.Stop(ctx); err != nil {
		p.logger.WarnWithContext(ctx, "stopping execution context failed",
			zap.String("user", user),
			zap.String("context_id", victim.ID()),
			zap.Error(err),
		)
	}
	contextTeardownCount.Inc()
	activeContextsGauge.Dec()
	p.logger.InfoWithContext(ctx, "stopped execution context",
		zap.String("user", user),
		zap.String("context_id", victim.ID()),
	)
}

// IsActive reports whether user has a registered context whose resource is
// still running.
func (p *ContextPool) IsActive(user string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	ec, ok := p.contexts[user]
	return ok && !ec.Stopped()
}

// Close stops every remaining context in parallel and rejects further
// acquires. Safe to call more than once.
func (p *ContextPool) Close(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "pool.Close")
	defer span.End()

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	victims := make([]engine.ExecutionContext, 0, len(p.contexts))
	for _, ec := range p.contexts {
		victims = append(victims, ec)
	}
	p.contexts = make(map[string]engine.ExecutionContext)
	p.sessions = make(map[string]string)
	p.refs = make(map[string]int)
	p.mu.Unlock()

	wp := concurrency.NewPool(ctx, len(victims)+1)
	for _, ec := range victims {
		ec := ec
		wp.Go(func(ctx context.Context) error {
			return ec.Stop(ctx)
		})
	}
	err := wp.Wait()

	contextTeardownCount.Add(float64(len(victims)))
	activeContextsGauge.Sub(float64(len(victims)))
	p.logger.InfoWithContext(ctx, "context pool closed", zap.Int("contexts_stopped", len(victims)))

	return err
}
