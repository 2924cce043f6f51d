// Package memory provides an in-process implementation of the engine
// contract. It is the engine behind the standalone binary and behind tests
// that need real derive/stop semantics without a cluster.
package memory

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"

	"github.com/ouyangxiaochen/multi-tenancy-spark/pkg/config"
	"github.com/ouyangxiaochen/multi-tenancy-spark/pkg/engine"
	"github.com/ouyangxiaochen/multi-tenancy-spark/pkg/id"
	"github.com/ouyangxiaochen/multi-tenancy-spark/pkg/identity"
)

var tracer = otel.Tracer("pkg/engine/memory")

// Factory builds in-memory execution contexts.
type Factory struct{}

var _ engine.Factory = (*Factory)(nil)

func NewFactory() *Factory {
	return &Factory{}
}

// Build implements engine.Factory.
func (f *Factory) Build(ctx context.Context, conf *config.Conf) (engine.ExecutionContext, error) {
	_, span := tracer.Start(ctx, "memory.Build")
	defer span.End()

	ctxID, err := id.New()
	if err != nil {
		return nil, fmt.Errorf("allocate context id: %w", err)
	}

	owner, _ := identity.UserFromContext(ctx)

	return &Context{
		id:    ctxID,
		owner: owner,
		conf:  conf.Clone(),
	}, nil
}

// Context is an in-memory execution context.
type Context struct {
	id    string
	owner string
	conf  *config.Conf

	mu      sync.Mutex
	stopped bool
	derived int
}

var _ engine.ExecutionContext = (*Context)(nil)

// ID implements engine.ExecutionContext.
func (c *Context) ID() string {
	return c.id
}

// Owner returns the impersonated user the context was built under.
func (c *Context) Owner() string {
	return c.owner
}

// Conf returns the configuration the context was built with.
func (c *Context) Conf() *config.Conf {
	return c.conf.Clone()
}

// NewSession implements engine.ExecutionContext.
func (c *Context) NewSession(ctx context.Context) (engine.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return nil, fmt.Errorf("execution context %s is stopped", c.id)
	}

	sessID, err := id.New()
	if err != nil {
		return nil, fmt.Errorf("allocate session id: %w", err)
	}
	c.derived++

	return &session{id: sessID, contextID: c.id}, nil
}

// DerivedCount returns how many sessions were derived over the context's
// lifetime.
func (c *Context) DerivedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.derived
}

// Stopped implements engine.ExecutionContext.
func (c *Context) Stopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}

// Stop implements engine.ExecutionContext.
func (c *Context) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	return nil
}

type session struct {
	id        string
	contextID string

	mu     sync.Mutex
	closed bool
}

var _ engine.Session = (*session)(nil)

func (s *session) ID() string {
	return s.id
}

func (s *session) ContextID() string {
	return s.contextID
}

func (s *session) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
