// Package engine defines the contract between the pool and the underlying
// distributed compute platform.
package engine

import (
	"context"

	"github.com/ouyangxiaochen/multi-tenancy-spark/pkg/config"
)

// ExecutionContext is a heavyweight per-user compute engine instance. It is
// expensive to construct (seconds, plus cluster capacity) and is kept alive
// across every connection of its user.
type ExecutionContext interface {
	// ID identifies this context instance.
	ID() string

	// NewSession derives a lightweight session sharing this context's
	// engine but carrying independent session-local state.
	NewSession(ctx context.Context) (Session, error)

	// Stopped reports whether the underlying resource has been stopped.
	Stopped() bool

	// Stop releases the underlying resource. Implementations must make
	// repeated calls safe.
	Stop(ctx context.Context) error
}

// Session is a lightweight handle derived from an ExecutionContext.
type Session interface {
	// ID identifies this session.
	ID() string

	// ContextID returns the ID of the execution context backing this
	// session.
	ContextID() string

	// Close releases session-local state only; the backing context stays
	// up.
	Close(ctx context.Context) error
}

// Factory builds execution contexts from a configuration. Build is invoked
// under the impersonated identity of the target user.
type Factory interface {
	Build(ctx context.Context, conf *config.Conf) (ExecutionContext, error)
}
