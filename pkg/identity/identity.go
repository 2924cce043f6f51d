// Package identity models the privileged "run as this user" boundary the
// pool crosses when it constructs an execution context. Real deployments
// plug in a kerberized implementation; tests and single-user setups use
// Self.
package identity

import "context"

type ctxKey struct{}

// Impersonator executes an action under the security identity of user.
type Impersonator interface {
	RunAs(ctx context.Context, user string, action func(ctx context.Context) error) error
}

// Self runs actions as the current process identity, tagging the context
// with the proxied user so downstream code can still attribute the work.
type Self struct{}

var _ Impersonator = (*Self)(nil)

// NewSelf returns an Impersonator that performs no privilege switch.
func NewSelf() *Self {
	return &Self{}
}

// RunAs implements Impersonator.
func (s *Self) RunAs(ctx context.Context, user string, action func(ctx context.Context) error) error {
	return action(ContextWithUser(ctx, user))
}

// ContextWithUser returns a context carrying the proxied user identity.
func ContextWithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFromContext returns the proxied user identity, if one was set.
func UserFromContext(ctx context.Context) (string, bool) {
	user, ok := ctx.Value(ctxKey{}).(string)
	return user, ok
}
