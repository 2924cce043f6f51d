package config

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/ouyangxiaochen/multi-tenancy-spark/pkg/logger"
)

var tracer = otel.Tracer("pkg/config")

// AmIPFilterParamPrefix is the property prefix under which the cluster's
// reverse proxy injects its filter parameters. Properties below it must
// survive reconstruction or proxied UI access breaks after a restart.
const AmIPFilterParamPrefix = "spark.org.apache.hadoop.yarn.server.webproxy.amfilter.AmIpFilter.param."

// propertiesToReload are placement values that go stale inside a snapshot.
// A rebuilt context must see the values of the current process, not the ones
// frozen when the snapshot was taken.
var propertiesToReload = []string{
	KeyYarnAppID,
	KeyYarnAppAttemptID,
	KeyDriverHost,
	KeyDriverPort,
	KeyMaster,
	KeyYarnKeytab,
	KeyYarnPrincipal,
	KeyUIFilters,
}

// DefaultsProvider supplies the current runtime property values on demand.
type DefaultsProvider interface {
	Properties() map[string]string
}

// DefaultsFunc adapts a function to the DefaultsProvider interface.
type DefaultsFunc func() map[string]string

// Properties implements DefaultsProvider.
func (f DefaultsFunc) Properties() map[string]string {
	return f()
}

// Reconstructor rebuilds a usable configuration from a frozen base snapshot
// plus freshly discovered runtime values. It holds no mutable state and is
// safe for concurrent use.
type Reconstructor struct {
	base         *Conf
	defaults     DefaultsProvider
	filterPrefix string
	logger       logger.Logger
}

type ReconstructorOption func(*Reconstructor)

// WithFilterPrefix overrides the reverse-proxy filter parameter prefix.
func WithFilterPrefix(prefix string) ReconstructorOption {
	return func(r *Reconstructor) {
		r.filterPrefix = prefix
	}
}

func WithReconstructorLogger(l logger.Logger) ReconstructorOption {
	return func(r *Reconstructor) {
		r.logger = l
	}
}

// NewReconstructor returns a Reconstructor over the given frozen snapshot
// and runtime defaults provider. The snapshot is cloned, never mutated.
func NewReconstructor(base *Conf, defaults DefaultsProvider, opts ...ReconstructorOption) *Reconstructor {
	r := &Reconstructor{
		base:         base.Clone(),
		defaults:     defaults,
		filterPrefix: AmIPFilterParamPrefix,
		logger:       logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rebuild produces a new configuration: the base snapshot minus transient
// driver endpoints, with current placement values overlaid where the
// defaults supply them, plus every injected filter parameter.
func (r *Reconstructor) Rebuild(ctx context.Context) *Conf {
	_, span := tracer.Start(ctx, "reconstructor.Rebuild")
	defer span.End()

	conf := r.base.Clone()

	// A rebuilt context binds fresh driver endpoints.
	conf.Unset(KeyDriverHost)
	conf.Unset(KeyDriverPort)

	fresh := r.defaults.Properties()

	for _, key := range propertiesToReload {
		v, ok := fresh[key]
		if !ok {
			r.logger.Debug("runtime default absent, keeping snapshot value", zap.String("key", key))
			continue
		}
		conf.Set(key, v)
	}

	for key, v := range fresh {
		if strings.HasPrefix(key, r.filterPrefix) && len(key) > len(r.filterPrefix) {
			conf.Set(key, v)
		}
	}

	return conf
}
