// Package config models the string-keyed engine configuration used as the
// template for new execution contexts and for reconstruction after restarts.
package config

import "maps"

// Well-known property keys.
const (
	KeyAppName               = "spark.app.name"
	KeyQueue                 = "spark.yarn.queue"
	KeyMaster                = "spark.master"
	KeyDriverHost            = "spark.driver.host"
	KeyDriverPort            = "spark.driver.port"
	KeyYarnAppID             = "spark.yarn.app.id"
	KeyYarnAppAttemptID      = "spark.yarn.app.attemptId"
	KeyYarnKeytab            = "spark.yarn.keytab"
	KeyYarnPrincipal         = "spark.yarn.principal"
	KeyUIFilters             = "spark.ui.filters"
	KeyAllowMultipleContexts = "spark.driver.allowMultipleContexts"
	KeyImpersonationEnabled  = "spark.sql.hive.thriftServer.doAs.enabled"
)

// Conf is a mutable set of configuration properties. The pool and the
// reconstructor never mutate a Conf handed to them; they clone first, so a
// Conf captured at startup stays a frozen snapshot.
type Conf struct {
	props map[string]string
}

// New returns an empty Conf.
func New() *Conf {
	return &Conf{props: make(map[string]string)}
}

// FromMap returns a Conf holding a copy of the given properties.
func FromMap(props map[string]string) *Conf {
	c := New()
	maps.Copy(c.props, props)
	return c
}

// Get returns the value for key and whether it is set.
func (c *Conf) Get(key string) (string, bool) {
	v, ok := c.props[key]
	return v, ok
}

// GetDefault returns the value for key, or def when unset.
func (c *Conf) GetDefault(key, def string) string {
	if v, ok := c.props[key]; ok {
		return v
	}
	return def
}

// Contains reports whether key is set.
func (c *Conf) Contains(key string) bool {
	_, ok := c.props[key]
	return ok
}

// Set stores a property and returns the Conf for chaining.
func (c *Conf) Set(key, value string) *Conf {
	c.props[key] = value
	return c
}

// Unset removes a property if present.
func (c *Conf) Unset(key string) *Conf {
	delete(c.props, key)
	return c
}

// Len returns the number of properties set.
func (c *Conf) Len() int {
	return len(c.props)
}

// Clone returns an independent copy of the Conf.
func (c *Conf) Clone() *Conf {
	return &Conf{props: maps.Clone(c.props)}
}

// All returns a copy of every property.
func (c *Conf) All() map[string]string {
	return maps.Clone(c.props)
}
