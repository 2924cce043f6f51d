// Package id generates lexicographically sortable identifiers for execution
// contexts and derived sessions.
package id

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mutex   sync.Mutex
	entropy = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

// NewFromTime returns a new ULID string seeded with the given timestamp.
func NewFromTime(t time.Time) (string, error) {
	mutex.Lock()
	defer mutex.Unlock()

	id, err := ulid.New(uint64(t.UnixMilli()), entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// New returns a new ULID string for the current time.
func New() (string, error) {
	return NewFromTime(time.Now())
}

// Must returns a new ULID string and panics if entropy is exhausted.
func Must() string {
	s, err := New()
	if err != nil {
		panic(err)
	}
	return s
}

// IsValid reports whether s parses as a canonical ULID.
func IsValid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
