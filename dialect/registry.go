package dialect

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Dialect registry. Built-in dialects register themselves from init; the
// connection layer resolves one by name at session-configuration time.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Dialect)
)

// Register adds a dialect to the global registry, replacing any previous
// registration under the same name.
func Register(d *Dialect) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(d.Name)] = d
}

// Lookup returns the dialect registered under the given name.
func Lookup(name string) (*Dialect, error) {
	registryMu.RLock()
	d, ok := registry[strings.ToLower(name)]
	registryMu.RUnlock()
	if !ok {
		return nil, &UnknownDialectError{Name: name, Registered: List()}
	}
	return d, nil
}

// MustLookup is like Lookup but panics on unknown names. Intended for
// registering-package tests and static initialization.
func MustLookup(name string) *Dialect {
	d, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return d
}

// List returns all registered dialect names, sorted.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ctxKey is the context key carrying the current dialect.
type ctxKey struct{}

// NewContext returns a context carrying d as the current dialect. The
// connection layer sets it once per unit of work; it must not be replaced
// while rendering is in flight.
func NewContext(ctx context.Context, d *Dialect) context.Context {
	return context.WithValue(ctx, ctxKey{}, d)
}

// FromContext returns the current dialect, or ErrNoDialect when the context
// was never configured with one.
func FromContext(ctx context.Context) (*Dialect, error) {
	d, ok := ctx.Value(ctxKey{}).(*Dialect)
	if !ok || d == nil {
		return nil, ErrNoDialect
	}
	return d, nil
}
