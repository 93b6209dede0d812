// Copyright Legalease Authors
// SPDX-License-Identifier: Apache-2.0

// Package provider implements a generic registry of named strategy factories.
//
// Swappable implementations (PDF decoding strategies, text simplifiers) live
// behind a typed Registry. Implementations register themselves in init() and
// the server builds the one named in its configuration:
//
//	simplifier.Strategies.Build(ctx, cfg.Simplifier.Type, params)
package provider

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Factory builds a strategy from a flat parameter map. Implementations read
// the keys they understand and ignore the rest.
type Factory[T any] func(ctx context.Context, params map[string]string) (T, error)

// Registry maps strategy names to factories for one capability T.
type Registry[T any] struct {
	capability string
	mu         sync.RWMutex
	factories  map[string]Factory[T]
}

// NewRegistry creates an empty Registry. The capability name shows up in
// error messages, e.g. "simplifier" or "pdf_decoder".
func NewRegistry[T any](capability string) *Registry[T] {
	return &Registry[T]{
		capability: capability,
		factories:  make(map[string]Factory[T]),
	}
}

// Register adds a named factory. Registering the same name twice panics so
// that conflicting init() functions fail at start-up.
func (r *Registry[T]) Register(name string, f Factory[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("provider: %s strategy %q already registered", r.capability, name))
	}
	r.factories[name] = f
}

// Build instantiates the strategy registered under name.
func (r *Registry[T]) Build(ctx context.Context, name string, params map[string]string) (T, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("unknown %s strategy: %q (available: %v)", r.capability, name, r.Names())
	}
	v, err := f(ctx, params)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("build %s strategy %q: %w", r.capability, name, err)
	}
	return v, nil
}

// Names returns the registered strategy names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
