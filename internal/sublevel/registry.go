// Package sublevel provides the registry that maps sublevel identifiers such
// as "SCx7" to their prepared generation parameters.
package sublevel

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/cavegen/internal/caveinfo"
)

// ErrNotFound is returned when a sublevel identifier is not registered.
var ErrNotFound = errors.New("sublevel not found")

// Registry is a lazily populated, read-mostly index of prepared floors.
//
// Invariant: once initialized, floors is never written again and may be read
// without locking. Returned floors are shared and must not be mutated.
type Registry struct {
	src    Source
	logger *zap.Logger

	mu     sync.Mutex
	ready  atomic.Bool
	floors map[string]*caveinfo.FloorInfo
}

// NewRegistry creates an uninitialized Registry backed by src.
//
// Precondition: src and logger must be non-nil.
func NewRegistry(src Source, logger *zap.Logger) *Registry {
	return &Registry{src: src, logger: logger}
}

// EnsureInitialized loads and prepares every floor from the source if that
// has not already succeeded. It is safe to call concurrently; the source is
// consulted by one caller at a time and never again after a success.
//
// Postcondition: returns nil iff the registry is initialized. A failed attempt
// leaves the registry uninitialized so a later call retries.
func (r *Registry) EnsureInitialized() error {
	if r.ready.Load() {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ready.Load() {
		return nil
	}

	start := time.Now()
	floors, err := r.src.Load()
	if err != nil {
		return fmt.Errorf("loading sublevels: %w", err)
	}

	index := make(map[string]*caveinfo.FloorInfo, len(floors))
	for _, f := range floors {
		key, err := caveinfo.FloorKey(f)
		if err != nil {
			return fmt.Errorf("indexing sublevel: %w", err)
		}
		if _, exists := index[key]; exists {
			return fmt.Errorf("duplicate sublevel %q", key)
		}
		prepared := caveinfo.Prepare(f)
		if !hasStartUnit(prepared) {
			r.logger.Warn("sublevel has no unit with a start spawn point", zap.String("sublevel", key))
		}
		index[key] = prepared
	}

	r.floors = index
	r.ready.Store(true)
	r.logger.Info("sublevel registry initialized",
		zap.Int("sublevels", len(index)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// Lookup returns the prepared floor for id, initializing the registry first
// if needed. id is matched case-insensitively and may use either the "SCx7"
// or "SCx-7" form.
//
// Postcondition: returns an error wrapping ErrNotFound for unknown identifiers.
func (r *Registry) Lookup(id string) (*caveinfo.FloorInfo, error) {
	if err := r.EnsureInitialized(); err != nil {
		return nil, err
	}
	key := normalize(id)
	f, ok := r.floors[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return f, nil
}

// Names returns the normalized keys of all registered sublevels, sorted.
//
// Postcondition: returns nil before successful initialization.
func (r *Registry) Names() []string {
	if !r.ready.Load() {
		return nil
	}
	out := make([]string, 0, len(r.floors))
	for k := range r.floors {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered sublevels, or 0 before initialization.
func (r *Registry) Len() int {
	if !r.ready.Load() {
		return 0
	}
	return len(r.floors)
}

func normalize(id string) string {
	if s, err := caveinfo.ParseSublevel(id); err == nil {
		return s.Key()
	}
	return strings.ToLower(strings.TrimSpace(id))
}

func hasStartUnit(f *caveinfo.FloorInfo) bool {
	for range f.StartUnits() {
		return true
	}
	return false
}
