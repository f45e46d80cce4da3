// Package dedupe provides atomic check-and-register deduplication of
// message fingerprints.
package dedupe

import (
	"context"
	"sync"
	"time"

	"github.com/fintrail/fintrail/internal/model"
)

// RegisterResult discriminates a check-and-register outcome.
type RegisterResult string

// Check-and-register outcomes.
const (
	ResultNew       RegisterResult = "new"
	ResultDuplicate RegisterResult = "duplicate"
)

// Registry is the single synchronization point of the pipeline. For any
// fingerprint, exactly one concurrent caller observes ResultNew; every
// other caller observes ResultDuplicate. A duplicate is a normal outcome,
// not an error.
type Registry interface {
	CheckAndRegister(ctx context.Context, fp model.Fingerprint) (RegisterResult, error)
}

// MemoryRegistry is a concurrency-safe in-process registry, suitable for
// tests and for embedding the engine without a database.
type MemoryRegistry struct {
	seen map[model.Fingerprint]time.Time
	mu   sync.Mutex
}

// NewMemoryRegistry creates an empty in-memory registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{seen: make(map[model.Fingerprint]time.Time)}
}

// CheckAndRegister records the fingerprint if unseen. The check and the
// write happen under one lock, never as a read-then-write race.
func (r *MemoryRegistry) CheckAndRegister(_ context.Context, fp model.Fingerprint) (RegisterResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[fp]; ok {
		return ResultDuplicate, nil
	}
	r.seen[fp] = time.Now().UTC()
	return ResultNew, nil
}

// Len reports how many fingerprints have been registered.
func (r *MemoryRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}
