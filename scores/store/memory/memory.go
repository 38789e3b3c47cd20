package memory

import (
	"sync"

	"github.com/Ahmed-Sermani/graphrank/centrality"
	"github.com/Ahmed-Sermani/graphrank/scores"
	"github.com/google/uuid"
	"golang.org/x/xerrors"
)

type resultKey struct {
	runID     uuid.UUID
	algorithm string
}

// InMemoryStore keeps saved results in a mutex-guarded map.
type InMemoryStore struct {
	mu      sync.RWMutex
	results map[resultKey]centrality.Result
}

// NewInMemoryStore creates a new in-memory score store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		results: make(map[resultKey]centrality.Result),
	}
}

func (s *InMemoryStore) SaveResult(runID uuid.UUID, algorithm string, res centrality.Result) error {
	cp := make(centrality.Result, len(res))
	copy(cp, res)
	cp.Sort()

	s.mu.Lock()
	s.results[resultKey{runID, algorithm}] = cp
	s.mu.Unlock()
	return nil
}

func (s *InMemoryStore) Result(runID uuid.UUID, algorithm string) (centrality.Result, error) {
	s.mu.RLock()
	res, found := s.results[resultKey{runID, algorithm}]
	s.mu.RUnlock()

	if !found {
		return nil, xerrors.Errorf("result for run %s algorithm %q: %w", runID, algorithm, scores.ErrUnknownRun)
	}

	cp := make(centrality.Result, len(res))
	copy(cp, res)
	return cp, nil
}
