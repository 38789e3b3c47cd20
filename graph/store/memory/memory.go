package memory

import (
	"sync"

	"github.com/Ahmed-Sermani/graphrank/graph"
	"golang.org/x/xerrors"
)

// InMemoryGraph implements graph.Graph with mutex-guarded adjacency maps.
// Node ids are assigned sequentially by AddNode.
type InMemoryGraph struct {
	mu sync.RWMutex

	numNodes int
	out      map[int][]graph.Edge
	in       map[int][]int
}

// NewInMemoryGraph creates a new in-memory graph store.
func NewInMemoryGraph() *InMemoryGraph {
	return &InMemoryGraph{
		out: make(map[int][]graph.Edge),
		in:  make(map[int][]int),
	}
}

// AddNode allocates the next node id and returns it.
func (s *InMemoryGraph) AddNode() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.numNodes
	s.numNodes++
	return id, nil
}

// UpsertEdge creates a directed src->dst edge or updates the weight of an
// existing one.
func (s *InMemoryGraph) UpsertEdge(src, dst int, weight float64) error {
	if src < 0 || dst < 0 {
		return xerrors.Errorf("upsert edge: %w", graph.ErrInvalidNode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if src >= s.numNodes || dst >= s.numNodes {
		return xerrors.Errorf("upsert edge: %w", graph.ErrUnknownNode)
	}

	for i, e := range s.out[src] {
		if e.To == dst {
			s.out[src][i].Weight = weight
			return nil
		}
	}

	s.out[src] = append(s.out[src], graph.Edge{To: dst, Weight: weight})
	s.in[dst] = append(s.in[dst], src)
	return nil
}

func (s *InMemoryGraph) NumNodes() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.numNodes, nil
}

func (s *InMemoryGraph) Nodes() (graph.NodeIterator, error) {
	s.mu.RLock()
	n := s.numNodes
	s.mu.RUnlock()
	return &nodeIterator{numNodes: n}, nil
}

func (s *InMemoryGraph) Adjacent(node int) ([]graph.Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if node < 0 || node >= s.numNodes {
		return nil, xerrors.Errorf("adjacent: node %d: %w", node, graph.ErrUnknownNode)
	}

	// Clone so callers never observe a concurrent UpsertEdge.
	edges := make([]graph.Edge, len(s.out[node]))
	copy(edges, s.out[node])
	return edges, nil
}

func (s *InMemoryGraph) Incoming(node int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if node < 0 || node >= s.numNodes {
		return nil, xerrors.Errorf("incoming: node %d: %w", node, graph.ErrUnknownNode)
	}

	from := make([]int, len(s.in[node]))
	copy(from, s.in[node])
	return from, nil
}
