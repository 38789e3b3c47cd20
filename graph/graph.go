package graph

//go:generate mockgen -package mocks -destination mocks/mock_graph.go github.com/Ahmed-Sermani/graphrank/graph Graph,NodeIterator

import "golang.org/x/xerrors"

var (
	// ErrUnknownNode is returned when an operation references a node id
	// outside the [0, NumNodes) range of the store.
	ErrUnknownNode = xerrors.New("unknown node")

	// ErrInvalidNode is returned when a mutation is attempted with a
	// negative node id.
	ErrInvalidNode = xerrors.New("node id must not be negative")
)

// Edge describes an outgoing edge to a neighboring node.
type Edge struct {
	To     int
	Weight float64
}

// NodeIterator is implemented by objects that iterate the set of node ids
// in a graph.
type NodeIterator interface {
	// Next advances the iterator. If no more items are available, Next
	// returns false.
	Next() bool

	// Node returns the node id at the current iterator position.
	Node() int

	// Error returns the last error encountered by the iterator.
	Error() error

	// Close releases any resources associated with the iterator.
	Close() error
}

// Graph is the read-only query interface consumed by the centrality
// algorithms. Node ids are dense ints in the half-open range
// [0, NumNodes()); stores assign them sequentially.
//
// Implementations must be safe for concurrent read access.
type Graph interface {
	// NumNodes returns the number of nodes in the graph.
	NumNodes() (int, error)

	// Nodes returns an iterator over every node id in the graph.
	Nodes() (NodeIterator, error)

	// Adjacent returns the outgoing edges of a node. A node with no
	// outgoing edges (a sink) yields an empty slice, not an error.
	Adjacent(node int) ([]Edge, error)

	// Incoming returns the ids of the nodes with an edge into node.
	Incoming(node int) ([]int, error)
}
