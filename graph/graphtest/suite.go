// Package graphtest provides a re-usable conformance suite that all
// graph store implementations must pass.
package graphtest

import (
	"github.com/Ahmed-Sermani/graphrank/graph"
	gc "gopkg.in/check.v1"
	"golang.org/x/xerrors"
)

// Store is the combined query/mutation surface the suite exercises.
type Store interface {
	graph.Graph

	AddNode() (int, error)
	UpsertEdge(src, dst int, weight float64) error
}

// SuiteBase defines a set of store-agnostic tests. Concrete store test
// suites embed it and call SetGraph against a fresh store per test.
type SuiteBase struct {
	g Store
}

// SetGraph configures the suite to run tests against g.
func (s *SuiteBase) SetGraph(g Store) {
	s.g = g
}

func (s *SuiteBase) TestEmptyGraph(c *gc.C) {
	n, err := s.g.NumNodes()
	c.Assert(err, gc.IsNil)
	c.Assert(n, gc.Equals, 0)

	it, err := s.g.Nodes()
	c.Assert(err, gc.IsNil)
	c.Assert(it.Next(), gc.Equals, false)
	c.Assert(it.Error(), gc.IsNil)
	c.Assert(it.Close(), gc.IsNil)
}

func (s *SuiteBase) TestDenseIDAssignment(c *gc.C) {
	for want := 0; want < 5; want++ {
		id, err := s.g.AddNode()
		c.Assert(err, gc.IsNil)
		c.Assert(id, gc.Equals, want)
	}

	n, err := s.g.NumNodes()
	c.Assert(err, gc.IsNil)
	c.Assert(n, gc.Equals, 5)
}

func (s *SuiteBase) TestNodeIteratorCoversAllIDs(c *gc.C) {
	numNodes := 4
	for i := 0; i < numNodes; i++ {
		_, err := s.g.AddNode()
		c.Assert(err, gc.IsNil)
	}

	it, err := s.g.Nodes()
	c.Assert(err, gc.IsNil)

	seen := make(map[int]bool)
	for it.Next() {
		seen[it.Node()] = true
	}
	c.Assert(it.Error(), gc.IsNil)
	c.Assert(it.Close(), gc.IsNil)

	c.Assert(seen, gc.HasLen, numNodes)
	for i := 0; i < numNodes; i++ {
		c.Assert(seen[i], gc.Equals, true, gc.Commentf("node %d missing from iterator", i))
	}
}

func (s *SuiteBase) TestUpsertEdgeAndAdjacent(c *gc.C) {
	s.mustAddNodes(c, 3)

	c.Assert(s.g.UpsertEdge(0, 1, 1.0), gc.IsNil)
	c.Assert(s.g.UpsertEdge(0, 2, 2.5), gc.IsNil)

	edges, err := s.g.Adjacent(0)
	c.Assert(err, gc.IsNil)
	c.Assert(edges, gc.HasLen, 2)

	weights := make(map[int]float64)
	for _, e := range edges {
		weights[e.To] = e.Weight
	}
	c.Assert(weights[1], gc.Equals, 1.0)
	c.Assert(weights[2], gc.Equals, 2.5)
}

func (s *SuiteBase) TestUpsertEdgeUpdatesWeight(c *gc.C) {
	s.mustAddNodes(c, 2)

	c.Assert(s.g.UpsertEdge(0, 1, 1.0), gc.IsNil)
	c.Assert(s.g.UpsertEdge(0, 1, 7.0), gc.IsNil)

	edges, err := s.g.Adjacent(0)
	c.Assert(err, gc.IsNil)
	c.Assert(edges, gc.HasLen, 1)
	c.Assert(edges[0].To, gc.Equals, 1)
	c.Assert(edges[0].Weight, gc.Equals, 7.0)

	in, err := s.g.Incoming(1)
	c.Assert(err, gc.IsNil)
	c.Assert(in, gc.HasLen, 1)
}

func (s *SuiteBase) TestIncoming(c *gc.C) {
	s.mustAddNodes(c, 3)

	c.Assert(s.g.UpsertEdge(0, 2, 1.0), gc.IsNil)
	c.Assert(s.g.UpsertEdge(1, 2, 1.0), gc.IsNil)

	in, err := s.g.Incoming(2)
	c.Assert(err, gc.IsNil)
	c.Assert(in, gc.HasLen, 2)

	seen := make(map[int]bool)
	for _, from := range in {
		seen[from] = true
	}
	c.Assert(seen[0], gc.Equals, true)
	c.Assert(seen[1], gc.Equals, true)
}

func (s *SuiteBase) TestSinkNodeHasNoAdjacentEdges(c *gc.C) {
	s.mustAddNodes(c, 2)
	c.Assert(s.g.UpsertEdge(0, 1, 1.0), gc.IsNil)

	edges, err := s.g.Adjacent(1)
	c.Assert(err, gc.IsNil)
	c.Assert(edges, gc.HasLen, 0)
}

func (s *SuiteBase) TestUnknownNodeLookups(c *gc.C) {
	s.mustAddNodes(c, 1)

	_, err := s.g.Adjacent(42)
	c.Assert(xerrors.Is(err, graph.ErrUnknownNode), gc.Equals, true)

	_, err = s.g.Incoming(42)
	c.Assert(xerrors.Is(err, graph.ErrUnknownNode), gc.Equals, true)

	err = s.g.UpsertEdge(0, 42, 1.0)
	c.Assert(xerrors.Is(err, graph.ErrUnknownNode), gc.Equals, true)
}

func (s *SuiteBase) TestInvalidNodeMutation(c *gc.C) {
	err := s.g.UpsertEdge(-1, 0, 1.0)
	c.Assert(xerrors.Is(err, graph.ErrInvalidNode), gc.Equals, true)
}

func (s *SuiteBase) mustAddNodes(c *gc.C, numNodes int) {
	for i := 0; i < numNodes; i++ {
		_, err := s.g.AddNode()
		c.Assert(err, gc.IsNil)
	}
}
