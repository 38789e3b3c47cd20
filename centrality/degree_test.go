package centrality_test

import (
	"github.com/Ahmed-Sermani/graphrank/centrality"
	gc "gopkg.in/check.v1"
)

func (s *CentralityTestSuite) TestDegreeScoresAndOrdering(c *gc.C) {
	// Node 0 has out-degree 3, node 1 has out-degree 1.
	g := buildGraph(c, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}})

	res, err := centrality.Degree(g)
	c.Assert(err, gc.IsNil)
	assertValidResult(c, res, 4)

	c.Assert(scoreOf(c, res, 0), gc.Equals, 3.0)
	c.Assert(scoreOf(c, res, 1), gc.Equals, 1.0)
	c.Assert(res[0].Node, gc.Equals, 0)
	c.Assert(res[1].Node, gc.Equals, 1)
}

func (s *CentralityTestSuite) TestDegreeEmptyGraph(c *gc.C) {
	g := buildGraph(c, 0, nil)

	res, err := centrality.Degree(g)
	c.Assert(err, gc.IsNil)
	c.Assert(res, gc.HasLen, 0)
}

func (s *CentralityTestSuite) TestDegreeTieBreaksByAscendingNode(c *gc.C) {
	// All four nodes have out-degree 0.
	g := buildGraph(c, 4, nil)

	res, err := centrality.Degree(g)
	c.Assert(err, gc.IsNil)
	assertValidResult(c, res, 4)

	for i, entry := range res {
		c.Assert(entry.Node, gc.Equals, i)
		c.Assert(entry.Score, gc.Equals, 0.0)
	}
}

func (s *CentralityTestSuite) TestDegreeIdempotent(c *gc.C) {
	g := buildGraph(c, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 2}})

	first, err := centrality.Degree(g)
	c.Assert(err, gc.IsNil)
	second, err := centrality.Degree(g)
	c.Assert(err, gc.IsNil)
	c.Assert(second, gc.DeepEquals, first)
}
