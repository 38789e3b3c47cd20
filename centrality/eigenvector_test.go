package centrality_test

import (
	"math"

	"github.com/Ahmed-Sermani/graphrank/centrality"
	gc "gopkg.in/check.v1"
)

func (s *CentralityTestSuite) TestEigenvectorScoresSumToOne(c *gc.C) {
	g := buildUndirectedPath(c, 5)

	for _, iterations := range []int{0, 1, 5, 25} {
		res, err := centrality.Eigenvector(g, iterations, nil)
		c.Assert(err, gc.IsNil)
		assertValidResult(c, res, 5)

		var sum float64
		for _, entry := range res {
			sum += entry.Score
		}
		c.Assert(math.Abs(sum-1.0) < 1e-9, gc.Equals, true,
			gc.Commentf("iterations %d: sum %v", iterations, sum))
	}
}

func (s *CentralityTestSuite) TestEigenvectorRanksConnectedNodesHigher(c *gc.C) {
	// On a path, interior nodes accumulate weight from two sides.
	g := buildUndirectedPath(c, 5)

	res, err := centrality.Eigenvector(g, 10, nil)
	c.Assert(err, gc.IsNil)

	c.Assert(scoreOf(c, res, 2) > scoreOf(c, res, 0), gc.Equals, true)
	c.Assert(scoreOf(c, res, 2) > scoreOf(c, res, 4), gc.Equals, true)
}

func (s *CentralityTestSuite) TestEigenvectorZeroIterationsIsUniform(c *gc.C) {
	g := buildGraph(c, 4, [][2]int{{0, 1}, {1, 2}})

	res, err := centrality.Eigenvector(g, 0, nil)
	c.Assert(err, gc.IsNil)
	assertValidResult(c, res, 4)

	for _, entry := range res {
		c.Assert(entry.Score, gc.Equals, 0.25)
	}
}

func (s *CentralityTestSuite) TestEigenvectorIdempotent(c *gc.C) {
	g := buildUndirectedPath(c, 6)

	first, err := centrality.Eigenvector(g, 8, nil)
	c.Assert(err, gc.IsNil)
	second, err := centrality.Eigenvector(g, 8, nil)
	c.Assert(err, gc.IsNil)
	c.Assert(second, gc.DeepEquals, first)
}

func (s *CentralityTestSuite) TestEigenvectorProgressPerIteration(c *gc.C) {
	g := buildUndirectedPath(c, 3)
	tr := &captureTracker{}

	_, err := centrality.Eigenvector(g, 4, tr)
	c.Assert(err, gc.IsNil)

	c.Assert(tr.reports, gc.HasLen, 4)
	c.Assert(tr.ended, gc.Equals, true)
}
