package centrality_test

import (
	"math/rand"

	"github.com/Ahmed-Sermani/graphrank/centrality"
	"github.com/Ahmed-Sermani/graphrank/graph"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

func (s *CentralityTestSuite) TestPersonalizedNoContinuationPinsCenter(c *gc.C) {
	// With continuation probability 0 every step resets to the center,
	// so the center's visit count equals the total step count p*N.
	g := buildGraph(c, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	res, err := centrality.PersonalizedPageRank(g, 1, 0, 3, nil, nil)
	c.Assert(err, gc.IsNil)
	assertValidResult(c, res, 4)

	c.Assert(scoreOf(c, res, 1), gc.Equals, 12.0)
	for _, node := range []int{0, 2, 3} {
		c.Assert(scoreOf(c, res, node), gc.Equals, 0.0)
	}
}

func (s *CentralityTestSuite) TestPersonalizedVisitCountsSumToSteps(c *gc.C) {
	g := buildGraph(c, 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}})
	rng := rand.New(rand.NewSource(7))

	res, err := centrality.PersonalizedPageRank(g, 0, 0.85, 4, rng, nil)
	c.Assert(err, gc.IsNil)
	assertValidResult(c, res, 5)

	var sum float64
	for _, entry := range res {
		sum += entry.Score
	}
	c.Assert(sum, gc.Equals, 20.0)
}

func (s *CentralityTestSuite) TestPersonalizedSeededReproducibility(c *gc.C) {
	g := buildGraph(c, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}})

	first, err := centrality.PersonalizedPageRank(g, 0, 0.85, 10, rand.New(rand.NewSource(42)), nil)
	c.Assert(err, gc.IsNil)
	second, err := centrality.PersonalizedPageRank(g, 0, 0.85, 10, rand.New(rand.NewSource(42)), nil)
	c.Assert(err, gc.IsNil)

	c.Assert(second, gc.DeepEquals, first)
}

func (s *CentralityTestSuite) TestPersonalizedSinkResetsToCenter(c *gc.C) {
	// Node 1 is a sink: every hop out of it returns to the center, so
	// only nodes 0 and 1 are ever visited.
	g := buildGraph(c, 3, [][2]int{{0, 1}})
	rng := rand.New(rand.NewSource(1))

	res, err := centrality.PersonalizedPageRank(g, 0, 1.0, 5, rng, nil)
	c.Assert(err, gc.IsNil)

	c.Assert(scoreOf(c, res, 2), gc.Equals, 0.0)
	c.Assert(scoreOf(c, res, 0)+scoreOf(c, res, 1), gc.Equals, 15.0)
}

func (s *CentralityTestSuite) TestPersonalizedInvalidDamping(c *gc.C) {
	g := buildGraph(c, 2, [][2]int{{0, 1}})

	_, err := centrality.PersonalizedPageRank(g, 0, 1.5, 2, nil, nil)
	c.Assert(xerrors.Is(err, centrality.ErrInvalidDamping), gc.Equals, true)
}

func (s *CentralityTestSuite) TestPersonalizedUnknownCenter(c *gc.C) {
	g := buildGraph(c, 2, [][2]int{{0, 1}})

	_, err := centrality.PersonalizedPageRank(g, 9, 0.5, 2, nil, nil)
	c.Assert(xerrors.Is(err, graph.ErrUnknownNode), gc.Equals, true)
}

func (s *CentralityTestSuite) TestPersonalizedProgressPerStep(c *gc.C) {
	g := buildGraph(c, 2, [][2]int{{0, 1}, {1, 0}})
	tr := &captureTracker{}

	_, err := centrality.PersonalizedPageRank(g, 0, 0.5, 3, rand.New(rand.NewSource(3)), tr)
	c.Assert(err, gc.IsNil)

	c.Assert(tr.reports, gc.HasLen, 6)
	c.Assert(tr.ended, gc.Equals, true)
}
