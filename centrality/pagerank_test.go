package centrality_test

import (
	"math"

	"github.com/Ahmed-Sermani/graphrank/centrality"
	"github.com/Ahmed-Sermani/graphrank/graph/mocks"
	"github.com/golang/mock/gomock"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

func (s *CentralityTestSuite) TestPageRankMassFlowsDownstream(c *gc.C) {
	// Single edge 0->1 with no edge back: all of node 0's mass flows to
	// node 1 and never returns.
	g := buildGraph(c, 2, [][2]int{{0, 1}})

	res, err := centrality.PageRank(g, 0.85, 50, nil)
	c.Assert(err, gc.IsNil)
	assertValidResult(c, res, 2)

	c.Assert(scoreOf(c, res, 1) > scoreOf(c, res, 0), gc.Equals, true)
	c.Assert(res[0].Node, gc.Equals, 1)
}

func (s *CentralityTestSuite) TestPageRankInvalidDamping(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	// The mock has no expectations: validation must fail before the
	// graph is touched.
	mg := mocks.NewMockGraph(ctrl)

	for _, damping := range []float64{1.5, -0.1} {
		_, err := centrality.PageRank(mg, damping, 10, nil)
		c.Assert(xerrors.Is(err, centrality.ErrInvalidDamping), gc.Equals, true,
			gc.Commentf("damping %v", damping))
	}
}

func (s *CentralityTestSuite) TestPageRankMassConservedWithoutSinks(c *gc.C) {
	// A cycle has no dangling nodes, so the scores stay a probability
	// distribution across iterations.
	g := buildGraph(c, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	res, err := centrality.PageRank(g, 0.85, 30, nil)
	c.Assert(err, gc.IsNil)
	assertValidResult(c, res, 4)

	var sum float64
	for _, entry := range res {
		sum += entry.Score
	}
	c.Assert(math.Abs(sum-1.0) < 1e-9, gc.Equals, true, gc.Commentf("sum %v", sum))
}

func (s *CentralityTestSuite) TestPageRankSinkMassDropped(c *gc.C) {
	// Node 1 is a sink; its mass leaks away each iteration instead of
	// being redistributed.
	g := buildGraph(c, 2, [][2]int{{0, 1}})

	res, err := centrality.PageRank(g, 0.85, 30, nil)
	c.Assert(err, gc.IsNil)

	var sum float64
	for _, entry := range res {
		sum += entry.Score
	}
	c.Assert(sum < 1.0, gc.Equals, true, gc.Commentf("sum %v", sum))
}

func (s *CentralityTestSuite) TestPageRankProgressPerIteration(c *gc.C) {
	g := buildGraph(c, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	tr := &captureTracker{}

	_, err := centrality.PageRank(g, 0.85, 7, tr)
	c.Assert(err, gc.IsNil)

	c.Assert(tr.reports, gc.HasLen, 7)
	for i, current := range tr.reports {
		c.Assert(current, gc.Equals, i+1)
	}
	c.Assert(tr.ended, gc.Equals, true)
}

func (s *CentralityTestSuite) TestPageRankIdempotent(c *gc.C) {
	g := buildGraph(c, 4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 0}})

	first, err := centrality.PageRank(g, 0.85, 20, nil)
	c.Assert(err, gc.IsNil)
	second, err := centrality.PageRank(g, 0.85, 20, nil)
	c.Assert(err, gc.IsNil)
	c.Assert(second, gc.DeepEquals, first)
}

func (s *CentralityTestSuite) TestPageRankPropagatesGraphFailure(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	wantErr := xerrors.New("incoming lookup failed")
	mg := mocks.NewMockGraph(ctrl)
	mg.EXPECT().NumNodes().Return(2, nil)
	mg.EXPECT().Incoming(0).Return(nil, wantErr)

	_, err := centrality.PageRank(mg, 0.85, 5, nil)
	c.Assert(xerrors.Is(err, wantErr), gc.Equals, true)
}
