package centrality_test

import (
	"math"

	"github.com/Ahmed-Sermani/graphrank/centrality"
	"github.com/Ahmed-Sermani/graphrank/graph/mocks"
	"github.com/golang/mock/gomock"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

func (s *CentralityTestSuite) TestBetweennessPathGraph(c *gc.C) {
	// Path 0-1-2-3: nodes 1 and 2 lie on the endpoint-to-endpoint
	// shortest paths, nodes 0 and 3 are never intermediate.
	g := buildUndirectedPath(c, 4)

	res, err := centrality.Betweenness(g, 2, nil)
	c.Assert(err, gc.IsNil)
	assertValidResult(c, res, 4)

	for _, middle := range []int{1, 2} {
		for _, endpoint := range []int{0, 3} {
			c.Assert(scoreOf(c, res, middle) > scoreOf(c, res, endpoint), gc.Equals, true,
				gc.Commentf("node %d should outrank node %d", middle, endpoint))
		}
	}
	c.Assert(scoreOf(c, res, 0), gc.Equals, 0.0)
	c.Assert(scoreOf(c, res, 3), gc.Equals, 0.0)
}

func (s *CentralityTestSuite) TestBetweennessStarGraph(c *gc.C) {
	// Star with center 0: every path between leaves goes through 0.
	g := buildGraph(c, 4, [][2]int{
		{0, 1}, {1, 0},
		{0, 2}, {2, 0},
		{0, 3}, {3, 0},
	})

	res, err := centrality.Betweenness(g, 3, nil)
	c.Assert(err, gc.IsNil)
	assertValidResult(c, res, 4)

	c.Assert(res[0].Node, gc.Equals, 0)
	// Three ordered leaf pairs in each direction, one shortest path each.
	c.Assert(scoreOf(c, res, 0), gc.Equals, 6.0)
	for _, leaf := range []int{1, 2, 3} {
		c.Assert(scoreOf(c, res, leaf), gc.Equals, 0.0)
	}
}

func (s *CentralityTestSuite) TestBetweennessWorkerCountInvariance(c *gc.C) {
	g := buildGraph(c, 6, [][2]int{
		{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 3}, {3, 2},
		{3, 4}, {4, 3}, {4, 5}, {5, 4}, {5, 0}, {0, 5},
		{1, 4}, {4, 1},
	})

	sequential, err := centrality.Betweenness(g, 1, nil)
	c.Assert(err, gc.IsNil)
	parallel, err := centrality.Betweenness(g, 4, nil)
	c.Assert(err, gc.IsNil)

	c.Assert(parallel, gc.HasLen, len(sequential))
	for i := range sequential {
		c.Assert(parallel[i].Node, gc.Equals, sequential[i].Node)
		delta := math.Abs(parallel[i].Score - sequential[i].Score)
		c.Assert(delta < 1e-9, gc.Equals, true,
			gc.Commentf("node %d: sequential %v vs parallel %v",
				sequential[i].Node, sequential[i].Score, parallel[i].Score))
	}
}

func (s *CentralityTestSuite) TestBetweennessDisconnectedNodes(c *gc.C) {
	// Node 3 is isolated; the traversals must still cover it.
	g := buildGraph(c, 4, [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}})

	res, err := centrality.Betweenness(g, 2, nil)
	c.Assert(err, gc.IsNil)
	assertValidResult(c, res, 4)
	c.Assert(scoreOf(c, res, 3), gc.Equals, 0.0)
}

func (s *CentralityTestSuite) TestBetweennessProgressReports(c *gc.C) {
	g := buildUndirectedPath(c, 5)
	tr := &captureTracker{}

	_, err := centrality.Betweenness(g, 2, tr)
	c.Assert(err, gc.IsNil)

	// One report per source node; the counter is monotonically
	// increasing even though worker completion order is not.
	c.Assert(tr.reports, gc.HasLen, 5)
	seen := make(map[int]bool)
	for _, current := range tr.reports {
		seen[current] = true
	}
	for i := 1; i <= 5; i++ {
		c.Assert(seen[i], gc.Equals, true, gc.Commentf("missing report %d", i))
	}
	c.Assert(tr.ended, gc.Equals, true)
}

func (s *CentralityTestSuite) TestBetweennessPropagatesGraphFailure(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	wantErr := xerrors.New("adjacency lookup failed")
	mg := mocks.NewMockGraph(ctrl)
	mg.EXPECT().NumNodes().Return(3, nil)
	mg.EXPECT().Adjacent(gomock.Any()).Return(nil, wantErr).MinTimes(1)

	_, err := centrality.Betweenness(mg, 2, nil)
	c.Assert(err, gc.NotNil)
	c.Assert(xerrors.Is(err, wantErr), gc.Equals, true)
}
