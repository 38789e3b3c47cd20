// Package scorestest provides a re-usable conformance suite for score
// store implementations.
package scorestest

import (
	"github.com/Ahmed-Sermani/graphrank/centrality"
	"github.com/Ahmed-Sermani/graphrank/scores"
	"github.com/google/uuid"
	gc "gopkg.in/check.v1"
	"golang.org/x/xerrors"
)

// SuiteBase defines a set of store-agnostic tests. Concrete store test
// suites embed it and call SetStore against a fresh store per test.
type SuiteBase struct {
	s scores.Store
}

// SetStore configures the suite to run tests against s.
func (s *SuiteBase) SetStore(store scores.Store) {
	s.s = store
}

func (s *SuiteBase) TestSaveAndLoadResult(c *gc.C) {
	runID := uuid.New()
	res := centrality.Result{
		{Node: 2, Score: 3.5},
		{Node: 0, Score: 1.25},
		{Node: 1, Score: 0.5},
	}

	c.Assert(s.s.SaveResult(runID, "pagerank", res), gc.IsNil)

	got, err := s.s.Result(runID, "pagerank")
	c.Assert(err, gc.IsNil)
	c.Assert(got, gc.DeepEquals, res)
}

func (s *SuiteBase) TestSaveReplacesPreviousResult(c *gc.C) {
	runID := uuid.New()

	c.Assert(s.s.SaveResult(runID, "degree", centrality.Result{
		{Node: 0, Score: 9},
		{Node: 1, Score: 1},
	}), gc.IsNil)
	c.Assert(s.s.SaveResult(runID, "degree", centrality.Result{
		{Node: 1, Score: 4},
		{Node: 0, Score: 2},
	}), gc.IsNil)

	got, err := s.s.Result(runID, "degree")
	c.Assert(err, gc.IsNil)
	c.Assert(got, gc.DeepEquals, centrality.Result{
		{Node: 1, Score: 4},
		{Node: 0, Score: 2},
	})
}

func (s *SuiteBase) TestTiedScoresOrderedByAscendingNode(c *gc.C) {
	runID := uuid.New()
	res := centrality.Result{
		{Node: 0, Score: 2},
		{Node: 1, Score: 1},
		{Node: 3, Score: 1},
		{Node: 10, Score: 1},
	}

	c.Assert(s.s.SaveResult(runID, "betweenness", res), gc.IsNil)

	got, err := s.s.Result(runID, "betweenness")
	c.Assert(err, gc.IsNil)
	c.Assert(got, gc.DeepEquals, res)
}

func (s *SuiteBase) TestUnknownRun(c *gc.C) {
	_, err := s.s.Result(uuid.New(), "pagerank")
	c.Assert(xerrors.Is(err, scores.ErrUnknownRun), gc.Equals, true)
}

func (s *SuiteBase) TestRunsAndAlgorithmsAreIsolated(c *gc.C) {
	runA, runB := uuid.New(), uuid.New()

	c.Assert(s.s.SaveResult(runA, "degree", centrality.Result{{Node: 0, Score: 1}}), gc.IsNil)
	c.Assert(s.s.SaveResult(runA, "pagerank", centrality.Result{{Node: 0, Score: 2}}), gc.IsNil)
	c.Assert(s.s.SaveResult(runB, "degree", centrality.Result{{Node: 0, Score: 3}}), gc.IsNil)

	got, err := s.s.Result(runA, "degree")
	c.Assert(err, gc.IsNil)
	c.Assert(got[0].Score, gc.Equals, 1.0)

	got, err = s.s.Result(runA, "pagerank")
	c.Assert(err, gc.IsNil)
	c.Assert(got[0].Score, gc.Equals, 2.0)

	got, err = s.s.Result(runB, "degree")
	c.Assert(err, gc.IsNil)
	c.Assert(got[0].Score, gc.Equals, 3.0)
}
