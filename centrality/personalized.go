package centrality

import (
	"math/rand"
	"time"

	"github.com/Ahmed-Sermani/graphrank/graph"
	"github.com/Ahmed-Sermani/graphrank/progress"
	"golang.org/x/xerrors"
)

// PersonalizedPageRank scores nodes by simulating a random walk biased
// toward center. The walk takes passMultiplier * N steps; each step
// increments the visit count of the current node and then, with
// probability damping, hops to a uniformly random outgoing neighbor
// (resetting to center when the current node is a sink), otherwise resets
// to center. The returned scores are raw visit counts, not normalized.
//
// Note the parameter convention: damping is the probability of
// *continuing* the walk, the complement of the teleport probability used
// by PageRank. Callers porting tuned values between the two must invert.
//
// rng supplies the walk's randomness so callers can pin a seed for
// reproducible runs; when rng is nil a time-seeded generator is used and
// results vary run-to-run.
func PersonalizedPageRank(g graph.Graph, center int, damping float64, passMultiplier int, rng *rand.Rand, tr progress.Tracker) (Result, error) {
	if err := checkDamping(damping); err != nil {
		return nil, xerrors.Errorf("personalized pagerank: %w", err)
	}
	tracker := progress.OrNull(tr)
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	numNodes, err := g.NumNodes()
	if err != nil {
		return nil, xerrors.Errorf("personalized pagerank: %w", err)
	}
	if center < 0 || center >= numNodes {
		return nil, xerrors.Errorf("personalized pagerank: center %d: %w", center, graph.ErrUnknownNode)
	}

	var (
		visits  = make([]float64, numNodes)
		steps   = passMultiplier * numNodes
		current = center
	)
	for step := 0; step < steps; step++ {
		visits[current]++

		if rng.Float64() < damping {
			edges, err := g.Adjacent(current)
			if err != nil {
				return nil, xerrors.Errorf("personalized pagerank: %w", err)
			}
			if len(edges) == 0 {
				current = center
			} else {
				current = edges[rng.Intn(len(edges))].To
			}
		} else {
			current = center
		}
		tracker.Report(step + 1)
	}

	res := newResult(numNodes)
	for node, count := range visits {
		res[node].Score = count
	}

	res.Sort()
	tracker.End()
	return res, nil
}
