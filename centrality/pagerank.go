package centrality

import (
	"github.com/Ahmed-Sermani/graphrank/graph"
	"github.com/Ahmed-Sermani/graphrank/progress"
	"golang.org/x/xerrors"
)

// PageRank computes PageRank scores over the directed graph by power
// iteration. The probability-mass vector starts uniform at 1/N and is
// recomputed for a fixed number of iterations as
//
//	w[i] = (1-d)/N + d * sum(v[n]/outdeg(n)) over incoming neighbors n
//
// Incoming neighbors with no outgoing edges are skipped: the mass held by
// a rank sink is dropped each iteration rather than redistributed, so the
// vector does not stay a strict probability distribution in graphs with
// dangling nodes.
//
// The damping factor must lie in [0, 1]; ErrInvalidDamping is returned
// before any iteration runs otherwise. There is no convergence test: all
// iterations always run.
func PageRank(g graph.Graph, damping float64, iterations int, tr progress.Tracker) (Result, error) {
	if err := checkDamping(damping); err != nil {
		return nil, xerrors.Errorf("pagerank: %w", err)
	}
	tracker := progress.OrNull(tr)

	numNodes, err := g.NumNodes()
	if err != nil {
		return nil, xerrors.Errorf("pagerank: %w", err)
	}

	var (
		incoming = make([][]int, numNodes)
		outdeg   = make([]float64, numNodes)
	)
	for node := 0; node < numNodes; node++ {
		if incoming[node], err = g.Incoming(node); err != nil {
			return nil, xerrors.Errorf("pagerank: %w", err)
		}
		edges, err := g.Adjacent(node)
		if err != nil {
			return nil, xerrors.Errorf("pagerank: %w", err)
		}
		outdeg[node] = float64(len(edges))
	}

	var (
		v    = make([]float64, numNodes)
		w    = make([]float64, numNodes)
		base = (1 - damping) / float64(numNodes)
	)
	for node := range v {
		v[node] = 1 / float64(numNodes)
	}

	for iter := 0; iter < iterations; iter++ {
		for node := 0; node < numNodes; node++ {
			w[node] = base
			for _, n := range incoming[node] {
				if outdeg[n] == 0 {
					continue
				}
				w[node] += damping * v[n] / outdeg[n]
			}
		}
		v, w = w, v
		tracker.Report(iter + 1)
	}

	res := newResult(numNodes)
	for node, score := range v {
		res[node].Score = score
	}

	res.Sort()
	tracker.End()
	return res, nil
}
