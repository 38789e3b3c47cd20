package centrality

import (
	"github.com/Ahmed-Sermani/graphrank/graph"
	"github.com/Ahmed-Sermani/graphrank/progress"
	"golang.org/x/xerrors"
)

// Eigenvector computes eigenvector centrality by undamped power
// iteration: the weight vector starts at 1.0 for every node and, for a
// fixed number of iterations, each node pushes its current weight to all
// of its outgoing neighbors. There is no per-iteration normalization, so
// the vector magnitude can grow without bound during the run; only the
// final vector is L1-normalized (every entry divided by the sum of all
// entries) before being returned.
func Eigenvector(g graph.Graph, iterations int, tr progress.Tracker) (Result, error) {
	tracker := progress.OrNull(tr)

	numNodes, err := g.NumNodes()
	if err != nil {
		return nil, xerrors.Errorf("eigenvector: %w", err)
	}

	adjacent := make([][]graph.Edge, numNodes)
	for node := 0; node < numNodes; node++ {
		if adjacent[node], err = g.Adjacent(node); err != nil {
			return nil, xerrors.Errorf("eigenvector: %w", err)
		}
	}

	var (
		v = make([]float64, numNodes)
		w = make([]float64, numNodes)
	)
	for node := range v {
		v[node] = 1
	}

	for iter := 0; iter < iterations; iter++ {
		for node := range w {
			w[node] = 0
		}
		for node := 0; node < numNodes; node++ {
			for _, e := range adjacent[node] {
				w[e.To] += v[node]
			}
		}
		v, w = w, v
		tracker.Report(iter + 1)
	}

	var sum float64
	for _, weight := range v {
		sum += weight
	}

	res := newResult(numNodes)
	for node, weight := range v {
		if sum != 0 {
			res[node].Score = weight / sum
		}
	}

	res.Sort()
	tracker.End()
	return res, nil
}
