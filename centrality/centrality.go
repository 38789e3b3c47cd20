// Package centrality computes node-importance metrics over the read-only
// graph.Graph query interface: degree, betweenness (Brandes' algorithm,
// parallelized over sources), PageRank, personalized PageRank (random-walk
// simulation) and eigenvector centrality.
//
// All five algorithms share the same contract: they return a Result with
// exactly one entry per node id in [0, NumNodes), sorted by descending
// score. Failures surfaced by the graph or the worker primitive abort the
// call; partial results are never returned.
package centrality

import "golang.org/x/xerrors"

// ErrInvalidDamping is returned when a damping factor outside the [0, 1]
// range is supplied. It is raised before any computation begins.
var ErrInvalidDamping = xerrors.New("damping factor must be in the [0, 1] range")

func checkDamping(damping float64) error {
	if damping < 0 || damping > 1 {
		return xerrors.Errorf("damping factor %v: %w", damping, ErrInvalidDamping)
	}
	return nil
}
