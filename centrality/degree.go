package centrality

import (
	"github.com/Ahmed-Sermani/graphrank/graph"
	"golang.org/x/xerrors"
)

// Degree computes degree centrality: each node is scored by its number of
// outgoing edges.
func Degree(g graph.Graph) (Result, error) {
	numNodes, err := g.NumNodes()
	if err != nil {
		return nil, xerrors.Errorf("degree: %w", err)
	}
	res := newResult(numNodes)

	it, err := g.Nodes()
	if err != nil {
		return nil, xerrors.Errorf("degree: %w", err)
	}
	defer func() { _ = it.Close() }()

	for it.Next() {
		node := it.Node()
		edges, err := g.Adjacent(node)
		if err != nil {
			return nil, xerrors.Errorf("degree: %w", err)
		}
		res[node].Score = float64(len(edges))
	}
	if err := it.Error(); err != nil {
		return nil, xerrors.Errorf("degree: %w", err)
	}

	res.Sort()
	return res, nil
}
