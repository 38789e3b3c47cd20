package centrality

import (
	"sync"

	"github.com/Ahmed-Sermani/graphrank/graph"
	"github.com/Ahmed-Sermani/graphrank/progress"
	"github.com/Ahmed-Sermani/graphrank/workers"
	"golang.org/x/xerrors"
)

// Betweenness computes betweenness centrality via Brandes' algorithm: for
// every node w, the score is the sum over all other nodes s of the
// fraction of shortest s->* paths that pass through w.
//
// The per-source accumulations run in parallel on numWorkers workers.
// Each worker sums its contributions into a private accumulator; the
// accumulators are merged in worker order once all sources have been
// processed, so no lock sits on the computation hot path. Because
// floating-point addition is not associative, repeated runs may still
// differ in the last bits when sources migrate between workers.
//
// Edges are treated as unweighted and directed; when an undirected graph
// is presented as two directed edges per link, each unordered pair is
// counted once per traversal direction (the sums are not halved).
func Betweenness(g graph.Graph, numWorkers int, tr progress.Tracker) (Result, error) {
	tracker := progress.OrNull(tr)

	numNodes, err := g.NumNodes()
	if err != nil {
		return nil, xerrors.Errorf("betweenness: %w", err)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	locals := make([][]float64, numWorkers)
	for i := range locals {
		locals[i] = make([]float64, numNodes)
	}

	// The done counter has its own lock; it orders progress updates
	// only and says nothing about which contributions have been merged.
	var (
		progressMu sync.Mutex
		done       int
	)

	err = workers.ForEach(numNodes, numWorkers, func(worker, source int) error {
		if err := accumulateFromSource(g, source, numNodes, locals[worker]); err != nil {
			return err
		}

		progressMu.Lock()
		done++
		current := done
		progressMu.Unlock()
		tracker.Report(current)
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("betweenness: %w", err)
	}

	res := newResult(numNodes)
	for _, local := range locals {
		for node, score := range local {
			res[node].Score += score
		}
	}

	res.Sort()
	tracker.End()
	return res, nil
}

// accumulateFromSource runs one single-source pass of Brandes' algorithm
// and adds the dependency score of every node (except the source) into
// scores. All working state is local to the call.
func accumulateFromSource(g graph.Graph, source, numNodes int, scores []float64) error {
	var (
		dist  = make([]int, numNodes)
		sigma = make([]float64, numNodes)
		delta = make([]float64, numNodes)
		preds = make([][]int, numNodes)
		stack = make([]int, 0, numNodes)
		queue = make([]int, 0, numNodes)
	)
	for node := 0; node < numNodes; node++ {
		dist[node] = -1
	}
	dist[source] = 0
	sigma[source] = 1

	// Breadth-first phase: count shortest paths and record predecessors.
	queue = append(queue, source)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		stack = append(stack, v)

		edges, err := g.Adjacent(v)
		if err != nil {
			return err
		}
		for _, e := range edges {
			w := e.To
			if dist[w] < 0 {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			if dist[w] == dist[v]+1 {
				sigma[w] += sigma[v]
				preds[w] = append(preds[w], v)
			}
		}
	}

	// Back-propagation phase: the stack pops nodes in non-increasing
	// distance from the source. sigma[w] >= 1 for every visited w, so
	// the division is safe.
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range preds[w] {
			delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
		}
		if w != source {
			scores[w] += delta[w]
		}
	}
	return nil
}
