package centrality

import "sort"

// Entry pairs a node id with its computed centrality score. The meaning
// of the score depends on the algorithm that produced it (a count, a
// path-dependency sum, a probability, a visit count or a normalized
// weight).
type Entry struct {
	Node  int
	Score float64
}

// Result is the ordered sequence of scores produced by a centrality
// computation: one entry per node, sorted by descending score. Equal
// scores are ordered by ascending node id so that repeated runs over the
// same scores produce the same ordering.
type Result []Entry

// newResult allocates a result with one zero-score entry per node id in
// [0, numNodes).
func newResult(numNodes int) Result {
	res := make(Result, numNodes)
	for node := 0; node < numNodes; node++ {
		res[node].Node = node
	}
	return res
}

// Sort orders the result by descending score, breaking ties by ascending
// node id. Results returned by the algorithms in this package are already
// sorted; stores that rebuild a Result from a backend can use Sort to
// restore the canonical order.
func (r Result) Sort() {
	sort.Slice(r, func(i, j int) bool {
		if r[i].Score != r[j].Score {
			return r[i].Score > r[j].Score
		}
		return r[i].Node < r[j].Node
	})
}
