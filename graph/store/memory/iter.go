package memory

// nodeIterator is a graph.NodeIterator over the dense id range captured
// when the iterator was created.
type nodeIterator struct {
	numNodes int
	curIdx   int
}

func (i *nodeIterator) Next() bool {
	if i.curIdx >= i.numNodes {
		return false
	}
	i.curIdx++
	return true
}

func (i *nodeIterator) Node() int {
	return i.curIdx - 1
}

func (i *nodeIterator) Error() error {
	return nil
}

func (i *nodeIterator) Close() error {
	return nil
}
