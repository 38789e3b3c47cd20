package cdb

import "database/sql"

// nodeIterator is a graph.NodeIterator backed by a sql.Rows cursor.
type nodeIterator struct {
	rows    *sql.Rows
	lastErr error
	node    int
}

func (i *nodeIterator) Next() bool {
	if i.lastErr != nil || !i.rows.Next() {
		return false
	}
	i.lastErr = i.rows.Scan(&i.node)
	return i.lastErr == nil
}

func (i *nodeIterator) Node() int {
	return i.node
}

func (i *nodeIterator) Error() error {
	if i.lastErr != nil {
		return i.lastErr
	}
	return i.rows.Err()
}

func (i *nodeIterator) Close() error {
	return i.rows.Close()
}
