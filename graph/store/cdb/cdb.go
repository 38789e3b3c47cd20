package cdb

import (
	"database/sql"

	"github.com/Ahmed-Sermani/graphrank/graph"
	"github.com/lib/pq"
	"golang.org/x/xerrors"
)

const (
	addNodeQuery = `
  INSERT INTO nodes (id) SELECT COUNT(*) FROM nodes RETURNING id
  `
	upsertEdgeQuery = `
  INSERT INTO edges (src, dst, weight) VALUES ($1, $2, $3)
  ON CONFLICT (src, dst) DO UPDATE SET weight=$3
  `
	countNodesQuery = `
  SELECT COUNT(*) FROM nodes
  `
	nodeExistsQuery = `
  SELECT EXISTS(SELECT 1 FROM nodes WHERE id=$1)
  `
	iterNodesQuery = `
  SELECT id FROM nodes
  `
	adjacentQuery = `
  SELECT dst, weight FROM edges WHERE src=$1
  `
	incomingQuery = `
  SELECT src FROM edges WHERE dst=$1
  `
)

// CockroachDBGraph persists the graph in a CockroachDB instance. Node ids
// stay dense because new ids are allocated from the current node count.
type CockroachDBGraph struct {
	db *sql.DB
}

func NewCockroachDBGraph(dsn string) (*CockroachDBGraph, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	return &CockroachDBGraph{db}, nil
}

func (c *CockroachDBGraph) Close() error {
	return c.db.Close()
}

// AddNode allocates the next node id and returns it.
func (c *CockroachDBGraph) AddNode() (int, error) {
	var id int
	if err := c.db.QueryRow(addNodeQuery).Scan(&id); err != nil {
		return 0, xerrors.Errorf("add node: %w", err)
	}
	return id, nil
}

// UpsertEdge creates a directed src->dst edge or updates the weight of an
// existing one.
func (c *CockroachDBGraph) UpsertEdge(src, dst int, weight float64) error {
	if src < 0 || dst < 0 {
		return xerrors.Errorf("upsert edge: %w", graph.ErrInvalidNode)
	}

	if _, err := c.db.Exec(upsertEdgeQuery, src, dst, weight); err != nil {
		if isForeignKeyError(err) {
			err = graph.ErrUnknownNode
		}
		return xerrors.Errorf("upsert edge: %w", err)
	}
	return nil
}

func (c *CockroachDBGraph) NumNodes() (int, error) {
	var n int
	if err := c.db.QueryRow(countNodesQuery).Scan(&n); err != nil {
		return 0, xerrors.Errorf("num nodes: %w", err)
	}
	return n, nil
}

func (c *CockroachDBGraph) Nodes() (graph.NodeIterator, error) {
	rows, err := c.db.Query(iterNodesQuery)
	if err != nil {
		return nil, xerrors.Errorf("nodes: %w", err)
	}
	return &nodeIterator{rows: rows}, nil
}

func (c *CockroachDBGraph) Adjacent(node int) ([]graph.Edge, error) {
	if err := c.checkNode("adjacent", node); err != nil {
		return nil, err
	}

	rows, err := c.db.Query(adjacentQuery, node)
	if err != nil {
		return nil, xerrors.Errorf("adjacent: %w", err)
	}
	defer rows.Close()

	var edges []graph.Edge
	for rows.Next() {
		var e graph.Edge
		if err := rows.Scan(&e.To, &e.Weight); err != nil {
			return nil, xerrors.Errorf("adjacent: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, xerrors.Errorf("adjacent: %w", err)
	}
	return edges, nil
}

func (c *CockroachDBGraph) Incoming(node int) ([]int, error) {
	if err := c.checkNode("incoming", node); err != nil {
		return nil, err
	}

	rows, err := c.db.Query(incomingQuery, node)
	if err != nil {
		return nil, xerrors.Errorf("incoming: %w", err)
	}
	defer rows.Close()

	var from []int
	for rows.Next() {
		var src int
		if err := rows.Scan(&src); err != nil {
			return nil, xerrors.Errorf("incoming: %w", err)
		}
		from = append(from, src)
	}
	if err := rows.Err(); err != nil {
		return nil, xerrors.Errorf("incoming: %w", err)
	}
	return from, nil
}

func (c *CockroachDBGraph) checkNode(op string, node int) error {
	var exists bool
	if err := c.db.QueryRow(nodeExistsQuery, node).Scan(&exists); err != nil {
		return xerrors.Errorf("%s: %w", op, err)
	}
	if !exists {
		return xerrors.Errorf("%s: node %d: %w", op, node, graph.ErrUnknownNode)
	}
	return nil
}

func isForeignKeyError(err error) bool {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return false
	}

	return pqErr.Code.Name() == "foreign_key_violation"
}
