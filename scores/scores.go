// Package scores defines the persistence interface for computed
// centrality results. The centrality core itself never persists anything;
// persistence is a concern of the surrounding services.
package scores

import (
	"github.com/Ahmed-Sermani/graphrank/centrality"
	"github.com/google/uuid"
	"golang.org/x/xerrors"
)

// ErrUnknownRun is returned when no result has been saved for the
// requested run/algorithm combination.
var ErrUnknownRun = xerrors.New("unknown run")

// Store is implemented by backends that persist centrality results,
// keyed by the ranking run that produced them and the algorithm name.
type Store interface {
	// SaveResult persists res, replacing any previous result for the
	// same run/algorithm pair.
	SaveResult(runID uuid.UUID, algorithm string, res centrality.Result) error

	// Result returns the persisted result for the run/algorithm pair in
	// descending score order.
	Result(runID uuid.UUID, algorithm string) (centrality.Result, error)
}
