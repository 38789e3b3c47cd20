package ranker

import (
	"io"
	"runtime"
	"time"

	"github.com/Ahmed-Sermani/graphrank/graph"
	"github.com/Ahmed-Sermani/graphrank/scores"
	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// Algorithm names accepted by Config.Algorithms.
const (
	AlgoDegree       = "degree"
	AlgoBetweenness  = "betweenness"
	AlgoPageRank     = "pagerank"
	AlgoPersonalized = "personalized"
	AlgoEigenvector  = "eigenvector"
)

// Config encapsulates the settings for the ranker service.
type Config struct {
	// GraphAPI is the graph the service ranks.
	GraphAPI graph.Graph

	// ScoreStore receives the computed results of every run.
	ScoreStore scores.Store

	// Algorithms lists the centrality algorithms to execute each run.
	Algorithms []string

	// DampingFactor is the damping value used by the PageRank pass and
	// the continuation probability of the personalized walk.
	DampingFactor float64

	// Iterations is the fixed iteration count for the power-iteration
	// algorithms.
	Iterations int

	// WalkCenter is the node the personalized walk is biased toward.
	WalkCenter int

	// WalkMultiplier scales the personalized walk length (steps =
	// multiplier * node count).
	WalkMultiplier int

	// ComputeWorkers determines the worker count for the betweenness
	// computation. Defaults to the number of CPUs.
	ComputeWorkers int

	// UpdateInterval is the time between successive runs.
	UpdateInterval time.Duration

	// Clock drives the run schedule. Defaults to the wall clock.
	Clock clock.Clock

	// Logger for service log output. A nil value discards log entries.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error
	if cfg.GraphAPI == nil {
		err = multierror.Append(err, xerrors.New("graph API has not been provided"))
	}
	if cfg.ScoreStore == nil {
		err = multierror.Append(err, xerrors.New("score store has not been provided"))
	}
	if len(cfg.Algorithms) == 0 {
		err = multierror.Append(err, xerrors.New("at least one algorithm must be specified"))
	}
	for _, algo := range cfg.Algorithms {
		switch algo {
		case AlgoDegree, AlgoBetweenness, AlgoPageRank, AlgoPersonalized, AlgoEigenvector:
		default:
			err = multierror.Append(err, xerrors.Errorf("unsupported algorithm %q", algo))
		}
	}
	if cfg.DampingFactor < 0 || cfg.DampingFactor > 1 {
		err = multierror.Append(err, xerrors.New("damping factor must be in the [0, 1] range"))
	}
	if cfg.Iterations <= 0 {
		err = multierror.Append(err, xerrors.New("iteration count must be positive"))
	}
	if cfg.WalkMultiplier <= 0 {
		err = multierror.Append(err, xerrors.New("walk multiplier must be positive"))
	}
	if cfg.UpdateInterval <= 0 {
		err = multierror.Append(err, xerrors.New("update interval must be positive"))
	}
	if cfg.ComputeWorkers <= 0 {
		cfg.ComputeWorkers = runtime.NumCPU()
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.Logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		cfg.Logger = logrus.NewEntry(discard)
	}
	return err
}
