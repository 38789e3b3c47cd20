package main

import (
	"bufio"
	"context"
	"flag"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Ahmed-Sermani/graphrank/graph"
	"github.com/Ahmed-Sermani/graphrank/graph/store/cdb"
	memgraph "github.com/Ahmed-Sermani/graphrank/graph/store/memory"
	"github.com/Ahmed-Sermani/graphrank/scores"
	memscores "github.com/Ahmed-Sermani/graphrank/scores/store/memory"
	"github.com/Ahmed-Sermani/graphrank/scores/store/redisdb"
	"github.com/Ahmed-Sermani/graphrank/service"
	"github.com/Ahmed-Sermani/graphrank/service/ranker"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

var (
	appName = "graphrank"
	appSha  = ""
)

func main() {
	logger := logrus.WithFields(logrus.Fields{
		"app": appName,
		"sha": appSha,
	})

	if err := run(logger); err != nil {
		logger.WithError(err).Error("terminating due to error")
		os.Exit(1)
	}
}

func run(logger *logrus.Entry) error {
	// Load environment overrides before flag parsing so flag defaults
	// stated via os.Getenv pick them up.
	_ = godotenv.Load()

	svcGroup, metricsAddr, err := setupServices(logger)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	svcGroup = append(svcGroup, &metricsService{
		addr:   metricsAddr,
		mux:    mux,
		logger: logger.WithField("service", "metrics"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGHUP)
	defer cancel()

	return svcGroup.Run(ctx)
}

func setupServices(logger *logrus.Entry) (service.Group, string, error) {
	var rankerCfg ranker.Config

	algorithms := flag.String("ranker-algorithms", "degree,betweenness,pagerank,eigenvector", "Comma-separated list of centrality algorithms to run (degree, betweenness, pagerank, personalized, eigenvector)")
	flag.Float64Var(&rankerCfg.DampingFactor, "ranker-damping-factor", 0.85, "The damping factor for the PageRank family of algorithms")
	flag.IntVar(&rankerCfg.Iterations, "ranker-iterations", 30, "The fixed iteration count for the power-iteration algorithms")
	flag.IntVar(&rankerCfg.WalkCenter, "ranker-walk-center", 0, "The center node for the personalized PageRank walk")
	flag.IntVar(&rankerCfg.WalkMultiplier, "ranker-walk-multiplier", 10, "The walk length multiplier for personalized PageRank (steps = multiplier * nodes)")
	flag.IntVar(&rankerCfg.ComputeWorkers, "ranker-num-workers", runtime.NumCPU(), "The number of workers to use for calculating betweenness scores (defaults to number of CPUs)")
	flag.DurationVar(&rankerCfg.UpdateInterval, "ranker-update-interval", time.Hour, "The time between subsequent ranking runs")

	graphURI := flag.String("graph-uri", "in-memory://", "The URI for connecting to the graph store (supported URIs: in-memory://, postgresql://user@host:26257/graphrank?sslmode=disable)")
	graphFile := flag.String("graph-file", "", "An optional edge-list file (src dst [weight] per line) to load into the graph store on startup")
	scoresURI := flag.String("scores-uri", "in-memory://", "The URI for connecting to the score store (supported URIs: in-memory://, redis://host:6379)")
	metricsAddr := flag.String("metrics-listen-addr", ":6060", "The address to serve prometheus metrics on")
	flag.Parse()

	graphStore, err := getGraphStore(*graphURI, logger)
	if err != nil {
		return nil, "", err
	}
	if *graphFile != "" {
		if err := loadEdgeList(graphStore, *graphFile, logger); err != nil {
			return nil, "", err
		}
	}

	scoreStore, err := getScoreStore(*scoresURI, logger)
	if err != nil {
		return nil, "", err
	}

	rankerCfg.GraphAPI = graphStore
	rankerCfg.ScoreStore = scoreStore
	rankerCfg.Algorithms = strings.Split(*algorithms, ",")
	rankerCfg.Logger = logger.WithField("service", "ranker")

	var svcGroup service.Group
	svc, err := ranker.NewService(rankerCfg)
	if err != nil {
		return nil, "", err
	}
	svcGroup = append(svcGroup, svc)

	return svcGroup, *metricsAddr, nil
}

// rankGraph is the combined graph surface main needs: the read interface
// consumed by the ranker plus the mutators used by the edge-list loader.
type rankGraph interface {
	graph.Graph

	AddNode() (int, error)
	UpsertEdge(src, dst int, weight float64) error
}

func getGraphStore(graphURI string, logger *logrus.Entry) (rankGraph, error) {
	if graphURI == "" {
		return nil, xerrors.Errorf("graph store URI must be specified with --graph-uri")
	}

	uri, err := url.Parse(graphURI)
	if err != nil {
		return nil, xerrors.Errorf("could not parse graph store URI: %w", err)
	}

	switch uri.Scheme {
	case "in-memory":
		logger.Info("using in-memory graph")
		return memgraph.NewInMemoryGraph(), nil
	case "postgresql":
		logger.Info("using CDB graph")
		return cdb.NewCockroachDBGraph(graphURI)
	default:
		return nil, xerrors.Errorf("unsupported graph store URI scheme: %q", uri.Scheme)
	}
}

func getScoreStore(scoresURI string, logger *logrus.Entry) (scores.Store, error) {
	if scoresURI == "" {
		return nil, xerrors.Errorf("score store URI must be specified with --scores-uri")
	}

	uri, err := url.Parse(scoresURI)
	if err != nil {
		return nil, xerrors.Errorf("could not parse score store URI: %w", err)
	}

	switch uri.Scheme {
	case "in-memory":
		logger.Info("using in-memory score store")
		return memscores.NewInMemoryStore(), nil
	case "redis":
		logger.Info("using redis score store")
		opts, err := redis.ParseURL(scoresURI)
		if err != nil {
			return nil, xerrors.Errorf("could not parse redis URI: %w", err)
		}
		return redisdb.NewRedisStore(redis.NewClient(opts))
	default:
		return nil, xerrors.Errorf("unsupported score store URI scheme: %q", uri.Scheme)
	}
}

// loadEdgeList populates g from a whitespace-delimited edge-list file:
// one "src dst [weight]" triple per line, '#' lines ignored. Nodes are
// allocated densely up to the highest id referenced.
func loadEdgeList(g rankGraph, path string, logger *logrus.Entry) error {
	f, err := os.Open(path)
	if err != nil {
		return xerrors.Errorf("load edge list: %w", err)
	}
	defer func() { _ = f.Close() }()

	type edge struct {
		src, dst int
		weight   float64
	}
	var (
		edges  []edge
		maxID  = -1
		lineNo int
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return xerrors.Errorf("load edge list: line %d: expected at least src and dst", lineNo)
		}

		var e edge
		if e.src, err = strconv.Atoi(fields[0]); err != nil {
			return xerrors.Errorf("load edge list: line %d: %w", lineNo, err)
		}
		if e.dst, err = strconv.Atoi(fields[1]); err != nil {
			return xerrors.Errorf("load edge list: line %d: %w", lineNo, err)
		}
		e.weight = 1.0
		if len(fields) > 2 {
			if e.weight, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return xerrors.Errorf("load edge list: line %d: %w", lineNo, err)
			}
		}

		if e.src > maxID {
			maxID = e.src
		}
		if e.dst > maxID {
			maxID = e.dst
		}
		edges = append(edges, e)
	}
	if err := scanner.Err(); err != nil {
		return xerrors.Errorf("load edge list: %w", err)
	}

	for i := 0; i <= maxID; i++ {
		if _, err := g.AddNode(); err != nil {
			return xerrors.Errorf("load edge list: %w", err)
		}
	}
	for _, e := range edges {
		if err := g.UpsertEdge(e.src, e.dst, e.weight); err != nil {
			return xerrors.Errorf("load edge list: %w", err)
		}
	}

	logger.WithFields(logrus.Fields{
		"nodes": maxID + 1,
		"edges": len(edges),
	}).Info("loaded edge list")
	return nil
}

// metricsService exposes the prometheus metrics endpoint as a member of
// the service group.
type metricsService struct {
	addr   string
	mux    *http.ServeMux
	logger *logrus.Entry
}

func (svc *metricsService) Name() string { return "metrics" }

func (svc *metricsService) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    svc.addr,
		Handler: svc.mux,
	}

	errC := make(chan error, 1)
	go func() {
		svc.logger.WithField("addr", svc.addr).Info("serving metrics")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
