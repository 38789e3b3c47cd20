package redisdb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Ahmed-Sermani/graphrank/centrality"
	"github.com/Ahmed-Sermani/graphrank/scores"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/xerrors"
)

const keyPrefix = "scores:"

// RedisStore persists results as one sorted set per run/algorithm pair;
// the set member is the node id and the member score is the centrality
// score, so redis keeps the ranking order for us.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore returns a store backed by the provided redis client.
func NewRedisStore(client *redis.Client) (*RedisStore, error) {
	if client == nil {
		return nil, xerrors.New("redis store: nil client")
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) SaveResult(runID uuid.UUID, algorithm string, res centrality.Result) error {
	members := make([]redis.Z, len(res))
	for i, entry := range res {
		members[i] = redis.Z{
			Score:  entry.Score,
			Member: strconv.Itoa(entry.Node),
		}
	}

	ctx := context.Background()
	key := resultKey(runID, algorithm)

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(members) != 0 {
		pipe.ZAdd(ctx, key, members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return xerrors.Errorf("save result: %w", err)
	}
	return nil
}

func (s *RedisStore) Result(runID uuid.UUID, algorithm string) (centrality.Result, error) {
	ctx := context.Background()

	members, err := s.client.ZRevRangeWithScores(ctx, resultKey(runID, algorithm), 0, -1).Result()
	if err != nil {
		return nil, xerrors.Errorf("result: %w", err)
	}
	if len(members) == 0 {
		return nil, xerrors.Errorf("result for run %s algorithm %q: %w", runID, algorithm, scores.ErrUnknownRun)
	}

	res := make(centrality.Result, len(members))
	for i, member := range members {
		node, err := strconv.Atoi(member.Member.(string))
		if err != nil {
			return nil, xerrors.Errorf("result: parse node id: %w", err)
		}
		res[i] = centrality.Entry{Node: node, Score: member.Score}
	}

	// Redis orders ties lexicographically by member; restore the
	// canonical ascending-node tie order.
	res.Sort()
	return res, nil
}

func resultKey(runID uuid.UUID, algorithm string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, runID, algorithm)
}
