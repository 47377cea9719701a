package storests

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/IsaacDSC/placecache/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	insightsPrefix = "placecache:insights"
	separator      = ":"
	dayLayout      = "2006-01-02"
	retention      = 30 * 24 * time.Hour
)

// Store keeps daily cache counters in one redis hash per day.
type Store struct {
	cache *redis.Client
	now   func() time.Time
}

func NewStore(cache *redis.Client) *Store {
	return &Store{cache: cache, now: time.Now}
}

func (s *Store) Record(ctx context.Context, kind domain.CacheKind, outcome domain.Outcome) error {
	key := s.key(s.now().UTC().Format(dayLayout))

	_, err := s.cache.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, field(kind, outcome), 1)
		pipe.Expire(ctx, key, retention)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record %s %s: %w", kind, outcome, err)
	}

	return nil
}

func (s *Store) Today(ctx context.Context) (domain.Insights, error) {
	return s.Day(ctx, s.now().UTC().Format(dayLayout))
}

func (s *Store) Day(ctx context.Context, day string) (domain.Insights, error) {
	values, err := s.cache.HGetAll(ctx, s.key(day)).Result()
	if err != nil {
		return domain.Insights{}, fmt.Errorf("failed to get insights for %s: %w", day, err)
	}

	insights := domain.Insights{
		Day:    day,
		Counts: make(map[domain.CacheKind]map[domain.Outcome]int64),
	}

	for f, v := range values {
		kind, outcome, ok := strings.Cut(f, separator)
		if !ok {
			continue
		}

		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}

		k := domain.CacheKind(kind)
		if insights.Counts[k] == nil {
			insights.Counts[k] = make(map[domain.Outcome]int64)
		}
		insights.Counts[k][domain.Outcome(outcome)] = n
	}

	return insights, nil
}

func (s *Store) key(values ...string) string {
	v := []string{insightsPrefix}
	v = append(v, values...)
	return strings.Join(v, separator)
}

func field(kind domain.CacheKind, outcome domain.Outcome) string {
	return string(kind) + separator + string(outcome)
}
