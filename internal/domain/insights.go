package domain

// CacheKind separates data-cache and photo-cache counters.
type CacheKind string

const (
	KindPlace CacheKind = "place"
	KindPhoto CacheKind = "photo"
)

// Outcome is what happened to one cache lookup.
type Outcome string

const (
	OutcomeHit             Outcome = "hit"
	OutcomeMiss            Outcome = "miss"
	OutcomeUpstreamFailure Outcome = "upstream_failure"
	OutcomeStoreFailure    Outcome = "store_failure"
	OutcomeMalformed       Outcome = "malformed"
)

// Insights holds one day of counters per cache kind.
type Insights struct {
	Day    string                          `json:"day"`
	Counts map[CacheKind]map[Outcome]int64 `json:"counts"`
}

// HitRatio is hits / (hits + misses) for kind, 0 when there were no lookups.
func (i Insights) HitRatio(kind CacheKind) float64 {
	c := i.Counts[kind]
	hits := c[OutcomeHit]
	total := hits + c[OutcomeMiss]
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}
