package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// Counters is an in-process listener that counts plans, cache traffic and
// requests. It is safe for concurrent use.
type Counters struct {
	plans       atomic.Int64
	planErrors  atomic.Int64
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
	requests    atomic.Int64
	serverErrs  atomic.Int64
}

// Snapshot is a point-in-time copy of Counters.
type Snapshot struct {
	Plans        int64 `json:"plans"`
	PlanErrors   int64 `json:"plan_errors"`
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
	Requests     int64 `json:"requests"`
	ServerErrors int64 `json:"server_errors"`
}

// NewCounters returns zeroed counters.
func NewCounters() *Counters { return &Counters{} }

func (c *Counters) OnStageStart(context.Context, string)                          {}
func (c *Counters) OnStageComplete(context.Context, string, time.Duration, error) {}

func (c *Counters) OnPlanComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	c.plans.Add(1)
	if err != nil {
		c.planErrors.Add(1)
	}
}

func (c *Counters) OnCacheHit(context.Context, string)      { c.cacheHits.Add(1) }
func (c *Counters) OnCacheMiss(context.Context, string)     { c.cacheMisses.Add(1) }
func (c *Counters) OnCacheSet(context.Context, string, int) {}

func (c *Counters) OnRequest(_ context.Context, _, _ string, status int, _ time.Duration) {
	c.requests.Add(1)
	if status >= 500 {
		c.serverErrs.Add(1)
	}
}

// Snapshot returns the current counts.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Plans:        c.plans.Load(),
		PlanErrors:   c.planErrors.Load(),
		CacheHits:    c.cacheHits.Load(),
		CacheMisses:  c.cacheMisses.Load(),
		Requests:     c.requests.Load(),
		ServerErrors: c.serverErrs.Load(),
	}
}

var (
	_ PipelineHooks = (*Counters)(nil)
	_ CacheHooks    = (*Counters)(nil)
	_ ServerHooks   = (*Counters)(nil)
)
