package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnStageStart(ctx, "generate")
	p.OnStageComplete(ctx, "generate", time.Second, nil)
	p.OnPlanComplete(ctx, "grid", 42, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "plan")
	c.OnCacheMiss(ctx, "plan")
	c.OnCacheSet(ctx, "plan", 1024)

	NoopServerHooks{}.OnRequest(ctx, "POST", "/v1/plans", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() should return NoopServerHooks by default")
	}

	c := NewCounters()
	SetPipelineHooks(c)
	SetCacheHooks(c)
	SetServerHooks(c)
	if Pipeline() != PipelineHooks(c) || Cache() != CacheHooks(c) || Server() != ServerHooks(c) {
		t.Error("Set*Hooks should install the listener")
	}

	SetPipelineHooks(nil)
	if Pipeline() != PipelineHooks(c) {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset should restore NoopCacheHooks")
	}
}

func TestCounters(t *testing.T) {
	ctx := context.Background()
	c := NewCounters()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.OnCacheHit(ctx, "plan")
			c.OnRequest(ctx, "GET", "/healthz", 200, 0)
			if i%2 == 0 {
				c.OnCacheMiss(ctx, "plan")
			}
		}(i)
	}
	wg.Wait()

	c.OnPlanComplete(ctx, "grid", 10, 0, nil)
	c.OnPlanComplete(ctx, "grid", 0, 0, errors.New("boom"))
	c.OnRequest(ctx, "POST", "/v1/plans", 500, 0)

	got := c.Snapshot()
	want := Snapshot{Plans: 2, PlanErrors: 1, CacheHits: 10, CacheMisses: 5, Requests: 11, ServerErrors: 1}
	if got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
}
