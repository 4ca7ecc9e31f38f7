package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/tileplan/pkg/cache"
	"github.com/matzehuels/tileplan/pkg/errors"
	"github.com/matzehuels/tileplan/pkg/observability"
	"github.com/matzehuels/tileplan/pkg/pattern"
	"github.com/matzehuels/tileplan/pkg/project"
	"github.com/matzehuels/tileplan/pkg/report"
	"github.com/matzehuels/tileplan/pkg/scale"
	"github.com/matzehuels/tileplan/pkg/shape"
	"github.com/matzehuels/tileplan/pkg/stats"
	"github.com/matzehuels/tileplan/pkg/tile"
)

// Runner encapsulates plan execution with caching.
// Both CLI and API use it so that caching lives in one place.
//
// The Runner is stateless except for the cache and logger; it doesn't store
// results. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// cachedPlan is the cached part of a Result.
type cachedPlan struct {
	Validation shape.ValidationResult `json:"validation"`
	Generation tile.GenerationResult  `json:"generation"`
	Report     report.Report          `json:"report"`
}

// Execute plans a project with default options.
func (r *Runner) Execute(ctx context.Context, p project.Project) (*Result, error) {
	return r.Run(ctx, Options{Project: p})
}

// Run executes the complete plan with caching.
func (r *Runner) Run(ctx context.Context, opts Options) (result *Result, err error) {
	start := time.Now()
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}
	p := opts.Project

	defer func() {
		tiles := 0
		if result != nil {
			tiles = result.Generation.TotalTiles
			result.Stats.TotalTime = time.Since(start)
		}
		observability.Pipeline().OnPlanComplete(ctx, p.Layout.Pattern, tiles, time.Since(start), err)
	}()

	hash, err := opts.InputHash()
	if err != nil {
		return nil, err
	}
	key := r.Keyer.PlanKey(hash, opts.PlanKeyOpts())
	result = &Result{ProjectID: p.ID, InputHash: hash}

	if !opts.Refresh {
		if plan, ok := r.lookup(ctx, key); ok {
			result.Validation = plan.Validation
			result.Generation = plan.Generation
			result.Report = plan.Report
			result.Report.ProjectID = p.ID
			result.CacheInfo.PlanHit = true
			opts.Logger.Debug("plan cache hit", "project", p.Name, "pattern", p.Layout.Pattern)
			return result, nil
		}
	}

	// Stage 1: Validate
	t := time.Now()
	nodes, edges := p.Shape()
	err = r.stage(ctx, StageValidate, func() error {
		result.Validation = shape.ValidateLayoutShape(nodes, edges)
		if !result.Validation.IsValid {
			return errors.New(errors.ErrCodeInvalidPolygon, "invalid room outline: %s", strings.Join(result.Validation.Errors, "; "))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	result.Stats.ValidateTime = time.Since(t)
	opts.Logger.Info("validated outline",
		"nodes", len(nodes),
		"warnings", len(result.Validation.Warnings),
		"duration", result.Stats.ValidateTime)

	// Stage 2: Scale
	var res scale.Resolution
	err = r.stage(ctx, StageScale, func() error {
		res, err = shape.ResolveScale(nodes, edges)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	opts.Logger.Debug("resolved scale",
		"px_per_unit", res.ScaleFactor,
		"unit", res.Unit,
		"samples", res.Samples,
		"area_m2", res.AreaM2)

	// Stage 3: Generate and clip
	t = time.Now()
	ws := NewWorkspace(shape.Outline(nodes, edges), res, p.Layout.PixelsPerMeter)
	err = r.stage(ctx, StageGenerate, func() error {
		result.Generation, err = GeneratePattern(ws.PatternConfig(p), ws.Polygon, p.Layout.Clip)
		return err
	})
	if err != nil {
		if errors.IsFatalConfig(err) {
			opts.Logger.Warn("cannot generate", "pattern", p.Layout.Pattern, "err", err)
		}
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Stats.GenerateTime = time.Since(t)
	opts.Logger.Info("generated pattern",
		"pattern", p.Layout.Pattern,
		"clip", p.Layout.Clip,
		"tiles", result.Generation.TotalTiles,
		"cut", result.Generation.CutTiles,
		"duration", result.Stats.GenerateTime)

	// Stage 4: Aggregate
	t = time.Now()
	var details stats.DetailedResults
	_ = r.stage(ctx, StageAggregate, func() error {
		details = stats.Advanced(res, p.Tile, result.Generation, p.StatsOptions())
		return nil
	})
	result.Stats.AggregateTime = time.Since(t)
	opts.Logger.Info("aggregated results",
		"purchase", details.PurchaseTiles,
		"waste", fmt.Sprintf("%.1f%%", details.AdjustedWastePercentage),
		"complexity", details.Complexity,
		"duration", result.Stats.AggregateTime)

	// Stage 5: Report
	_ = r.stage(ctx, StageReport, func() error {
		result.Report = report.DetailedReport(p, details)
		return nil
	})

	r.store(ctx, key, cachedPlan{
		Validation: result.Validation,
		Generation: result.Generation,
		Report:     result.Report,
	})
	return result, nil
}

// Compare plans the project once per pattern, concurrently. An empty list
// compares every registered pattern. Results are returned in pattern order.
func (r *Runner) Compare(ctx context.Context, p project.Project, patterns []string) ([]*Result, error) {
	if len(patterns) == 0 {
		patterns = pattern.Names()
	}
	// Normalise once so every pattern shares the project ID.
	if err := p.Normalize(); err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}
	results := make([]*Result, len(patterns))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range patterns {
		g.Go(func() error {
			res, err := r.Execute(ctx, p.WithPattern(name))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) stage(ctx context.Context, name string, fn func() error) error {
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, name)
	start := time.Now()
	err := fn()
	hooks.OnStageComplete(ctx, name, time.Since(start), err)
	return err
}

func (r *Runner) lookup(ctx context.Context, key string) (cachedPlan, bool) {
	var plan cachedPlan
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "plan")
		return plan, false
	}
	if err := json.Unmarshal(data, &plan); err != nil {
		// Unreadable entries are recomputed and overwritten.
		observability.Cache().OnCacheMiss(ctx, "plan")
		return plan, false
	}
	observability.Cache().OnCacheHit(ctx, "plan")
	return plan, true
}

func (r *Runner) store(ctx context.Context, key string, plan cachedPlan) {
	data, err := json.Marshal(plan)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLPlan); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "plan", len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
