// Package pipeline runs the complete tiling plan for a project and exposes
// the engine's public entry points.
//
// This package implements the validate → scale → generate → clip →
// aggregate → report flow. The CLI and the HTTP API both run plans through
// it.
//
// # Stages
//
//  1. Validate: check that the outline is closed, simple and measured
//  2. Scale: resolve pixels per unit from the measured edges
//  3. Generate: lay the pattern over the outline's bounding box
//  4. Clip: trim the lattice to the outline and classify the cut tiles
//  5. Aggregate: counts, waste, purchase quantities, grout, time and cost
//  6. Report: shopping list, summary, recommendations and warnings
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, proj)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Report.Summary)
//
// The stages are also available on their own:
//
//	v := pipeline.ValidateLayoutShape(nodes, edges)
//	gen, err := pipeline.GeneratePattern(cfg, polygon, clip.ModeHeuristic)
//	details, err := pipeline.ComputeAdvancedResults(nodes, edges, spec, gen, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tileplan/pkg/cache"
	"github.com/matzehuels/tileplan/pkg/errors"
	"github.com/matzehuels/tileplan/pkg/project"
	"github.com/matzehuels/tileplan/pkg/report"
	"github.com/matzehuels/tileplan/pkg/shape"
	"github.com/matzehuels/tileplan/pkg/stats"
	"github.com/matzehuels/tileplan/pkg/tile"
)

// Stage names reported to observability hooks.
const (
	StageValidate  = "validate"
	StageScale     = "scale"
	StageGenerate  = "generate"
	StageAggregate = "aggregate"
	StageReport    = "report"
)

// Options configures a plan run.
type Options struct {
	Project project.Project `json:"project"`

	// Refresh recomputes the plan even when a cached copy exists.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a plan run.
type Result struct {
	ProjectID string `json:"project_id"`

	// InputHash identifies the plan inputs; equal hashes mean equal plans.
	InputHash string `json:"input_hash"`

	Validation shape.ValidationResult `json:"validation"`
	Generation tile.GenerationResult  `json:"generation"`

	// Report holds the detailed results and the shopping list.
	Report report.Report `json:"report"`

	Stats     Stats     `json:"stats"`
	CacheInfo CacheInfo `json:"cache_info"`
}

// Stats contains timing information of a run.
type Stats struct {
	ValidateTime  time.Duration `json:"validate_time"`
	GenerateTime  time.Duration `json:"generate_time"`
	AggregateTime time.Duration `json:"aggregate_time"`
	TotalTime     time.Duration `json:"total_time"`
}

// CacheInfo tracks whether the plan came from the cache.
type CacheInfo struct {
	PlanHit bool `json:"plan_hit"`
}

// ValidateAndSetDefaults normalises and validates the project.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.Project.Normalize(); err != nil {
		return err
	}
	if err := o.Project.Validate(); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// planInput is everything a plan depends on. The project ID is excluded so
// that copies of a project share cache entries.
type planInput struct {
	Name    string          `json:"name"`
	Tile    tile.Spec       `json:"tile"`
	Margin  float64         `json:"margin"`
	PPM     float64         `json:"ppm"`
	Nodes   []project.Node  `json:"nodes"`
	Edges   []project.Edge  `json:"edges"`
	Pricing stats.Pricing   `json:"pricing"`
	Options project.Options `json:"options"`
}

// InputHash returns the hash of everything except the pattern and clip mode,
// which are part of the cache key instead.
func (o *Options) InputHash() (string, error) {
	p := o.Project
	h, err := cache.HashJSON(planInput{
		Name:    p.Name,
		Tile:    p.Tile,
		Margin:  p.Layout.Margin,
		PPM:     p.Layout.PixelsPerMeter,
		Nodes:   p.Nodes,
		Edges:   p.Edges,
		Pricing: p.Pricing,
		Options: p.Options,
	})
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash plan input")
	}
	return h, nil
}

// PlanKeyOpts returns the cache key options of the run.
func (o *Options) PlanKeyOpts() cache.PlanKeyOpts {
	return cache.PlanKeyOpts{
		Pattern: o.Project.Layout.Pattern,
		Clip:    string(o.Project.Layout.Clip),
	}
}
