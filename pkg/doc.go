// Package pkg provides the libraries behind tileplan, a tile layout planner.
//
// # Overview
//
// Tileplan takes a room outline drawn on a canvas, at least one real-world
// measurement of it and a tile specification, and works out how the tiles
// are laid, how many are cut, how many to buy and what the job costs. The
// pkg directory is organized into three areas:
//
//  1. Engine - pure geometry and tiling code with no I/O
//  2. Infrastructure - caching, observability, build info, errors
//  3. Orchestration - [pipeline] runs the engine with caching and hooks
//
// # Architecture
//
// The typical data flow through tileplan:
//
//	Project file (TOML/JSON)
//	         ↓
//	    [project] package (load, normalise units)
//	         ↓
//	    [shape] package (validate outline, resolve scale)
//	         ↓
//	    [pattern] package (lay a grid, brick or herringbone lattice)
//	         ↓
//	    [clip] package (classify tiles against the outline)
//	         ↓
//	    [stats] / [report] packages (waste, cost, shopping list)
//
// # Quick Start
//
//	p, err := project.Load("kitchen.toml")
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Execute(ctx, p)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Report.Summary)
//
// # Engine Packages
//
//   - [geometry]: points, bounds, polygon area/perimeter, units, validity checks
//   - [tile]: tile specs, placed tiles and generation results
//   - [pattern]: lattice generators in working pixels
//   - [clip]: heuristic and exact tile classification
//   - [scale]: pixel-to-unit scale from measured edges
//   - [shape]: layout graph validation and ordering
//   - [stats]: tile counts, waste, purchase quantity, grout, cost
//   - [report]: shopping list and detailed report
//
// # Infrastructure Packages
//
//   - [cache]: file, Redis and null plan caches
//   - [observability]: pipeline, cache and server hooks
//   - [errors]: coded errors shared by the CLI and the API
//   - [buildinfo]: version information
//
// [geometry]: github.com/matzehuels/tileplan/pkg/geometry
// [tile]: github.com/matzehuels/tileplan/pkg/tile
// [pattern]: github.com/matzehuels/tileplan/pkg/pattern
// [clip]: github.com/matzehuels/tileplan/pkg/clip
// [scale]: github.com/matzehuels/tileplan/pkg/scale
// [shape]: github.com/matzehuels/tileplan/pkg/shape
// [stats]: github.com/matzehuels/tileplan/pkg/stats
// [report]: github.com/matzehuels/tileplan/pkg/report
// [project]: github.com/matzehuels/tileplan/pkg/project
// [pipeline]: github.com/matzehuels/tileplan/pkg/pipeline
// [cache]: github.com/matzehuels/tileplan/pkg/cache
// [observability]: github.com/matzehuels/tileplan/pkg/observability
// [errors]: github.com/matzehuels/tileplan/pkg/errors
// [buildinfo]: github.com/matzehuels/tileplan/pkg/buildinfo
package pkg
