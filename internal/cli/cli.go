package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tileplan/pkg/cache"
	"github.com/matzehuels/tileplan/pkg/clip"
	"github.com/matzehuels/tileplan/pkg/pipeline"
	"github.com/matzehuels/tileplan/pkg/project"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "tileplan"

	// cacheDirEnv overrides the cache directory.
	cacheDirEnv = "TILEPLAN_CACHE_DIR"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	fc, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(fc, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the plan cache directory. TILEPLAN_CACHE_DIR wins over
// the user cache directory (XDG_CACHE_HOME or ~/.cache on Linux).
func cacheDir() (string, error) {
	if dir := os.Getenv(cacheDirEnv); dir != "" {
		return filepath.Clean(dir), nil
	}
	return cache.DefaultDir()
}

// =============================================================================
// Project Helpers
// =============================================================================

// layoutFlags are the project overrides shared by the planning commands.
type layoutFlags struct {
	pattern string
	clip    string
	margin  float64
}

// loadProject reads a project file and applies the flag overrides. Flags
// left at their zero value keep the file's setting.
func loadProject(path string, f layoutFlags) (project.Project, error) {
	p, err := project.Load(path)
	if err != nil {
		return project.Project{}, err
	}
	if f.pattern != "" {
		p.Layout.Pattern = f.pattern
	}
	if f.clip != "" {
		p.Layout.Clip = clip.Mode(f.clip)
	}
	if f.margin > 0 {
		p.Layout.Margin = f.margin
	}
	return p, nil
}
