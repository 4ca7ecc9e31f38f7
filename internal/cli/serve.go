package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tileplan/internal/server"
	"github.com/matzehuels/tileplan/pkg/cache"
	"github.com/matzehuels/tileplan/pkg/observability"
	"github.com/matzehuels/tileplan/pkg/pipeline"
)

const (
	defaultAddr    = ":8080"
	addrEnv        = "TILEPLAN_ADDR"
	redisAddrEnv   = "TILEPLAN_REDIS_ADDR"
	redisPassEnv   = "TILEPLAN_REDIS_PASSWORD"
	defaultTimeout = 30 * time.Second
)

type serveOpts struct {
	addr      string
	redisAddr string
	redisDB   int
	noCache   bool
	timeout   time.Duration
}

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:      envOr(addrEnv, defaultAddr),
		redisAddr: os.Getenv(redisAddrEnv),
		timeout:   defaultTimeout,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Plans are cached in Redis when --redis (or TILEPLAN_REDIS_ADDR) is set and in
the local cache directory otherwise. The listen address defaults to
TILEPLAN_ADDR or :8080. The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", opts.redisAddr, "Redis address for the plan cache")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "Redis database number")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "per-request timeout")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	store, err := c.serverCache(ctx, opts)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(store, nil, logger)
	defer runner.Close()

	counters := observability.NewCounters()
	observability.SetPipelineHooks(counters)
	observability.SetCacheHooks(counters)
	observability.SetServerHooks(counters)
	defer observability.Reset()

	srv := server.New(server.Options{
		Runner:         runner,
		Logger:         logger,
		Counters:       counters,
		RequestTimeout: opts.timeout,
	})
	printInfo("Serving on %s", StyleValue.Render(opts.addr))
	return srv.ListenAndServe(ctx, opts.addr)
}

// serverCache picks the plan cache backend for the server.
func (c *CLI) serverCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), nil
	case opts.redisAddr != "":
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     opts.redisAddr,
			Password: os.Getenv(redisPassEnv),
			DB:       opts.redisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("plan cache: %w", err)
		}
		c.Logger.Info("using redis plan cache", "addr", opts.redisAddr, "db", opts.redisDB)
		return rc, nil
	}
	return newCache(false)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
