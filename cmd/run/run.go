// Package run contains the command to run a standalone pool host.
package run

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ouyangxiaochen/multi-tenancy-spark/pkg/config"
	"github.com/ouyangxiaochen/multi-tenancy-spark/pkg/engine/memory"
	"github.com/ouyangxiaochen/multi-tenancy-spark/pkg/identity"
	"github.com/ouyangxiaochen/multi-tenancy-spark/pkg/logger"
	"github.com/ouyangxiaochen/multi-tenancy-spark/pkg/pool"
)

// Config holds everything the run command needs: the log configuration, the
// default resource queue, and the base engine properties captured once at
// startup as the frozen configuration snapshot.
type Config struct {
	Log struct {
		// Format is one of "text" or "json".
		Format string

		// Level is the minimum log level.
		Level string
	}

	// Queue is the resource queue used for sessions that do not name one.
	Queue string

	// Conf holds the base engine properties (the startup snapshot).
	Conf map[string]string
}

// DefaultConfig returns the run command's defaults before flag, env and
// config-file overrides.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Log.Format = "text"
	cfg.Log.Level = "info"
	cfg.Queue = pool.DefaultQueue
	cfg.Conf = map[string]string{}
	return cfg
}

// ReadConfig materializes the Config managed by viper.
func ReadConfig() (*Config, error) {
	cfg := DefaultConfig()

	cfg.Log.Format = viper.GetString("log.format")
	cfg.Log.Level = viper.GetString("log.level")
	cfg.Queue = viper.GetString("queue")
	if props := viper.GetStringMapString("conf"); len(props) > 0 {
		cfg.Conf = props
	}

	return cfg, nil
}

func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a standalone execution-context pool host",
		Long:  "Run a standalone execution-context pool host over the in-memory engine.",
		RunE:  run,
		Args:  cobra.NoArgs,
	}

	bindRunFlags(cmd)

	return cmd
}

func run(_ *cobra.Command, _ []string) error {
	cfg, err := ReadConfig()
	if err != nil {
		return err
	}

	log := logger.MustNewLogger(cfg.Log.Format, cfg.Log.Level)

	host := &PoolHost{Logger: log}
	return host.Run(context.Background(), cfg)
}

// PoolHost owns the lifecycle of a pool inside a standalone process: build
// it, hold it until a termination signal, tear it down.
type PoolHost struct {
	Logger logger.Logger
}

// Run blocks until the process receives an interrupt or termination signal,
// then closes the pool. The protocol layer that feeds the pool sessions is
// wired in by the surrounding server; standalone, this is a lifecycle host.
func (h *PoolHost) Run(ctx context.Context, cfg *Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	base := config.FromMap(cfg.Conf)

	p := pool.New(memory.NewFactory(), identity.NewSelf(), base, pool.WithLogger(h.Logger))

	reconstructor := config.NewReconstructor(base, config.DefaultsFunc(func() map[string]string {
		return viper.GetStringMapString("conf")
	}), config.WithReconstructorLogger(h.Logger))

	h.Logger.Info("execution-context pool ready",
		zap.String("default_queue", cfg.Queue),
		zap.Int("base_properties", base.Len()),
	)

	// SIGHUP triggers a configuration rebuild, the same path a recovered
	// process takes to pick up current placement values.
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

loop:
	for {
		select {
		case <-hup:
			rebuilt := reconstructor.Rebuild(ctx)
			h.Logger.Info("rebuilt base configuration",
				zap.Int("properties", rebuilt.Len()))
		case <-ctx.Done():
			break loop
		}
	}
	h.Logger.Info("attempting to shutdown gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := p.Close(shutdownCtx); err != nil {
		h.Logger.Error("failed to stop every execution context", zap.Error(err))
		return err
	}

	h.Logger.Info("shutdown complete")
	return nil
}
