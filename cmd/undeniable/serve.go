package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/undeniable-app/undeniable/adapters/email"
	"github.com/undeniable-app/undeniable/adapters/gin/server"
	"github.com/undeniable-app/undeniable/adapters/log"
	metrics "github.com/undeniable-app/undeniable/adapters/prometheus"
	"github.com/undeniable-app/undeniable/config"
	"github.com/undeniable-app/undeniable/directory"
	"github.com/undeniable-app/undeniable/utils/constant"
	"github.com/undeniable-app/undeniable/utils/graceful"
	"github.com/undeniable-app/undeniable/web"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Long: `Run the web server. The insurer directory is loaded in the background;
the page shows a loading state until it is ready and an error state if the
load fails. SIGINT or SIGTERM shut the server down gracefully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configDir)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func newServiceLogger(cfg *config.Config) (*log.Log, error) {
	return log.NewLogger(log.NewLoggerConfig(cfg.IsProduction(),
		log.WithServiceName(cfg.Service),
		log.WithEnvironment(cfg.Environment),
		log.WithLevel(cfg.Log.Level),
		log.WithLogFile(cfg.Log.File, cfg.Log.MaxSizeMB),
	))
}

func serve(parent context.Context, cfg *config.Config) error {
	logger, err := newServiceLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	source, err := directory.NewSource(ctx, cfg, logger)
	if err != nil {
		logger.Error(constant.DirectoryFailed, log.Err(err))
		return err
	}
	loader := directory.NewLoader(source, logger)

	app, err := web.New(web.Dependencies{
		Config:  cfg,
		Loader:  loader,
		Drafts:  email.NewGomailDraftBuilder(email.WithLog(logger)),
		Metrics: metrics.NewMetricsCollector(metrics.WithServiceName(cfg.Service), metrics.WithProcessMetrics(true)),
		Log:     logger,
	})
	if err != nil {
		return err
	}
	srv := server.NewServer(app.ServerOptions()...)

	// Cancelling ctx abandons a load still in flight; it then fails safe.
	loader.Start(ctx)

	var startErr error
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		if err := srv.Start(); err != nil {
			startErr = err
			logger.Error("server failed", log.Err(err))
			cancel()
		}
	}()

	err = graceful.GracefulShutdown(ctx, graceful.ShutdownFunc(func(shutdownCtx context.Context) error {
		cancel()
		app.Close()
		return srv.Shutdown(shutdownCtx)
	}), cfg.Server.ShutdownTimeout)
	<-stopped

	if startErr != nil {
		return startErr
	}
	return err
}
