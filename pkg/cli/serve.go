package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/aptpages/pkg/cli/config"
	"github.com/m-mizutani/aptpages/pkg/controller/scheduler"
	"github.com/m-mizutani/aptpages/pkg/controller/server"
	"github.com/m-mizutani/aptpages/pkg/controller/trigger"
	"github.com/m-mizutani/aptpages/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		srvConfig config.Server
		p         pipeline
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode: accept webhooks, dispatches and scheduled Runs",
		Flags:   append(srvConfig.Flags(), p.Flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Server", srvConfig),
				slog.Any("Pipeline", &p),
			)

			uc, err := p.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer p.sentry.Flush()

			ctrl := trigger.New(uc)

			var sched *scheduler.Scheduler
			if srvConfig.Schedule() != "" {
				if sched, err = scheduler.New(ctrl, srvConfig.Schedule()); err != nil {
					return err
				}
				sched.Start(ctx)
			}

			s := server.New(ctrl, uc,
				server.WithWebhookSecret(srvConfig.WebhookSecret()),
				server.WithDispatchToken(srvConfig.DispatchToken()),
				server.WithSourceRef(uc.SourceRef()),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    srvConfig.Addr(),
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", srvConfig.Addr())
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			var runErr error
			select {
			case runErr = <-serverErr:

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if sched != nil {
				sched.Stop()
			}
			if err := httpServer.Shutdown(shutdownCtx); err != nil && runErr == nil {
				runErr = goerr.Wrap(err, "failed to shutdown server")
			}
			if err := ctrl.Shutdown(shutdownCtx); err != nil && runErr == nil {
				runErr = err
			}

			return runErr
		},
	}
}
