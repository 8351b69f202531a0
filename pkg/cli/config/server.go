package config

import (
	"log/slog"

	"github.com/m-mizutani/aptpages/pkg/controller/scheduler"
	"github.com/m-mizutani/aptpages/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

type Server struct {
	addr          string
	webhookSecret types.WebhookSecret `masq:"secret"`
	dispatchToken types.DispatchToken `masq:"secret"`
	schedule      string
}

func (x *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Category:    "Server",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("APTPAGES_ADDR"),
			Destination: &x.addr,
		},
		&cli.StringFlag{
			Name:        "webhook-secret",
			Usage:       "GitHub webhook secret",
			Category:    "Server",
			Destination: (*string)(&x.webhookSecret),
			Sources:     cli.EnvVars("APTPAGES_WEBHOOK_SECRET"),
		},
		&cli.StringFlag{
			Name:        "dispatch-token",
			Usage:       "Bearer token required by POST /dispatch",
			Category:    "Server",
			Destination: (*string)(&x.dispatchToken),
			Sources:     cli.EnvVars("APTPAGES_DISPATCH_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "schedule",
			Usage:       "Cron expression (UTC) of scheduled Runs, empty to disable",
			Category:    "Server",
			Value:       scheduler.DefaultSpec,
			Destination: &x.schedule,
			Sources:     cli.EnvVars("APTPAGES_SCHEDULE"),
		},
	}
}

func (x *Server) Addr() string                       { return x.addr }
func (x *Server) WebhookSecret() types.WebhookSecret { return x.webhookSecret }
func (x *Server) DispatchToken() types.DispatchToken { return x.dispatchToken }
func (x *Server) Schedule() string                   { return x.schedule }

func (x Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Addr", x.addr),
		slog.Int("WebhookSecret.len", len(x.webhookSecret)),
		slog.Int("DispatchToken.len", len(x.dispatchToken)),
		slog.String("Schedule", x.schedule),
	)
}
