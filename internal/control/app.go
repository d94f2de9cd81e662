package control

import (
	"context"
	"log/slog"
	"time"

	"github.com/vietddude/nodepulse/internal/core/config"
	"github.com/vietddude/nodepulse/internal/infra/rpc"
	"github.com/vietddude/nodepulse/internal/infra/telegram"
	"github.com/vietddude/nodepulse/internal/monitoring/health"
	"github.com/vietddude/nodepulse/internal/monitoring/probe"
)

// App wires the monitor and the optional status server.
type App struct {
	cfg          *config.AppConfig
	monitor      *Monitor
	healthServer *health.Server
	log          *slog.Logger
}

// NewApp builds probes and the notifier from cfg. With deliver unset no
// messages are sent.
func NewApp(cfg *config.AppConfig, deliver bool) *App {
	var notifier Notifier
	if deliver {
		notifier = telegram.NewNotifier(cfg.Telegram.APIURL, cfg.BotToken, cfg.ChatID, cfg.Telegram.Timeout)
	}

	monitor := NewMonitor(
		cfg.NodeID,
		cfg.Monitor.Interval,
		probe.NewStatusProbe(rpc.NewClient(cfg.Node.RPCURL, cfg.Node.Timeout)),
		probe.NewDiskProbe(cfg.Monitor.DiskPath),
		probe.NewIPProbe(cfg.Monitor.IPServiceURL, cfg.Monitor.IPTimeout),
		notifier,
	)

	app := &App{
		cfg:     cfg,
		monitor: monitor,
		log:     slog.Default(),
	}
	if cfg.Server.Port > 0 {
		app.healthServer = health.NewServer(monitor, cfg.Server.Port)
	}
	return app
}

// Monitor returns the app's monitor.
func (a *App) Monitor() *Monitor {
	return a.monitor
}

// Run starts the status server, if configured, and runs cycles until ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.healthServer != nil {
		go func() {
			if err := a.healthServer.Start(); err != nil {
				a.log.Error("Health server failed", "error", err)
			}
		}()
		a.log.Info("Health server listening", "port", a.cfg.Server.Port)
	}

	a.log.Info("Bot started",
		"node", a.cfg.NodeID,
		"interval", a.monitor.Interval(),
		"rpc", a.cfg.Node.RPCURL,
		"disk_path", a.cfg.Monitor.DiskPath,
	)

	err := a.monitor.Run(ctx)

	if a.healthServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if stopErr := a.healthServer.Stop(shutdownCtx); stopErr != nil {
			a.log.Warn("Failed to stop health server", "error", stopErr)
		}
	}
	return err
}
