package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/vietddude/stylelog"

	"github.com/vietddude/nodepulse/internal/control"
	"github.com/vietddude/nodepulse/internal/core/config"
)

// timeFormat is the log timestamp layout.
const timeFormat = "2006-01-02 15:04:05"

var (
	cfgPath   string
	isDebug   bool
	reuseConf bool
)

var rootCmd = &cobra.Command{
	Use:   "nodepulse",
	Short: "Node health reporter",
	Long:  `nodepulse polls a node's proven block, disk usage and public IP and reports them to a Telegram chat.`,
	Run:   runMonitor,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "config file")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVarP(&reuseConf, "yes", "y", false, "use an existing config without asking")
}

func runMonitor(cmd *cobra.Command, args []string) {
	_ = godotenv.Load()
	stylelog.InitDefault(&tint.Options{Level: slog.LevelInfo, TimeFormat: timeFormat})

	prompter := config.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	cfg, err := config.LoadOrCreate(cfgPath, prompter, reuseConf)
	if err != nil {
		if errors.Is(err, config.ErrPromptAborted) {
			slog.Error("Configuration aborted")
		} else {
			slog.Error("Failed to load config", "error", err)
		}
		os.Exit(1)
	}
	setupLogging(cfg)

	app := control.NewApp(cfg, true)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("Monitor stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("Monitor stopped")
}

func loadConfig() *config.AppConfig {
	_ = godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		stylelog.InitDefault()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg)
	return cfg
}

func setupLogging(cfg *config.AppConfig) {
	slogLevel := slog.LevelInfo
	if isDebug || cfg.Logging.Level == "debug" {
		slogLevel = slog.LevelDebug
	}

	stylelog.InitDefault(&tint.Options{
		Level:      slogLevel,
		TimeFormat: timeFormat,
	})
	slog.Debug("Logger initialized", "level", slogLevel.String())
}
