package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vietddude/nodepulse/internal/core/config"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Prompt for the bot token, chat and node label and write the config file",
	RunE:  runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	prompter := config.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	mc, err := config.PromptMonitorConfig(prompter)
	if err != nil {
		return err
	}

	cfg := &config.AppConfig{}
	if _, statErr := os.Stat(cfgPath); statErr == nil {
		if prev, err := config.Load(cfgPath); err == nil {
			cfg = prev
		}
	}
	cfg.MonitorConfig = mc

	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", cfgPath)
	return nil
}
