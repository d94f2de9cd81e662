package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietddude/nodepulse/internal/control"
)

var sendMessage bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a single cycle and print the status message",
	Run:   runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&sendMessage, "send", false, "also deliver the message to Telegram")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	app := control.NewApp(cfg, sendMessage)
	rep := app.Monitor().RunCycle(cmd.Context())

	fmt.Fprintln(cmd.OutOrStdout(), rep.Message)
	if sendMessage && !rep.Delivered {
		fmt.Fprintln(cmd.ErrOrStderr(), "delivery failed")
	}
}
