package cmd

import (
	"fmt"
	"os"

	"github.com/dorsabag/bucketListBackendDeploy/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bucketlist",
	Short: "Bucket List Backend Service",
	Long: `Bucket List is a backend for tracking experiences across categories.
It mirrors items onto Notion databases and fans out change notifications
to connected clients.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format and debug level give readable ISO8601 output for a CLI tool
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
