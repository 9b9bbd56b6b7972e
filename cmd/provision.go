package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/dorsabag/bucketListBackendDeploy/core/config"
	"github.com/dorsabag/bucketListBackendDeploy/core/logger"
	"github.com/dorsabag/bucketListBackendDeploy/core/notion"
	"github.com/dorsabag/bucketListBackendDeploy/feature/bucketlist"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// provisionCmd represents the provision command
var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create missing Notion tables",
	Long:  `Creates the provisionable tables (books, movies) under the configured parent page and prints the resulting database ids.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&logger.Config{Level: "info", Format: "console"})
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		client := notion.NewClient(cfg.Notion, logg)
		prov := bucketlist.NewProvisioner(client, cfg.Tables, cfg.Notion.ParentPageID, logg)

		result := prov.InitializeAll(cmd.Context())

		out := struct {
			Created  map[string]string `json:"created"`
			Existing []string          `json:"existing"`
			Errors   map[string]string `json:"errors,omitempty"`
		}{
			Created:  map[string]string{},
			Errors:   map[string]string{},
			Existing: []string{},
		}
		for _, cat := range result.Created {
			out.Created[string(cat)] = prov.TableID(cat)
		}
		for _, cat := range result.Existing {
			out.Existing = append(out.Existing, string(cat))
		}
		for cat, msg := range result.Errors {
			out.Errors[string(cat)] = msg
		}

		encoded, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			logg.Fatal("Failed to encode result", zap.Error(err))
		}
		fmt.Println(string(encoded))

		if !result.OK() {
			os.Exit(1)
		}
	},
}

func init() {
	RootCmd.AddCommand(provisionCmd)
}
