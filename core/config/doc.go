// Package config provides configuration management for the bucket list backend.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, CORS origins)
//   - Notion: API credentials, version header, parent page and retry policy
//   - Tables: the Notion database id of each pre-provisioned category
//   - Log: Logging level and format
//
// Environment keys follow the nested structure with underscores, e.g.
// NOTION_API_KEY, TABLES_LIVE_SHOWS, SERVER_PORT.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
