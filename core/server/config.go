package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8001"`
	// AllowOrigins is the CORS allow-list ("*" permits every origin).
	AllowOrigins string `mapstructure:"allow_origins" default:"*"`
}
