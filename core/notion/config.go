package notion

// Config holds configuration for the Notion API client.
type Config struct {
	// APIKey is the integration token used as a bearer credential.
	APIKey string `mapstructure:"api_key" default:""`
	// Version is the Notion-Version header value sent with every request.
	Version string `mapstructure:"version" default:"2022-06-28"`
	// BaseURL is the API root. Overridable for tests.
	BaseURL string `mapstructure:"base_url" default:"https://api.notion.com/v1"`
	// ParentPageID is the page under which new databases are created.
	ParentPageID string `mapstructure:"parent_page_id" default:""`
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// RetryDelayMS is the base backoff delay in milliseconds.
	RetryDelayMS int `mapstructure:"retry_delay_ms" default:"1000"`
}
