package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Extractor             string   `json:"extractor" yaml:"extractor" toml:"extractor"`
	WebhookURL            string   `json:"webhook_url" yaml:"webhook_url" toml:"webhook_url"`
	OpenAIAPIKey          string   `json:"openai_api_key" yaml:"openai_api_key" toml:"openai_api_key"`
	OpenAIModel           string   `json:"openai_model" yaml:"openai_model" toml:"openai_model"`
	RequestTimeoutSeconds int      `json:"request_timeout_seconds" yaml:"request_timeout_seconds" toml:"request_timeout_seconds"`
	MaxUploadMB           int      `json:"max_upload_mb" yaml:"max_upload_mb" toml:"max_upload_mb"`
	AllowedTypes          []string `json:"allowed_types" yaml:"allowed_types" toml:"allowed_types"`
	HomeZip               string   `json:"home_zip" yaml:"home_zip" toml:"home_zip"`
	WorkZip               string   `json:"work_zip" yaml:"work_zip" toml:"work_zip"`
	SortBy                string   `json:"sort_by" yaml:"sort_by" toml:"sort_by"`
	ReportName            string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType            []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir                   string   `json:"dir" yaml:"dir" toml:"dir"`
	ListenAddr            string   `json:"listen_addr" yaml:"listen_addr" toml:"listen_addr"`
}

const (
	ExtractorWebhook = "webhook"
	ExtractorOpenAI  = "openai"

	DefaultMaxUploadMB = 10
	DefaultListenAddr  = ":8080"
	DefaultOpenAIModel = "gpt-4o"
)
