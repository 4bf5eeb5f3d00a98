package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/billswitch/internal/shared/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	want := &types.Config{
		Extractor:             "webhook",
		WebhookURL:            "https://hooks.example.com/bill",
		RequestTimeoutSeconds: 30,
		SortBy:                "coverage",
		ReportType:            []string{"csv", "pdf"},
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "billswitch.toml",
			content: `extractor = "webhook"
webhook_url = "https://hooks.example.com/bill"
request_timeout_seconds = 30
sort_by = "coverage"
report_type = ["csv", "pdf"]
`,
		},
		{
			name: "yaml",
			file: "billswitch.yml",
			content: `extractor: webhook
webhook_url: https://hooks.example.com/bill
request_timeout_seconds: 30
sort_by: coverage
report_type: [csv, pdf]
`,
		},
		{
			name:    "json",
			file:    "billswitch.json",
			content: `{"extractor":"webhook","webhook_url":"https://hooks.example.com/bill","request_timeout_seconds":30,"sort_by":"coverage","report_type":["csv","pdf"]}`,
		},
	}

	repo := NewConfigRepository()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := repo.LoadConfigFile(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = repo.LoadConfigFile(t.TempDir())
	assert.ErrorContains(t, err, "is a directory")

	_, err = repo.LoadConfigFile(writeFile(t, "config.ini", "a=b"))
	assert.ErrorContains(t, err, "unsupported config file format")

	_, err = repo.LoadConfigFile(writeFile(t, "broken.json", "{"))
	assert.ErrorContains(t, err, "error parsing JSON file")
}

func TestLoadDotEnv(t *testing.T) {
	repo := NewConfigRepository()

	assert.NoError(t, repo.LoadDotEnv(filepath.Join(t.TempDir(), ".env")))

	t.Setenv(EnvOpenAIKey, "")
	require.NoError(t, os.Unsetenv(EnvOpenAIKey))
	path := writeFile(t, ".env", "OPENAI_API_KEY=sk-from-dotenv\nBILL_WEBHOOK_URL=https://hooks.example.com/x\n")
	t.Setenv(EnvWebhookURL, "https://already.set")

	require.NoError(t, repo.LoadDotEnv(path))
	t.Cleanup(func() { os.Unsetenv(EnvOpenAIKey) })

	cfg := FromEnv()
	assert.Equal(t, "sk-from-dotenv", cfg.OpenAIAPIKey)
	assert.Equal(t, "https://already.set", cfg.WebhookURL)
}

func TestMerge(t *testing.T) {
	base := types.Config{WebhookURL: "https://env", MaxUploadMB: 10, SortBy: "price"}
	override := types.Config{WebhookURL: "https://file", ReportType: []string{"json"}}

	got := Merge(base, override)
	assert.Equal(t, "https://file", got.WebhookURL)
	assert.Equal(t, 10, got.MaxUploadMB)
	assert.Equal(t, "price", got.SortBy)
	assert.Equal(t, []string{"json"}, got.ReportType)
}
