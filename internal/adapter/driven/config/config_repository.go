package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/diillson/billswitch/internal/domain/repository"
	"github.com/diillson/billswitch/internal/shared/types"
)

// Variáveis de ambiente reconhecidas.
const (
	EnvExtractor   = "BILL_EXTRACTOR"
	EnvWebhookURL  = "BILL_WEBHOOK_URL"
	EnvOpenAIKey   = "OPENAI_API_KEY"
	EnvOpenAIModel = "OPENAI_MODEL"
	EnvListenAddr  = "BILLSWITCH_LISTEN_ADDR"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// LoadDotEnv carrega um arquivo .env no ambiente do processo. Arquivo ausente não é erro
// e variáveis já definidas no ambiente são mantidas.
func (r *ConfigRepositoryImpl) LoadDotEnv(filePath string) error {
	if filePath == "" {
		filePath = ".env"
	}
	if err := godotenv.Load(filePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", filePath, err)
	}
	return nil
}

// FromEnv monta a configuração a partir das variáveis de ambiente.
func FromEnv() types.Config {
	return types.Config{
		Extractor:    os.Getenv(EnvExtractor),
		WebhookURL:   os.Getenv(EnvWebhookURL),
		OpenAIAPIKey: os.Getenv(EnvOpenAIKey),
		OpenAIModel:  os.Getenv(EnvOpenAIModel),
		ListenAddr:   os.Getenv(EnvListenAddr),
	}
}

// Merge copies every non-zero field of override onto base.
func Merge(base, override types.Config) types.Config {
	if override.Extractor != "" {
		base.Extractor = override.Extractor
	}
	if override.WebhookURL != "" {
		base.WebhookURL = override.WebhookURL
	}
	if override.OpenAIAPIKey != "" {
		base.OpenAIAPIKey = override.OpenAIAPIKey
	}
	if override.OpenAIModel != "" {
		base.OpenAIModel = override.OpenAIModel
	}
	if override.RequestTimeoutSeconds > 0 {
		base.RequestTimeoutSeconds = override.RequestTimeoutSeconds
	}
	if override.MaxUploadMB > 0 {
		base.MaxUploadMB = override.MaxUploadMB
	}
	if len(override.AllowedTypes) > 0 {
		base.AllowedTypes = override.AllowedTypes
	}
	if override.HomeZip != "" {
		base.HomeZip = override.HomeZip
	}
	if override.WorkZip != "" {
		base.WorkZip = override.WorkZip
	}
	if override.SortBy != "" {
		base.SortBy = override.SortBy
	}
	if override.ReportName != "" {
		base.ReportName = override.ReportName
	}
	if len(override.ReportType) > 0 {
		base.ReportType = override.ReportType
	}
	if override.Dir != "" {
		base.Dir = override.Dir
	}
	if override.ListenAddr != "" {
		base.ListenAddr = override.ListenAddr
	}
	return base
}
