// Package extractor turns a bill upload into the raw JSON document produced by
// an extraction backend.
package extractor

import (
	"fmt"
	"strings"
	"time"

	"github.com/diillson/billswitch/internal/domain/repository"
	"github.com/diillson/billswitch/internal/shared/types"
)

// New escolhe o backend de extração conforme a configuração.
// Sem escolha explícita, o webhook tem prioridade sobre o modelo de visão.
func New(cfg types.Config, showProgress bool) (repository.BillExtractor, error) {
	timeout := time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	kind := strings.ToLower(strings.TrimSpace(cfg.Extractor))
	if kind == "" {
		switch {
		case cfg.WebhookURL != "":
			kind = types.ExtractorWebhook
		case cfg.OpenAIAPIKey != "":
			kind = types.ExtractorOpenAI
		default:
			return nil, types.ErrNoExtractorConfigured
		}
	}

	switch kind {
	case types.ExtractorWebhook:
		if cfg.WebhookURL == "" {
			return nil, fmt.Errorf("%w: webhook_url is empty", types.ErrNoExtractorConfigured)
		}
		return NewWebhookExtractor(cfg.WebhookURL, timeout, showProgress), nil
	case types.ExtractorOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("%w: openai_api_key is empty", types.ErrNoExtractorConfigured)
		}
		return NewOpenAIExtractor(cfg.OpenAIAPIKey, cfg.OpenAIModel, timeout), nil
	}
	return nil, fmt.Errorf("unknown extractor %q: use %s or %s", cfg.Extractor, types.ExtractorWebhook, types.ExtractorOpenAI)
}
