package extractor

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/diillson/billswitch/internal/domain/entity"
	"github.com/diillson/billswitch/internal/domain/repository"
	"github.com/diillson/billswitch/internal/shared/types"
)

const extractionPrompt = `You read US mobile phone bills. Extract the bill in the image and answer with a single JSON object in exactly this shape:

{
  "account_summary": {
    "carrier": "carrier name",
    "account_number": "account number",
    "bill_date": "statement date as printed",
    "due_date": "payment due date as printed",
    "total_monthly_bill": "$0.00",
    "plan_costs": "$0.00",
    "equipment_costs": "$0.00",
    "services_and_fees": "$0.00"
  },
  "phones": [
    {
      "phone_number": "(555) 555-0100",
      "line_type": "voice | watch | tablet",
      "plan": {"name": "plan name", "charge": "$0.00"},
      "data_usage_gb": "0.0",
      "early_termination_fee": "$0.00",
      "equipment": [
        {
          "id": "device id if printed",
          "model": "device model",
          "type": "phone | watch | tablet | accessory",
          "installment_info": {
            "monthly_payment": "$0.00",
            "installment": "X of Y",
            "balance": "$0.00"
          }
        }
      ]
    }
  ]
}

Use "N/A" for anything that is not printed on the bill. Do not invent values.`

// OpenAIExtractor reads bill images with a vision model.
type OpenAIExtractor struct {
	client *openai.Client
	model  string
}

// NewOpenAIExtractor usa a API padrão da OpenAI.
func NewOpenAIExtractor(apiKey, model string, timeout time.Duration) repository.BillExtractor {
	cfg := openai.DefaultConfig(apiKey)
	if timeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}
	return NewOpenAIExtractorWithConfig(cfg, model)
}

// NewOpenAIExtractorWithConfig permite apontar para outro endpoint compatível.
func NewOpenAIExtractorWithConfig(cfg openai.ClientConfig, model string) repository.BillExtractor {
	if model == "" {
		model = types.DefaultOpenAIModel
	}
	return &OpenAIExtractor{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Extract devolve o JSON produzido pelo modelo. Apenas PNG e JPEG são enviados.
func (e *OpenAIExtractor) Extract(ctx context.Context, upload entity.BillUpload) ([]byte, error) {
	mediaType := upload.ContentType
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = http.DetectContentType(upload.Content)
	}
	if mediaType != "image/png" && mediaType != "image/jpeg" {
		return nil, fmt.Errorf("%w: the vision extractor reads png or jpeg, got %s", types.ErrInvalidFileType, mediaType)
	}

	imageURL := fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(upload.Content))
	parts := []openai.ChatMessagePart{
		{
			Type: openai.ChatMessagePartTypeText,
			Text: extractionPrompt,
		},
		{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL:    imageURL,
				Detail: openai.ImageURLDetailHigh,
			},
		},
	}

	start := time.Now()
	slog.Debug("sending bill to vision model", "file", upload.FileName, "model", e.model)

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:         openai.ChatMessageRoleUser,
				MultiContent: parts,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		slog.Warn("vision extraction failed", "file", upload.FileName, "error", err)
		return nil, transportErrorFrom(err)
	}

	slog.Info("extraction completed",
		"file", upload.FileName,
		"model", e.model,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if len(resp.Choices) == 0 {
		return nil, nil
	}
	return []byte(strings.TrimSpace(resp.Choices[0].Message.Content)), nil
}

func transportErrorFrom(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &types.TransportError{
			StatusCode: apiErr.HTTPStatusCode,
			Status:     http.StatusText(apiErr.HTTPStatusCode),
			Body:       apiErr.Message,
			Err:        err,
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &types.TransportError{
			StatusCode: reqErr.HTTPStatusCode,
			Status:     http.StatusText(reqErr.HTTPStatusCode),
			Body:       truncate(string(reqErr.Body), maxErrorBody),
			Err:        err,
		}
	}
	return &types.TransportError{Err: err}
}
