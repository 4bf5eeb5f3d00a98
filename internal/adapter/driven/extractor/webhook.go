package extractor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/diillson/billswitch/internal/domain/entity"
	"github.com/diillson/billswitch/internal/domain/repository"
	"github.com/diillson/billswitch/internal/shared/types"
)

// maxErrorBody limits how much of a failed response is carried in the error.
const maxErrorBody = 512

// WebhookExtractor posts the bill as multipart/form-data to an extraction webhook.
type WebhookExtractor struct {
	url          string
	client       *http.Client
	showProgress bool
	progressOut  io.Writer
}

// NewWebhookExtractor cria um extrator que envia a conta para o webhook informado.
// Timeout zero mantém o padrão do cliente HTTP.
func NewWebhookExtractor(url string, timeout time.Duration, showProgress bool) repository.BillExtractor {
	client := &http.Client{}
	if timeout > 0 {
		client.Timeout = timeout
	}
	return &WebhookExtractor{
		url:          url,
		client:       client,
		showProgress: showProgress,
		progressOut:  os.Stderr,
	}
}

// Extract envia o arquivo e devolve o JSON bruto da resposta.
func (e *WebhookExtractor) Extract(ctx context.Context, upload entity.BillUpload) ([]byte, error) {
	body, contentType, err := buildMultipartBody(upload)
	if err != nil {
		return nil, fmt.Errorf("error building upload body: %w", err)
	}

	var reader io.Reader = bytes.NewReader(body)
	if e.showProgress {
		reader = io.TeeReader(reader, newUploadBar(int64(len(body)), e.progressOut))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, reader)
	if err != nil {
		return nil, &types.TransportError{Err: err}
	}
	req.ContentLength = int64(len(body))
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	slog.Debug("sending bill to extraction webhook", "file", upload.FileName, "bytes", len(body))

	resp, err := e.client.Do(req)
	if err != nil {
		slog.Warn("extraction request failed", "file", upload.FileName, "error", err)
		return nil, &types.TransportError{Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.TransportError{StatusCode: resp.StatusCode, Status: resp.Status, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("extraction webhook rejected the bill",
			"file", upload.FileName,
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, &types.TransportError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       truncate(strings.TrimSpace(string(payload)), maxErrorBody),
		}
	}

	slog.Info("extraction completed",
		"file", upload.FileName,
		"status", resp.StatusCode,
		"response_bytes", len(payload),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return payload, nil
}

func buildMultipartBody(upload entity.BillUpload) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, upload.FileName))
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(upload.Content); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), writer.FormDataContentType(), nil
}

func newUploadBar(size int64, out io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("Uploading bill"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(out)
		}),
	)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
