package extractor

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/billswitch/internal/domain/entity"
	"github.com/diillson/billswitch/internal/shared/types"
)

func testUpload() entity.BillUpload {
	return entity.BillUpload{
		FileName:    "bill.pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.4 fake bill"),
	}
}

func TestWebhookExtractor_SendsMultipartFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "bill.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))
		assert.Equal(t, testUpload().Content, content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"account_summary":{},"phones":[]}`))
	}))
	defer server.Close()

	ex := NewWebhookExtractor(server.URL, time.Second, false)
	payload, err := ex.Extract(context.Background(), testUpload())
	require.NoError(t, err)
	assert.JSONEq(t, `{"account_summary":{},"phones":[]}`, string(payload))
}

func TestWebhookExtractor_Non2xxIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	ex := NewWebhookExtractor(server.URL, time.Second, false)
	_, err := ex.Extract(context.Background(), testUpload())

	var te *types.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusBadGateway, te.StatusCode)
	assert.Equal(t, "upstream down", te.Body)
}

func TestWebhookExtractor_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	ex := NewWebhookExtractor(url, time.Second, false)
	_, err := ex.Extract(context.Background(), testUpload())

	var te *types.TransportError
	require.ErrorAs(t, err, &te)
	assert.Zero(t, te.StatusCode)
	assert.Error(t, te.Unwrap())
}

func TestWebhookExtractor_RespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ex := NewWebhookExtractor(server.URL, 0, false)
	_, err := ex.Extract(ctx, testUpload())

	var te *types.TransportError
	require.ErrorAs(t, err, &te)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWebhookExtractor_ProgressOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	var out bytes.Buffer
	ex := &WebhookExtractor{url: server.URL, client: server.Client(), showProgress: true, progressOut: &out}
	_, err := ex.Extract(context.Background(), testUpload())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Uploading bill")
}

func TestNew(t *testing.T) {
	_, err := New(types.Config{}, false)
	assert.ErrorIs(t, err, types.ErrNoExtractorConfigured)

	ex, err := New(types.Config{WebhookURL: "http://localhost/hook", OpenAIAPIKey: "sk"}, false)
	require.NoError(t, err)
	assert.IsType(t, &WebhookExtractor{}, ex)

	ex, err = New(types.Config{OpenAIAPIKey: "sk"}, false)
	require.NoError(t, err)
	assert.IsType(t, &OpenAIExtractor{}, ex)

	_, err = New(types.Config{Extractor: "openai"}, false)
	assert.ErrorIs(t, err, types.ErrNoExtractorConfigured)

	_, err = New(types.Config{Extractor: "carrier-pigeon", WebhookURL: "x"}, false)
	assert.Error(t, err)
}
