// Package httpapi exposes bill analysis over HTTP.
package httpapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/diillson/billswitch/internal/application/usecase"
	"github.com/diillson/billswitch/internal/domain/comparison"
	"github.com/diillson/billswitch/internal/domain/entity"
	"github.com/diillson/billswitch/internal/shared/types"
)

// UploadField is the multipart field carrying the bill file.
const UploadField = "bill"

// Server serve a API HTTP.
type Server struct {
	uc      *usecase.AnalysisUseCase
	metrics *Metrics
	server  *fasthttp.Server
}

// NewServer cria o servidor. maxUploadBytes limita o corpo da requisição, com um
// megabyte extra para o envelope multipart.
func NewServer(uc *usecase.AnalysisUseCase, maxUploadBytes int64) *Server {
	s := &Server{
		uc:      uc,
		metrics: NewMetrics(),
	}
	s.server = &fasthttp.Server{
		Handler:            s.Handler(),
		Name:               "billswitch",
		MaxRequestBodySize: int(maxUploadBytes) + 1<<20,
		ReadTimeout:        30 * time.Second,
		WriteTimeout:       2 * time.Minute,
	}
	return s
}

// SetTimeouts ajusta o tempo de escrita ao timeout da extração.
func (s *Server) SetTimeouts(extraction time.Duration) {
	s.server.WriteTimeout = extraction + 30*time.Second
}

// ListenAndServe atende em addr até ctx ser cancelado.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", addr)
		errCh <- s.server.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("http server shutting down")
		return s.server.Shutdown()
	}
}

// Handler devolve o roteador da API.
func (s *Server) Handler() fasthttp.RequestHandler {
	metricsHandler := s.metrics.Handler()

	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		path := string(ctx.Path())
		method := string(ctx.Method())

		route := path
		switch {
		case path == "/healthz" && method == fasthttp.MethodGet:
			writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		case path == "/metrics" && method == fasthttp.MethodGet:
			metricsHandler(ctx)
		case path == "/api/bills" && method == fasthttp.MethodPost:
			s.handleAnalyze(ctx)
		case path == "/api/bills/normalize" && method == fasthttp.MethodPost:
			s.handleNormalize(ctx)
		case path == "/api/carriers" && method == fasthttp.MethodGet:
			s.handleCarriers(ctx)
		case path == "/api/carriers/profiles" && method == fasthttp.MethodGet:
			s.handleProfiles(ctx)
		case path == "/api/coverage" && method == fasthttp.MethodGet:
			s.handleCoverage(ctx)
		default:
			route = "unmatched"
			writeError(ctx, fasthttp.StatusNotFound, "route not found")
		}

		status := ctx.Response.StatusCode()
		s.metrics.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		s.metrics.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		slog.Debug("request handled", "method", method, "path", path, "status", status, "duration_ms", time.Since(start).Milliseconds())
	}
}

func (s *Server) handleAnalyze(ctx *fasthttp.RequestCtx) {
	req, err := analysisRequest(ctx.QueryArgs())
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	fh, err := ctx.FormFile(UploadField)
	if err != nil {
		if errors.Is(err, fasthttp.ErrBodyTooLarge) {
			s.fail(ctx, types.ErrFileTooLarge)
			return
		}
		writeError(ctx, fasthttp.StatusBadRequest, "multipart field '"+UploadField+"' with the bill file is required")
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "could not read uploaded file")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "could not read uploaded file")
		return
	}

	upload := entity.BillUpload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}

	report, err := s.uc.AnalyzeUpload(ctx, upload, req)
	if err != nil {
		s.fail(ctx, err)
		return
	}

	s.metrics.analyses.WithLabelValues("ok").Inc()
	if best, ok := comparison.BestQuote(report.Quotes); ok {
		s.metrics.savings.Observe(best.NetFirstYearSavings)
	}
	writeJSON(ctx, fasthttp.StatusOK, report)
}

func (s *Server) handleNormalize(ctx *fasthttp.RequestCtx) {
	req, err := analysisRequest(ctx.QueryArgs())
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	fileName := string(ctx.QueryArgs().Peek("file"))
	if fileName == "" {
		fileName = "upload"
	}

	report, err := s.uc.AnalyzePayload(ctx, ctx.PostBody(), fileName, req)
	if err != nil {
		s.fail(ctx, err)
		return
	}

	s.metrics.analyses.WithLabelValues("ok").Inc()
	writeJSON(ctx, fasthttp.StatusOK, report)
}

type carriersResponse struct {
	Current entity.CurrentPlan    `json:"current"`
	Quotes  []entity.CarrierQuote `json:"quotes"`
}

func (s *Server) handleCarriers(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()

	sortBy, err := comparison.ParseSortKey(string(args.Peek("sort")))
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	price, err := floatArg(args, "current_price")
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "current_price must be a finite, non-negative number")
		return
	}
	lines, err := intArg(args, "lines")
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "lines must be an integer")
		return
	}

	current := s.uc.CurrentPlan(price, lines)
	quotes, err := s.uc.QuoteCarriers(ctx, current, entity.SwitchingCosts{}, sortBy)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, carriersResponse{Current: current, Quotes: quotes})
}

func (s *Server) handleProfiles(ctx *fasthttp.RequestCtx) {
	profiles, err := s.uc.Profiles(ctx)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, profiles)
}

func (s *Server) handleCoverage(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	report, err := s.uc.CheckCoverage(ctx, string(args.Peek("home")), string(args.Peek("work")))
	if err != nil {
		s.fail(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, report)
}

// fail converte o erro do domínio em status HTTP.
func (s *Server) fail(ctx *fasthttp.RequestCtx, err error) {
	status := StatusFor(err)
	message := err.Error()
	if hint := usecase.UserMessage(err); hint != "" {
		message = hint
	}

	switch status {
	case fasthttp.StatusBadGateway, fasthttp.StatusUnprocessableEntity:
		s.metrics.analyses.WithLabelValues("failed").Inc()
		slog.Warn("bill analysis failed", "status", status, "error", err)
	case fasthttp.StatusInternalServerError:
		slog.Error("request failed", "path", string(ctx.Path()), "error", err)
	}
	writeError(ctx, status, message)
}

// StatusFor maps an analysis error to an HTTP status code.
func StatusFor(err error) int {
	var transportErr *types.TransportError
	switch {
	case errors.As(err, &transportErr):
		return fasthttp.StatusBadGateway
	case errors.Is(err, types.ErrUnexpectedFormat), errors.Is(err, types.ErrEmptyResult):
		return fasthttp.StatusUnprocessableEntity
	case errors.Is(err, types.ErrInvalidFileType), errors.Is(err, types.ErrFileTooLarge), errors.Is(err, types.ErrInvalidZip), errors.Is(err, types.ErrInvalidPrice):
		return fasthttp.StatusBadRequest
	case errors.Is(err, types.ErrNoExtractorConfigured):
		return fasthttp.StatusServiceUnavailable
	}
	return fasthttp.StatusInternalServerError
}

func analysisRequest(args *fasthttp.Args) (usecase.AnalysisRequest, error) {
	sortBy, err := comparison.ParseSortKey(string(args.Peek("sort")))
	if err != nil {
		return usecase.AnalysisRequest{}, err
	}
	return usecase.AnalysisRequest{
		SortBy:  sortBy,
		HomeZip: string(args.Peek("home")),
		WorkZip: string(args.Peek("work")),
	}, nil
}

func floatArg(args *fasthttp.Args, key string) (float64, error) {
	raw := args.Peek(key)
	if len(raw) == 0 {
		return 0, nil
	}
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return 0, err
	}
	if err := comparison.ValidatePrice(v); err != nil {
		return 0, err
	}
	return v, nil
}

func intArg(args *fasthttp.Args, key string) (int, error) {
	raw := args.Peek(key)
	if len(raw) == 0 {
		return 0, nil
	}
	return strconv.Atoi(string(raw))
}

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("error encoding response", "error", err)
		ctx.Error("internal error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, errorResponse{Status: status, Message: message})
}
