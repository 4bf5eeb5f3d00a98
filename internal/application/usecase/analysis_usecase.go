package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/diillson/billswitch/internal/domain/billing"
	"github.com/diillson/billswitch/internal/domain/comparison"
	"github.com/diillson/billswitch/internal/domain/entity"
	"github.com/diillson/billswitch/internal/domain/repository"
	"github.com/diillson/billswitch/internal/shared/types"
)

// AnalysisUseCase drives a bill from upload to carrier recommendation.
type AnalysisUseCase struct {
	extractor    repository.BillExtractor
	carrierRepo  repository.CarrierRepository
	coverageRepo repository.CoverageRepository
	exportRepo   repository.ExportRepository
	console      types.ConsoleInterface
	limits       billing.UploadLimits
	now          func() time.Time
}

// NewAnalysisUseCase creates a new analysis use case. extractor may be nil
// for commands that never upload a bill.
func NewAnalysisUseCase(
	extractor repository.BillExtractor,
	carrierRepo repository.CarrierRepository,
	coverageRepo repository.CoverageRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	limits billing.UploadLimits,
) *AnalysisUseCase {
	return &AnalysisUseCase{
		extractor:    extractor,
		carrierRepo:  carrierRepo,
		coverageRepo: coverageRepo,
		exportRepo:   exportRepo,
		console:      console,
		limits:       limits,
		now:          time.Now,
	}
}

// AnalysisRequest describes one analysis.
type AnalysisRequest struct {
	SortBy  comparison.SortKey
	HomeZip string
	WorkZip string
}

// AnalyzeUpload valida o arquivo, extrai, normaliza e compara com as operadoras alternativas.
func (uc *AnalysisUseCase) AnalyzeUpload(ctx context.Context, upload entity.BillUpload, req AnalysisRequest) (entity.AnalysisReport, error) {
	if err := billing.ValidateUpload(upload.FileName, upload.Size(), upload.ContentType, uc.limits); err != nil {
		return entity.AnalysisReport{}, err
	}
	if uc.extractor == nil {
		return entity.AnalysisReport{}, types.ErrNoExtractorConfigured
	}

	upload.ContentType = billing.ContentTypeOf(upload.FileName, upload.ContentType)
	payload, err := uc.extractor.Extract(ctx, upload)
	if err != nil {
		return entity.AnalysisReport{}, err
	}

	bill, err := billing.Normalize(payload, upload.FileName)
	if err != nil {
		return entity.AnalysisReport{}, err
	}

	return uc.buildReport(ctx, upload.FileName, bill, req)
}

// AnalyzePayload processa uma resposta de extração já salva.
func (uc *AnalysisUseCase) AnalyzePayload(ctx context.Context, payload []byte, fileName string, req AnalysisRequest) (entity.AnalysisReport, error) {
	bill, err := billing.Normalize(payload, fileName)
	if err != nil {
		return entity.AnalysisReport{}, err
	}
	return uc.buildReport(ctx, fileName, bill, req)
}

// QuoteCarriers compara o plano atual com o catálogo.
func (uc *AnalysisUseCase) QuoteCarriers(ctx context.Context, current entity.CurrentPlan, costs entity.SwitchingCosts, sortBy comparison.SortKey) ([]entity.CarrierQuote, error) {
	offers, err := uc.carrierRepo.Alternatives(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading carrier catalog: %w", err)
	}
	return comparison.Compare(current, offers, costs, sortBy), nil
}

// CurrentPlan returns the plan given on the command line, or the catalog default.
// A price that is not a finite positive number falls back to the default.
func (uc *AnalysisUseCase) CurrentPlan(price float64, lines int) entity.CurrentPlan {
	plan := uc.carrierRepo.DefaultCurrentPlan()
	if price > 0 && comparison.ValidatePrice(price) == nil {
		plan = entity.CurrentPlan{Name: "Current plan", MonthlyPrice: price, Lines: 1}
	}
	if lines > 0 {
		plan.Lines = lines
	}
	return plan
}

// CheckCoverage verifica a cobertura nos dois endereços.
func (uc *AnalysisUseCase) CheckCoverage(ctx context.Context, homeZip, workZip string) (entity.CoverageReport, error) {
	return uc.coverageRepo.Check(ctx, homeZip, workZip)
}

// Profiles returns the detailed carrier descriptions.
func (uc *AnalysisUseCase) Profiles(ctx context.Context) ([]entity.CarrierProfile, error) {
	return uc.carrierRepo.Profiles(ctx)
}

func (uc *AnalysisUseCase) buildReport(ctx context.Context, sourceFile string, bill entity.BillData, req AnalysisRequest) (entity.AnalysisReport, error) {
	costs := billing.SwitchingCostsFor(bill)
	current := comparison.CurrentPlanFrom(bill)

	quotes, err := uc.QuoteCarriers(ctx, current, costs, req.SortBy)
	if err != nil {
		return entity.AnalysisReport{}, err
	}

	report := entity.AnalysisReport{
		SourceFile:  sourceFile,
		Bill:        bill,
		Costs:       costs,
		Current:     current,
		Quotes:      quotes,
		GeneratedAt: uc.now(),
	}

	if req.HomeZip != "" && req.WorkZip != "" {
		coverage, err := uc.coverageRepo.Check(ctx, req.HomeZip, req.WorkZip)
		if err != nil {
			return entity.AnalysisReport{}, err
		}
		report.Coverage = &coverage
	}

	slog.Info("bill analysed",
		"file", sourceFile,
		"carrier", bill.Carrier,
		"lines", len(bill.Lines),
		"switching_cost", costs.Total,
	)
	return report, nil
}

// RunAnalysis executa a análise completa de uma conta a partir de um arquivo local.
func (uc *AnalysisUseCase) RunAnalysis(ctx context.Context, args *types.CLIArgs) error {
	req, err := uc.requestFrom(args)
	if err != nil {
		return err
	}

	upload, err := uc.readUpload(args.BillFile)
	if err != nil {
		return err
	}

	status := uc.console.Status(fmt.Sprintf("Analysing %s...", upload.FileName))
	report, err := uc.AnalyzeUpload(ctx, upload, req)
	status.Stop()
	if err != nil {
		return uc.explain(err)
	}

	uc.displayReport(report)
	uc.exportReport(report, args)
	return nil
}

// RunNormalize normaliza uma resposta de extração salva em disco, sem chamar o extrator.
func (uc *AnalysisUseCase) RunNormalize(ctx context.Context, args *types.CLIArgs) error {
	req, err := uc.requestFrom(args)
	if err != nil {
		return err
	}

	payload, err := os.ReadFile(args.BillFile)
	if err != nil {
		return fmt.Errorf("error reading extraction file: %w", err)
	}

	report, err := uc.AnalyzePayload(ctx, payload, filepath.Base(args.BillFile), req)
	if err != nil {
		return uc.explain(err)
	}

	uc.displayReport(report)
	uc.exportReport(report, args)
	return nil
}

// RunCarriers exibe a comparação do catálogo com o plano atual.
func (uc *AnalysisUseCase) RunCarriers(ctx context.Context, args *types.CLIArgs) error {
	sortBy, err := comparison.ParseSortKey(args.SortBy)
	if err != nil {
		return err
	}

	if err := comparison.ValidatePrice(args.CurrentPrice); err != nil {
		return fmt.Errorf("invalid --current-price: %w", err)
	}

	current := uc.CurrentPlan(args.CurrentPrice, args.Lines)
	quotes, err := uc.QuoteCarriers(ctx, current, entity.SwitchingCosts{}, sortBy)
	if err != nil {
		return err
	}

	if args.Details {
		profiles, err := uc.Profiles(ctx)
		if err != nil {
			return fmt.Errorf("error loading carrier profiles: %w", err)
		}
		uc.displayProfiles(profiles)
	}

	uc.displayQuotes(current, quotes)
	return nil
}

// RunCoverage exibe a verificação de cobertura.
func (uc *AnalysisUseCase) RunCoverage(ctx context.Context, args *types.CLIArgs) error {
	report, err := uc.CheckCoverage(ctx, args.HomeZip, args.WorkZip)
	if err != nil {
		return err
	}
	uc.displayCoverage(report)
	return nil
}

func (uc *AnalysisUseCase) requestFrom(args *types.CLIArgs) (AnalysisRequest, error) {
	sortBy, err := comparison.ParseSortKey(args.SortBy)
	if err != nil {
		return AnalysisRequest{}, err
	}
	if (args.HomeZip == "") != (args.WorkZip == "") {
		uc.console.LogWarning("Coverage check needs both --home and --work; skipping it")
		return AnalysisRequest{SortBy: sortBy}, nil
	}
	return AnalysisRequest{SortBy: sortBy, HomeZip: args.HomeZip, WorkZip: args.WorkZip}, nil
}

// readUpload lê o arquivo da conta, checando o tamanho antes de carregar em memória.
func (uc *AnalysisUseCase) readUpload(path string) (entity.BillUpload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return entity.BillUpload{}, fmt.Errorf("error accessing bill file: %w", err)
	}
	if info.IsDir() {
		return entity.BillUpload{}, fmt.Errorf("%s is a directory, not a file", path)
	}

	name := filepath.Base(path)
	if err := billing.ValidateUpload(name, info.Size(), "", uc.limits); err != nil {
		return entity.BillUpload{}, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return entity.BillUpload{}, fmt.Errorf("error reading bill file: %w", err)
	}

	return entity.BillUpload{
		FileName:    name,
		ContentType: billing.ContentTypeOf(name, ""),
		Content:     content,
	}, nil
}

// explain anexa a orientação ao usuário ao erro original.
func (uc *AnalysisUseCase) explain(err error) error {
	if msg := UserMessage(err); msg != "" {
		uc.console.LogError("%s", msg)
	}
	return err
}

// UserMessage returns what the user should do about a failed analysis.
func UserMessage(err error) string {
	var transportErr *types.TransportError
	switch {
	case errors.As(err, &transportErr):
		return "We could not reach the bill analysis service. Please try uploading your bill again."
	case errors.Is(err, types.ErrUnexpectedFormat):
		return "We could not read this bill. Please try uploading a clearer copy."
	case errors.Is(err, types.ErrEmptyResult):
		return "No bill details were found in this file. Please try uploading it again."
	case errors.Is(err, types.ErrInvalidFileType):
		return "Please upload a PDF or image file (.jpg, .png, .heic)."
	case errors.Is(err, types.ErrFileTooLarge):
		return "Maximum file size is exceeded. Please upload a smaller file."
	}
	return ""
}

// exportReport grava o relatório em cada formato solicitado.
func (uc *AnalysisUseCase) exportReport(report entity.AnalysisReport, args *types.CLIArgs) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
		case "xlsx":
			path, err = uc.exportRepo.ExportToXLSX(report, args.ReportName, args.Dir)
		default:
			uc.console.LogWarning("Unknown report type '%s' (use csv, json, pdf or xlsx)", reportType)
			continue
		}

		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", reportType, err)
		} else {
			uc.console.LogSuccess("Successfully exported to %s: %s", reportType, path)
		}
	}
}
