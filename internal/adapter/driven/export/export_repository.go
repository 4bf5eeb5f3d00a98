package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/diillson/billswitch/internal/domain/entity"
	"github.com/diillson/billswitch/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// ExportToCSV grava uma linha por linha telefônica e, em seguida, a comparação de operadoras.
func (r *ExportRepositoryImpl) ExportToCSV(report entity.AnalysisReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	records := [][]string{
		{"Phone Number", "Line Type", "Device", "Plan", "Monthly Charge", "Data Usage (GB)", "Device Balance", "Early Termination Fee"},
	}
	for _, line := range report.Bill.Lines {
		records = append(records, []string{
			line.PhoneNumber,
			string(line.LineType),
			line.DeviceName,
			line.PlanName,
			money(line.MonthlyCharge),
			strconv.FormatFloat(line.DataUsage, 'f', -1, 64),
			money(deviceBalance(line)),
			money(line.EarlyTerminationFee),
		})
	}

	records = append(records,
		[]string{},
		[]string{"Carrier", "Data", "Coverage", "Monthly Cost", "Monthly Savings", "Yearly Savings", "Net First Year", "Break Even (months)"},
	)
	for _, q := range report.Quotes {
		records = append(records, []string{
			q.Offer.Name,
			q.Offer.Data,
			fmt.Sprintf("%d%%", q.Offer.Coverage),
			money(q.MonthlyCost),
			money(q.MonthlySavings),
			money(q.YearlySavings),
			money(q.NetFirstYearSavings),
			breakEven(q),
		})
	}

	if err := writer.WriteAll(records); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(report entity.AnalysisReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}

func money(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

func deviceBalance(line entity.Line) float64 {
	total := 0.0
	for _, eq := range line.Equipment {
		total += eq.TotalBalance
	}
	return total
}

func breakEven(q entity.CarrierQuote) string {
	if q.BreakEvenMonths == nil {
		return "Never"
	}
	return strconv.Itoa(*q.BreakEvenMonths)
}
