package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/diillson/billswitch/internal/domain/entity"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestRepo() *ExportRepositoryImpl {
	return &ExportRepositoryImpl{now: func() time.Time { return fixedNow }}
}

func sampleReport() entity.AnalysisReport {
	breakEven := 9
	return entity.AnalysisReport{
		SourceFile: "march.pdf",
		Bill: entity.BillData{
			Carrier:       "Big Mobile Inc.",
			AccountNumber: "123456789",
			BillDate:      "March 1, 2025",
			DueDate:       "March 21, 2025",
			TotalAmount:   265.5,
			PlanCosts:     180,
			Lines: []entity.Line{
				{
					PhoneNumber:   "(555) 123-4567",
					DeviceName:    "iPhone 15 Pro",
					LineType:      entity.LineVoice,
					PlanName:      "Unlimited Plus",
					MonthlyCharge: 90,
					DataUsage:     12.5,
					Equipment: []entity.Equipment{
						{ID: "eq-1", DeviceName: "iPhone 15 Pro", MonthlyPayment: 41.67, RemainingPayments: 24, TotalBalance: 1000, AssociatedPhoneNumber: "(555) 123-4567", Type: entity.EquipmentPhone},
					},
					EarlyTerminationFee: 50,
				},
			},
		},
		Costs:   entity.SwitchingCosts{DevicePayments: 1000, TerminationFees: 50, Total: 1050, LineCount: 1},
		Current: entity.CurrentPlan{Name: "Big Mobile Inc.", MonthlyPrice: 180, Lines: 1},
		Quotes: []entity.CarrierQuote{
			{
				Offer:               entity.CarrierOffer{ID: "mint", Name: "Mint Mobile", Data: "10GB", Coverage: 88},
				MonthlyCost:         30,
				MonthlySavings:      150,
				YearlySavings:       1800,
				SwitchingCost:       1050,
				NetFirstYearSavings: 750,
				BreakEvenMonths:     &breakEven,
			},
			{
				Offer:               entity.CarrierOffer{ID: "att", Name: "AT&T", Data: "Unlimited", Coverage: 95},
				MonthlyCost:         200,
				MonthlySavings:      -20,
				YearlySavings:       -240,
				SwitchingCost:       1050,
				NetFirstYearSavings: -1290,
			},
		},
		Coverage: &entity.CoverageReport{
			HomeZip: "94105",
			WorkZip: "10001",
			Carriers: []entity.LocationCoverage{
				{CarrierID: "verizon", Home: 95, Work: 92, Average: 93.5, HomeStatus: entity.CoverageExcellent, WorkStatus: entity.CoverageExcellent},
			},
		},
		GeneratedAt: fixedNow,
	}
}

func TestExportToCSV(t *testing.T) {
	dir := t.TempDir()
	path, err := newTestRepo().ExportToCSV(sampleReport(), "bill", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "bill_20250314_093000.csv"), path)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 5)
	assert.Equal(t, "Phone Number", records[0][0])
	assert.Equal(t, []string{"(555) 123-4567", "Voice", "iPhone 15 Pro", "Unlimited Plus", "$90.00", "12.5", "$1000.00", "$50.00"}, records[1])
	assert.Equal(t, "Carrier", records[2][0])
	assert.Equal(t, []string{"Mint Mobile", "10GB", "88%", "$30.00", "$150.00", "$1800.00", "$750.00", "9"}, records[3])
	assert.Equal(t, "-$1290.00", records[4][6])
	assert.Equal(t, "Never", records[4][7])
}

func TestExportToJSON(t *testing.T) {
	path, err := newTestRepo().ExportToJSON(sampleReport(), "bill", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got entity.AnalysisReport
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 1050.0, got.Costs.Total)
	assert.Equal(t, "(555) 123-4567", got.Bill.Lines[0].PhoneNumber)
	require.NotNil(t, got.Quotes[0].BreakEvenMonths)
	assert.Nil(t, got.Quotes[1].BreakEvenMonths)
}

func TestExportToPDF(t *testing.T) {
	path, err := newTestRepo().ExportToPDF(sampleReport(), "bill", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF")
}

func TestExportToXLSX(t *testing.T) {
	path, err := newTestRepo().ExportToXLSX(sampleReport(), "bill", t.TempDir())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Lines", "Equipment", "Carriers", "Coverage"}, f.GetSheetList())

	carrier, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Big Mobile Inc.", carrier)

	eqID, err := f.GetCellValue("Equipment", "A2")
	require.NoError(t, err)
	assert.Equal(t, "eq-1", eqID)

	best, err := f.GetCellValue("Carriers", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Mint Mobile", best)
}

func TestExport_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "march")
	path, err := newTestRepo().ExportToJSON(sampleReport(), "bill", dir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestCleanRichTags(t *testing.T) {
	assert.Equal(t, "Saves $5", cleanRichTags("[green]Saves $5[/green]"))
	assert.Equal(t, "plain", cleanRichTags("\x1b[31mplain\x1b[0m"))
}
