package usecase

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/billswitch/internal/domain/billing"
	"github.com/diillson/billswitch/internal/domain/comparison"
	"github.com/diillson/billswitch/internal/domain/entity"
	"github.com/diillson/billswitch/internal/domain/repository/mocks"
	"github.com/diillson/billswitch/internal/shared/types"
)

const extraction = `{
  "account_summary": {
    "carrier": "Big Mobile Inc.",
    "account_number": "123456789",
    "bill_date": "March 1, 2025",
    "due_date": "March 21, 2025",
    "total_monthly_bill": "$265.50",
    "plan_costs": "$180.00",
    "equipment_costs": "$70.00",
    "services_and_fees": "$15.50"
  },
  "phones": [
    {
      "phone_number": "(555) 123-4567",
      "plan": {"name": "Unlimited Plus", "charge": "$90.00"},
      "data_usage_gb": "12.5",
      "equipment": [
        {
          "model": "iPhone 15 Pro",
          "type": "phone",
          "installment_info": {"monthly_payment": "$41.67", "installment": "12 of 36", "balance": "$1,000.08"}
        }
      ]
    },
    {
      "phone_number": "(555) 987-6543",
      "plan": {"name": "Unlimited Plus", "charge": "$90.00"},
      "data_usage_gb": "N/A",
      "equipment": []
    }
  ]
}`

// fakeConsole guarda as mensagens emitidas pelo use case.
type fakeConsole struct {
	out      strings.Builder
	warnings []string
	errors   []string
	success  []string
	bars     []types.SavingsBar
}

func (c *fakeConsole) Print(a ...interface{})                 { fmt.Fprint(&c.out, a...) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { fmt.Fprintf(&c.out, format, a...) }
func (c *fakeConsole) Println(a ...interface{})               { fmt.Fprintln(&c.out, a...) }
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	fmt.Fprintf(&c.out, format+"\n", a...)
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Status(string) types.StatusHandle { return fakeStatus{} }
func (c *fakeConsole) CreateTable() types.TableInterface {
	return &fakeTable{}
}
func (c *fakeConsole) DisplaySavingsBars(_ string, bars []types.SavingsBar) {
	c.bars = append(c.bars, bars...)
}

type fakeStatus struct{}

func (fakeStatus) Update(string) {}
func (fakeStatus) Stop()         {}

type fakeTable struct {
	rows [][]interface{}
}

func (t *fakeTable) AddColumn(string, ...interface{}) {}
func (t *fakeTable) AddRow(cells ...interface{})      { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string                   { return fmt.Sprintf("%v\n", t.rows) }

func testOffers() []entity.CarrierOffer {
	return []entity.CarrierOffer{
		{ID: "tmobile", Name: "T-Mobile", MonthlyPrice: 65, Coverage: 94},
		{ID: "mint", Name: "Mint Mobile", MonthlyPrice: 30, Coverage: 88},
	}
}

type fixture struct {
	extractor *mocks.MockBillExtractor
	carriers  *mocks.MockCarrierRepository
	coverage  *mocks.MockCoverageRepository
	exports   *mocks.MockExportRepository
	console   *fakeConsole
	uc        *AnalysisUseCase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		extractor: mocks.NewMockBillExtractor(ctrl),
		carriers:  mocks.NewMockCarrierRepository(ctrl),
		coverage:  mocks.NewMockCoverageRepository(ctrl),
		exports:   mocks.NewMockExportRepository(ctrl),
		console:   &fakeConsole{},
	}
	f.uc = NewAnalysisUseCase(f.extractor, f.carriers, f.coverage, f.exports, f.console, billing.DefaultUploadLimits())
	f.uc.now = func() time.Time { return time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC) }
	return f
}

func pdfUpload() entity.BillUpload {
	return entity.BillUpload{FileName: "march.pdf", Content: []byte("%PDF-1.4")}
}

func TestAnalyzeUpload(t *testing.T) {
	f := newFixture(t)

	f.extractor.EXPECT().
		Extract(gomock.Any(), entity.BillUpload{FileName: "march.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4")}).
		Return([]byte(extraction), nil)
	f.carriers.EXPECT().Alternatives(gomock.Any()).Return(testOffers(), nil)

	report, err := f.uc.AnalyzeUpload(context.Background(), pdfUpload(), AnalysisRequest{SortBy: comparison.SortByPrice})
	require.NoError(t, err)

	assert.Equal(t, "march.pdf", report.SourceFile)
	assert.Equal(t, "Big Mobile Inc.", report.Bill.Carrier)
	require.Len(t, report.Bill.Lines, 2)
	assert.Equal(t, entity.BringYourOwnDevice, report.Bill.Lines[1].DeviceName)

	assert.Equal(t, entity.SwitchingCosts{DevicePayments: 1000.08, Total: 1000.08, LineCount: 2}, report.Costs)
	assert.Equal(t, entity.CurrentPlan{Name: "Big Mobile Inc.", MonthlyPrice: 180, Lines: 2}, report.Current)

	require.Len(t, report.Quotes, 2)
	assert.Equal(t, "mint", report.Quotes[0].Offer.ID)
	assert.Equal(t, 120.0, report.Quotes[0].MonthlySavings)
	assert.Nil(t, report.Coverage)
	assert.Equal(t, 2025, report.GeneratedAt.Year())
}

func TestAnalyzeUpload_WithCoverage(t *testing.T) {
	f := newFixture(t)

	f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return([]byte(extraction), nil)
	f.carriers.EXPECT().Alternatives(gomock.Any()).Return(testOffers(), nil)
	f.coverage.EXPECT().Check(gomock.Any(), "94105", "10001").
		Return(entity.CoverageReport{HomeZip: "94105", WorkZip: "10001"}, nil)

	report, err := f.uc.AnalyzeUpload(context.Background(), pdfUpload(), AnalysisRequest{HomeZip: "94105", WorkZip: "10001"})
	require.NoError(t, err)
	require.NotNil(t, report.Coverage)
	assert.Equal(t, "94105", report.Coverage.HomeZip)
}

func TestAnalyzeUpload_Errors(t *testing.T) {
	transportErr := &types.TransportError{StatusCode: 500, Status: "500 Internal Server Error"}

	tests := []struct {
		name     string
		upload   entity.BillUpload
		setup    func(f *fixture)
		wantErr  error
		wantType bool
	}{
		{
			name:    "invalid file type never reaches the extractor",
			upload:  entity.BillUpload{FileName: "bill.docx", Content: []byte("x")},
			wantErr: types.ErrInvalidFileType,
		},
		{
			name:    "file too large",
			upload:  entity.BillUpload{FileName: "bill.pdf", Content: make([]byte, 10*1024*1024+1)},
			wantErr: types.ErrFileTooLarge,
		},
		{
			name:   "transport failure",
			upload: pdfUpload(),
			setup: func(f *fixture) {
				f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(nil, transportErr)
			},
			wantErr: transportErr,
		},
		{
			name:   "empty result",
			upload: pdfUpload(),
			setup: func(f *fixture) {
				f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return([]byte("  "), nil)
			},
			wantErr: types.ErrEmptyResult,
		},
		{
			name:   "unexpected format",
			upload: pdfUpload(),
			setup: func(f *fixture) {
				f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return([]byte(`{"phones":[]}`), nil)
			},
			wantErr: types.ErrUnexpectedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			_, err := f.uc.AnalyzeUpload(context.Background(), tt.upload, AnalysisRequest{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAnalyzeUpload_NoExtractor(t *testing.T) {
	f := newFixture(t)
	f.uc.extractor = nil

	_, err := f.uc.AnalyzeUpload(context.Background(), pdfUpload(), AnalysisRequest{})
	assert.ErrorIs(t, err, types.ErrNoExtractorConfigured)
}

func TestRunNormalize_ExportsReports(t *testing.T) {
	f := newFixture(t)

	path := filepath.Join(t.TempDir(), "extraction.json")
	require.NoError(t, os.WriteFile(path, []byte(extraction), 0o600))

	f.carriers.EXPECT().Alternatives(gomock.Any()).Return(testOffers(), nil)
	f.exports.EXPECT().ExportToCSV(gomock.Any(), "march", "out").Return("/tmp/out/march.csv", nil)
	f.exports.EXPECT().ExportToXLSX(gomock.Any(), "march", "out").Return("", fmt.Errorf("disk full"))

	err := f.uc.RunNormalize(context.Background(), &types.CLIArgs{
		BillFile:   path,
		ReportName: "march",
		ReportType: []string{"csv", "xlsx", "docx"},
		Dir:        "out",
	})
	require.NoError(t, err)

	assert.Contains(t, f.console.success, "Successfully exported to csv: /tmp/out/march.csv")
	assert.Equal(t, []string{"Failed to export to xlsx: disk full"}, f.console.errors)
	require.Len(t, f.console.warnings, 1)
	assert.Contains(t, f.console.warnings[0], "docx")
	assert.Len(t, f.console.bars, 2)
	assert.Contains(t, f.console.out.String(), "(555) 123-4567")
}

func TestRunNormalize_MalformedFile(t *testing.T) {
	f := newFixture(t)

	path := filepath.Join(t.TempDir(), "extraction.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1,2,3]`), 0o600))

	err := f.uc.RunNormalize(context.Background(), &types.CLIArgs{BillFile: path})
	assert.ErrorIs(t, err, types.ErrUnexpectedFormat)
	require.Len(t, f.console.errors, 1)
	assert.Contains(t, f.console.errors[0], "Please try uploading")
}

func TestRunAnalysis_ReadsFile(t *testing.T) {
	f := newFixture(t)

	path := filepath.Join(t.TempDir(), "march.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG"), 0o600))

	f.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, upload entity.BillUpload) ([]byte, error) {
			assert.Equal(t, "march.png", upload.FileName)
			assert.Equal(t, "image/png", upload.ContentType)
			return []byte(extraction), nil
		})
	f.carriers.EXPECT().Alternatives(gomock.Any()).Return(testOffers(), nil)

	err := f.uc.RunAnalysis(context.Background(), &types.CLIArgs{BillFile: path, HomeZip: "94105"})
	require.NoError(t, err)
	require.Len(t, f.console.warnings, 1)
	assert.Contains(t, f.console.warnings[0], "--work")
}

func TestRunAnalysis_MissingFile(t *testing.T) {
	f := newFixture(t)
	err := f.uc.RunAnalysis(context.Background(), &types.CLIArgs{BillFile: filepath.Join(t.TempDir(), "nope.pdf")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunCarriers(t *testing.T) {
	f := newFixture(t)

	f.carriers.EXPECT().DefaultCurrentPlan().Return(entity.CurrentPlan{Name: "Big Mobile Inc.", MonthlyPrice: 89.99, Lines: 1})
	f.carriers.EXPECT().Alternatives(gomock.Any()).Return(testOffers(), nil)

	require.NoError(t, f.uc.RunCarriers(context.Background(), &types.CLIArgs{CurrentPrice: 100, Lines: 2, SortBy: "coverage"}))
	require.Len(t, f.console.bars, 2)
	assert.Equal(t, "T-Mobile", f.console.bars[0].Label)
	assert.InDelta(t, -360.0, f.console.bars[0].Amount, 1e-9)
	assert.InDelta(t, 480.0, f.console.bars[1].Amount, 1e-9)
	assert.Contains(t, f.console.success[0], "Mint Mobile")
}

func TestRunCarriers_Details(t *testing.T) {
	f := newFixture(t)

	f.carriers.EXPECT().DefaultCurrentPlan().Return(entity.CurrentPlan{Name: "Big Mobile Inc.", MonthlyPrice: 89.99, Lines: 1})
	f.carriers.EXPECT().Alternatives(gomock.Any()).Return(testOffers(), nil)
	f.carriers.EXPECT().Profiles(gomock.Any()).Return([]entity.CarrierProfile{
		{ID: "verizon", Name: "Verizon", Pros: []string{"Strong rural coverage"}, Plans: []entity.CarrierPlan{{Name: "Start Unlimited", Price: 70}}},
	}, nil)

	require.NoError(t, f.uc.RunCarriers(context.Background(), &types.CLIArgs{Details: true}))
	assert.Contains(t, f.console.out.String(), "Strong rural coverage")
	assert.Contains(t, f.console.out.String(), "Start Unlimited")
}

func TestRunCarriers_InvalidSort(t *testing.T) {
	f := newFixture(t)
	assert.Error(t, f.uc.RunCarriers(context.Background(), &types.CLIArgs{SortBy: "speed"}))
}

func TestRunCoverage(t *testing.T) {
	f := newFixture(t)
	f.coverage.EXPECT().Check(gomock.Any(), "941", "10001").Return(entity.CoverageReport{}, types.ErrInvalidZip)

	err := f.uc.RunCoverage(context.Background(), &types.CLIArgs{HomeZip: "941", WorkZip: "10001"})
	assert.ErrorIs(t, err, types.ErrInvalidZip)
}

func TestCurrentPlan(t *testing.T) {
	f := newFixture(t)
	f.carriers.EXPECT().DefaultCurrentPlan().Return(entity.CurrentPlan{Name: "Big Mobile Inc.", MonthlyPrice: 89.99, Lines: 1}).Times(2)

	assert.Equal(t, 89.99, f.uc.CurrentPlan(0, 0).MonthlyPrice)
	assert.Equal(t, entity.CurrentPlan{Name: "Current plan", MonthlyPrice: 120, Lines: 3}, f.uc.CurrentPlan(120, 3))
}

func TestCurrentPlan_NonFinitePriceUsesDefault(t *testing.T) {
	f := newFixture(t)
	f.carriers.EXPECT().DefaultCurrentPlan().Return(entity.CurrentPlan{Name: "Big Mobile Inc.", MonthlyPrice: 89.99, Lines: 1}).Times(2)

	assert.Equal(t, 89.99, f.uc.CurrentPlan(math.Inf(1), 0).MonthlyPrice)
	assert.Equal(t, 89.99, f.uc.CurrentPlan(math.NaN(), 0).MonthlyPrice)
}

func TestRunCarriers_InvalidPrice(t *testing.T) {
	for _, price := range []float64{math.Inf(1), math.Inf(-1), math.NaN(), -1} {
		f := newFixture(t)
		err := f.uc.RunCarriers(context.Background(), &types.CLIArgs{CurrentPrice: price})
		assert.ErrorIs(t, err, types.ErrInvalidPrice)
	}
}

func TestUserMessage(t *testing.T) {
	assert.Contains(t, UserMessage(&types.TransportError{StatusCode: 502}), "try uploading your bill again")
	assert.Contains(t, UserMessage(fmt.Errorf("wrap: %w", types.ErrUnexpectedFormat)), "clearer copy")
	assert.Contains(t, UserMessage(types.ErrEmptyResult), "No bill details")
	assert.Contains(t, UserMessage(types.ErrInvalidFileType), ".heic")
	assert.Empty(t, UserMessage(fmt.Errorf("other")))
}
