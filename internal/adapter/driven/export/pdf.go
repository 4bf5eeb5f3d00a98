package export

import (
	"fmt"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/diillson/billswitch/internal/domain/entity"
)

var (
	headerColor       = [3]int{40, 40, 40}
	headerTextColor   = [3]int{255, 255, 255}
	sectionTitleColor = [3]int{0, 0, 0}
	bodyTextColor     = [3]int{50, 50, 50}
	lineColor         = [3]int{200, 200, 200}
)

func (r *ExportRepositoryImpl) ExportToPDF(report entity.AnalysisReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Bill Analysis | %s", report.GeneratedAt.Format("2006-01-02"))), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	sectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	table := func(widths []float64, headers []string, rows [][]string) {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, row := range rows {
			for i, cell := range row {
				align := "L"
				if i > 0 {
					align = "R"
				}
				pdf.CellFormat(widths[i], 6, tr(cleanRichTags(cell)), "1", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(8)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  Bill Analysis: %s", report.Bill.Carrier)), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Account: %s   Bill date: %s   Due: %s",
		report.Bill.AccountNumber, report.Bill.BillDate, report.Bill.DueDate)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	sectionTitle("Bill Summary")
	pdf.SetFont("Arial", "", 10)
	summary := fmt.Sprintf("Total: %s\nPlans: %s\nEquipment: %s\nServices & fees: %s\nData used: %.1f GB",
		money(report.Bill.TotalAmount), money(report.Bill.PlanCosts), money(report.Bill.EquipmentCosts),
		money(report.Bill.ServicesCosts), report.Bill.TotalDataUsage())
	pdf.MultiCell(190, 5, tr(summary), "", "L", false)
	pdf.Ln(8)

	sectionTitle("Lines")
	lineRows := make([][]string, 0, len(report.Bill.Lines))
	for _, line := range report.Bill.Lines {
		lineRows = append(lineRows, []string{
			line.PhoneNumber,
			string(line.LineType),
			truncate(line.DeviceName, 28),
			money(line.MonthlyCharge),
			money(deviceBalance(line)),
		})
	}
	table([]float64{40, 25, 60, 30, 35}, []string{"Phone", "Type", "Device", "Plan", "Device Balance"}, lineRows)

	sectionTitle("Cost to Switch")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(190, 5, tr(fmt.Sprintf("Device payments: %s\nEarly termination fees: %s\nTotal: %s (%d lines)",
		money(report.Costs.DevicePayments), money(report.Costs.TerminationFees),
		money(report.Costs.Total), report.Costs.LineCount)), "", "L", false)
	pdf.Ln(8)

	if len(report.Quotes) > 0 {
		sectionTitle(fmt.Sprintf("Carrier Comparison (current: %s, %s/mo)", report.Current.Name, money(report.Current.MonthlyPrice)))
		quoteRows := make([][]string, 0, len(report.Quotes))
		for _, q := range report.Quotes {
			quoteRows = append(quoteRows, []string{
				q.Offer.Name,
				fmt.Sprintf("%d%%", q.Offer.Coverage),
				money(q.MonthlyCost),
				money(q.MonthlySavings),
				money(q.NetFirstYearSavings),
				breakEven(q),
			})
		}
		table([]float64{40, 22, 30, 32, 36, 30}, []string{"Carrier", "Coverage", "Monthly", "Savings/mo", "Net 1st Year", "Break Even"}, quoteRows)
	}

	if report.Coverage != nil {
		sectionTitle(fmt.Sprintf("Coverage (home %s, work %s)", report.Coverage.HomeZip, report.Coverage.WorkZip))
		coverageRows := make([][]string, 0, len(report.Coverage.Carriers))
		for _, c := range report.Coverage.Carriers {
			coverageRows = append(coverageRows, []string{
				c.CarrierID,
				fmt.Sprintf("%d%% (%s)", c.Home, c.HomeStatus),
				fmt.Sprintf("%d%% (%s)", c.Work, c.WorkStatus),
				fmt.Sprintf("%.1f%%", c.Average),
			})
		}
		table([]float64{40, 50, 50, 50}, []string{"Carrier", "Home", "Work", "Average"}, coverageRows)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
