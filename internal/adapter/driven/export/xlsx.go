package export

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/diillson/billswitch/internal/domain/entity"
)

const (
	sheetSummary   = "Summary"
	sheetLines     = "Lines"
	sheetEquipment = "Equipment"
	sheetCarriers  = "Carriers"
	sheetCoverage  = "Coverage"
)

// ExportToXLSX grava uma planilha com uma aba por seção do relatório.
func (r *ExportRepositoryImpl) ExportToXLSX(report entity.AnalysisReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(sheetSummary); err != nil {
		return "", fmt.Errorf("error creating sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", fmt.Errorf("error creating header style: %w", err)
	}
	negativeStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "9A0511"}, NumFmt: 2})
	if err != nil {
		return "", fmt.Errorf("error creating cell style: %w", err)
	}

	bill := report.Bill
	summary := [][]interface{}{
		{"Carrier", bill.Carrier},
		{"Account Number", bill.AccountNumber},
		{"Bill Date", bill.BillDate},
		{"Due Date", bill.DueDate},
		{"Total Amount", bill.TotalAmount},
		{"Plan Costs", bill.PlanCosts},
		{"Equipment Costs", bill.EquipmentCosts},
		{"Services & Fees", bill.ServicesCosts},
		{"Device Payments Remaining", report.Costs.DevicePayments},
		{"Early Termination Fees", report.Costs.TerminationFees},
		{"Total Cost to Switch", report.Costs.Total},
		{"Lines", report.Costs.LineCount},
		{"Source File", report.SourceFile},
		{"Generated At", report.GeneratedAt.Format("2006-01-02 15:04:05")},
	}
	for i, row := range summary {
		if err := f.SetSheetRow(sheetSummary, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return "", fmt.Errorf("error writing summary: %w", err)
		}
	}
	f.SetCellStyle(sheetSummary, "A1", fmt.Sprintf("A%d", len(summary)), headerStyle)

	lineRows := make([][]interface{}, 0, len(bill.Lines))
	var equipmentRows [][]interface{}
	for _, line := range bill.Lines {
		lineRows = append(lineRows, []interface{}{
			line.PhoneNumber, string(line.LineType), line.DeviceName, line.PlanName,
			line.MonthlyCharge, line.DataUsage, deviceBalance(line), line.EarlyTerminationFee,
		})
		for _, eq := range line.Equipment {
			equipmentRows = append(equipmentRows, []interface{}{
				eq.ID, eq.AssociatedPhoneNumber, eq.DeviceName, string(eq.Type),
				eq.MonthlyPayment, eq.RemainingPayments, eq.TotalBalance,
			})
		}
	}
	if err := writeSheet(f, sheetLines, headerStyle,
		[]interface{}{"Phone Number", "Line Type", "Device", "Plan", "Monthly Charge", "Data Usage (GB)", "Device Balance", "Early Termination Fee"},
		lineRows); err != nil {
		return "", err
	}
	if err := writeSheet(f, sheetEquipment, headerStyle,
		[]interface{}{"ID", "Phone Number", "Device", "Type", "Monthly Payment", "Remaining Payments", "Balance"},
		equipmentRows); err != nil {
		return "", err
	}

	quoteRows := make([][]interface{}, 0, len(report.Quotes))
	for _, q := range report.Quotes {
		quoteRows = append(quoteRows, []interface{}{
			q.Offer.Name, q.Offer.Data, q.Offer.Coverage, q.MonthlyCost,
			q.MonthlySavings, q.YearlySavings, q.NetFirstYearSavings, breakEven(q),
		})
	}
	if err := writeSheet(f, sheetCarriers, headerStyle,
		[]interface{}{"Carrier", "Data", "Coverage (%)", "Monthly Cost", "Monthly Savings", "Yearly Savings", "Net First Year", "Break Even (months)"},
		quoteRows); err != nil {
		return "", err
	}
	// Economia negativa em vermelho
	for i, q := range report.Quotes {
		if q.NetFirstYearSavings < 0 {
			cell := fmt.Sprintf("G%d", i+2)
			f.SetCellStyle(sheetCarriers, cell, cell, negativeStyle)
		}
	}

	if report.Coverage != nil {
		coverageRows := make([][]interface{}, 0, len(report.Coverage.Carriers))
		for _, c := range report.Coverage.Carriers {
			coverageRows = append(coverageRows, []interface{}{
				c.CarrierID, c.Home, string(c.HomeStatus), c.Work, string(c.WorkStatus), c.Average,
			})
		}
		if err := writeSheet(f, sheetCoverage, headerStyle,
			[]interface{}{"Carrier", "Home " + report.Coverage.HomeZip, "Home Status", "Work " + report.Coverage.WorkZip, "Work Status", "Average"},
			coverageRows); err != nil {
			return "", err
		}
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, headers []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("error creating sheet %s: %w", sheet, err)
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("error writing %s header: %w", sheet, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", last, headerStyle)

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("error writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
