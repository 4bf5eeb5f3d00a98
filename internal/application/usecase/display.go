package usecase

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/diillson/billswitch/internal/domain/comparison"
	"github.com/diillson/billswitch/internal/domain/entity"
	"github.com/diillson/billswitch/internal/shared/types"
)

// Funções de exibição para o AnalysisUseCase

func (uc *AnalysisUseCase) displayReport(report entity.AnalysisReport) {
	bill := report.Bill

	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprintf("%s | Account %s | Bill date %s | Due %s",
		bill.Carrier, bill.AccountNumber, bill.BillDate, bill.DueDate))

	summary := uc.console.CreateTable()
	summary.AddColumn("Total")
	summary.AddColumn("Plans")
	summary.AddColumn("Equipment")
	summary.AddColumn("Services & Fees")
	summary.AddColumn("Data Used")
	summary.AddRow(
		money(bill.TotalAmount),
		money(bill.PlanCosts),
		money(bill.EquipmentCosts),
		money(bill.ServicesCosts),
		fmt.Sprintf("%.1f GB", bill.TotalDataUsage()),
	)
	uc.console.Print(summary.Render())

	lines := uc.console.CreateTable()
	lines.AddColumn("Phone Number")
	lines.AddColumn("Type")
	lines.AddColumn("Device")
	lines.AddColumn("Plan")
	lines.AddColumn("Monthly")
	lines.AddColumn("Device Balance")
	lines.AddColumn("ETF")
	for _, line := range bill.Lines {
		lines.AddRow(
			line.PhoneNumber,
			string(line.LineType),
			formatDevice(line),
			line.PlanName,
			money(line.MonthlyCharge),
			money(lineBalance(line)),
			money(line.EarlyTerminationFee),
		)
	}
	if len(bill.Lines) == 0 {
		uc.console.LogWarning("No lines were found on this bill")
	} else {
		uc.console.Print(lines.Render())
	}

	uc.console.Printf("\n%s %s (device payments %s + termination fees %s across %d lines)\n",
		pterm.Bold.Sprint("Cost to switch today:"),
		pterm.FgRed.Sprint(money(report.Costs.Total)),
		money(report.Costs.DevicePayments),
		money(report.Costs.TerminationFees),
		report.Costs.LineCount,
	)

	uc.displayQuotes(report.Current, report.Quotes)

	if report.Coverage != nil {
		uc.displayCoverage(*report.Coverage)
	}
}

func (uc *AnalysisUseCase) displayQuotes(current entity.CurrentPlan, quotes []entity.CarrierQuote) {
	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprintf("Current: %s at %s/mo for %d line(s)",
		current.Name, money(current.MonthlyPrice), max(current.Lines, 1)))

	table := uc.console.CreateTable()
	table.AddColumn("Carrier")
	table.AddColumn("Data")
	table.AddColumn("Coverage")
	table.AddColumn("Monthly Cost")
	table.AddColumn("Savings/mo")
	table.AddColumn("Net 1st Year")
	table.AddColumn("Break Even")
	for _, q := range quotes {
		table.AddRow(
			q.Offer.Name,
			q.Offer.Data,
			fmt.Sprintf("%d%%", q.Offer.Coverage),
			money(q.MonthlyCost),
			signedMoney(q.MonthlySavings),
			signedMoney(q.NetFirstYearSavings),
			formatBreakEven(q),
		)
	}
	uc.console.Print(table.Render())

	bars := make([]types.SavingsBar, 0, len(quotes))
	for _, q := range quotes {
		bars = append(bars, types.SavingsBar{Label: q.Offer.Name, Amount: q.NetFirstYearSavings})
	}
	uc.console.DisplaySavingsBars("First-Year Savings After Switching Costs", bars)

	if best, ok := comparison.BestQuote(quotes); ok && best.NetFirstYearSavings > 0 {
		uc.console.LogSuccess("Best option: %s saves %s in the first year", best.Offer.Name, money(best.NetFirstYearSavings))
	} else if ok {
		uc.console.LogInfo("No carrier pays back the cost of switching within the first year")
	}
}

func (uc *AnalysisUseCase) displayCoverage(report entity.CoverageReport) {
	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprintf("Coverage at home (%s) and work (%s)", report.HomeZip, report.WorkZip))

	table := uc.console.CreateTable()
	table.AddColumn("Carrier")
	table.AddColumn("Home")
	table.AddColumn("Work")
	table.AddColumn("Average")
	for _, c := range report.Carriers {
		table.AddRow(
			c.CarrierID,
			coverageCell(c.Home, c.HomeStatus),
			coverageCell(c.Work, c.WorkStatus),
			fmt.Sprintf("%.1f%%", c.Average),
		)
	}
	uc.console.Print(table.Render())
}

func (uc *AnalysisUseCase) displayProfiles(profiles []entity.CarrierProfile) {
	for _, p := range profiles {
		uc.console.Printf("\n%s\n%s\n", pterm.FgCyan.Sprintf("%s  (coverage %d%% overall, %d%% data, %d%% voice)",
			p.Name, p.Coverage.Overall, p.Coverage.Data, p.Coverage.Voice), p.Description)

		plans := uc.console.CreateTable()
		plans.AddColumn("Plan")
		plans.AddColumn("Price")
		plans.AddColumn("Data")
		plans.AddColumn("Features")
		for _, plan := range p.Plans {
			plans.AddRow(plan.Name, money(plan.Price), plan.Data, strings.Join(plan.Features, "\n"))
		}
		uc.console.Print(plans.Render())

		uc.console.Printf("%s %s\n%s %s\n",
			pterm.FgGreen.Sprint("Pros:"), strings.Join(p.Pros, "; "),
			pterm.FgRed.Sprint("Cons:"), strings.Join(p.Cons, "; "))
	}
}

func formatDevice(line entity.Line) string {
	accessories := line.Accessories()
	if len(accessories) == 0 {
		return line.DeviceName
	}
	names := make([]string, 0, len(accessories))
	for _, a := range accessories {
		names = append(names, a.DeviceName)
	}
	return fmt.Sprintf("%s\n+ %s", line.DeviceName, strings.Join(names, "\n+ "))
}

func lineBalance(line entity.Line) float64 {
	total := 0.0
	for _, eq := range line.Equipment {
		total += eq.TotalBalance
	}
	return total
}

func coverageCell(pct int, status entity.CoverageStatus) string {
	text := fmt.Sprintf("%d%% %s", pct, status)
	switch status {
	case entity.CoverageExcellent:
		return pterm.FgGreen.Sprint(text)
	case entity.CoverageGood:
		return pterm.FgYellow.Sprint(text)
	}
	return pterm.FgRed.Sprint(text)
}

func formatBreakEven(q entity.CarrierQuote) string {
	if q.BreakEvenMonths == nil {
		return pterm.FgRed.Sprint("Never")
	}
	if *q.BreakEvenMonths == 0 {
		return pterm.FgGreen.Sprint("Immediately")
	}
	return fmt.Sprintf("%d months", *q.BreakEvenMonths)
}

func money(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

func signedMoney(v float64) string {
	switch {
	case v > 0.005:
		return pterm.FgGreen.Sprint(money(v))
	case v < -0.005:
		return pterm.FgRed.Sprint(money(v))
	}
	return money(0)
}
