package billing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/diillson/billswitch/internal/domain/entity"
)

// SwitchingCostsFor computes what leaving the current carrier would cost.
// Accessory installments count as much as handsets: they are still owed on exit.
func SwitchingCostsFor(bill entity.BillData) entity.SwitchingCosts {
	devices := decimal.Zero
	fees := decimal.Zero
	for _, line := range bill.Lines {
		for _, eq := range line.Equipment {
			devices = devices.Add(amountFrom(eq.TotalBalance))
		}
		fees = fees.Add(amountFrom(line.EarlyTerminationFee))
	}

	return entity.SwitchingCosts{
		DevicePayments:  devices.InexactFloat64(),
		TerminationFees: fees.InexactFloat64(),
		Total:           devices.Add(fees).InexactFloat64(),
		LineCount:       len(bill.Lines),
	}
}

// amountFrom trata NaN, infinito e negativos como zero.
func amountFrom(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
