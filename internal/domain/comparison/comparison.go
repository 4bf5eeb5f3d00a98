// Package comparison prices alternative carriers against what the subscriber pays today.
package comparison

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/diillson/billswitch/internal/domain/entity"
	"github.com/diillson/billswitch/internal/shared/types"
)

// SortKey selects the ordering of a comparison.
type SortKey string

const (
	SortByPrice    SortKey = "price"
	SortByCoverage SortKey = "coverage"
)

// ParseSortKey accepts "price" or "coverage"; empty means price.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortByPrice:
		return SortByPrice, nil
	case SortByCoverage:
		return SortByCoverage, nil
	}
	return "", fmt.Errorf("invalid sort key %q: use price or coverage", s)
}

// ValidatePrice rejects NaN, infinities and negative prices.
func ValidatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return fmt.Errorf("%w: got %v", types.ErrInvalidPrice, price)
	}
	return nil
}

// CurrentPlanFrom derives the current monthly spend from a normalized bill.
// Plan costs are preferred since equipment installments keep being owed after a switch.
func CurrentPlanFrom(bill entity.BillData) entity.CurrentPlan {
	price := bill.PlanCosts
	if price <= 0 {
		price = bill.TotalAmount
	}
	return entity.CurrentPlan{
		Name:         bill.Carrier,
		MonthlyPrice: price,
		Lines:        len(bill.Lines),
	}
}

// Compare quotes every offer against the current plan, net of the switching costs.
// The offers slice is not modified.
func Compare(current entity.CurrentPlan, offers []entity.CarrierOffer, costs entity.SwitchingCosts, sortBy SortKey) []entity.CarrierQuote {
	lines := current.Lines
	if lines < 1 {
		lines = 1
	}
	currentPrice := amountFrom(current.MonthlyPrice)
	switching := amountFrom(costs.Total)

	quotes := make([]entity.CarrierQuote, 0, len(offers))
	for _, offer := range offers {
		monthlyCost := amountFrom(offer.MonthlyPrice).Mul(decimal.NewFromInt(int64(lines)))
		monthly := currentPrice.Sub(monthlyCost)
		yearly := monthly.Mul(decimal.NewFromInt(12))

		quote := entity.CarrierQuote{
			Offer:               offer,
			MonthlyCost:         monthlyCost.InexactFloat64(),
			MonthlySavings:      monthly.InexactFloat64(),
			YearlySavings:       yearly.InexactFloat64(),
			SwitchingCost:       switching.InexactFloat64(),
			NetFirstYearSavings: yearly.Sub(switching).InexactFloat64(),
		}
		if monthly.IsPositive() {
			months := int(switching.Div(monthly).Ceil().IntPart())
			quote.BreakEvenMonths = &months
		}
		quotes = append(quotes, quote)
	}

	Sort(quotes, sortBy)
	return quotes
}

// amountFrom converte um valor em decimal; valores inválidos viram zero.
func amountFrom(v float64) decimal.Decimal {
	if ValidatePrice(v) != nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// Sort orders quotes by monthly cost ascending or by coverage descending.
func Sort(quotes []entity.CarrierQuote, sortBy SortKey) {
	sort.SliceStable(quotes, func(i, j int) bool {
		if sortBy == SortByCoverage {
			return quotes[i].Offer.Coverage > quotes[j].Offer.Coverage
		}
		return quotes[i].Offer.MonthlyPrice < quotes[j].Offer.MonthlyPrice
	})
}

// BestQuote returns the quote with the highest first-year net savings.
func BestQuote(quotes []entity.CarrierQuote) (entity.CarrierQuote, bool) {
	if len(quotes) == 0 {
		return entity.CarrierQuote{}, false
	}
	best := quotes[0]
	for _, q := range quotes[1:] {
		if q.NetFirstYearSavings > best.NetFirstYearSavings {
			best = q
		}
	}
	return best, true
}
