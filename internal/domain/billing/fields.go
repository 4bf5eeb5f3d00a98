package billing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/diillson/billswitch/internal/domain/entity"
)

var (
	currencyStripper = strings.NewReplacer("$", "", ",", "", " ", "")
	installmentRe    = regexp.MustCompile(`(?i)^\s*(\d+)\s+of\s+(\d+)\s*$`)
	dataUnitRe       = regexp.MustCompile(`(?i)\s*gb$`)

	// maxAmount bounds every parsed amount; larger values are extraction noise.
	maxAmount = decimal.New(1, 12)
)

// isSentinel reports values the extraction service uses for "not found".
func isSentinel(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "n/a", "unknown":
		return true
	}
	return false
}

// parseAmount parses a currency string such as "$1,234.56".
// Negative, non-numeric, sentinel and out-of-range values are rejected.
func parseAmount(raw string) (decimal.Decimal, bool) {
	cleaned := currencyStripper.Replace(strings.TrimSpace(raw))
	if isSentinel(cleaned) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil || d.IsNegative() || d.GreaterThan(maxAmount) {
		return decimal.Zero, false
	}
	return d, true
}

// ParseCurrency converts a currency string to a non-negative amount, 0 when unusable.
func ParseCurrency(raw string) float64 {
	d, _ := parseAmount(raw)
	return d.InexactFloat64()
}

// ParseInstallment returns the number of payments left from an "X of Y" string, 0 when unusable.
func ParseInstallment(raw string) int {
	m := installmentRe.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}
	paid, err1 := strconv.Atoi(m[1])
	total, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil || total < paid {
		return 0
	}
	return total - paid
}

func amountOf(s Scalar) decimal.Decimal {
	raw, ok := s.Value()
	if !ok {
		return decimal.Zero
	}
	d, _ := parseAmount(raw)
	return d
}

func moneyOf(s Scalar) float64 {
	return amountOf(s).InexactFloat64()
}

func dataUsageOf(s Scalar) float64 {
	raw, ok := s.Value()
	if !ok {
		return 0
	}
	return ParseCurrency(dataUnitRe.ReplaceAllString(strings.TrimSpace(raw), ""))
}

func textOf(s Scalar) string {
	raw, ok := s.Value()
	if !ok || isSentinel(raw) {
		return entity.Unknown
	}
	return strings.TrimSpace(raw)
}

// presentText returns the trimmed value when it carries real data.
func presentText(s Scalar) (string, bool) {
	raw, ok := s.Value()
	if !ok || isSentinel(raw) {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

func installmentsOf(s Scalar) int {
	raw, ok := s.Value()
	if !ok {
		return 0
	}
	return ParseInstallment(raw)
}

// equipmentTypeOf maps a free-text device type to an equipment type. It never fails:
// anything unrecognised is an accessory.
func equipmentTypeOf(s Scalar) entity.EquipmentType {
	raw, _ := s.Value()
	t := strings.ToLower(raw)
	switch {
	case strings.Contains(t, "phone"):
		return entity.EquipmentPhone
	case strings.Contains(t, "watch"), strings.Contains(t, "wearable"):
		return entity.EquipmentWatch
	case strings.Contains(t, "tablet"):
		return entity.EquipmentTablet
	default:
		return entity.EquipmentAccessory
	}
}
