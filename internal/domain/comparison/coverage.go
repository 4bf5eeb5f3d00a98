package comparison

import (
	"regexp"

	"github.com/diillson/billswitch/internal/domain/entity"
	"github.com/diillson/billswitch/internal/shared/types"
)

var zipRe = regexp.MustCompile(`^\d{5}$`)

// ValidateZip accepts exactly five digits.
func ValidateZip(zip string) error {
	if !zipRe.MatchString(zip) {
		return types.ErrInvalidZip
	}
	return nil
}

// CoverageStatus labels a coverage percentage.
func CoverageStatus(pct int) entity.CoverageStatus {
	switch {
	case pct >= 90:
		return entity.CoverageExcellent
	case pct >= 70:
		return entity.CoverageGood
	default:
		return entity.CoverageFair
	}
}

// LocationCoverageFor fills in labels and the average for a carrier's home/work figures.
func LocationCoverageFor(carrierID string, home, work int) entity.LocationCoverage {
	return entity.LocationCoverage{
		CarrierID:  carrierID,
		Home:       home,
		Work:       work,
		Average:    float64(home+work) / 2,
		HomeStatus: CoverageStatus(home),
		WorkStatus: CoverageStatus(work),
	}
}
