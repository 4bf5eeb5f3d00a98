package entity

// CoverageStatus is the label attached to a coverage percentage.
type CoverageStatus string

const (
	CoverageExcellent CoverageStatus = "Excellent"
	CoverageGood      CoverageStatus = "Good"
	CoverageFair      CoverageStatus = "Fair"
)

// LocationCoverage is the coverage of one carrier at the user's two locations.
type LocationCoverage struct {
	CarrierID  string         `json:"carrier_id"`
	Home       int            `json:"home"`
	Work       int            `json:"work"`
	Average    float64        `json:"average"`
	HomeStatus CoverageStatus `json:"home_status"`
	WorkStatus CoverageStatus `json:"work_status"`
}

// CoverageReport is the result of a coverage check at a home and a work ZIP code.
type CoverageReport struct {
	HomeZip  string             `json:"home_zip"`
	WorkZip  string             `json:"work_zip"`
	Carriers []LocationCoverage `json:"carriers"`
}
