package entity

import "time"

// AnalysisReport gathers everything produced for one uploaded bill.
type AnalysisReport struct {
	SourceFile  string          `json:"source_file"`
	Bill        BillData        `json:"bill"`
	Costs       SwitchingCosts  `json:"switching_costs"`
	Current     CurrentPlan     `json:"current_plan"`
	Quotes      []CarrierQuote  `json:"quotes"`
	Coverage    *CoverageReport `json:"coverage,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
}
