package entity

// SwitchingCosts is what a subscriber would owe to leave the current carrier today.
type SwitchingCosts struct {
	DevicePayments  float64 `json:"device_payments"`
	TerminationFees float64 `json:"termination_fees"`
	Total           float64 `json:"total"`
	LineCount       int     `json:"line_count"`
}
