package entity

// CarrierOffer is one alternative carrier as listed in the comparison catalog.
type CarrierOffer struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Logo         string   `json:"logo"`
	MonthlyPrice float64  `json:"monthly_price"`
	Data         string   `json:"data"`
	Coverage     int      `json:"coverage"`
	Features     []string `json:"features"`
}

// CarrierPlan is a plan published by a carrier.
type CarrierPlan struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Data     string   `json:"data"`
	Features []string `json:"features"`
}

// CoverageScores are the nationwide coverage figures of a carrier, in percent.
type CoverageScores struct {
	Overall int    `json:"overall"`
	Data    int    `json:"data"`
	Voice   int    `json:"voice"`
	Map     string `json:"map"`
}

// CarrierProfile is the detailed description of a major carrier.
type CarrierProfile struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Logo        string         `json:"logo"`
	Description string         `json:"description"`
	Pros        []string       `json:"pros"`
	Cons        []string       `json:"cons"`
	Plans       []CarrierPlan  `json:"plans"`
	Coverage    CoverageScores `json:"coverage"`
}

// CurrentPlan identifies what the subscriber pays today.
type CurrentPlan struct {
	Name         string  `json:"name"`
	MonthlyPrice float64 `json:"monthly_price"`
	Lines        int     `json:"lines"`
}

// CarrierQuote is an offer priced against the subscriber's current plan.
type CarrierQuote struct {
	Offer               CarrierOffer `json:"offer"`
	MonthlyCost         float64      `json:"monthly_cost"`
	MonthlySavings      float64      `json:"monthly_savings"`
	YearlySavings       float64      `json:"yearly_savings"`
	SwitchingCost       float64      `json:"switching_cost"`
	NetFirstYearSavings float64      `json:"net_first_year_savings"`
	BreakEvenMonths     *int         `json:"break_even_months,omitempty"`
}
