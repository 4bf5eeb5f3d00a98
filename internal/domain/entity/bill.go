package entity

// EquipmentType identifies what kind of financed item an Equipment entry is.
type EquipmentType string

const (
	EquipmentPhone     EquipmentType = "Phone"
	EquipmentWatch     EquipmentType = "Watch"
	EquipmentTablet    EquipmentType = "Tablet"
	EquipmentAccessory EquipmentType = "Accessory"
)

// IsHandset reports whether the equipment can be the primary device of a line.
func (t EquipmentType) IsHandset() bool {
	return t == EquipmentPhone || t == EquipmentWatch || t == EquipmentTablet
}

// LineType is the category of a line, not of its equipment.
type LineType string

const (
	LineVoice  LineType = "Voice"
	LineWatch  LineType = "Watch"
	LineTablet LineType = "Tablet"
)

// Sentinels used when the extraction result does not carry a value.
const (
	Unknown            = "Unknown"
	UnknownDevice      = "Unknown Device"
	BringYourOwnDevice = "Bring Your Own Device"
)

// Equipment is an item financed on an installment plan and tied to one line.
type Equipment struct {
	ID                    string        `json:"id"`
	DeviceName            string        `json:"device_name"`
	MonthlyPayment        float64       `json:"monthly_payment"`
	RemainingPayments     int           `json:"remaining_payments"`
	TotalBalance          float64       `json:"total_balance"`
	AssociatedPhoneNumber string        `json:"associated_phone_number"`
	Type                  EquipmentType `json:"type"`
}

// Line is one billable phone/device line on an account.
type Line struct {
	PhoneNumber         string      `json:"phone_number"`
	DeviceName          string      `json:"device_name"`
	LineType            LineType    `json:"line_type"`
	PlanName            string      `json:"plan_name"`
	MonthlyCharge       float64     `json:"monthly_charge"`
	DataUsage           float64     `json:"data_usage_gb"`
	Equipment           []Equipment `json:"equipment"`
	EarlyTerminationFee float64     `json:"early_termination_fee"`
}

// Handset returns the primary handset of the line, if any.
func (l Line) Handset() (Equipment, bool) {
	for _, eq := range l.Equipment {
		if eq.Type.IsHandset() {
			return eq, true
		}
	}
	return Equipment{}, false
}

// Accessories returns the accessory entries of the line in bill order.
func (l Line) Accessories() []Equipment {
	var out []Equipment
	for _, eq := range l.Equipment {
		if eq.Type == EquipmentAccessory {
			out = append(out, eq)
		}
	}
	return out
}

// BillData is one billing statement for one account.
//
// TotalAmount is reported as-is; it is not reconciled against the three
// cost buckets because each one comes from a different section of the bill.
type BillData struct {
	Carrier        string  `json:"carrier"`
	AccountNumber  string  `json:"account_number"`
	BillDate       string  `json:"bill_date"`
	TotalAmount    float64 `json:"total_amount"`
	DueDate        string  `json:"due_date"`
	PlanCosts      float64 `json:"plan_costs"`
	EquipmentCosts float64 `json:"equipment_costs"`
	ServicesCosts  float64 `json:"services_costs"`
	Lines          []Line  `json:"lines"`
}

// TotalDataUsage sums the reported data usage of every line.
func (b BillData) TotalDataUsage() float64 {
	total := 0.0
	for _, l := range b.Lines {
		total += l.DataUsage
	}
	return total
}
