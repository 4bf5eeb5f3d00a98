// Package billing turns loosely-typed bill extraction results into the strict
// billing model and derives the cost of switching carriers from it.
//
// Every function in this package is pure: no I/O, no package-level mutable
// state. The raw payload types only exist at the conversion boundary; nothing
// outside this package should read their fields directly.
package billing

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/diillson/billswitch/internal/shared/types"
)

// Scalar is a leaf value of an extraction payload. It accepts any JSON scalar
// and records whether a usable value was present. Objects and arrays decode
// as absent instead of failing the whole document.
type Scalar struct {
	value string
	valid bool
}

// NewScalar returns a present scalar holding v.
func NewScalar(v string) Scalar {
	return Scalar{value: v, valid: true}
}

// Value returns the raw text and whether the field was present.
func (s Scalar) Value() (string, bool) {
	return s.value, s.valid
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	*s = Scalar{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	switch trimmed[0] {
	case '"':
		var str string
		if err := json.Unmarshal(trimmed, &str); err != nil {
			return nil
		}
		s.value, s.valid = str, true
	case '{', '[', 't', 'f':
		// objetos, listas e booleanos não são valores utilizáveis
	default:
		s.value, s.valid = string(trimmed), true
	}
	return nil
}

// RawBill is the document returned by the bill extraction service.
type RawBill struct {
	AccountSummary RawAccountSummary `json:"account_summary"`
	Phones         []RawPhone        `json:"phones"`
}

type RawAccountSummary struct {
	Carrier          Scalar `json:"carrier"`
	AccountNumber    Scalar `json:"account_number"`
	BillDate         Scalar `json:"bill_date"`
	DueDate          Scalar `json:"due_date"`
	TotalMonthlyBill Scalar `json:"total_monthly_bill"`
	PlanCosts        Scalar `json:"plan_costs"`
	EquipmentCosts   Scalar `json:"equipment_costs"`
	ServicesAndFees  Scalar `json:"services_and_fees"`
}

func (a *RawAccountSummary) UnmarshalJSON(data []byte) error {
	type plain RawAccountSummary
	var v plain
	decodeObject(data, &v)
	*a = RawAccountSummary(v)
	return nil
}

type RawPhone struct {
	PhoneNumber         Scalar           `json:"phone_number"`
	LineType            Scalar           `json:"line_type"`
	Plan                RawPlan          `json:"plan"`
	DataUsageGB         Scalar           `json:"data_usage_gb"`
	Equipment           RawEquipmentList `json:"equipment"`
	EarlyTerminationFee Scalar           `json:"early_termination_fee"`
}

func (p *RawPhone) UnmarshalJSON(data []byte) error {
	type plain RawPhone
	var v plain
	decodeObject(data, &v)
	*p = RawPhone(v)
	return nil
}

type RawPlan struct {
	Name   Scalar `json:"name"`
	Charge Scalar `json:"charge"`
}

func (p *RawPlan) UnmarshalJSON(data []byte) error {
	type plain RawPlan
	var v plain
	decodeObject(data, &v)
	*p = RawPlan(v)
	return nil
}

type RawEquipment struct {
	ID          Scalar             `json:"id"`
	Model       Scalar             `json:"model"`
	Type        Scalar             `json:"type"`
	Installment RawInstallmentInfo `json:"installment_info"`
}

func (e *RawEquipment) UnmarshalJSON(data []byte) error {
	type plain RawEquipment
	var v plain
	decodeObject(data, &v)
	*e = RawEquipment(v)
	return nil
}

type RawInstallmentInfo struct {
	MonthlyPayment Scalar `json:"monthly_payment"`
	Installment    Scalar `json:"installment"`
	Balance        Scalar `json:"balance"`
}

func (i *RawInstallmentInfo) UnmarshalJSON(data []byte) error {
	type plain RawInstallmentInfo
	var v plain
	decodeObject(data, &v)
	*i = RawInstallmentInfo(v)
	return nil
}

// RawEquipmentList decodes to nil when the payload holds anything but an array.
type RawEquipmentList []RawEquipment

func (l *RawEquipmentList) UnmarshalJSON(data []byte) error {
	*l = nil
	var items []json.RawMessage
	if !decodeArray(data, &items) {
		return nil
	}
	out := make(RawEquipmentList, 0, len(items))
	for _, item := range items {
		if kindOf(item) != '{' {
			continue
		}
		var eq RawEquipment
		_ = eq.UnmarshalJSON(item)
		out = append(out, eq)
	}
	*l = out
	return nil
}

// ParseRawBill decodes an extraction response and checks its top-level shape.
func ParseRawBill(payload []byte) (RawBill, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return RawBill{}, types.ErrEmptyResult
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &top); err != nil {
		return RawBill{}, fmt.Errorf("%w: %v", types.ErrUnexpectedFormat, err)
	}

	summary, ok := top["account_summary"]
	if !ok || kindOf(summary) != '{' {
		return RawBill{}, fmt.Errorf("%w: missing account_summary object", types.ErrUnexpectedFormat)
	}
	phones, ok := top["phones"]
	if !ok || kindOf(phones) != '[' {
		return RawBill{}, fmt.Errorf("%w: missing phones list", types.ErrUnexpectedFormat)
	}

	var doc RawBill
	_ = doc.AccountSummary.UnmarshalJSON(summary)

	var entries []json.RawMessage
	decodeArray(phones, &entries)
	doc.Phones = make([]RawPhone, 0, len(entries))
	for _, entry := range entries {
		var phone RawPhone
		_ = phone.UnmarshalJSON(entry)
		doc.Phones = append(doc.Phones, phone)
	}
	return doc, nil
}

func kindOf(data []byte) byte {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

func decodeObject(data []byte, v interface{}) {
	if kindOf(data) != '{' {
		return
	}
	_ = json.Unmarshal(data, v)
}

func decodeArray(data []byte, v interface{}) bool {
	if kindOf(data) != '[' {
		return false
	}
	return json.Unmarshal(data, v) == nil
}
