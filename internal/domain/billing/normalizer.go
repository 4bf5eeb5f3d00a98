package billing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/diillson/billswitch/internal/domain/entity"
)

// equipmentNamespace seeds generated equipment IDs so the same input always yields the same IDs.
var equipmentNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("billswitch:equipment"))

// Normalize decodes an extraction response and converts it into BillData.
// It fails only on an empty body (types.ErrEmptyResult) or a document without
// the account_summary/phones shape (types.ErrUnexpectedFormat); every field-level
// problem is absorbed by defaulting.
func Normalize(payload []byte, fileName string) (entity.BillData, error) {
	doc, err := ParseRawBill(payload)
	if err != nil {
		return entity.BillData{}, err
	}
	return NormalizeDocument(doc, fileName), nil
}

// NormalizeDocument converts an already decoded extraction result into BillData.
func NormalizeDocument(doc RawBill, fileName string) entity.BillData {
	summary := doc.AccountSummary
	bill := entity.BillData{
		Carrier:        textOf(summary.Carrier),
		AccountNumber:  textOf(summary.AccountNumber),
		BillDate:       textOf(summary.BillDate),
		DueDate:        textOf(summary.DueDate),
		TotalAmount:    moneyOf(summary.TotalMonthlyBill),
		PlanCosts:      moneyOf(summary.PlanCosts),
		EquipmentCosts: moneyOf(summary.EquipmentCosts),
		ServicesCosts:  moneyOf(summary.ServicesAndFees),
		Lines:          make([]entity.Line, 0, len(doc.Phones)),
	}

	for _, phone := range doc.Phones {
		line, ok := normalizeLine(phone, fileName)
		if !ok {
			continue
		}
		bill.Lines = append(bill.Lines, line)
	}
	return bill
}

func normalizeLine(phone RawPhone, fileName string) (entity.Line, bool) {
	number, ok := presentText(phone.PhoneNumber)
	if !ok {
		return entity.Line{}, false
	}

	planName := textOf(phone.Plan.Name)
	line := entity.Line{
		PhoneNumber:         number,
		LineType:            lineTypeOf(phone.LineType, planName),
		PlanName:            planName,
		MonthlyCharge:       moneyOf(phone.Plan.Charge),
		DataUsage:           dataUsageOf(phone.DataUsageGB),
		Equipment:           make([]entity.Equipment, 0, len(phone.Equipment)),
		EarlyTerminationFee: moneyOf(phone.EarlyTerminationFee),
	}

	hasHandset := false
	for i, raw := range phone.Equipment {
		eq := normalizeEquipment(raw, number, fileName, i)
		if eq.Type.IsHandset() {
			// one primary handset per line; later ones are billed like accessories
			if hasHandset {
				eq.Type = entity.EquipmentAccessory
			}
			hasHandset = true
		}
		line.Equipment = append(line.Equipment, eq)
	}

	line.DeviceName = deviceNameOf(line)
	return line, true
}

func normalizeEquipment(raw RawEquipment, phoneNumber, fileName string, index int) entity.Equipment {
	monthly := amountOf(raw.Installment.MonthlyPayment)
	remaining := installmentsOf(raw.Installment.Installment)

	balance, ok := reportedBalance(raw.Installment.Balance)
	if !ok {
		balance = monthly.Mul(decimal.NewFromInt(int64(remaining)))
	}

	id, ok := presentText(raw.ID)
	if !ok {
		id = uuid.NewSHA1(equipmentNamespace, []byte(fmt.Sprintf("%s|%s|%d", fileName, phoneNumber, index))).String()
	}

	name := textOf(raw.Model)
	if name == entity.Unknown {
		name = entity.UnknownDevice
	}

	return entity.Equipment{
		ID:                    id,
		DeviceName:            name,
		MonthlyPayment:        monthly.InexactFloat64(),
		RemainingPayments:     remaining,
		TotalBalance:          balance.InexactFloat64(),
		AssociatedPhoneNumber: phoneNumber,
		Type:                  equipmentTypeOf(raw.Type),
	}
}

// reportedBalance wins over the computed one even when the installment numbers disagree.
func reportedBalance(s Scalar) (decimal.Decimal, bool) {
	raw, ok := s.Value()
	if !ok {
		return decimal.Zero, false
	}
	return parseAmount(raw)
}

func deviceNameOf(line entity.Line) string {
	if len(line.Equipment) == 0 {
		return entity.BringYourOwnDevice
	}
	if handset, ok := line.Handset(); ok {
		return handset.DeviceName
	}
	return entity.UnknownDevice
}
