package ledger

import (
	"time"

	"condominio/internal/models"
)

// FeeTypeArrears holds the unpaid months and owed amount for one
// payment type within the checked window.
type FeeTypeArrears struct {
	PaymentTypeID uint           `json:"payment_type_id"`
	Name          string         `json:"name"`
	MonthlyAmount int64          `json:"monthly_amount"`
	UnpaidMonths  []models.Month `json:"unpaid_months"`
	Owed          int64          `json:"owed"`
}

// ResidentArrears is the full arrears picture for one resident and year.
type ResidentArrears struct {
	ResidentID   uint                    `json:"resident_id"`
	ResidentName string                  `json:"resident_name"`
	Unit         string                  `json:"unit"`
	PerFeeType   map[uint]FeeTypeArrears `json:"per_fee_type"`
	TotalOwed    int64                   `json:"total_owed"`
}

// DebtOverview aggregates arrears across residents: per-resident rows,
// a per-month total (how much is outstanding for each month of the
// window across all residents and fee types), and a grand total.
type DebtOverview struct {
	Residents   []ResidentArrears      `json:"residents"`
	MonthTotals map[models.Month]int64 `json:"month_totals"`
	TotalOwed   int64                  `json:"total_owed"`
}

// ComputeArrears computes, for each payment type applicable to the
// resident, the months in the checked window with no paid row and the
// resulting owed amount (unpaid months × monthly amount). A nil monthly
// amount contributes zero regardless of unpaid-month count.
func ComputeArrears(
	resident models.Resident,
	feeTypes []models.PaymentType,
	assignments []models.ResidentPaymentType,
	payments []models.Payment,
	year int,
	start models.Month,
	now time.Time,
) ResidentArrears {
	result := ResidentArrears{
		ResidentID:   resident.ID,
		ResidentName: resident.Name,
		Unit:         resident.Unit,
		PerFeeType:   make(map[uint]FeeTypeArrears),
	}

	window := MonthsToCheck(year, start, now)
	for _, ft := range ApplicableFeeTypes(resident, feeTypes, assignments) {
		paid := PaidMonths(payments, resident.ID, ft.ID, year)

		var unpaid []models.Month
		for _, m := range window {
			if !paid[m] {
				unpaid = append(unpaid, m)
			}
		}

		var amount int64
		if ft.MonthlyAmount != nil {
			amount = *ft.MonthlyAmount
		}
		owed := int64(len(unpaid)) * amount

		result.PerFeeType[ft.ID] = FeeTypeArrears{
			PaymentTypeID: ft.ID,
			Name:          ft.Name,
			MonthlyAmount: amount,
			UnpaidMonths:  unpaid,
			Owed:          owed,
		}
		result.TotalOwed += owed
	}
	return result
}

// ComputeDebtOverview runs the arrears computation once per resident and
// folds the results into per-month and grand totals. Callers decide
// which residents participate; dashboard views pass only active ones.
func ComputeDebtOverview(
	residents []models.Resident,
	feeTypes []models.PaymentType,
	assignments []models.ResidentPaymentType,
	payments []models.Payment,
	year int,
	start models.Month,
	now time.Time,
) DebtOverview {
	overview := DebtOverview{
		Residents:   make([]ResidentArrears, 0, len(residents)),
		MonthTotals: make(map[models.Month]int64),
	}

	for _, r := range residents {
		arrears := ComputeArrears(r, feeTypes, assignments, payments, year, start, now)
		overview.Residents = append(overview.Residents, arrears)
		overview.TotalOwed += arrears.TotalOwed

		for _, ft := range arrears.PerFeeType {
			for _, m := range ft.UnpaidMonths {
				overview.MonthTotals[m] += ft.MonthlyAmount
			}
		}
	}
	return overview
}
