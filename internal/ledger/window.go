package ledger

import (
	"time"

	"condominio/internal/models"
)

// MonthsToCheck returns the ordered window of months a debt check covers
// for the given year: from start (inclusive) through December for past
// years, or through the current month for the current year. Arrears are
// never projected into the future, so a future year yields an empty
// window. An unrecognized start label falls back to January; callers
// validating user input should reject unknown labels before getting here.
func MonthsToCheck(year int, start models.Month, now time.Time) []models.Month {
	startIdx := models.MonthIndex(start)
	if startIdx < 0 {
		startIdx = 0
	}

	endIdx := 11
	switch {
	case year > now.Year():
		return nil
	case year == now.Year():
		endIdx = int(now.Month()) - 1
	}

	if startIdx > endIdx {
		return nil
	}
	return append([]models.Month(nil), models.MonthLabels[startIdx:endIdx+1]...)
}

// PaidMonths returns the set of months for which a paid-status payment
// exists for the exact (resident, payment type, year) tuple.
func PaidMonths(payments []models.Payment, residentID, paymentTypeID uint, year int) map[models.Month]bool {
	paid := make(map[models.Month]bool)
	for _, p := range payments {
		if p.ResidentID == residentID && p.PaymentTypeID == paymentTypeID && p.Year == year && p.Status == models.StatusPaid {
			paid[p.Month] = true
		}
	}
	return paid
}
