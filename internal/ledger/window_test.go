package ledger

import (
	"testing"
	"time"

	"condominio/internal/models"
)

// fixed reference date: June 15, 2024
var june2024 = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func monthsEqual(t *testing.T, got, want []models.Month) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d months %v, got %d months %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("month %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestMonthsToCheck(t *testing.T) {
	t.Run("current_year_caps_at_current_month", func(t *testing.T) {
		got := MonthsToCheck(2024, models.Enero, june2024)
		monthsEqual(t, got, []models.Month{"ENE", "FEB", "MAR", "ABR", "MAY", "JUN"})
	})

	t.Run("past_year_runs_through_december", func(t *testing.T) {
		got := MonthsToCheck(2023, models.Enero, june2024)
		if len(got) != 12 {
			t.Fatalf("expected 12 months for a past year, got %d", len(got))
		}
		if got[11] != models.Diciembre {
			t.Errorf("expected last month DIC, got %s", got[11])
		}
	})

	t.Run("future_year_is_empty", func(t *testing.T) {
		got := MonthsToCheck(2025, models.Enero, june2024)
		if len(got) != 0 {
			t.Errorf("expected empty window for a future year, got %v", got)
		}
	})

	t.Run("start_month_offsets_window", func(t *testing.T) {
		got := MonthsToCheck(2024, models.Abril, june2024)
		monthsEqual(t, got, []models.Month{"ABR", "MAY", "JUN"})
	})

	t.Run("start_after_current_month_is_empty", func(t *testing.T) {
		got := MonthsToCheck(2024, models.Octubre, june2024)
		if len(got) != 0 {
			t.Errorf("expected empty window, got %v", got)
		}
	})

	t.Run("unknown_start_label_defaults_to_january", func(t *testing.T) {
		got := MonthsToCheck(2024, "JAN", june2024)
		monthsEqual(t, got, []models.Month{"ENE", "FEB", "MAR", "ABR", "MAY", "JUN"})
	})

	t.Run("no_future_months_in_current_year", func(t *testing.T) {
		// property: the window never includes a month past now
		for _, start := range models.MonthLabels {
			for _, m := range MonthsToCheck(2024, start, june2024) {
				if models.MonthIndex(m) > int(june2024.Month())-1 {
					t.Errorf("window starting at %s includes future month %s", start, m)
				}
			}
		}
	})
}

func TestPaidMonths(t *testing.T) {
	payments := []models.Payment{
		{ResidentID: 1, PaymentTypeID: 10, Year: 2024, Month: models.Marzo, Status: models.StatusPaid},
		{ResidentID: 1, PaymentTypeID: 10, Year: 2024, Month: models.Abril, Status: models.StatusPending},
		{ResidentID: 1, PaymentTypeID: 11, Year: 2024, Month: models.Enero, Status: models.StatusPaid},
		{ResidentID: 2, PaymentTypeID: 10, Year: 2024, Month: models.Enero, Status: models.StatusPaid},
		{ResidentID: 1, PaymentTypeID: 10, Year: 2023, Month: models.Enero, Status: models.StatusPaid},
	}

	t.Run("matches_exact_tuple_only", func(t *testing.T) {
		paid := PaidMonths(payments, 1, 10, 2024)
		if len(paid) != 1 || !paid[models.Marzo] {
			t.Errorf("expected only MAR paid, got %v", paid)
		}
	})

	t.Run("pending_rows_do_not_count", func(t *testing.T) {
		paid := PaidMonths(payments, 1, 10, 2024)
		if paid[models.Abril] {
			t.Error("pending payment must not count as paid")
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		paid := PaidMonths(nil, 1, 10, 2024)
		if len(paid) != 0 {
			t.Errorf("expected empty set, got %v", paid)
		}
	})
}
