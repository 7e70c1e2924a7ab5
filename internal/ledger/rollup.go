package ledger

import "condominio/internal/models"

// MonthlySummary is one calendar month of the yearly rollup. Balance is
// the running balance after applying this month's net change.
type MonthlySummary struct {
	Month     models.Month `json:"month"`
	Income    int64        `json:"income"`
	Expense   int64        `json:"expense"`
	NetChange int64        `json:"net_change"`
	Balance   int64        `json:"balance"`
}

// YearlySummary is the income/expense rollup for a full calendar year
// with the starting balance carried forward from the prior year.
type YearlySummary struct {
	Year            int              `json:"year"`
	StartingBalance int64            `json:"starting_balance"`
	Monthly         []MonthlySummary `json:"monthly"`
	EndingBalance   int64            `json:"ending_balance"`
}

// ComputeYearlySummary sums paid income and paid expenses for each of
// the twelve calendar months of the year and folds the starting balance
// forward in calendar order. Unlike arrears, the rollup always covers
// the full year; future months simply sum to zero.
func ComputeYearlySummary(year int, payments []models.Payment, gastos []models.Gasto, startingBalance int64) YearlySummary {
	summary := YearlySummary{
		Year:            year,
		StartingBalance: startingBalance,
		Monthly:         make([]MonthlySummary, 0, 12),
	}

	income := make(map[models.Month]int64)
	expense := make(map[models.Month]int64)
	for _, p := range payments {
		if p.Year == year && p.Status == models.StatusPaid {
			income[p.Month] += p.Amount
		}
	}
	for _, g := range gastos {
		if g.Year == year && g.Status == models.StatusPaid {
			expense[g.Month] += g.Amount
		}
	}

	balance := startingBalance
	for _, m := range models.MonthLabels {
		net := income[m] - expense[m]
		balance += net
		summary.Monthly = append(summary.Monthly, MonthlySummary{
			Month:     m,
			Income:    income[m],
			Expense:   expense[m],
			NetChange: net,
			Balance:   balance,
		})
	}
	summary.EndingBalance = balance
	return summary
}
