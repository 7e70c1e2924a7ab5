// Package ledger implements the arrears and financial-rollup arithmetic
// shared by every debt and summary view. All functions are pure: they
// operate on already-loaded rows, perform no I/O, and degrade to
// zero/empty on partial or malformed input instead of failing. A debt
// report must never crash because a referenced row went missing.
package ledger

import "condominio/internal/models"

// ApplicableFeeTypes resolves which payment types apply to a resident:
// every general type, plus non-general types explicitly assigned to the
// resident. Empty inputs yield an empty result.
func ApplicableFeeTypes(resident models.Resident, feeTypes []models.PaymentType, assignments []models.ResidentPaymentType) []models.PaymentType {
	assigned := make(map[uint]bool)
	for _, a := range assignments {
		if a.ResidentID == resident.ID {
			assigned[a.PaymentTypeID] = true
		}
	}

	applicable := make([]models.PaymentType, 0, len(feeTypes))
	for _, ft := range feeTypes {
		if ft.General || assigned[ft.ID] {
			applicable = append(applicable, ft)
		}
	}
	return applicable
}

// ApplicableGastoTipos is the expense-side counterpart: general gasto
// tipos plus those assigned to the given concepto.
func ApplicableGastoTipos(concepto models.Concepto, gastoTipos []models.GastoTipo, assignments []models.GastoTipoConcepto) []models.GastoTipo {
	assigned := make(map[uint]bool)
	for _, a := range assignments {
		if a.ConceptoID == concepto.ID {
			assigned[a.GastoTipoID] = true
		}
	}

	applicable := make([]models.GastoTipo, 0, len(gastoTipos))
	for _, gt := range gastoTipos {
		if gt.General || assigned[gt.ID] {
			applicable = append(applicable, gt)
		}
	}
	return applicable
}
