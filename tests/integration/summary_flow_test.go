package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestSummaryFlow_BalanceCarriesAcrossYears(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "summary@test.com", "password123")

	condoID := app.createCondominium(t, token, "Residencial Oriente")
	residentID := app.createResident(t, token, condoID, "Elena Castro", "D-03")
	feeTypeID := app.createPaymentType(t, token, condoID, "Mantenimiento", 100000)

	// Expense-side catalog
	rec := app.request("POST", fmt.Sprintf("/api/v1/condominiums/%.0f/conceptos", condoID),
		`{"name":"Jardineria"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create concepto failed: %d %s", rec.Code, rec.Body.String())
	}
	conceptoID := parseJSON(t, rec)["id"].(float64)

	rec = app.request("POST", fmt.Sprintf("/api/v1/condominiums/%.0f/gasto-tipos", condoID),
		`{"name":"Servicios","general":true}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create gasto tipo failed: %d %s", rec.Code, rec.Body.String())
	}
	gastoTipoID := parseJSON(t, rec)["id"].(float64)

	// January 2024: 100000 income, 30000 expense
	rec = app.request("POST", fmt.Sprintf("/api/v1/condominiums/%.0f/payments", condoID),
		fmt.Sprintf(`{"resident_id":%.0f,"payment_type_id":%.0f,"amount":100000,"month":"ENE","year":2024}`,
			residentID, feeTypeID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create payment failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", fmt.Sprintf("/api/v1/condominiums/%.0f/gastos", condoID),
		fmt.Sprintf(`{"concepto_id":%.0f,"gasto_tipo_id":%.0f,"amount":30000,"month":"ENE","year":2024}`,
			conceptoID, gastoTipoID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create gasto failed: %d %s", rec.Code, rec.Body.String())
	}

	// A pending expense does not move the ledger
	rec = app.request("POST", fmt.Sprintf("/api/v1/condominiums/%.0f/gastos", condoID),
		fmt.Sprintf(`{"concepto_id":%.0f,"gasto_tipo_id":%.0f,"amount":99999,"month":"FEB","year":2024,"status":"pending"}`,
			conceptoID, gastoTipoID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create pending gasto failed: %d %s", rec.Code, rec.Body.String())
	}

	// 2024 rollup: starts at zero, ends at 70000
	rec = app.request("GET", fmt.Sprintf("/api/v1/condominiums/%.0f/summary?year=2024", condoID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)
	if summary["starting_balance"].(float64) != 0 {
		t.Errorf("expected starting_balance 0, got %v", summary["starting_balance"])
	}
	if summary["ending_balance"].(float64) != 70000 {
		t.Errorf("expected ending_balance 70000, got %v", summary["ending_balance"])
	}
	monthly := summary["monthly"].([]interface{})
	if len(monthly) != 12 {
		t.Fatalf("expected 12 monthly rows, got %d", len(monthly))
	}
	january := monthly[0].(map[string]interface{})
	if january["income"].(float64) != 100000 {
		t.Errorf("expected January income 100000, got %v", january["income"])
	}
	if january["expense"].(float64) != 30000 {
		t.Errorf("expected January expense 30000, got %v", january["expense"])
	}

	// 2025 rollup starts from the cached 2024 ending balance
	rec = app.request("GET", fmt.Sprintf("/api/v1/condominiums/%.0f/summary?year=2025", condoID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	next := parseJSON(t, rec)
	if next["starting_balance"].(float64) != 70000 {
		t.Errorf("expected carried starting_balance 70000, got %v", next["starting_balance"])
	}
	if next["ending_balance"].(float64) != 70000 {
		t.Errorf("expected ending_balance 70000 with no activity, got %v", next["ending_balance"])
	}
}
