package services

import (
	"testing"

	"condominio/internal/testutil"
)

func TestCreatePaymentType(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentTypeService(db)
		condo := testutil.CreateTestCondominium(t, db)

		amount := int64(15000)
		pt, err := svc.CreatePaymentType(condo.ID, "Maintenance", true, &amount)
		testutil.AssertNoError(t, err)

		if pt.ID == 0 {
			t.Fatal("expected non-zero payment type ID")
		}
		if !pt.General {
			t.Error("expected general type")
		}
		if pt.MonthlyAmount == nil || *pt.MonthlyAmount != 15000 {
			t.Errorf("expected monthly amount 15000, got %v", pt.MonthlyAmount)
		}
	})

	t.Run("nil_amount_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentTypeService(db)
		condo := testutil.CreateTestCondominium(t, db)

		pt, err := svc.CreatePaymentType(condo.ID, "Donations", true, nil)
		testutil.AssertNoError(t, err)

		if pt.MonthlyAmount != nil {
			t.Errorf("expected nil monthly amount, got %d", *pt.MonthlyAmount)
		}
	})

	t.Run("non_general_persists_as_non_general", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentTypeService(db)
		condo := testutil.CreateTestCondominium(t, db)

		amount := int64(5000)
		pt, err := svc.CreatePaymentType(condo.ID, "Parking", false, &amount)
		testutil.AssertNoError(t, err)

		// Reload from the database; a column default must not flip the flag.
		stored, err := svc.GetPaymentTypeByID(pt.ID)
		testutil.AssertNoError(t, err)
		if stored.General {
			t.Error("expected stored type to stay non-general")
		}
	})

	t.Run("condominium_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentTypeService(db)

		_, err := svc.CreatePaymentType(9999, "Maintenance", true, nil)
		testutil.AssertAppError(t, err, "CONDOMINIUM_NOT_FOUND")
	})
}

func TestSetAssignedResidents(t *testing.T) {
	t.Run("replaces_list", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentTypeService(db)
		condo := testutil.CreateTestCondominium(t, db)
		r1 := testutil.CreateTestResident(t, db, condo.ID)
		r2 := testutil.CreateTestResident(t, db, condo.ID)
		amount := int64(5000)
		pt, err := svc.CreatePaymentType(condo.ID, "Parking", false, &amount)
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.SetAssignedResidents(pt.ID, []uint{r1.ID}))

		assigned, err := svc.GetAssignedResidents(pt.ID)
		testutil.AssertNoError(t, err)
		if len(assigned) != 1 || assigned[0].ID != r1.ID {
			t.Fatalf("expected only resident %d assigned, got %v", r1.ID, assigned)
		}

		// Replacing must drop r1 and keep r2, even when r1 was assigned before.
		testutil.AssertNoError(t, svc.SetAssignedResidents(pt.ID, []uint{r2.ID}))
		assigned, err = svc.GetAssignedResidents(pt.ID)
		testutil.AssertNoError(t, err)
		if len(assigned) != 1 || assigned[0].ID != r2.ID {
			t.Fatalf("expected only resident %d assigned, got %v", r2.ID, assigned)
		}

		// Re-assigning a previously removed resident must not trip the
		// unique constraint on the link table.
		testutil.AssertNoError(t, svc.SetAssignedResidents(pt.ID, []uint{r1.ID, r2.ID}))
		assigned, err = svc.GetAssignedResidents(pt.ID)
		testutil.AssertNoError(t, err)
		if len(assigned) != 2 {
			t.Fatalf("expected 2 assigned residents, got %d", len(assigned))
		}
	})

	t.Run("unknown_resident_rolls_back", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentTypeService(db)
		condo := testutil.CreateTestCondominium(t, db)
		r1 := testutil.CreateTestResident(t, db, condo.ID)
		amount := int64(5000)
		pt, err := svc.CreatePaymentType(condo.ID, "Parking", false, &amount)
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, svc.SetAssignedResidents(pt.ID, []uint{r1.ID}))

		err = svc.SetAssignedResidents(pt.ID, []uint{r1.ID, 9999})
		testutil.AssertAppError(t, err, "RESIDENT_NOT_FOUND")

		// The failed replace must not have wiped the previous list.
		assigned, err := svc.GetAssignedResidents(pt.ID)
		testutil.AssertNoError(t, err)
		if len(assigned) != 1 {
			t.Errorf("expected previous assignment preserved, got %d", len(assigned))
		}
	})
}

func TestDeletePaymentType(t *testing.T) {
	t.Run("removes_type_and_assignments", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentTypeService(db)
		condo := testutil.CreateTestCondominium(t, db)
		r1 := testutil.CreateTestResident(t, db, condo.ID)
		amount := int64(5000)
		pt, err := svc.CreatePaymentType(condo.ID, "Parking", false, &amount)
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, svc.SetAssignedResidents(pt.ID, []uint{r1.ID}))

		testutil.AssertNoError(t, svc.DeletePaymentType(pt.ID))

		_, err = svc.GetPaymentTypeByID(pt.ID)
		testutil.AssertAppError(t, err, "PAYMENT_TYPE_NOT_FOUND")
	})
}
