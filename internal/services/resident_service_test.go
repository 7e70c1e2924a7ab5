package services

import (
	"testing"

	"condominio/internal/models"
	"condominio/internal/pagination"
	"condominio/internal/testutil"
)

func TestCreateResident(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewResidentService(db)
		condo := testutil.CreateTestCondominium(t, db)

		resident, err := svc.CreateResident(condo.ID, "Juan Perez", "B-12", "juan@test.com", "555-0100")
		testutil.AssertNoError(t, err)

		if resident.ID == 0 {
			t.Fatal("expected non-zero resident ID")
		}
		if !resident.IsActive {
			t.Error("expected new resident to be active")
		}
		if resident.Unit != "B-12" {
			t.Errorf("expected unit B-12, got %s", resident.Unit)
		}
	})

	t.Run("condominium_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewResidentService(db)

		_, err := svc.CreateResident(9999, "Juan Perez", "B-12", "", "")
		testutil.AssertAppError(t, err, "CONDOMINIUM_NOT_FOUND")
	})
}

func TestGetResidents(t *testing.T) {
	t.Run("active_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewResidentService(db)
		condo := testutil.CreateTestCondominium(t, db)
		testutil.CreateTestResident(t, db, condo.ID)
		retired := testutil.CreateTestResident(t, db, condo.ID)
		testutil.AssertNoError(t, db.Model(retired).Update("is_active", false).Error)

		active := true
		result, err := svc.GetResidents(condo.ID, pagination.PageRequest{}, &active)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Errorf("expected 1 active resident, got %d", result.TotalItems)
		}

		all, err := svc.GetResidents(condo.ID, pagination.PageRequest{}, nil)
		testutil.AssertNoError(t, err)
		if all.TotalItems != 2 {
			t.Errorf("expected 2 residents without filter, got %d", all.TotalItems)
		}
	})
}

func TestUpdateResident(t *testing.T) {
	t.Run("deactivate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewResidentService(db)
		condo := testutil.CreateTestCondominium(t, db)
		resident := testutil.CreateTestResident(t, db, condo.ID)

		inactive := false
		updated, err := svc.UpdateResident(resident.ID, "", "", "", "", &inactive)
		testutil.AssertNoError(t, err)

		if updated.IsActive {
			t.Error("expected resident to be inactive")
		}
		if updated.Name != resident.Name {
			t.Errorf("expected name unchanged, got %s", updated.Name)
		}
	})
}

func TestDeleteResident(t *testing.T) {
	t.Run("without_payments", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewResidentService(db)
		condo := testutil.CreateTestCondominium(t, db)
		resident := testutil.CreateTestResident(t, db, condo.ID)

		testutil.AssertNoError(t, svc.DeleteResident(resident.ID))

		_, err := svc.GetResidentByID(resident.ID)
		testutil.AssertAppError(t, err, "RESIDENT_NOT_FOUND")
	})

	t.Run("blocked_by_payments", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewResidentService(db)
		condo := testutil.CreateTestCondominium(t, db)
		resident := testutil.CreateTestResident(t, db, condo.ID)
		pt := testutil.CreateTestPaymentType(t, db, condo.ID, 10000)
		testutil.CreateTestPayment(t, db, condo.ID, resident.ID, pt.ID, 10000, models.Enero, 2024)

		err := svc.DeleteResident(resident.ID)
		testutil.AssertAppError(t, err, "RESIDENT_HAS_PAYMENTS")

		_, err = svc.GetResidentByID(resident.ID)
		testutil.AssertNoError(t, err)
	})
}
