package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"condominio/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an admin user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("admin%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates an admin user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCondominium creates a condominium with signer names set.
func CreateTestCondominium(t *testing.T, db *gorm.DB) *models.Condominium {
	t.Helper()

	n := nextID()
	condo := &models.Condominium{
		Name:              fmt.Sprintf("Test Condominium %d", n),
		Address:           fmt.Sprintf("%d Test Street", n),
		DefaultMonthlyFee: 10000,
		UnitCount:         10,
		President:         "Ana Presidente",
		Treasurer:         "Luis Tesorero",
		Secretary:         "Marta Secretaria",
	}
	if err := db.Create(condo).Error; err != nil {
		t.Fatalf("failed to create test condominium: %v", err)
	}
	return condo
}

// CreateTestResident creates an active resident with a unique unit.
func CreateTestResident(t *testing.T, db *gorm.DB, condominiumID uint) *models.Resident {
	t.Helper()

	n := nextID()
	resident := &models.Resident{
		CondominiumID: condominiumID,
		Name:          fmt.Sprintf("Test Resident %d", n),
		Unit:          fmt.Sprintf("A-%d", n),
		IsActive:      true,
	}
	if err := db.Create(resident).Error; err != nil {
		t.Fatalf("failed to create test resident: %v", err)
	}
	return resident
}

// CreateTestPaymentType creates a general payment type with the given
// monthly amount (in minor currency units).
func CreateTestPaymentType(t *testing.T, db *gorm.DB, condominiumID uint, monthlyAmount int64) *models.PaymentType {
	t.Helper()

	pt := &models.PaymentType{
		CondominiumID: condominiumID,
		Name:          fmt.Sprintf("Test Fee %d", nextID()),
		IsActive:      true,
		General:       true,
		MonthlyAmount: &monthlyAmount,
	}
	if err := db.Create(pt).Error; err != nil {
		t.Fatalf("failed to create test payment type: %v", err)
	}
	return pt
}

// CreateTestPayment creates a paid payment row for the given month.
func CreateTestPayment(t *testing.T, db *gorm.DB, condominiumID, residentID, paymentTypeID uint, amount int64, month models.Month, year int) *models.Payment {
	t.Helper()

	payment := &models.Payment{
		CondominiumID: condominiumID,
		ResidentID:    residentID,
		PaymentTypeID: paymentTypeID,
		Amount:        amount,
		Month:         month,
		Year:          year,
		Status:        models.StatusPaid,
		PaymentDate:   time.Now(),
	}
	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("failed to create test payment: %v", err)
	}
	return payment
}

// CreateTestConcepto creates an expense category.
func CreateTestConcepto(t *testing.T, db *gorm.DB, condominiumID uint) *models.Concepto {
	t.Helper()

	concepto := &models.Concepto{
		CondominiumID: condominiumID,
		Name:          fmt.Sprintf("Test Concepto %d", nextID()),
	}
	if err := db.Create(concepto).Error; err != nil {
		t.Fatalf("failed to create test concepto: %v", err)
	}
	return concepto
}

// CreateTestGastoTipo creates a general expense type with the given
// monthly amount (in minor currency units).
func CreateTestGastoTipo(t *testing.T, db *gorm.DB, condominiumID uint, monthlyAmount int64) *models.GastoTipo {
	t.Helper()

	gt := &models.GastoTipo{
		CondominiumID: condominiumID,
		Name:          fmt.Sprintf("Test Gasto Tipo %d", nextID()),
		IsActive:      true,
		General:       true,
		MonthlyAmount: &monthlyAmount,
	}
	if err := db.Create(gt).Error; err != nil {
		t.Fatalf("failed to create test gasto tipo: %v", err)
	}
	return gt
}

// CreateTestGasto creates a paid expense row for the given month.
func CreateTestGasto(t *testing.T, db *gorm.DB, condominiumID, conceptoID, gastoTipoID uint, amount int64, month models.Month, year int) *models.Gasto {
	t.Helper()

	gasto := &models.Gasto{
		CondominiumID: condominiumID,
		ConceptoID:    conceptoID,
		GastoTipoID:   gastoTipoID,
		Amount:        amount,
		Month:         month,
		Year:          year,
		Status:        models.StatusPaid,
		PaymentDate:   time.Now(),
	}
	if err := db.Create(gasto).Error; err != nil {
		t.Fatalf("failed to create test gasto: %v", err)
	}
	return gasto
}
