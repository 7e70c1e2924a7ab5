package services

import (
	"context"
	"time"

	"condominio/internal/ledger"
	"condominio/internal/models"
	"condominio/internal/pagination"
)

// UserServicer defines the contract for admin-account business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
}

// CondominiumServicer defines the contract for condominium management.
type CondominiumServicer interface {
	CreateCondominium(name, address string, defaultMonthlyFee int64, unitCount int, president, treasurer, secretary string) (*models.Condominium, error)
	GetCondominiums(page pagination.PageRequest) (*pagination.PageResponse[models.Condominium], error)
	GetCondominiumByID(id uint) (*models.Condominium, error)
	UpdateCondominium(id uint, name, address string, defaultMonthlyFee *int64, unitCount *int, president, treasurer, secretary *string) (*models.Condominium, error)
	DeleteCondominium(id uint) error
}

// ResidentServicer defines the contract for resident management.
type ResidentServicer interface {
	CreateResident(condominiumID uint, name, unit, email, phone string) (*models.Resident, error)
	GetResidents(condominiumID uint, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.Resident], error)
	GetResidentByID(id uint) (*models.Resident, error)
	UpdateResident(id uint, name, unit, email, phone string, isActive *bool) (*models.Resident, error)
	DeleteResident(id uint) error
}

// PaymentTypeServicer defines the contract for income fee-type management.
type PaymentTypeServicer interface {
	CreatePaymentType(condominiumID uint, name string, general bool, monthlyAmount *int64) (*models.PaymentType, error)
	GetPaymentTypes(condominiumID uint, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.PaymentType], error)
	GetPaymentTypeByID(id uint) (*models.PaymentType, error)
	UpdatePaymentType(id uint, name string, general *bool, isActive *bool, monthlyAmount *int64) (*models.PaymentType, error)
	DeletePaymentType(id uint) error
	SetAssignedResidents(paymentTypeID uint, residentIDs []uint) error
	GetAssignedResidents(paymentTypeID uint) ([]models.Resident, error)
}

// ConceptoServicer defines the contract for expense-category management.
type ConceptoServicer interface {
	CreateConcepto(condominiumID uint, name, description string) (*models.Concepto, error)
	GetConceptos(condominiumID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Concepto], error)
	GetConceptoByID(id uint) (*models.Concepto, error)
	UpdateConcepto(id uint, name, description string) (*models.Concepto, error)
	DeleteConcepto(id uint) error
}

// GastoTipoServicer defines the contract for expense fee-type management.
type GastoTipoServicer interface {
	CreateGastoTipo(condominiumID uint, name string, general bool, monthlyAmount *int64) (*models.GastoTipo, error)
	GetGastoTipos(condominiumID uint, page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.GastoTipo], error)
	GetGastoTipoByID(id uint) (*models.GastoTipo, error)
	UpdateGastoTipo(id uint, name string, general *bool, isActive *bool, monthlyAmount *int64) (*models.GastoTipo, error)
	DeleteGastoTipo(id uint) error
	SetAssignedConceptos(gastoTipoID uint, conceptoIDs []uint) error
	GetAssignedConceptos(gastoTipoID uint) ([]models.Concepto, error)
}

// PaymentFilter holds optional filter parameters for listing payments.
type PaymentFilter struct {
	ResidentID    *uint
	PaymentTypeID *uint
	Year          *int
	Month         *models.Month
	Status        *models.PaymentStatus
}

// PaymentServicer defines the contract for income payment rows.
type PaymentServicer interface {
	CreatePayment(condominiumID, residentID, paymentTypeID uint, amount int64, month models.Month, year int, status models.PaymentStatus, paymentDate time.Time) (*models.Payment, error)
	GetPayments(condominiumID uint, page pagination.PageRequest, filter PaymentFilter) (*pagination.PageResponse[models.Payment], error)
	GetPaymentByID(id uint) (*models.Payment, error)
	UpdatePayment(id uint, amount *int64, status *models.PaymentStatus, paymentDate *time.Time) (*models.Payment, error)
	DeletePayment(id uint) error
}

// GastoFilter holds optional filter parameters for listing expenses.
type GastoFilter struct {
	ConceptoID  *uint
	GastoTipoID *uint
	Year        *int
	Month       *models.Month
	Status      *models.PaymentStatus
}

// GastoServicer defines the contract for expense rows.
type GastoServicer interface {
	CreateGasto(condominiumID, conceptoID, gastoTipoID uint, amount int64, month models.Month, year int, status models.PaymentStatus, paymentDate time.Time) (*models.Gasto, error)
	GetGastos(condominiumID uint, page pagination.PageRequest, filter GastoFilter) (*pagination.PageResponse[models.Gasto], error)
	GetGastoByID(id uint) (*models.Gasto, error)
	UpdateGasto(id uint, amount *int64, status *models.PaymentStatus, paymentDate *time.Time) (*models.Gasto, error)
	DeleteGasto(id uint) error
}

// DebtServicer computes arrears reports from persisted rows.
type DebtServicer interface {
	GetResidentArrears(ctx context.Context, residentID uint, year int, startMonth models.Month) (*ledger.ResidentArrears, error)
	GetDebtOverview(ctx context.Context, condominiumID uint, year int, startMonth models.Month) (*ledger.DebtOverview, error)
}

// SummaryServicer computes yearly financial rollups with balance carry-forward.
type SummaryServicer interface {
	GetYearlySummary(condominiumID uint, year int) (*ledger.YearlySummary, error)
}

// StatementFeeType is one fee type's paid/unpaid grid on a statement.
type StatementFeeType struct {
	PaymentTypeID uint           `json:"payment_type_id"`
	Name          string         `json:"name"`
	MonthlyAmount int64          `json:"monthly_amount"`
	PaidMonths    []models.Month `json:"paid_months"`
	UnpaidMonths  []models.Month `json:"unpaid_months"`
	Owed          int64          `json:"owed"`
}

// Statement is the account-statement payload for a resident and year,
// carrying everything the client needs to render the printable document.
type Statement struct {
	Resident    models.Resident    `json:"resident"`
	Condominium models.Condominium `json:"condominium"`
	Year        int                `json:"year"`
	FeeTypes    []StatementFeeType `json:"fee_types"`
	TotalPaid   int64              `json:"total_paid"`
	TotalOwed   int64              `json:"total_owed"`
}

// StatementServicer assembles account statements.
type StatementServicer interface {
	GetStatement(residentID uint, year int) (*Statement, error)
}

// SettingsServicer is the per-user preference store.
type SettingsServicer interface {
	Get(userID uint, key string) (*models.Setting, error)
	Set(userID uint, key, value string) (*models.Setting, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
