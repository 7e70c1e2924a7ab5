package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "condominio/internal/errors"
	"condominio/internal/models"
	"condominio/internal/services"
)

// ReportHandler serves the computed views: debt dashboard, per-resident
// arrears, yearly financial summary and account statements.
type ReportHandler struct {
	debtService      services.DebtServicer
	summaryService   services.SummaryServicer
	statementService services.StatementServicer
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(debtService services.DebtServicer, summaryService services.SummaryServicer, statementService services.StatementServicer) *ReportHandler {
	return &ReportHandler{
		debtService:      debtService,
		summaryService:   summaryService,
		statementService: statementService,
	}
}

// parseStartMonthQuery parses the start_month query parameter, defaulting
// to January. Unknown labels are rejected here so typos do not silently
// widen the arrears window.
func parseStartMonthQuery(c *gin.Context) (models.Month, error) {
	raw := c.Query("start_month")
	if raw == "" {
		return models.Enero, nil
	}
	month := models.Month(raw)
	if !models.IsValidMonth(month) {
		return "", apperrors.ErrInvalidMonth
	}
	return month, nil
}

// GetDebtOverview handles the debt dashboard query
// @Summary     Get debt overview
// @Description Get arrears for every active resident of a condominium with per-month and grand totals
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Param       year query int false "Year (defaults to current)"
// @Param       start_month query string false "First month to check (defaults to ENE)"
// @Success     200 {object} ledger.DebtOverview "Debt overview"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Condominium not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id}/debts [get]
func (h *ReportHandler) GetDebtOverview(c *gin.Context) {
	condominiumID, err := parsePathID(c, "condominium_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := parseYearQuery(c, time.Now().Year())
	if err != nil {
		respondWithError(c, err)
		return
	}

	startMonth, err := parseStartMonthQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	overview, err := h.debtService.GetDebtOverview(c.Request.Context(), condominiumID, year, startMonth)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetResidentArrears handles the per-resident arrears query
// @Summary     Get resident arrears
// @Description Get the unpaid months and owed amounts of one resident
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Resident ID"
// @Param       year query int false "Year (defaults to current)"
// @Param       start_month query string false "First month to check (defaults to ENE)"
// @Success     200 {object} ledger.ResidentArrears "Resident arrears"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Resident not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /residents/{id}/arrears [get]
func (h *ReportHandler) GetResidentArrears(c *gin.Context) {
	residentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := parseYearQuery(c, time.Now().Year())
	if err != nil {
		respondWithError(c, err)
		return
	}

	startMonth, err := parseStartMonthQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	arrears, err := h.debtService.GetResidentArrears(c.Request.Context(), residentID, year, startMonth)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, arrears)
}

// GetYearlySummary handles the financial rollup query
// @Summary     Get yearly summary
// @Description Get the month-by-month income/expense rollup with carried-forward balance
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       condominium_id path int true "Condominium ID"
// @Param       year query int false "Year (defaults to current)"
// @Success     200 {object} ledger.YearlySummary "Yearly summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Condominium not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /condominiums/{condominium_id}/summary [get]
func (h *ReportHandler) GetYearlySummary(c *gin.Context) {
	condominiumID, err := parsePathID(c, "condominium_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := parseYearQuery(c, time.Now().Year())
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.GetYearlySummary(condominiumID, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetStatement handles the account statement query
// @Summary     Get account statement
// @Description Get the printable account statement of a resident for a year
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Resident ID"
// @Param       year query int false "Year (defaults to current)"
// @Success     200 {object} services.Statement "Account statement"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Resident not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /residents/{id}/statement [get]
func (h *ReportHandler) GetStatement(c *gin.Context) {
	residentID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := parseYearQuery(c, time.Now().Year())
	if err != nil {
		respondWithError(c, err)
		return
	}

	statement, err := h.statementService.GetStatement(residentID, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, statement)
}
