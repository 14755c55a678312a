package handler

import (
	payrollapp "github.com/fiberops/backend/internal/application/payroll"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PayrollHandler handles pay period, pay run and pay stub endpoints
type PayrollHandler struct {
	BaseHandler
	payrollService     *payrollapp.PayrollService
	calculationService *payrollapp.CalculationService
}

// NewPayrollHandler creates a new PayrollHandler
func NewPayrollHandler(
	payrollService *payrollapp.PayrollService,
	calculationService *payrollapp.CalculationService,
) *PayrollHandler {
	return &PayrollHandler{
		payrollService:     payrollService,
		calculationService: calculationService,
	}
}

// RegisterRoutes registers payroll routes on the given group
func (h *PayrollHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payroll := rg.Group("/payroll")
	{
		payroll.POST("/pay-periods", h.CreatePayPeriod)
		payroll.GET("/pay-periods", h.ListPayPeriods)
		payroll.PUT("/pay-periods/:id", h.UpdatePayPeriod)

		payroll.POST("/pay-runs", h.CreatePayRun)
		payroll.GET("/pay-runs", h.ListPayRuns)
		payroll.GET("/pay-runs/:id", h.GetPayRun)
		payroll.POST("/pay-runs/:id/process", h.ProcessPayRun)
		payroll.POST("/pay-runs/:id/approve", h.ApprovePayRun)

		payroll.POST("/calculate-payroll", h.Calculate)

		payroll.GET("/pay-stubs", h.ListPayStubs)
		payroll.GET("/pay-stubs/:id", h.GetPayStub)

		payroll.GET("/employees/:id/history", h.GetEmployeeHistory)
		payroll.GET("/stats", h.GetStats)
	}
}

// CreatePayPeriod godoc
// @Summary      Create a pay period
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        request body payroll.CreatePayPeriodInput true "Pay period data"
// @Success      201 {object} dto.Response{data=payroll.PayPeriodResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /payroll/pay-periods [post]
func (h *PayrollHandler) CreatePayPeriod(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input payrollapp.CreatePayPeriodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	createdBy, _ := getUserID(c)

	result, err := h.payrollService.CreatePayPeriod(c.Request.Context(), orgID, createdBy, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListPayPeriods godoc
// @Summary      List pay periods
// @Tags         payroll
// @Produce      json
// @Param        period_type query string false "Period type" Enums(weekly, biweekly, semimonthly, monthly)
// @Param        is_closed query bool false "Filter by closed state"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=payroll.PayPeriodListResult}
// @Security     BearerAuth
// @Router       /payroll/pay-periods [get]
func (h *PayrollHandler) ListPayPeriods(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input payrollapp.ListPayPeriodsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.payrollService.ListPayPeriods(c.Request.Context(), orgID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UpdatePayPeriod godoc
// @Summary      Update a pay period
// @Description  Changes the pay date or closes the period
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        id path string true "Pay period ID" format(uuid)
// @Param        request body payroll.UpdatePayPeriodInput true "Fields to update"
// @Success      200 {object} dto.Response{data=payroll.PayPeriodResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /payroll/pay-periods/{id} [put]
func (h *PayrollHandler) UpdatePayPeriod(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid pay period ID format")
		return
	}

	var input payrollapp.UpdatePayPeriodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.payrollService.UpdatePayPeriod(c.Request.Context(), orgID, id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// CreatePayRun godoc
// @Summary      Create a pay run
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        request body payroll.CreatePayRunInput true "Pay run data"
// @Success      201 {object} dto.Response{data=payroll.PayRunResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /payroll/pay-runs [post]
func (h *PayrollHandler) CreatePayRun(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input payrollapp.CreatePayRunInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	createdBy, _ := getUserID(c)

	result, err := h.payrollService.CreatePayRun(c.Request.Context(), orgID, createdBy, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListPayRuns godoc
// @Summary      List pay runs
// @Tags         payroll
// @Produce      json
// @Param        pay_period_id query string false "Filter by pay period" format(uuid)
// @Param        status query string false "Run status" Enums(draft, processing, approved)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=payroll.PayRunListResult}
// @Security     BearerAuth
// @Router       /payroll/pay-runs [get]
func (h *PayrollHandler) ListPayRuns(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input payrollapp.ListPayRunsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.payrollService.ListPayRuns(c.Request.Context(), orgID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetPayRun godoc
// @Summary      Get a pay run with its stubs
// @Tags         payroll
// @Produce      json
// @Param        id path string true "Pay run ID" format(uuid)
// @Success      200 {object} dto.Response{data=payroll.PayRunResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /payroll/pay-runs/{id} [get]
func (h *PayrollHandler) GetPayRun(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid pay run ID format")
		return
	}

	result, err := h.payrollService.GetPayRun(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ProcessPayRun godoc
// @Summary      Move a pay run to processing
// @Tags         payroll
// @Produce      json
// @Param        id path string true "Pay run ID" format(uuid)
// @Success      200 {object} dto.Response{data=payroll.PayRunResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /payroll/pay-runs/{id}/process [post]
func (h *PayrollHandler) ProcessPayRun(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid pay run ID format")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.payrollService.ProcessPayRun(c.Request.Context(), orgID, id, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ApprovePayRun godoc
// @Summary      Approve a processed pay run
// @Tags         payroll
// @Produce      json
// @Param        id path string true "Pay run ID" format(uuid)
// @Success      200 {object} dto.Response{data=payroll.PayRunResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /payroll/pay-runs/{id}/approve [post]
func (h *PayrollHandler) ApprovePayRun(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid pay run ID format")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.payrollService.ApprovePayRun(c.Request.Context(), orgID, id, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Calculate godoc
// @Summary      Calculate payroll for a pay run
// @Description  Runs the gross-to-net engine for every active compensation record
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        request body payroll.CalculateInput true "Pay run to calculate"
// @Success      200 {object} dto.Response{data=payroll.CalculateResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /payroll/calculate-payroll [post]
func (h *PayrollHandler) Calculate(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input payrollapp.CalculateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.calculationService.Calculate(c.Request.Context(), orgID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListPayStubs godoc
// @Summary      List pay stubs
// @Tags         payroll
// @Produce      json
// @Param        pay_run_id query string false "Filter by pay run" format(uuid)
// @Param        employee_id query string false "Filter by employee" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(50)
// @Success      200 {object} dto.Response{data=payroll.PayStubListResult}
// @Security     BearerAuth
// @Router       /payroll/pay-stubs [get]
func (h *PayrollHandler) ListPayStubs(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input payrollapp.ListPayStubsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.payrollService.ListPayStubs(c.Request.Context(), orgID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetPayStub godoc
// @Summary      Get a pay stub with its withholding and deduction lines
// @Tags         payroll
// @Produce      json
// @Param        id path string true "Pay stub ID" format(uuid)
// @Success      200 {object} dto.Response{data=payroll.PayStubResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /payroll/pay-stubs/{id} [get]
func (h *PayrollHandler) GetPayStub(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid pay stub ID format")
		return
	}

	result, err := h.payrollService.GetPayStub(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetEmployeeHistory godoc
// @Summary      Get an employee's payroll history
// @Description  Returns the employee profile, past stubs and compensation records
// @Tags         payroll
// @Produce      json
// @Param        id path string true "Employee ID" format(uuid)
// @Success      200 {object} dto.Response{data=payroll.EmployeeHistoryResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /payroll/employees/{id}/history [get]
func (h *PayrollHandler) GetEmployeeHistory(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	result, err := h.payrollService.GetEmployeeHistory(c.Request.Context(), orgID, employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetStats godoc
// @Summary      Get payroll dashboard statistics
// @Tags         payroll
// @Produce      json
// @Success      200 {object} dto.Response{data=payroll.StatsResult}
// @Security     BearerAuth
// @Router       /payroll/stats [get]
func (h *PayrollHandler) GetStats(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.payrollService.GetStats(c.Request.Context(), orgID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
