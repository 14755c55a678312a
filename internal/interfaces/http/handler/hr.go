package handler

import (
	hrapp "github.com/fiberops/backend/internal/application/hr"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HRHandler handles employee, compensation and time tracking endpoints
type HRHandler struct {
	BaseHandler
	employeeService     *hrapp.EmployeeService
	compensationService *hrapp.CompensationService
	timeEntryService    *hrapp.TimeEntryService
}

// NewHRHandler creates a new HRHandler
func NewHRHandler(
	employeeService *hrapp.EmployeeService,
	compensationService *hrapp.CompensationService,
	timeEntryService *hrapp.TimeEntryService,
) *HRHandler {
	return &HRHandler{
		employeeService:     employeeService,
		compensationService: compensationService,
		timeEntryService:    timeEntryService,
	}
}

// RegisterRoutes registers HR routes on the given group
func (h *HRHandler) RegisterRoutes(rg *gin.RouterGroup) {
	hr := rg.Group("/hr")
	{
		employees := hr.Group("/employees")
		{
			employees.POST("", h.CreateEmployee)
			employees.GET("", h.ListEmployees)
			employees.GET("/:id", h.GetEmployee)
			employees.PUT("/:id", h.UpdateEmployee)
			employees.POST("/:id/compensation", h.CreateCompensation)
			employees.GET("/:id/compensation", h.ListCompensation)
			employees.GET("/:id/compensation/current", h.GetCurrentCompensation)
			employees.POST("/:id/compensation/:record_id/end", h.EndCompensation)
		}

		entries := hr.Group("/time-entries")
		{
			entries.POST("", h.CreateTimeEntry)
			entries.GET("", h.ListTimeEntries)
			entries.POST("/clock-in", h.ClockIn)
			entries.POST("/:id/clock-out", h.ClockOut)
			entries.PUT("/:id", h.UpdateTimeEntry)
			entries.DELETE("/:id", h.DeleteTimeEntry)
		}
	}
}

// CreateEmployee godoc
// @Summary      Create an employee profile
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        request body hr.CreateEmployeeInput true "Employee data"
// @Success      201 {object} dto.Response{data=hr.EmployeeResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /hr/employees [post]
func (h *HRHandler) CreateEmployee(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input hrapp.CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	createdBy, _ := getUserID(c)

	result, err := h.employeeService.Create(c.Request.Context(), orgID, createdBy, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListEmployees godoc
// @Summary      List employees
// @Tags         hr
// @Produce      json
// @Param        status query string false "Employee status" Enums(active, inactive, terminated)
// @Param        keyword query string false "Search by name or number"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=hr.EmployeeListResult}
// @Security     BearerAuth
// @Router       /hr/employees [get]
func (h *HRHandler) ListEmployees(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input hrapp.ListEmployeesInput
	if err := c.ShouldBindQuery(&input); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.employeeService.List(c.Request.Context(), orgID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetEmployee godoc
// @Summary      Get an employee by ID
// @Tags         hr
// @Produce      json
// @Param        id path string true "Employee ID" format(uuid)
// @Success      200 {object} dto.Response{data=hr.EmployeeResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /hr/employees/{id} [get]
func (h *HRHandler) GetEmployee(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	result, err := h.employeeService.Get(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// UpdateEmployee godoc
// @Summary      Update an employee profile
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        id path string true "Employee ID" format(uuid)
// @Param        request body hr.UpdateEmployeeInput true "Fields to update"
// @Success      200 {object} dto.Response{data=hr.EmployeeResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /hr/employees/{id} [put]
func (h *HRHandler) UpdateEmployee(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid employee ID format")
		return
	}

	var input hrapp.UpdateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.employeeService.Update(c.Request.Context(), orgID, id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// CreateCompensation godoc
// @Summary      Add a compensation record
// @Description  Creates a new current compensation record and closes the previous one
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        id path string true "Employee ID" format(uuid)
// @Param        request body hr.CreateCompensationInput true "Compensation data"
// @Success      201 {object} dto.Response{data=hr.CompensationResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /hr/employees/{id}/compensation [post]
func (h *HRHandler) CreateCompensation(c *gin.Context) {
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

	var input hrapp.CreateCompensationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	createdBy, _ := getUserID(c)

	result, err := h.compensationService.Create(c.Request.Context(), orgID, employeeID, createdBy, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListCompensation godoc
// @Summary      List an employee's compensation history
// @Tags         hr
// @Produce      json
// @Param        id path string true "Employee ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]hr.CompensationResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /hr/employees/{id}/compensation [get]
func (h *HRHandler) ListCompensation(c *gin.Context) {
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

	result, err := h.compensationService.ListByEmployee(c.Request.Context(), orgID, employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetCurrentCompensation godoc
// @Summary      Get an employee's current compensation
// @Tags         hr
// @Produce      json
// @Param        id path string true "Employee ID" format(uuid)
// @Success      200 {object} dto.Response{data=hr.CompensationResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /hr/employees/{id}/compensation/current [get]
func (h *HRHandler) GetCurrentCompensation(c *gin.Context) {
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

	result, err := h.compensationService.GetCurrent(c.Request.Context(), orgID, employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// EndCompensation godoc
// @Summary      Close out a compensation record
// @Description  Ends the record as of the given date and clears its current flag
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        id path string true "Employee ID" format(uuid)
// @Param        record_id path string true "Compensation record ID" format(uuid)
// @Param        request body hr.EndCompensationInput true "End date"
// @Success      200 {object} dto.Response{data=hr.CompensationResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /hr/employees/{id}/compensation/{record_id}/end [post]
func (h *HRHandler) EndCompensation(c *gin.Context) {
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

	recordID, err := uuid.Parse(c.Param("record_id"))
	if err != nil {
		h.BadRequest(c, "Invalid compensation record ID format")
		return
	}

	var input hrapp.EndCompensationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.compensationService.End(c.Request.Context(), orgID, employeeID, recordID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ClockIn godoc
// @Summary      Clock in an employee
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        request body hr.ClockInInput true "Clock-in data"
// @Success      201 {object} dto.Response{data=hr.TimeEntryResult}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /hr/time-entries/clock-in [post]
func (h *HRHandler) ClockIn(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input hrapp.ClockInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	createdBy, _ := getUserID(c)

	result, err := h.timeEntryService.ClockIn(c.Request.Context(), orgID, createdBy, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ClockOut godoc
// @Summary      Clock out an open time entry
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        id path string true "Time entry ID" format(uuid)
// @Param        request body hr.ClockOutInput false "Clock-out data"
// @Success      200 {object} dto.Response{data=hr.TimeEntryResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /hr/time-entries/{id}/clock-out [post]
func (h *HRHandler) ClockOut(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid time entry ID format")
		return
	}

	var input hrapp.ClockOutInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			h.BindError(c, err)
			return
		}
	}

	result, err := h.timeEntryService.ClockOut(c.Request.Context(), orgID, entryID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// CreateTimeEntry godoc
// @Summary      Record a completed time entry
// @Description  Backfills a closed entry with explicit clock-in and clock-out times
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        request body hr.CreateTimeEntryInput true "Time entry data"
// @Success      201 {object} dto.Response{data=hr.TimeEntryResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /hr/time-entries [post]
func (h *HRHandler) CreateTimeEntry(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input hrapp.CreateTimeEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	createdBy, _ := getUserID(c)

	result, err := h.timeEntryService.Create(c.Request.Context(), orgID, createdBy, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListTimeEntries godoc
// @Summary      List time entries
// @Tags         hr
// @Produce      json
// @Param        employee_id query string false "Filter by employee" format(uuid)
// @Param        from query string false "Range start (YYYY-MM-DD)"
// @Param        to query string false "Range end (YYYY-MM-DD)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=hr.TimeEntryListResult}
// @Security     BearerAuth
// @Router       /hr/time-entries [get]
func (h *HRHandler) ListTimeEntries(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input hrapp.ListTimeEntriesInput
	if err := c.ShouldBindQuery(&input); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.timeEntryService.List(c.Request.Context(), orgID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UpdateTimeEntry godoc
// @Summary      Edit a time entry
// @Tags         hr
// @Accept       json
// @Produce      json
// @Param        id path string true "Time entry ID" format(uuid)
// @Param        request body hr.UpdateTimeEntryInput true "Fields to update"
// @Success      200 {object} dto.Response{data=hr.TimeEntryResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /hr/time-entries/{id} [put]
func (h *HRHandler) UpdateTimeEntry(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid time entry ID format")
		return
	}

	var input hrapp.UpdateTimeEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.timeEntryService.Update(c.Request.Context(), orgID, entryID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// DeleteTimeEntry godoc
// @Summary      Delete a time entry
// @Tags         hr
// @Produce      json
// @Param        id path string true "Time entry ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /hr/time-entries/{id} [delete]
func (h *HRHandler) DeleteTimeEntry(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid time entry ID format")
		return
	}

	if err := h.timeEntryService.Delete(c.Request.Context(), orgID, entryID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
