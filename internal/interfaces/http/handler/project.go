package handler

import (
	projectapp "github.com/fiberops/backend/internal/application/project"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles build project and task endpoints
type ProjectHandler struct {
	BaseHandler
	projectService *projectapp.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *projectapp.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// RegisterRoutes registers project routes on the given group
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.POST("", h.Create)
		projects.GET("", h.List)
		projects.GET("/:id", h.Get)
		projects.PUT("/:id", h.Update)
		projects.DELETE("/:id", h.Delete)
		projects.POST("/:id/tasks", h.CreateTask)
		projects.GET("/:id/tasks", h.ListTasks)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}

// Create godoc
// @Summary      Create a build project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body project.CreateProjectInput true "Project data"
// @Success      201 {object} dto.Response{data=project.ProjectResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input projectapp.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	createdBy, _ := getUserID(c)

	result, err := h.projectService.Create(c.Request.Context(), orgID, createdBy, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List godoc
// @Summary      List build projects
// @Tags         projects
// @Produce      json
// @Param        status query string false "Project status" Enums(planning, active, on_hold, completed, cancelled)
// @Param        keyword query string false "Search by name or code"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=project.ProjectListResult}
// @Security     BearerAuth
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input projectapp.ListProjectsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.projectService.List(c.Request.Context(), orgID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get godoc
// @Summary      Get a project by ID
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} dto.Response{data=project.ProjectResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	result, err := h.projectService.Get(c.Request.Context(), orgID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update godoc
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body project.UpdateProjectInput true "Fields to update"
// @Success      200 {object} dto.Response{data=project.ProjectResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	var input projectapp.UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.projectService.Update(c.Request.Context(), orgID, id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), orgID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateTask godoc
// @Summary      Create a task on a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Param        request body project.CreateTaskInput true "Task data"
// @Success      201 {object} dto.Response{data=project.TaskResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /projects/{id}/tasks [post]
func (h *ProjectHandler) CreateTask(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	var input projectapp.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	createdBy, _ := getUserID(c)

	result, err := h.projectService.CreateTask(c.Request.Context(), orgID, projectID, createdBy, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListTasks godoc
// @Summary      List a project's tasks
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]project.TaskResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /projects/{id}/tasks [get]
func (h *ProjectHandler) ListTasks(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	result, err := h.projectService.ListTasks(c.Request.Context(), orgID, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// UpdateTask godoc
// @Summary      Update a task
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path string true "Task ID" format(uuid)
// @Param        request body project.UpdateTaskInput true "Fields to update"
// @Success      200 {object} dto.Response{data=project.TaskResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tasks/{id} [put]
func (h *ProjectHandler) UpdateTask(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid task ID format")
		return
	}

	var input projectapp.UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.projectService.UpdateTask(c.Request.Context(), orgID, taskID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Tags         projects
// @Produce      json
// @Param        id path string true "Task ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tasks/{id} [delete]
func (h *ProjectHandler) DeleteTask(c *gin.Context) {
	orgID, err := getOrgID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid task ID format")
		return
	}

	if err := h.projectService.DeleteTask(c.Request.Context(), orgID, taskID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
