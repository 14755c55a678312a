package project

import (
	"context"
	"strings"

	"github.com/fiberops/backend/internal/domain/hr"
	"github.com/fiberops/backend/internal/domain/project"
	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/fiberops/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProjectService manages build projects and their tasks
type ProjectService struct {
	projectRepo  project.ProjectRepository
	taskRepo     project.TaskRepository
	employeeRepo hr.EmployeeRepository
	logger       *zap.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo project.ProjectRepository,
	taskRepo project.TaskRepository,
	employeeRepo hr.EmployeeRepository,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Create adds a new project. Codes are unique per org.
func (s *ProjectService) Create(ctx context.Context, orgID, createdBy uuid.UUID, input CreateProjectInput) (*ProjectResult, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	exists, err := s.projectRepo.ExistsByCode(ctx, orgID, code)
	if err != nil {
		s.logger.Error("Failed to check project code", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create project")
	}
	if exists {
		return nil, shared.NewDomainError("PROJECT_CODE_TAKEN", "A project with this code already exists")
	}

	p, err := project.NewProject(orgID, input.Name, code)
	if err != nil {
		return nil, err
	}
	p.SetCreatedBy(createdBy)
	p.SetLocation(input.City, input.State, input.Latitude, input.Longitude)
	if err := p.SetContractValue(valueobject.NewMoneyUSD(input.ContractValue)); err != nil {
		return nil, err
	}
	if err := p.SetSchedule(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}
	p.Description = input.Description

	if err := s.projectRepo.Create(ctx, p); err != nil {
		s.logger.Error("Failed to create project", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create project")
	}

	s.logger.Info("Project created",
		zap.String("org_id", orgID.String()),
		zap.String("code", p.Code))

	result := toProjectResult(p)
	return &result, nil
}

// Update patches a project's mutable fields
func (s *ProjectService) Update(ctx context.Context, orgID, id uuid.UUID, input UpdateProjectInput) (*ProjectResult, error) {
	p, err := s.projectRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, shared.NewDomainError("INVALID_PROJECT_NAME", "Project name cannot be empty")
		}
		p.Name = name
	}
	if input.Status != nil {
		if err := p.ChangeStatus(project.ProjectStatus(*input.Status)); err != nil {
			return nil, err
		}
	}
	if input.City != nil || input.State != nil || input.Latitude != nil || input.Longitude != nil {
		city := p.City
		if input.City != nil {
			city = *input.City
		}
		state := p.State
		if input.State != nil {
			state = *input.State
		}
		lat := p.Latitude
		if input.Latitude != nil {
			lat = input.Latitude
		}
		lng := p.Longitude
		if input.Longitude != nil {
			lng = input.Longitude
		}
		p.SetLocation(city, state, lat, lng)
	}
	if input.ContractValue != nil {
		if err := p.SetContractValue(valueobject.NewMoneyUSD(*input.ContractValue)); err != nil {
			return nil, err
		}
	}
	if input.StartDate != nil || input.EndDate != nil {
		start := p.StartDate
		if input.StartDate != nil {
			start = input.StartDate
		}
		end := p.EndDate
		if input.EndDate != nil {
			end = input.EndDate
		}
		if err := p.SetSchedule(start, end); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	p.IncrementVersion()

	if err := s.projectRepo.Update(ctx, p); err != nil {
		s.logger.Error("Failed to update project", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update project")
	}

	result := toProjectResult(p)
	return &result, nil
}

// Get returns one project
func (s *ProjectService) Get(ctx context.Context, orgID, id uuid.UUID) (*ProjectResult, error) {
	p, err := s.projectRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	result := toProjectResult(p)
	return &result, nil
}

// Delete removes a project
func (s *ProjectService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if _, err := s.projectRepo.FindByID(ctx, orgID, id); err != nil {
		return err
	}
	return s.projectRepo.Delete(ctx, orgID, id)
}

// List returns projects matching the filter
func (s *ProjectService) List(ctx context.Context, orgID uuid.UUID, input ListProjectsInput) (*ProjectListResult, error) {
	filter := project.ProjectFilter{
		Keyword:  input.Keyword,
		Page:     input.Page,
		PageSize: input.PageSize,
	}
	if input.Status != "" {
		status := project.ProjectStatus(input.Status)
		filter.Status = &status
	}

	projects, total, err := s.projectRepo.FindAll(ctx, orgID, filter)
	if err != nil {
		s.logger.Error("Failed to list projects", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list projects")
	}

	items := make([]ProjectResult, len(projects))
	for i, p := range projects {
		items[i] = toProjectResult(p)
	}
	return &ProjectListResult{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.Limit(),
	}, nil
}

// CreateTask adds a task to a project
func (s *ProjectService) CreateTask(ctx context.Context, orgID, projectID, createdBy uuid.UUID, input CreateTaskInput) (*TaskResult, error) {
	p, err := s.projectRepo.FindByID(ctx, orgID, projectID)
	if err != nil {
		return nil, err
	}

	task, err := project.NewTask(orgID, p.ID, input.Name)
	if err != nil {
		return nil, err
	}
	task.SetCreatedBy(createdBy)
	if input.FootagePlanned.IsNegative() {
		return nil, shared.NewDomainError("INVALID_FOOTAGE", "Footage cannot be negative")
	}
	task.FootagePlanned = input.FootagePlanned
	task.Notes = input.Notes

	if input.AssignedTo != nil {
		if _, err := s.employeeRepo.FindByID(ctx, orgID, *input.AssignedTo); err != nil {
			return nil, err
		}
		task.Assign(*input.AssignedTo)
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		s.logger.Error("Failed to create task", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create task")
	}

	result := toTaskResult(task)
	return &result, nil
}

// UpdateTask patches a task's mutable fields
func (s *ProjectService) UpdateTask(ctx context.Context, orgID, taskID uuid.UUID, input UpdateTaskInput) (*TaskResult, error) {
	task, err := s.taskRepo.FindByID(ctx, orgID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, shared.NewDomainError("INVALID_TASK_NAME", "Task name cannot be empty")
		}
		task.Name = name
	}
	if input.Status != nil {
		if err := task.ChangeStatus(project.TaskStatus(*input.Status)); err != nil {
			return nil, err
		}
	}
	if input.AssignedTo != nil {
		if _, err := s.employeeRepo.FindByID(ctx, orgID, *input.AssignedTo); err != nil {
			return nil, err
		}
		task.Assign(*input.AssignedTo)
	}
	if input.FootagePlanned != nil {
		if input.FootagePlanned.IsNegative() {
			return nil, shared.NewDomainError("INVALID_FOOTAGE", "Footage cannot be negative")
		}
		task.FootagePlanned = *input.FootagePlanned
	}
	if input.FootageComplete != nil {
		if err := task.RecordFootage(*input.FootageComplete); err != nil {
			return nil, err
		}
	}
	if input.Notes != nil {
		task.Notes = *input.Notes
	}
	task.IncrementVersion()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		s.logger.Error("Failed to update task", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update task")
	}

	result := toTaskResult(task)
	return &result, nil
}

// DeleteTask removes a task
func (s *ProjectService) DeleteTask(ctx context.Context, orgID, taskID uuid.UUID) error {
	if _, err := s.taskRepo.FindByID(ctx, orgID, taskID); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, orgID, taskID)
}

// ListTasks returns a project's tasks
func (s *ProjectService) ListTasks(ctx context.Context, orgID, projectID uuid.UUID) ([]TaskResult, error) {
	if _, err := s.projectRepo.FindByID(ctx, orgID, projectID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByProject(ctx, orgID, projectID)
	if err != nil {
		s.logger.Error("Failed to list tasks", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list tasks")
	}

	results := make([]TaskResult, len(tasks))
	for i, task := range tasks {
		results[i] = toTaskResult(task)
	}
	return results, nil
}
