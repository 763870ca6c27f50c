package services

import (
	"errors"
	"fmt"

	"github.com/mbeckert/taskboard-api/internal/models"
	"github.com/mbeckert/taskboard-api/internal/repository"
	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskService handles task business logic. Visibility (public/private) only
// narrows listings: Get, Update and Delete address any task by id regardless
// of privacy or ownership, which is the documented access contract of this
// API rather than an accident.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// List returns private tasks owned by ownerID when viewMode is "private" and
// an owner is given; every other combination yields the public listing.
func (s *TaskService) List(viewMode, ownerID string) ([]models.Task, error) {
	filter := repository.TaskFilter{}
	if viewMode == "private" && ownerID != "" {
		filter.Private = true
		filter.OwnerID = ownerID
	}

	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns a task by ID
func (s *TaskService) Get(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// Create persists a new task. The server does not fill createdAt or order;
// both are client-supplied. Status defaults to todo.
func (s *TaskService) Create(task *models.Task) error {
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if err := s.taskRepo.Create(task); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// Update saves all fields of a task
func (s *TaskService) Update(task *models.Task) error {
	if err := s.taskRepo.Update(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete removes a task by ID
func (s *TaskService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
