package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/mbeckert/taskboard-api/internal/errors"
	"github.com/mbeckert/taskboard-api/internal/models"
	"github.com/mbeckert/taskboard-api/internal/services"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// taskRequest is the full task payload used by create and PUT. Date fields
// are opaque strings supplied by the client.
type taskRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description"`
	DueDate     string             `json:"dueDate" binding:"required"`
	Priority    string             `json:"priority" binding:"required,oneof=urgent medium low"`
	Category    string             `json:"category" binding:"required"`
	Status      string             `json:"status" binding:"omitempty,oneof=todo inprogress awaitfeedback done"`
	AssignedTo  models.StringList  `json:"assignedTo"`
	Subtasks    models.SubtaskList `json:"subtasks"`
	CreatedAt   string             `json:"createdAt" binding:"required"`
	UpdatedAt   string             `json:"updatedAt"`
	Order       *int               `json:"order"`
	IsPrivate   bool               `json:"isPrivate"`
	OwnerID     *string            `json:"ownerId"`
}

// taskPatchRequest carries only the fields present in a PATCH body; absent
// fields stay untouched.
type taskPatchRequest struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	DueDate     *string             `json:"dueDate"`
	Priority    *string             `json:"priority" binding:"omitempty,oneof=urgent medium low"`
	Category    *string             `json:"category"`
	Status      *string             `json:"status" binding:"omitempty,oneof=todo inprogress awaitfeedback done"`
	AssignedTo  *models.StringList  `json:"assignedTo"`
	Subtasks    *models.SubtaskList `json:"subtasks"`
	CreatedAt   *string             `json:"createdAt"`
	UpdatedAt   *string             `json:"updatedAt"`
	Order       *int                `json:"order"`
	IsPrivate   *bool               `json:"isPrivate"`
	OwnerID     *string             `json:"ownerId"`
}

func (r taskRequest) apply(task *models.Task) {
	task.Title = r.Title
	task.Description = r.Description
	task.DueDate = r.DueDate
	task.Priority = models.TaskPriority(r.Priority)
	task.Category = r.Category
	task.Status = models.TaskStatus(r.Status)
	// Absent lists become empty ones so responses never carry null.
	task.AssignedTo = r.AssignedTo
	if task.AssignedTo == nil {
		task.AssignedTo = models.StringList{}
	}
	task.Subtasks = r.Subtasks
	if task.Subtasks == nil {
		task.Subtasks = models.SubtaskList{}
	}
	task.CreatedAt = r.CreatedAt
	task.UpdatedAt = r.UpdatedAt
	task.Order = r.Order
	task.IsPrivate = r.IsPrivate
	task.OwnerID = r.OwnerID
}

// List returns tasks filtered by view mode. viewMode=private with a userId
// yields that user's private tasks; everything else yields public tasks.
func (h *TaskHandler) List(c *gin.Context) {
	viewMode := c.DefaultQuery("viewMode", "public")
	userID := c.Query("userId")

	tasks, err := h.taskService.List(viewMode, userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// Create creates a new task.
func (h *TaskHandler) Create(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var task models.Task
	req.apply(&task)

	if err := h.taskService.Create(&task); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// Get returns a task by ID.
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.Get(id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Update replaces a task from a full payload.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.Get(id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	req.apply(task)
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}

	if err := h.taskService.Update(task); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Patch updates only the fields present in the request body.
func (h *TaskHandler) Patch(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.Get(id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	var req taskPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.Priority != nil {
		task.Priority = models.TaskPriority(*req.Priority)
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.Status != nil {
		task.Status = models.TaskStatus(*req.Status)
	}
	if req.AssignedTo != nil {
		task.AssignedTo = *req.AssignedTo
	}
	if req.Subtasks != nil {
		task.Subtasks = *req.Subtasks
	}
	if req.CreatedAt != nil {
		task.CreatedAt = *req.CreatedAt
	}
	if req.UpdatedAt != nil {
		task.UpdatedAt = *req.UpdatedAt
	}
	if req.Order != nil {
		task.Order = req.Order
	}
	if req.IsPrivate != nil {
		task.IsPrivate = *req.IsPrivate
	}
	if req.OwnerID != nil {
		task.OwnerID = req.OwnerID
	}

	if err := h.taskService.Update(task); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Delete removes a task.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func taskID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task id")
		return 0, false
	}
	return id, true
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
