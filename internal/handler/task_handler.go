package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/faresFatooh/media-platform/internal/model"
)

type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Task, error)
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
	GetByID(ctx context.Context, ownerID, id int64) (*model.Task, error)
	Update(ctx context.Context, ownerID, id int64, status, outputText string) (bool, error)
	DeleteByID(ctx context.Context, ownerID, id int64) (bool, error)
}

type TaskHandler struct {
	repository TaskStore
}

func NewTaskHandler(repository TaskStore) *TaskHandler {
	return &TaskHandler{repository: repository}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	ownerID := currentUserID(c)
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	total, err := h.repository.CountByOwner(c.Request.Context(), ownerID)
	if err != nil {
		slog.Error("error counting tasks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	tasks, err := h.repository.ListByOwner(c.Request.Context(), ownerID, limit, offset)
	if err != nil {
		slog.Error("error fetching tasks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		res = append(res, toTaskResponse(task))
	}

	c.JSON(http.StatusOK, TaskListResponse{
		Tasks:  res,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.ApplicationID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "application_id is required"})
		return
	}

	task := model.Task{
		OwnerID:       currentUserID(c),
		ApplicationID: req.ApplicationID,
		Status:        model.TaskStatusPending,
		InputText:     req.InputText,
	}

	if err := h.repository.Create(c.Request.Context(), &task); err != nil {
		slog.Error("error creating task", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, toTaskResponse(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return
	}

	task, err := h.repository.GetByID(c.Request.Context(), currentUserID(c), taskID)
	if err != nil {
		slog.Error("error fetching task", "error", err, "task_id", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(*task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !model.ValidTaskStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task status"})
		return
	}

	updated, err := h.repository.Update(c.Request.Context(), currentUserID(c), taskID, req.Status, req.OutputText)
	if err != nil {
		slog.Error("error updating task", "error", err, "task_id", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return
	}

	deleted, err := h.repository.DeleteByID(c.Request.Context(), currentUserID(c), taskID)
	if err != nil {
		slog.Error("error deleting task", "error", err, "task_id", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func toTaskResponse(task model.Task) TaskResponse {
	return TaskResponse{
		ID:            task.ID,
		ApplicationID: task.ApplicationID,
		Status:        task.Status,
		InputText:     task.InputText,
		OutputText:    task.OutputText,
		CreatedAt:     task.CreatedAt.Format(time.RFC3339),
	}
}
