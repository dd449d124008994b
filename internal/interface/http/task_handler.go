package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/lifeosapp/backend/internal/application"
	"github.com/lifeosapp/backend/internal/domain/entity"
	"github.com/lifeosapp/backend/pkg/response"
	"github.com/lifeosapp/backend/pkg/validation"
)

type TaskHandler struct {
	Svc    *app.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *app.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	Title    string     `json:"title" binding:"required"`
	GoalID   string     `json:"goal_id" binding:"omitempty,uuid4"`
	Priority string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate  *time.Time `json:"due_date"`
}

func taskJSON(t entity.Task) gin.H {
	out := gin.H{
		"id":         t.ID,
		"title":      t.Title,
		"priority":   t.Priority,
		"due_date":   t.DueDate,
		"completed":  t.Completed,
		"created_at": t.CreatedAt,
	}
	if t.GoalID != "" {
		out["goal_id"] = t.GoalID
	}
	return out
}

func (h *TaskHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.CreateTask(c.Request.Context(), uid, app.CreateTaskInput{
		Title:    req.Title,
		GoalID:   req.GoalID,
		Priority: req.Priority,
		DueDate:  req.DueDate,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create task failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create task", nil)
		return
	}
	response.Success(c, http.StatusCreated, taskJSON(*t), "task created", nil)
}

func (h *TaskHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	tasks, err := h.Svc.ListTasks(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list tasks", nil)
		return
	}
	out := make([]gin.H, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskJSON(t))
	}
	response.Success(c, http.StatusOK, out, "tasks", map[string]any{"count": len(out)})
}

func (h *TaskHandler) Toggle(c *gin.Context) {
	uid := c.GetString("userID")
	t, err := h.Svc.ToggleTask(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, app.ErrTaskNotFound) {
			response.Error[any](c, http.StatusNotFound, "task not found", nil)
			return
		}
		h.Logger.WithError(err).Error("toggle task failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to toggle task", nil)
		return
	}
	response.Success(c, http.StatusOK, taskJSON(*t), "task updated", nil)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.DeleteTask(c.Request.Context(), uid, c.Param("id")); err != nil {
		if errors.Is(err, app.ErrTaskNotFound) {
			response.Error[any](c, http.StatusNotFound, "task not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete task failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to delete task", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "task deleted", nil)
}
