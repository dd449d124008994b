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

type GoalHandler struct {
	Svc    *app.GoalService
	Logger *logrus.Logger
}

func NewGoalHandler(svc *app.GoalService, logger *logrus.Logger) *GoalHandler {
	return &GoalHandler{Svc: svc, Logger: logger}
}

type createGoalRequest struct {
	Title    string     `json:"title" binding:"required"`
	Category string     `json:"category"`
	Deadline *time.Time `json:"deadline"`
	Priority string     `json:"priority" binding:"omitempty,oneof=low medium high"`
}

type updateProgressRequest struct {
	Progress *int `json:"progress" binding:"required,progress"`
}

func goalJSON(g entity.Goal) gin.H {
	out := gin.H{
		"id":         g.ID,
		"title":      g.Title,
		"category":   g.Category,
		"deadline":   g.Deadline,
		"priority":   g.Priority,
		"status":     g.Status,
		"progress":   g.Progress,
		"created_at": g.CreatedAt,
	}
	if g.Tasks != nil {
		tasks := make([]gin.H, 0, len(g.Tasks))
		for _, t := range g.Tasks {
			tasks = append(tasks, taskJSON(t))
		}
		out["tasks"] = tasks
	}
	return out
}

func (h *GoalHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	g, err := h.Svc.CreateGoal(c.Request.Context(), uid, app.CreateGoalInput{
		Title:    req.Title,
		Category: req.Category,
		Deadline: req.Deadline,
		Priority: req.Priority,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create goal failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create goal", nil)
		return
	}
	response.Success(c, http.StatusCreated, goalJSON(*g), "goal created", nil)
}

func (h *GoalHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	goals, err := h.Svc.ListGoals(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list goals", nil)
		return
	}
	out := make([]gin.H, 0, len(goals))
	for _, g := range goals {
		out = append(out, goalJSON(g))
	}
	response.Success(c, http.StatusOK, out, "goals", map[string]any{"count": len(out)})
}

func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	g, err := h.Svc.UpdateProgress(c.Request.Context(), uid, c.Param("id"), *req.Progress)
	if err != nil {
		if errors.Is(err, app.ErrGoalNotFound) {
			response.Error[any](c, http.StatusNotFound, "goal not found", nil)
			return
		}
		h.Logger.WithError(err).Error("update goal progress failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to update progress", nil)
		return
	}
	response.Success(c, http.StatusOK, goalJSON(*g), "progress updated", nil)
}

func (h *GoalHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.DeleteGoal(c.Request.Context(), uid, c.Param("id")); err != nil {
		if errors.Is(err, app.ErrGoalNotFound) {
			response.Error[any](c, http.StatusNotFound, "goal not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete goal failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to delete goal", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "goal deleted", nil)
}
