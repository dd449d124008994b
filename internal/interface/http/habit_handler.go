package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/lifeosapp/backend/internal/application"
	"github.com/lifeosapp/backend/internal/domain/entity"
	"github.com/lifeosapp/backend/pkg/response"
	"github.com/lifeosapp/backend/pkg/validation"
)

type HabitHandler struct {
	Svc    *app.HabitService
	Logger *logrus.Logger
}

func NewHabitHandler(svc *app.HabitService, logger *logrus.Logger) *HabitHandler {
	return &HabitHandler{Svc: svc, Logger: logger}
}

type createHabitRequest struct {
	Name      string `json:"name" binding:"required"`
	Frequency string `json:"frequency" binding:"omitempty,oneof=daily weekly"`
}

func habitJSON(h entity.Habit) gin.H {
	return gin.H{
		"id":             h.ID,
		"name":           h.Name,
		"frequency":      h.Frequency,
		"streak":         h.Streak,
		"best_streak":    h.BestStreak,
		"last_completed": h.LastCompleted,
		"history":        h.History,
		"is_active":      h.IsActive,
		"created_at":     h.CreatedAt,
	}
}

func (h *HabitHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	habit, err := h.Svc.CreateHabit(c.Request.Context(), uid, app.CreateHabitInput{Name: req.Name, Frequency: req.Frequency})
	if err != nil {
		h.Logger.WithError(err).Error("create habit failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create habit", nil)
		return
	}
	response.Success(c, http.StatusCreated, habitJSON(*habit), "habit created", nil)
}

func (h *HabitHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	habits, err := h.Svc.ListHabits(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list habits", nil)
		return
	}
	out := make([]gin.H, 0, len(habits))
	for _, hb := range habits {
		out = append(out, habitJSON(hb))
	}
	response.Success(c, http.StatusOK, out, "habits", map[string]any{"count": len(out)})
}

func (h *HabitHandler) Complete(c *gin.Context) {
	uid := c.GetString("userID")
	habit, err := h.Svc.CompleteHabit(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, app.ErrHabitNotFound) {
			response.Error[any](c, http.StatusNotFound, "habit not found", nil)
			return
		}
		h.Logger.WithError(err).Error("complete habit failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to complete habit", nil)
		return
	}
	response.Success(c, http.StatusOK, habitJSON(*habit), "habit completed", nil)
}

func (h *HabitHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.DeleteHabit(c.Request.Context(), uid, c.Param("id")); err != nil {
		if errors.Is(err, app.ErrHabitNotFound) {
			response.Error[any](c, http.StatusNotFound, "habit not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete habit failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to delete habit", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "habit deleted", nil)
}
