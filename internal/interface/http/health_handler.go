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

type HealthHandler struct {
	Svc    *app.HealthService
	Logger *logrus.Logger
}

func NewHealthHandler(svc *app.HealthService, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{Svc: svc, Logger: logger}
}

type createHealthLogRequest struct {
	Mood         float64 `json:"mood" binding:"required,gte=1,lte=10"`
	SleepHours   float64 `json:"sleep_hours" binding:"gte=0,lte=24"`
	SleepQuality float64 `json:"sleep_quality" binding:"omitempty,gte=1,lte=10"`
	Stress       float64 `json:"stress" binding:"required,gte=1,lte=10"`
	WaterIntake  float64 `json:"water_intake" binding:"gte=0"`
	Notes        string  `json:"notes"`
}

func healthLogJSON(l entity.HealthLog) gin.H {
	return gin.H{
		"id":            l.ID,
		"mood":          l.Mood,
		"sleep_hours":   l.SleepHours,
		"sleep_quality": l.SleepQuality,
		"stress":        l.Stress,
		"water_intake":  l.WaterIntake,
		"notes":         l.Notes,
		"timestamp":     l.Timestamp,
	}
}

func (h *HealthHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createHealthLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	log, err := h.Svc.CreateLog(c.Request.Context(), uid, app.CreateHealthLogInput{
		Mood:         req.Mood,
		SleepHours:   req.SleepHours,
		SleepQuality: req.SleepQuality,
		Stress:       req.Stress,
		WaterIntake:  req.WaterIntake,
		Notes:        req.Notes,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create health log failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create health log", nil)
		return
	}
	response.Success(c, http.StatusCreated, healthLogJSON(*log), "health log created", nil)
}

func (h *HealthHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	logs, err := h.Svc.ListLogs(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list health logs", nil)
		return
	}
	out := make([]gin.H, 0, len(logs))
	for _, l := range logs {
		out = append(out, healthLogJSON(l))
	}
	response.Success(c, http.StatusOK, out, "health logs", map[string]any{"count": len(out)})
}

func (h *HealthHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.DeleteLog(c.Request.Context(), uid, c.Param("id")); err != nil {
		if errors.Is(err, app.ErrLogNotFound) {
			response.Error[any](c, http.StatusNotFound, "health log not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete health log failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to delete health log", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "health log deleted", nil)
}
