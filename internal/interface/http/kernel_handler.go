package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/lifeosapp/backend/internal/application"
	"github.com/lifeosapp/backend/internal/domain/entity"
	"github.com/lifeosapp/backend/pkg/response"
	"github.com/lifeosapp/backend/pkg/validation"
)

// KernelHandler exposes the event log, score recomputation, data export,
// digest queuing, and the full data purge.
type KernelHandler struct {
	Kernel *app.Kernel
	Export *app.ExportService
	Digest *app.DigestService
	Logger *logrus.Logger
}

func NewKernelHandler(kernel *app.Kernel, export *app.ExportService, digest *app.DigestService, logger *logrus.Logger) *KernelHandler {
	return &KernelHandler{Kernel: kernel, Export: export, Digest: digest, Logger: logger}
}

type recordEventRequest struct {
	Type        string   `json:"type" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Impact      string   `json:"impact" binding:"omitempty,oneof=positive negative neutral"`
	Value       float64  `json:"value"`
	Tags        []string `json:"tags"`
}

func eventJSON(e entity.LifeEvent) gin.H {
	out := gin.H{
		"id":          e.ID,
		"type":        e.Type,
		"title":       e.Title,
		"description": e.Description,
		"impact":      e.Impact,
		"value":       e.Value,
		"tags":        e.Tags,
		"timestamp":   e.Timestamp,
		"created_at":  e.CreatedAt,
	}
	if e.Source != nil {
		out["source"] = gin.H{"kind": e.Source.Kind, "id": e.Source.ID}
	}
	return out
}

func scoresJSON(s *entity.ScoreSet) gin.H {
	return gin.H{
		"health":       s.Health,
		"wealth":       s.Wealth,
		"habit":        s.Habit,
		"goal":         s.Goal,
		"relationship": s.Relationship,
		"life":         s.Life,
	}
}

func (h *KernelHandler) RecordEvent(c *gin.Context) {
	uid := c.GetString("userID")
	var req recordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	ev, err := h.Kernel.RecordEvent(c.Request.Context(), uid, app.EventInput{
		Type:        entity.EventType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		Impact:      entity.Impact(req.Impact),
		Value:       req.Value,
		Tags:        req.Tags,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidEventType) {
			response.Error[any](c, http.StatusBadRequest, "unknown event type", nil)
			return
		}
		h.Logger.WithError(err).Error("record event failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to record event", nil)
		return
	}
	response.Success(c, http.StatusCreated, eventJSON(*ev), "event recorded", nil)
}

func (h *KernelHandler) ListEvents(c *gin.Context) {
	uid := c.GetString("userID")
	events, err := h.Kernel.ListEvents(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list events", nil)
		return
	}
	out := make([]gin.H, 0, len(events))
	for _, e := range events {
		out = append(out, eventJSON(e))
	}
	response.Success(c, http.StatusOK, out, "events", map[string]any{"count": len(out)})
}

func (h *KernelHandler) SearchEvents(c *gin.Context) {
	uid := c.GetString("userID")
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Kernel.SearchEvents(c.Request.Context(), uid, q, size)
	if err != nil {
		h.Logger.WithError(err).Warn("event search failed")
		response.Error[any](c, http.StatusBadGateway, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

func (h *KernelHandler) DeleteEvent(c *gin.Context) {
	uid := c.GetString("userID")
	id := c.Param("id")

	if err := h.Kernel.DeleteEvent(c.Request.Context(), uid, id); err != nil {
		if errors.Is(err, app.ErrEventNotFound) {
			response.Error[any](c, http.StatusNotFound, "event not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete event failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to delete event", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "event deleted", nil)
}

// Status returns the profile with all current scores in one payload.
func (h *KernelHandler) Status(c *gin.Context) {
	uid := c.GetString("userID")
	ctx := c.Request.Context()

	u, err := h.Kernel.Stores.Users.GetByID(ctx, uid)
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}

	scores, err := h.Kernel.CachedScores(ctx, uid)
	if err != nil || scores == nil {
		scores = &entity.ScoreSet{
			Health:       u.HealthScore,
			Wealth:       u.WealthScore,
			Habit:        u.HabitScore,
			Goal:         u.GoalScore,
			Relationship: u.RelationshipScore,
			Life:         u.LifeScore,
		}
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": gin.H{
			"id":    u.ID,
			"email": u.Email,
			"name":  u.Name,
		},
		"scores": scoresJSON(scores),
	}, "status", nil)
}

func (h *KernelHandler) RecomputeScores(c *gin.Context) {
	uid := c.GetString("userID")
	set, err := h.Kernel.RecomputeScores(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("score recompute failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to recompute scores", nil)
		return
	}
	if set == nil {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, scoresJSON(set), "scores recomputed", nil)
}

// ExportData writes a JSON snapshot of everything the user owns to object
// storage and returns its location.
func (h *KernelHandler) ExportData(c *gin.Context) {
	uid := c.GetString("userID")
	url, err := h.Export.ExportUserData(c.Request.Context(), uid)
	if err != nil {
		h.Logger.WithError(err).Error("data export failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to export data", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"url": url}, "export ready", nil)
}

func (h *KernelHandler) QueueDigest(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Digest.QueueDigest(c.Request.Context(), uid); err != nil {
		h.Logger.WithError(err).Error("digest enqueue failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to queue digest", nil)
		return
	}
	response.Success[any](c, http.StatusAccepted, map[string]any{"queued": true}, "digest queued", nil)
}

// PurgeData removes every record the user owns and resets all scores.
func (h *KernelHandler) PurgeData(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Kernel.PurgeAllUserData(c.Request.Context(), uid); err != nil {
		h.Logger.WithError(err).Error("data purge failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to purge data", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"purged": true}, "all data removed", nil)
}
