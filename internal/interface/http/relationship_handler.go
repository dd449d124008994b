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

type RelationshipHandler struct {
	Svc    *app.RelationshipService
	Logger *logrus.Logger
}

func NewRelationshipHandler(svc *app.RelationshipService, logger *logrus.Logger) *RelationshipHandler {
	return &RelationshipHandler{Svc: svc, Logger: logger}
}

type createRelationshipRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type"`
	HealthScore int    `json:"health_score" binding:"omitempty,score"`
}

type logInteractionRequest struct {
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
}

func relationshipJSON(r entity.Relationship) gin.H {
	return gin.H{
		"id":                  r.ID,
		"name":                r.Name,
		"type":                r.Type,
		"health_score":        r.HealthScore,
		"last_interaction":    r.LastInteraction,
		"interaction_history": r.InteractionHistory,
		"created_at":          r.CreatedAt,
	}
}

func (h *RelationshipHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	r, err := h.Svc.CreateRelationship(c.Request.Context(), uid, app.CreateRelationshipInput{
		Name:        req.Name,
		Type:        req.Type,
		HealthScore: req.HealthScore,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create relationship failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create relationship", nil)
		return
	}
	response.Success(c, http.StatusCreated, relationshipJSON(*r), "relationship created", nil)
}

func (h *RelationshipHandler) List(c *gin.Context) {
	uid := c.GetString("userID")
	rels, err := h.Svc.ListRelationships(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list relationships", nil)
		return
	}
	out := make([]gin.H, 0, len(rels))
	for _, r := range rels {
		out = append(out, relationshipJSON(r))
	}
	response.Success(c, http.StatusOK, out, "relationships", map[string]any{"count": len(out)})
}

func (h *RelationshipHandler) LogInteraction(c *gin.Context) {
	uid := c.GetString("userID")
	var req logInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	r, err := h.Svc.LogInteraction(c.Request.Context(), uid, c.Param("id"), app.LogInteractionInput{
		Type:        req.Type,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, app.ErrRelationshipNotFound) {
			response.Error[any](c, http.StatusNotFound, "relationship not found", nil)
			return
		}
		h.Logger.WithError(err).Error("log interaction failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to log interaction", nil)
		return
	}
	response.Success(c, http.StatusOK, relationshipJSON(*r), "interaction logged", nil)
}

func (h *RelationshipHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.DeleteRelationship(c.Request.Context(), uid, c.Param("id")); err != nil {
		if errors.Is(err, app.ErrRelationshipNotFound) {
			response.Error[any](c, http.StatusNotFound, "relationship not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete relationship failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to delete relationship", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "relationship deleted", nil)
}
