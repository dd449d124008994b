package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifeosapp/backend/internal/container"
	handlers "github.com/lifeosapp/backend/internal/interface/http"
	"github.com/lifeosapp/backend/internal/interface/middleware"
	"github.com/lifeosapp/backend/pkg/helpers"
)

type RelationshipModule struct {
	Handler *handlers.RelationshipHandler
	JWT     *helpers.JWTManager
}

func NewRelationshipModule(h *handlers.RelationshipHandler, jwt *helpers.JWTManager) *RelationshipModule {
	return &RelationshipModule{Handler: h, JWT: jwt}
}

func (m *RelationshipModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/relationships")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.POST("/:id/interactions", m.Handler.LogInteraction)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
