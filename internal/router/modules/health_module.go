package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifeosapp/backend/internal/container"
	handlers "github.com/lifeosapp/backend/internal/interface/http"
	"github.com/lifeosapp/backend/internal/interface/middleware"
	"github.com/lifeosapp/backend/pkg/helpers"
)

type HealthModule struct {
	Handler *handlers.HealthHandler
	JWT     *helpers.JWTManager
}

func NewHealthModule(h *handlers.HealthHandler, jwt *helpers.JWTManager) *HealthModule {
	return &HealthModule{Handler: h, JWT: jwt}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/health")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/logs", m.Handler.Create)
		auth.GET("/logs", m.Handler.List)
		auth.DELETE("/logs/:id", m.Handler.Delete)
	}
}
