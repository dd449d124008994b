package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifeosapp/backend/internal/container"
	handlers "github.com/lifeosapp/backend/internal/interface/http"
	"github.com/lifeosapp/backend/internal/interface/middleware"
	"github.com/lifeosapp/backend/pkg/helpers"
)

type HabitModule struct {
	Handler *handlers.HabitHandler
	JWT     *helpers.JWTManager
}

func NewHabitModule(h *handlers.HabitHandler, jwt *helpers.JWTManager) *HabitModule {
	return &HabitModule{Handler: h, JWT: jwt}
}

func (m *HabitModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/habits")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.POST("/:id/complete", m.Handler.Complete)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
