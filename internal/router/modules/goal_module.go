package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifeosapp/backend/internal/container"
	handlers "github.com/lifeosapp/backend/internal/interface/http"
	"github.com/lifeosapp/backend/internal/interface/middleware"
	"github.com/lifeosapp/backend/pkg/helpers"
)

type GoalModule struct {
	Handler *handlers.GoalHandler
	JWT     *helpers.JWTManager
}

func NewGoalModule(h *handlers.GoalHandler, jwt *helpers.JWTManager) *GoalModule {
	return &GoalModule{Handler: h, JWT: jwt}
}

func (m *GoalModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/goals")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.PUT("/:id/progress", m.Handler.UpdateProgress)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
