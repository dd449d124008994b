package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifeosapp/backend/internal/container"
	handlers "github.com/lifeosapp/backend/internal/interface/http"
	"github.com/lifeosapp/backend/internal/interface/middleware"
	"github.com/lifeosapp/backend/pkg/helpers"
)

type FinanceModule struct {
	Handler *handlers.FinanceHandler
	JWT     *helpers.JWTManager
}

func NewFinanceModule(h *handlers.FinanceHandler, jwt *helpers.JWTManager) *FinanceModule {
	return &FinanceModule{Handler: h, JWT: jwt}
}

func (m *FinanceModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/transactions")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
