package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifeosapp/backend/internal/container"
	handlers "github.com/lifeosapp/backend/internal/interface/http"
	"github.com/lifeosapp/backend/internal/interface/middleware"
	"github.com/lifeosapp/backend/pkg/helpers"
)

// KernelModule wires the event log, score, export, digest, and purge routes.
// All routes require an authenticated session.
type KernelModule struct {
	Handler *handlers.KernelHandler
	JWT     *helpers.JWTManager
}

func NewKernelModule(h *handlers.KernelHandler, jwt *helpers.JWTManager) *KernelModule {
	return &KernelModule{Handler: h, JWT: jwt}
}

func (m *KernelModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.GET("/status", m.Handler.Status)
		auth.POST("/events", m.Handler.RecordEvent)
		auth.GET("/events", m.Handler.ListEvents)
		auth.GET("/events/search", m.Handler.SearchEvents)
		auth.DELETE("/events/:id", m.Handler.DeleteEvent)
		auth.POST("/scores/recompute", m.Handler.RecomputeScores)
		auth.POST("/digest", m.Handler.QueueDigest)
	}

	// Export and purge are heavier; give them a tighter limit.
	heavy := rg.Group("/")
	heavy.Use(middleware.Auth(container.GetRedis(), m.JWT))
	heavy.Use(middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByUserID(), nil))
	{
		heavy.POST("/export", m.Handler.ExportData)
		heavy.DELETE("/data", m.Handler.PurgeData)
	}
}
