package bootstrap

import (
	"time"

	httpapi "github.com/GoSim-25-26J-441/mongo-gateway/internal/api/http"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/api/http/middleware"
	entrieshttp "github.com/GoSim-25-26J-441/mongo-gateway/internal/entries/http"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/entries/service"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Database       string
	Entries        *service.EntryService
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.MetricsMiddleware())

	if len(dep.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  dep.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders: []string{middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	var pinger httpapi.Pinger
	if dep.Entries != nil {
		pinger = dep.Entries
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, pinger)
	healthHandler.RegisterRoutes(r)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("")
	api.Use(middleware.RateLimitMiddleware(dep.RateLimitRPS, dep.RateLimitBurst))

	entrieshttp.New(dep.Entries, dep.Database).Register(api)

	return r
}
