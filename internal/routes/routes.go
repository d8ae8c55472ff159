package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"vehicle_rental/internal/controllers"
	"vehicle_rental/internal/metrics"
	"vehicle_rental/internal/middleware"
)

func SetupRouter(h *controllers.Handler, tokens *middleware.TokenIssuer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger(
		ginlog.WithWriter(logrus.StandardLogger().Out),
		ginlog.WithSkipPath([]string{"/health", "/metrics"}),
	))
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS())

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	AuthRoutes(r, h)
	AdminRoutes(r, h, tokens)
	CustomerRoutes(r, h, tokens)

	return r
}
