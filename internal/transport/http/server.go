package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "freelance-dashboard/internal/app"
	"freelance-dashboard/internal/bootstrap"
	"freelance-dashboard/internal/cache"
	"freelance-dashboard/internal/platform/rabbitmq"
	"freelance-dashboard/internal/repository"
	"freelance-dashboard/internal/transport/http/handler"
	"freelance-dashboard/internal/transport/http/middleware"
	"freelance-dashboard/internal/transport/http/response"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(middleware.RequestID(), gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		response.Err(c, 500, "Internal server error")
	}))

	healthHandler := handler.NewHealthHandler(app)
	router.StaticFile("/", "web/index.html")
	router.StaticFile("/login", "web/login.html")
	router.StaticFile("/register", "web/register.html")
	router.StaticFile("/dashboard", "web/dashboard.html")
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	profileCache := cache.NewProfileCache(
		app.Redis,
		time.Duration(app.Config.Redis.ProfileTTLSeconds)*time.Second,
	)
	loginEvents := rabbitmq.NewLoginEventPublisher(app.MQConn, app.Config.RabbitMQ.LoginAuditQueue)

	authService := appsvc.NewAuthService(
		userRepo,
		profileCache,
		loginEvents,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
		app.Config.Auth.BcryptCost,
	)
	dashboardService := appsvc.NewDashboardService(userRepo, profileCache)
	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authGroup := router.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/dashboard", middleware.AuthJWT(app.Config.Auth.JWTSecret), dashboardHandler.GetDashboard)

	router.NoRoute(func(c *gin.Context) {
		response.Err(c, 404, "Route not found")
	})

	return router
}
