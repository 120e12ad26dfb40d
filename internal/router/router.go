package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusconnect/backend/internal/config"
	"github.com/campusconnect/backend/internal/handler"
	"github.com/campusconnect/backend/internal/middleware"
	"github.com/campusconnect/backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth          *handler.AuthHandler
	Catalog       *handler.CatalogHandler
	StudentPortal *handler.StudentPortalHandler
	Billing       *handler.BillingHandler
	Admin         *handler.AdminHandler
}

// Deps are the non-handler collaborators the router wires into middleware.
type Deps struct {
	Sessions     middleware.SessionValidator
	LoginLimiter middleware.Limiter
	Log          zerolog.Logger
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, deps Deps, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	response.SecureCookies = cfg.SessionCookieSecure

	router := gin.New()
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Recovery(deps.Log))
	router.Use(middleware.RequestLogger(deps.Log))

	// ─── CORS ──────────────────────────────────────────────────────────
	// Credentials (the session cookie) are only allowed for an explicit
	// origin list; the allow-all dev default stays cookie-less.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	pages := router.Group("/")
	pages.Use(middleware.NoStore(), middleware.LoadSession(deps.Sessions, deps.Log))

	loginLimit := middleware.RateLimit(deps.LoginLimiter, "login", deps.Log)
	adminLoginLimit := middleware.RateLimit(deps.LoginLimiter, "admin-login", deps.Log)

	// ─── 1. Public ─────────────────────────────────────────────────────
	{
		pages.GET("/", handlers.Catalog.Index)
		pages.GET("/search", handlers.Catalog.Search)
		pages.GET("/login", handlers.Auth.LoginPage)
		pages.POST("/login", loginLimit, handlers.Auth.StudentLogin)
		pages.GET("/logout", handlers.Auth.Logout)
		pages.GET("/admin-login", handlers.Auth.AdminLoginPage)
		pages.POST("/admin-login", adminLoginLimit, handlers.Auth.AdminLogin)
		pages.GET("/admin-logout", handlers.Auth.AdminLogout)
	}

	// ─── 2. Student ────────────────────────────────────────────────────
	{
		pages.POST("/register/:course_id", middleware.RequireStudent("Please log in first."), handlers.StudentPortal.Register)
		pages.POST("/drop/:course_id", middleware.RequireStudent("Please log in first."), handlers.StudentPortal.Drop)
		pages.GET("/my-courses", middleware.RequireStudent("Please log in to view your courses."), handlers.StudentPortal.MyCourses)
		pages.GET("/billing", middleware.RequireStudent("Please log in to view billing."), handlers.Billing.Billing)
		pages.POST("/pay", middleware.RequireStudent("Please log in to make a payment."), handlers.Billing.Pay)
	}

	// ─── 3. Admin ──────────────────────────────────────────────────────
	admin := pages.Group("")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/admin-dashboard", handlers.Admin.Dashboard)
		admin.GET("/admin/course/:course_id", handlers.Admin.CourseRoster)
	}

	return router
}
