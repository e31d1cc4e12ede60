package router

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lovelyhome/carehome/internal/server/handlers"
	"github.com/lovelyhome/carehome/internal/server/middleware"
)

// Deps collects what the router mounts. Webhook and Limiter may be nil.
type Deps struct {
	Auth           *handlers.AuthHandler
	Admin          *handlers.AdminHandler
	Reports        *handlers.ReportHandler
	Site           *handlers.SiteHandler
	Webhook        *handlers.WebhookHandler
	Gate           middleware.Authenticator
	Limiter        *middleware.IPRateLimiter
	AllowedOrigins []string
}

// New wires the Gin engine with required routes and middlewares.
func New(deps Deps, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(cors.New(corsConfig(deps.AllowedOrigins)))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limited := []gin.HandlerFunc{}
	if deps.Limiter != nil {
		limited = append(limited, middleware.RateLimit(deps.Limiter))
	}
	post := func(g *gin.RouterGroup, path string, h gin.HandlerFunc) {
		g.POST(path, append(slices.Clone(limited), h)...)
	}

	api := r.Group("/api")
	api.GET("/site", deps.Site.Site)
	api.GET("/donations/options", deps.Site.DonationOptions)
	post(api, "/donations", deps.Site.Donate)
	post(api, "/contact", deps.Site.Contact)
	api.GET("/sessions", deps.Site.ListSessions)
	api.GET("/sessions/schedule", deps.Site.Schedule)
	post(api, "/sessions", deps.Site.CreateSession)
	api.GET("/talents", deps.Site.ListTalents)
	post(api, "/talents", deps.Site.CreateTalent)

	post(api, "/admin/login", deps.Auth.Login)
	api.POST("/admin/logout", deps.Auth.Logout)
	api.GET("/admin/session", deps.Auth.Session)

	admin := api.Group("/admin", middleware.RequireAdmin(deps.Gate))
	admin.GET("/homes", deps.Admin.ListHomes)
	admin.POST("/homes", deps.Admin.CreateHome)
	admin.GET("/homes/:id", deps.Admin.GetHome)
	admin.PUT("/homes/:id", deps.Admin.UpdateHome)
	admin.DELETE("/homes/:id", deps.Admin.DeleteHome)
	admin.POST("/homes/:id/reconcile", deps.Admin.ReconcileHome)
	admin.GET("/homes/:id/residents", deps.Admin.ListHomeResidents)
	admin.POST("/homes/:id/residents", deps.Admin.CreateResident)
	admin.GET("/residents", deps.Admin.ListResidents)
	admin.GET("/residents/:id", deps.Admin.GetResident)
	admin.PUT("/residents/:id", deps.Admin.UpdateResident)
	admin.DELETE("/residents/:id", deps.Admin.DeleteResident)
	admin.GET("/dashboard", deps.Admin.Dashboard)

	admin.GET("/reports/occupancy", deps.Reports.Occupancy)
	admin.GET("/reports/checkups", deps.Reports.Checkups)
	admin.GET("/reports/archive/latest", deps.Reports.LatestArchived)
	admin.GET("/export/roster.xlsx", deps.Reports.ExportRoster)
	admin.GET("/inbox", deps.Site.Inbox)

	if deps.Webhook != nil {
		r.GET("/webhook", deps.Webhook.Verify)
		r.POST("/webhook", deps.Webhook.Receive)
		admin.POST("/whatsapp/send", deps.Webhook.SendMessage)
	}

	logger.Info("router initialized", zap.Int("routes", len(r.Routes())))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	cfg.AddAllowHeaders(middleware.RequestIDHeader)
	cfg.AddExposeHeaders(middleware.RequestIDHeader)
	cfg.MaxAge = 12 * time.Hour
	return cfg
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", middleware.GetRequestID(c.Request.Context())),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("request completed", fields...)
			return
		}
		logger.Info("request completed", fields...)
	}
}
