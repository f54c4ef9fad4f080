package router

import (
	"github.com/AsbestosServicesHampshire/ash-backend/config"
	"github.com/AsbestosServicesHampshire/ash-backend/handlers"
	"github.com/AsbestosServicesHampshire/ash-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// maxMultipartMemory caps how much of a multipart body gin keeps in memory
// before spilling to disk. Sized for the attachment policy: three files of
// five MiB plus the text fields.
const maxMultipartMemory = 16 << 20

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config         *config.Config
	EnquiryHandler *handlers.EnquiryHandler
	PageHandler    *handlers.PageHandler
	HealthHandler  *handlers.HealthHandler
	Logger         *zap.SugaredLogger
	// TemplateGlob overrides where page templates load from; empty uses the default.
	TemplateGlob string
	// StaticDir overrides where static assets are served from; empty uses the default.
	StaticDir string
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = maxMultipartMemory

	if err := r.SetTrustedProxies(deps.Config.Server.TrustedProxies); err != nil && deps.Logger != nil {
		deps.Logger.Warnw("Failed to set trusted proxies", "error", err)
	}

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config))

	glob := deps.TemplateGlob
	if glob == "" {
		glob = "web/templates/*.tmpl"
	}
	r.LoadHTMLGlob(glob)

	static := deps.StaticDir
	if static == "" {
		static = "web/static"
	}
	r.Static("/static", static)

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.CheckHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler())) // Prometheus metrics endpoint

	// Enquiry intake
	r.POST("/api/contact", deps.EnquiryHandler.SubmitEnquiry)

	// Marketing pages
	r.GET("/", deps.PageHandler.Home)
	r.GET("/about-us", deps.PageHandler.About)
	r.GET("/services", deps.PageHandler.ServicesIndex)
	r.GET("/services/:slug", deps.PageHandler.ServiceDetail)
	r.GET("/hampshire", deps.PageHandler.Hampshire)
	r.GET("/hampshire/areas-we-cover", deps.PageHandler.AreasWeCover)
	r.GET("/compliance-licensing", deps.PageHandler.Compliance)
	r.GET("/health-safety", deps.PageHandler.HealthSafety)
	r.GET("/faqs", deps.PageHandler.FAQs)
	r.GET("/contact", deps.PageHandler.Contact)

	// Crawler endpoints
	r.GET("/sitemap.xml", deps.PageHandler.Sitemap)
	r.GET("/robots.txt", deps.PageHandler.Robots)

	r.NoRoute(deps.PageHandler.NotFound)

	return r
}
