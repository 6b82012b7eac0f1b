package bootstrap

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	pprof_gin "github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"

	"github.com/MdRakibHossen917/life-nest-company-server/config"
	"github.com/MdRakibHossen917/life-nest-company-server/controllers"
	"github.com/MdRakibHossen917/life-nest-company-server/middleware"
	"github.com/MdRakibHossen917/life-nest-company-server/models"
	"github.com/MdRakibHossen917/life-nest-company-server/services"
	"github.com/MdRakibHossen917/life-nest-company-server/utils"
)

// based on https://www.digitalocean.com/community/tutorials/using-ldflags-to-set-version-information-for-go-applications
var Version = "dev"

// Bootstrap wires the HTTP surface. Everything stateful arrives as an
// argument; the engine owns nothing but routing.
func Bootstrap(ctrl *controllers.Controller, db *models.Database, verifier services.TokenVerifier) *gin.Engine {
	initLogging()
	cfg := ctrl.Config

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              config.SentryDSN(),
		EnableTracing:    true,
		TracesSampleRate: 0.1,
		Release:          "api@" + Version,
		DebugWriter:      utils.NewSentrySlogWriter(slog.Default().WithGroup("sentry")),
	}); err != nil {
		slog.Error("Sentry initialization failed", "error", err)
	}

	r := gin.Default()

	r.Use(sloggin.New(slog.Default().WithGroup("http")))
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(middleware.CORSMiddleware())

	if _, exists := os.LookupEnv("LIFENEST_PPROF_DEBUG_ENABLED"); exists {
		pprof_gin.Register(r)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"build_date":  cfg.GetString("build_date"),
			"deployed_at": cfg.GetString("deployed_at"),
			"version":     Version,
		})
	})

	// public catalogue and content
	r.GET("/policies", ctrl.ListPolicies)
	r.GET("/policies/top", ctrl.TopPolicies)
	r.GET("/policies/:id", ctrl.GetPolicy)
	r.GET("/blogs", ctrl.ListBlogs)
	r.GET("/blogs/:id", ctrl.GetBlog)
	r.GET("/agents", ctrl.ListApprovedAgents)
	r.GET("/reviews", ctrl.ListReviews)
	r.POST("/newsletter", ctrl.SubscribeNewsletter)

	// any verified identity
	authorized := r.Group("/")
	authorized.Use(middleware.GetAPIMiddleware(verifier))

	authorized.PUT("/users", ctrl.UpsertProfile)
	authorized.GET("/users/:email", ctrl.GetUser)
	authorized.POST("/applications", ctrl.CreateApplication)
	authorized.GET("/applications", ctrl.GetMyApplications)
	authorized.DELETE("/applications/:id", ctrl.DeleteApplication)
	authorized.POST("/payments/create-intent", ctrl.CreatePaymentIntent)
	authorized.POST("/payments", ctrl.RecordPayment)
	authorized.GET("/payments", ctrl.GetMyPayments)
	authorized.POST("/reviews", ctrl.CreateReview)
	authorized.POST("/agents", ctrl.CreateAgentRequest)
	authorized.PUT("/blogs/:id", ctrl.UpdateBlog)
	authorized.DELETE("/blogs/:id", ctrl.DeleteBlog)

	// agent role only; admin deliberately does not pass this gate
	agent := r.Group("/agent")
	agent.Use(middleware.GetAPIMiddleware(verifier), middleware.RequireRole(db, models.AgentRole))

	agent.GET("/applications", ctrl.GetAssignedApplications)
	agent.PUT("/applications/:id/status", ctrl.SetApplicationStatus)
	agent.GET("/blogs", ctrl.GetMyBlogs)

	blogAuthors := r.Group("/")
	blogAuthors.Use(middleware.GetAPIMiddleware(verifier), middleware.RequireRole(db, models.AgentRole, models.AdminRole))
	blogAuthors.POST("/blogs", ctrl.CreateBlog)

	// admin role only
	admin := r.Group("/admin")
	admin.Use(middleware.GetAPIMiddleware(verifier), middleware.RequireRole(db, models.AdminRole))

	admin.GET("/users", ctrl.ListUsers)
	admin.PUT("/users/:email/role", ctrl.UpdateUserRole)
	admin.GET("/applications", ctrl.ListApplications)
	admin.PUT("/applications/:id/assign", ctrl.AssignAgent)
	admin.PUT("/applications/:id/reject", ctrl.RejectApplication)
	admin.GET("/agents", ctrl.ListAgentRequests)
	admin.PUT("/agents/:id/status", ctrl.SetAgentRequestStatus)
	admin.GET("/transactions", ctrl.ListTransactions)
	admin.GET("/stats", ctrl.AdminStats)

	adminPolicies := r.Group("/policies")
	adminPolicies.Use(middleware.GetAPIMiddleware(verifier), middleware.RequireRole(db, models.AdminRole))
	adminPolicies.POST("", ctrl.CreatePolicy)
	adminPolicies.PUT("/:id", ctrl.UpdatePolicy)
	adminPolicies.DELETE("/:id", ctrl.DeletePolicy)

	return r
}

func initLogging() {
	logLevel := os.Getenv("LIFENEST_LOG_LEVEL")
	var level slog.Leveler

	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
}
