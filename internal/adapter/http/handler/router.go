package handler

import (
	"net/http"
	"time"

	"mandate-gateway/internal/adapter/http/middleware"
	"mandate-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	MandateSvc  ports.MandateService
	WorkflowSvc ports.WorkflowService
	ExportSvc   ports.ExportService
	Ledger      ports.AuditLedger
	Metrics     bool // expose /metrics from the default registry
	Logger      zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Liveness (the gateway is purely in-memory, nothing to probe)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	if deps.Metrics {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	mandateHandler := NewMandateHandler(deps.MandateSvc, deps.WorkflowSvc, deps.Ledger)
	mandates := v1.Group("/mandates")
	{
		mandates.POST("", mandateHandler.Create)
		mandates.GET("", mandateHandler.List)
		mandates.GET("/:id", mandateHandler.Get)
		mandates.GET("/:id/history", mandateHandler.History)
		mandates.POST("/:id/consent", mandateHandler.RegisterConsent)
		mandates.POST("/:id/convert", mandateHandler.Convert)
		mandates.POST("/:id/assess", mandateHandler.AssessRisk)
		mandates.POST("/:id/settle", mandateHandler.Settle)
		mandates.POST("/:id/revoke", mandateHandler.Revoke)
	}

	auditHandler := NewAuditHandler(deps.Ledger)
	v1.GET("/audit", auditHandler.List)

	workflowHandler := NewWorkflowHandler(deps.WorkflowSvc)
	v1.POST("/workflow", workflowHandler.Run)

	snapshotHandler := NewSnapshotHandler(deps.ExportSvc)
	v1.GET("/snapshot", snapshotHandler.Export)
	v1.POST("/snapshot", snapshotHandler.Import)

	return r
}
