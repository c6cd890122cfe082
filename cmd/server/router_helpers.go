package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"panchayat.backend/internal/interfaces/http/middleware"
	"panchayat.backend/pkg/metrics"
)

// applyCORSMiddleware answers preflight requests and decorates actual ones.
// An empty origin list allows any origin.
func applyCORSMiddleware(r *gin.Engine, allowedOrigins []string) {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"Origin",
			middleware.RequestIDHeader,
			middleware.IdempotencyHeader,
		},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         86400,
	})
	r.Use(func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == http.MethodOptions && ctx.GetHeader("Access-Control-Request-Method") != "" {
			ctx.Abort()
			return
		}
		ctx.Next()
	})
}

func registerHealthRoute(r *gin.Engine, version string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": version,
		})
	})
}

func registerMetricsRoute(r *gin.Engine, m *metrics.Metrics) {
	r.GET("/metrics", gin.WrapH(m.Handler()))
}
