package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/organiks/internal/server/handlers"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// New wires the Gin engine with required routes and middlewares. reports may
// be nil, in which case the on-demand report route is not registered.
func New(records *handlers.RecordHandler, reports *handlers.ReportHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(zapLoggerMiddleware(logger))

	poultry := r.Group("/poultry")
	poultry.POST("", records.AddPoultryRecord)
	poultry.GET("", records.ListPoultryRecords)
	poultry.GET("/:id", records.GetPoultryRecord)
	poultry.PUT("/:id", records.UpdatePoultryRecord)
	poultry.DELETE("/:id", records.DeletePoultryRecord)

	eggs := r.Group("/eggs")
	eggs.POST("", records.AddEggRecord)
	eggs.GET("", records.ListEggRecords)
	eggs.GET("/:id", records.GetEggRecord)
	eggs.PUT("/:id", records.UpdateEggRecord)
	eggs.DELETE("/:id", records.DeleteEggRecord)

	prices := r.Group("/prices")
	prices.POST("", records.SetEggPrice)
	prices.GET("", records.ListEggPrices)
	prices.GET("/:id", records.GetEggPrice)
	prices.PUT("/:id", records.UpdateEggPrice)
	prices.DELETE("/:id", records.DeleteEggPrice)

	orders := r.Group("/orders")
	orders.POST("", records.PlaceEggOrder)
	orders.GET("", records.ListEggOrders)
	orders.GET("/:id", records.GetEggOrder)

	if reports != nil {
		r.POST("/reports/daily", reports.RunDaily)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// requestIDMiddleware echoes an incoming X-Request-ID or mints a new one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
