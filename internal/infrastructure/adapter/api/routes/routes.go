package routes

import (
	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	User   *handler.UserHandler
	Trade  *handler.TradeHandler
	Report *handler.ReportHandler
	Health *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	if h.Health != nil {
		router.GET("/health", h.Health.Health)
	}

	userRoutes := router.Group("/users")
	{
		userRoutes.GET("/:userId", h.User.GetProfile)
		userRoutes.GET("/:userId/trades", h.User.GetTrades)
		userRoutes.GET("/:userId/partners/:partnerId/count", h.User.GetPairCount)
	}

	tradeRoutes := router.Group("/trades")
	{
		tradeRoutes.POST("", h.Trade.RecordTrade)
		tradeRoutes.POST("/completed", h.Trade.RecordCompletedTrade)
		tradeRoutes.POST("/:tradeId/rating", h.Trade.RateTrade)
		tradeRoutes.POST("/:tradeId/reports", h.Report.FileReport)
		tradeRoutes.GET("/:tradeId/reports", h.Report.ListReports)
	}
}

// SetupMiddlewares configures global middlewares for the API.
// RequestID runs first so every later log line carries the ID.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
}
