package routes

import (
	"quotedesk/internal/adapter/http/handlers"
	"quotedesk/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes        = "/quotes"
	PathNotifications = "/notifications"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, limiter *middleware.IPRateLimiter) {
	quotes := rg.Group(PathQuotes)
	{
		// Public intake form.
		quotes.POST("", middleware.RateLimit(limiter), quoteHandler.CreateQuote)

		// Admin list, exports and lifecycle.
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/stats", quoteHandler.GetStats)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id", quoteHandler.UpdateQuoteStatus)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.POST("/test", notificationHandler.SendTest)
	}
}
