package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dorilab/dori/internal/middleware"
)

type RouterDeps struct {
	QA     *QAHandler
	Tour   *TourHandler
	Photos *PhotoHandler

	// AskWindow throttles the ask endpoint per client. Zero disables.
	AskWindow time.Duration
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.POST("/qa/ask", middleware.RateLimit(deps.AskWindow), deps.QA.Ask)
	api.GET("/tour/status", deps.Tour.Status)
	api.GET("/photos/:key", deps.Photos.Get)
}
