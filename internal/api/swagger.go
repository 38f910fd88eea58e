package api

import (
	"net/http"

	_ "alert-listener-go/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (s *Server) setupSwagger() {
	s.router.GET("/api/info", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title":       "Alert Listener API",
			"version":     s.config.Version,
			"description": "Security-camera alert ingestion: vision classification, verdict, and fan-out to store and channel",
			"swagger_ui":  "/docs/index.html",
			"endpoints": gin.H{
				"health":        "/health",
				"listener_info": "/",
				"alerts":        "/alerts",
			},
			"listener_id": s.config.ListenerID,
			"port":        s.config.Port,
		})
	})

	s.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.router.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
}
