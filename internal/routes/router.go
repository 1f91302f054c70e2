package routes

import (
	"github.com/gin-gonic/gin"

	"slack-todo/internal/controller"
)

// Router builds the gin engine over the given controller. Endpoint shapes
// follow Slack's webhook configuration: form-encoded POSTs, 200 on every
// handled request.
func Router(ct *controller.Controller) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", ct.Health)
	router.POST("/todo/new", ct.CreateCommand)
	router.POST("/todo/list", ct.ListCommand)
	router.POST("/slack/interactivity", ct.Interactivity)

	return router
}
