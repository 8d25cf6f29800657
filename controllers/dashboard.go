package controllers

import (
	"net/http"

	"VisionCare360/services"
	"VisionCare360/sse"
	"VisionCare360/util"

	"github.com/gin-gonic/gin"
)

// Hub is wired in from main before the router starts serving.
var Hub *services.DashboardHub

func Dashboard(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/stats", DashboardStats)
		dashboard.GET("/stream", DashboardStream)
	}
}

// One-shot snapshot for clients that do not hold the stream open.
func DashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, util.SuccessResponse(Hub.Stats()))
}

/*
* SSE stream of stats snapshots and new-item notifications
* The first frame is the current snapshot so a fresh dashboard renders
* without waiting for a change
 */
func DashboardStream(c *gin.Context) {
	initial := sse.Event{Name: "stats", Data: Hub.Stats()}
	Hub.Broadcaster.Serve(c, &initial)
}
