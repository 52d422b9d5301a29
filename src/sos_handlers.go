package main

import (
	"log"
	"net/http"

	"yatrasetu/src/alerts"
	"yatrasetu/src/types"

	"github.com/gin-gonic/gin"
)

func sosHandlers(g *gin.RouterGroup, a *alerts.Service) *gin.RouterGroup {
	g.
		POST("/sos", func(ctx *gin.Context) {
			var body types.RaiseAlertRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "latitude and longitude are required"})
				return
			}
			userId := ctx.GetUint("id")
			alert, err := a.RaiseAlert(userId, *body.Latitude, *body.Longitude, body.Address)
			if err != nil {
				log.Printf("[sos] error: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not record SOS alert"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{
				"success":   true,
				"alert_id":  alert.ID,
				"reference": alert.Reference,
			})
		}).
		GET("/sos", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			list, err := a.AlertsForUser(userId)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not load alerts"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "alerts": list, "count": len(list)})
		})
	return g
}
