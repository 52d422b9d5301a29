package main

import (
	"net/http"

	"yatrasetu/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func profileHandlers(g *gin.RouterGroup, db *gorm.DB) *gin.RouterGroup {
	g.
		GET("/profile", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			stats, err := utils.GetUserStats(db, userId)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not load profile"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success": true,
				"user": gin.H{
					"id":    userId,
					"name":  ctx.GetString("name"),
					"email": ctx.GetString("email"),
					"role":  ctx.GetString("role"),
				},
				"stats": stats,
			})
		})
	return g
}
