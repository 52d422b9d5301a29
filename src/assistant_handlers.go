package main

import (
	"net/http"

	"yatrasetu/src/chat"
	"yatrasetu/src/lib"
	"yatrasetu/src/types"

	"github.com/gin-gonic/gin"
)

func assistantHandlers(g *gin.RouterGroup, responder *chat.Responder, suggester lib.CitySuggester) *gin.RouterGroup {
	g.
		POST("/chat", func(ctx *gin.Context) {
			var body types.ChatRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "message is required"})
				return
			}
			reply := responder.Reply(body.Message)
			ctx.JSON(http.StatusOK, gin.H{"success": true, "reply": reply})
		}).
		GET("/city-suggest", func(ctx *gin.Context) {
			q := ctx.Query("q")
			suggestions := suggester.Suggest(ctx.Request.Context(), q)
			ctx.JSON(http.StatusOK, gin.H{"success": true, "suggestions": suggestions})
		})
	return g
}
