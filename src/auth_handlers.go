package main

import (
	"errors"
	"log"
	"net/http"

	"yatrasetu/src/identity"
	"yatrasetu/src/types"

	"github.com/gin-gonic/gin"
)

func authHandlers(g *gin.RouterGroup, ids *identity.Service) *gin.RouterGroup {
	auth := g.Group("/auth")
	auth.
		POST("/register", func(ctx *gin.Context) {
			var body types.RegisterUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid registration data"})
				return
			}
			userId, err := ids.Register(&body)
			if err != nil {
				if errors.Is(err, identity.ErrEmailTaken) {
					ctx.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
					return
				}
				log.Printf("[register] error: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not create account"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"success": true, "user_id": userId})
		}).
		POST("/login", func(ctx *gin.Context) {
			var body types.LoginRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid login data"})
				return
			}
			token, user, err := ids.Login(body.Email, body.Password)
			if err != nil {
				if errors.Is(err, identity.ErrInvalidCredentials) {
					ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
					return
				}
				log.Printf("[login] error: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not log in"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success": true,
				"token":   token,
				"user": gin.H{
					"id":    user.ID,
					"name":  user.Name,
					"email": user.Email,
					"role":  user.Role,
				},
			})
		})
	return auth
}
