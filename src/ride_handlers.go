package main

import (
	"errors"
	"log"
	"net/http"

	"yatrasetu/src/catalog"
	"yatrasetu/src/types"

	"github.com/gin-gonic/gin"
)

// queryAlias returns the canonical query param, falling back to the older
// alias the first frontend revision used.
func queryAlias(ctx *gin.Context, canonical, alias string) string {
	if v := ctx.Query(canonical); v != "" {
		return v
	}
	return ctx.Query(alias)
}

func rideHandlers(public *gin.RouterGroup, c *catalog.Catalog) *gin.RouterGroup {
	public.
		GET("/search-rides", func(ctx *gin.Context) {
			filter := catalog.Filter{
				Source:      queryAlias(ctx, "source", "from"),
				Destination: queryAlias(ctx, "destination", "to"),
				TravelDate:  queryAlias(ctx, "travel_date", "date"),
			}
			rides, err := c.ListRides(filter)
			if err != nil {
				if errors.Is(err, catalog.ErrValidation) {
					ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not search rides"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "rides": rides, "count": len(rides)})
		}).
		GET("/ride/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid ride id"})
				return
			}
			ride, err := c.GetRide(params.ID)
			if err != nil {
				if errors.Is(err, catalog.ErrRideNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "ride not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not load ride"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "ride": ride})
		})
	return public
}

func rideOwnerHandlers(authorized *gin.RouterGroup, c *catalog.Catalog) *gin.RouterGroup {
	authorized.
		POST("/post-ride", func(ctx *gin.Context) {
			var body types.CreateRideRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid ride data"})
				return
			}
			userId := ctx.GetUint("id")
			rideId, err := c.CreateRide(userId, &body)
			if err != nil {
				if errors.Is(err, catalog.ErrValidation) {
					ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
					return
				}
				log.Printf("[post-ride] error: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not post ride"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"success": true, "ride_id": rideId})
		}).
		GET("/my-rides", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			rides, err := c.RidesForOwner(userId)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not load rides"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "rides": rides, "count": len(rides)})
		})
	return authorized
}
