package main

import (
	"errors"
	"log"
	"net/http"

	"yatrasetu/src/booking"
	"yatrasetu/src/types"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup, e *booking.Engine) *gin.RouterGroup {
	g.
		POST("/book-ride", func(ctx *gin.Context) {
			var body types.BookRideRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid booking data"})
				return
			}
			userId := ctx.GetUint("id")
			result, err := e.BookRide(ctx.Request.Context(), body.RideID, userId, body.Quantity)
			if err != nil {
				status, message := bookingErrorResponse(err)
				ctx.JSON(status, gin.H{"success": false, "message": message})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success":      true,
				"booking_id":   result.BookingID,
				"reference":    result.Reference,
				"total_amount": result.TotalAmount,
			})
		}).
		GET("/my-bookings", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			bookings, err := e.BookingsForPassenger(userId)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not load bookings"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings, "count": len(bookings)})
		})
	return g
}

// bookingErrorResponse maps the engine's error taxonomy onto HTTP statuses
// and caller-safe messages; underlying causes stay in the server log.
func bookingErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, booking.ErrInvalidQuantity):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, booking.ErrRideNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, booking.ErrRideClosed):
		return http.StatusConflict, err.Error()
	case errors.Is(err, booking.ErrInsufficientCapacity):
		return http.StatusConflict, err.Error()
	case errors.Is(err, booking.ErrOutcomeUnknown):
		log.Printf("[book-ride] ambiguous outcome: %s\n", err.Error())
		return http.StatusGatewayTimeout, "booking status unknown, please check your bookings before retrying"
	default:
		log.Printf("[book-ride] error: %s\n", err.Error())
		return http.StatusInternalServerError, "could not complete booking"
	}
}
