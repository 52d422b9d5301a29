package booking

import (
	"context"
	"errors"
	"fmt"

	"yatrasetu/src/models"
	"yatrasetu/src/models/scopes"
	"yatrasetu/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRideNotFound         = errors.New("ride not found")
	ErrRideClosed           = errors.New("ride is no longer accepting bookings")
	ErrInsufficientCapacity = errors.New("not enough capacity left on this ride")
	ErrInvalidQuantity      = errors.New("quantity must be a positive integer")

	// ErrBookingFailed wraps store-level faults. Safe to retry at the caller's
	// discretion.
	ErrBookingFailed = errors.New("booking failed")

	// ErrOutcomeUnknown means the transaction may or may not have committed
	// (e.g. the caller's deadline expired while waiting on the store). The
	// caller must reconcile by re-reading state, never by retrying blind.
	ErrOutcomeUnknown = errors.New("booking outcome unknown")
)

type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

type Result struct {
	BookingID   uint      `json:"booking_id"`
	Reference   uuid.UUID `json:"reference"`
	TotalAmount float64   `json:"total_amount"`
}

// BookRide reserves quantity units on a ride. The read-check-decrement runs
// inside a single transaction holding a row lock on the ride, so two racing
// bookings on the same ride serialize and capacity can never go negative.
// Bookings on different rides do not block each other.
func (e *Engine) BookRide(ctx context.Context, rideID, passengerID uint, quantity uint) (*Result, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var result Result
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ride models.Ride
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(scopes.WithID(rideID)).
			First(&ride).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRideNotFound
			}
			return err
		}
		if ride.Status != types.RIDE_ACTIVE {
			return ErrRideClosed
		}
		if ride.AvailableCapacity < quantity {
			return ErrInsufficientCapacity
		}

		totalAmount := ride.PricePerUnit * float64(quantity)
		booking := models.Booking{
			Reference:   uuid.New(),
			RideID:      ride.ID,
			PassengerID: passengerID,
			Quantity:    quantity,
			TotalAmount: totalAmount,
			Status:      types.BOOKING_CONFIRMED,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		if err := tx.
			Model(&models.Ride{}).
			Scopes(scopes.WithID(ride.ID)).
			Update("available_capacity", gorm.Expr("available_capacity - ?", quantity)).
			Error; err != nil {
			return err
		}

		result = Result{
			BookingID:   booking.ID,
			Reference:   booking.Reference,
			TotalAmount: totalAmount,
		}
		return nil
	})
	if err != nil {
		return nil, classify(ctx, err)
	}
	return &result, nil
}

// BookingsForPassenger lists a passenger's bookings, newest first, with the
// ride attached for display.
func (e *Engine) BookingsForPassenger(passengerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := e.db.
		Model(&models.Booking{}).
		Scopes(scopes.ForPassenger(passengerID)).
		Preload("Ride").
		Order("booked_at DESC").
		Find(&bookings).
		Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBookingFailed, err)
	}
	return bookings, nil
}

// classify maps everything onto the error taxonomy before it crosses the
// package boundary; no raw store error escapes.
func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrRideNotFound),
		errors.Is(err, ErrRideClosed),
		errors.Is(err, ErrInsufficientCapacity),
		errors.Is(err, ErrInvalidQuantity):
		return err
	case ctx.Err() != nil:
		return fmt.Errorf("%w: %v", ErrOutcomeUnknown, err)
	default:
		return fmt.Errorf("%w: %v", ErrBookingFailed, err)
	}
}
