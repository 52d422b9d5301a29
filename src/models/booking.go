package models

import (
	"time"

	"yatrasetu/src/types"

	"github.com/google/uuid"
)

// Booking rows are written exactly once, inside the same transaction that
// decrements the ride's capacity. TotalAmount is a snapshot of
// quantity * price_per_unit at booking time and is never recomputed.
type Booking struct {
	ID          uint                `gorm:"primarykey" json:"id"`
	Reference   uuid.UUID           `gorm:"type:uuid" json:"reference,omitempty"`
	RideID      uint                `json:"ride_id,omitempty"`
	PassengerID uint                `json:"passenger_id,omitempty"`
	Quantity    uint                `json:"quantity,omitempty"`
	TotalAmount float64             `gorm:"type:decimal(10,2)" json:"total_amount"`
	Status      types.BookingStatus `gorm:"default:'confirmed'" json:"status,omitempty"`
	BookedAt    time.Time           `gorm:"autoCreateTime" json:"booked_at,omitempty"`

	Ride      *Ride `gorm:"foreignKey:ride_id" json:"ride,omitempty"`
	Passenger *User `gorm:"foreignKey:passenger_id" json:"-"`
}
