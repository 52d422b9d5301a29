package models

import (
	"time"

	"yatrasetu/src/types"
)

// Ride is a transportation offering with finite bookable capacity. The
// available_capacity column is only ever decremented, and only inside the
// booking engine's transaction.
type Ride struct {
	ID                uint             `gorm:"primarykey" json:"id"`
	UserID            uint             `json:"user_id,omitempty"`
	RideType          types.RideType   `json:"ride_type,omitempty"`
	SourceCity        string           `json:"source_city,omitempty"`
	DestinationCity   string           `json:"destination_city,omitempty"`
	DepartureTime     time.Time        `json:"departure_time,omitempty"`
	ArrivalTime       *time.Time       `json:"arrival_time,omitempty"`
	VehicleType       string           `json:"vehicle_type,omitempty"`
	VehicleNumber     string           `json:"vehicle_number,omitempty"`
	AvailableCapacity uint             `json:"available_capacity"`
	PricePerUnit      float64          `gorm:"type:decimal(10,2)" json:"price_per_unit"`
	AdditionalInfo    string           `json:"additional_info,omitempty"`
	ContactNumber     string           `json:"contact_number,omitempty"`
	PreferredLanguage string           `gorm:"default:'hindi'" json:"preferred_language,omitempty"`
	Status            types.RideStatus `gorm:"default:'active'" json:"status,omitempty"`

	User     User      `gorm:"foreignKey:user_id" json:"-"`
	Bookings []Booking `gorm:"foreignKey:ride_id" json:"bookings,omitempty"`

	types.Timestamps
}
