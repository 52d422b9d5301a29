package types

import (
	"database/sql/driver"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type RideType string
type RideStatus string
type BookingStatus string
type UserRole string
type AlertStatus string

const (
	RIDE_CAR       RideType = "car"
	RIDE_BIKE      RideType = "bike"
	RIDE_LOGISTICS RideType = "logistics"

	RIDE_ACTIVE RideStatus = "active"
	RIDE_CLOSED RideStatus = "closed"

	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_CANCELED  BookingStatus = "cancelled"

	ROLE_PASSENGER UserRole = "passenger"
	ROLE_DRIVER    UserRole = "driver"
	ROLE_ADMIN     UserRole = "admin"

	ALERT_ACTIVE   AlertStatus = "active"
	ALERT_RESOLVED AlertStatus = "resolved"
)

func (t RideType) Valid() bool {
	switch t {
	case RIDE_CAR, RIDE_BIKE, RIDE_LOGISTICS:
		return true
	}
	return false
}

func (r UserRole) Valid() bool {
	switch r {
	case ROLE_PASSENGER, ROLE_DRIVER, ROLE_ADMIN:
		return true
	}
	return false
}

func (s *RideStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		*s = RideStatus(v)
	case string:
		*s = RideStatus(v)
	}
	return nil
}

func (s RideStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *BookingStatus) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		*s = BookingStatus(v)
	case string:
		*s = BookingStatus(v)
	}
	return nil
}

func (s BookingStatus) Value() (driver.Value, error) {
	return string(s), nil
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type RegisterUserRequestBody struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty" binding:"omitempty,oneof=passenger driver admin"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateRideRequestBody struct {
	RideType          string   `json:"ride_type" binding:"required,oneof=car bike logistics"`
	SourceCity        string   `json:"source_city" binding:"required"`
	DestinationCity   string   `json:"destination_city" binding:"required"`
	DepartureTime     string   `json:"departure_time" binding:"required,futuredate"`
	ArrivalTime       *string  `json:"arrival_time,omitempty"`
	VehicleType       string   `json:"vehicle_type" binding:"required"`
	VehicleNumber     string   `json:"vehicle_number" binding:"required"`
	AvailableCapacity uint     `json:"available_capacity" binding:"required,min=1"`
	PricePerUnit      *float64 `json:"price_per_unit" binding:"required,gte=0"`
	AdditionalInfo    string   `json:"additional_info,omitempty"`
	ContactNumber     string   `json:"contact_number" binding:"required"`
	PreferredLanguage string   `json:"preferred_language,omitempty"`
}

type BookRideRequestBody struct {
	RideID   uint `json:"ride_id" binding:"required"`
	Quantity uint `json:"quantity" binding:"required,min=1"`
}

type RaiseAlertRequestBody struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Address   *string  `json:"address,omitempty"`
}

type ChatRequestBody struct {
	Message string `json:"message" binding:"required"`
}

// RideQueryFilters carries the canonical search-rides query params. The older
// from/to/date names are still accepted as aliases at the handler boundary.
type RideQueryFilters struct {
	Source      string `form:"source"`
	Destination string `form:"destination"`
	TravelDate  string `form:"travel_date"`
}
