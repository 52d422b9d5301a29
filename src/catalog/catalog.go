package catalog

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"yatrasetu/src/config"
	"yatrasetu/src/models"
	"yatrasetu/src/models/scopes"
	"yatrasetu/src/types"

	"gorm.io/gorm"
)

var (
	ErrRideNotFound = errors.New("ride not found")
	ErrValidation   = errors.New("invalid ride data")
	ErrStore        = errors.New("catalog store error")
)

type Catalog struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

type Filter struct {
	Source      string
	Destination string
	TravelDate  string
}

// RideSummary is a ride row denormalized with the owning driver's display
// fields. The driver join is display-only and never written back.
type RideSummary struct {
	ID                uint             `json:"id"`
	UserID            uint             `json:"user_id"`
	RideType          types.RideType   `json:"ride_type"`
	SourceCity        string           `json:"source_city"`
	DestinationCity   string           `json:"destination_city"`
	DepartureTime     time.Time        `json:"departure_time"`
	ArrivalTime       *time.Time       `json:"arrival_time,omitempty"`
	VehicleType       string           `json:"vehicle_type"`
	VehicleNumber     string           `json:"vehicle_number"`
	AvailableCapacity uint             `json:"available_capacity"`
	PricePerUnit      float64          `json:"price_per_unit"`
	AdditionalInfo    string           `json:"additional_info,omitempty"`
	ContactNumber     string           `json:"contact_number"`
	PreferredLanguage string           `json:"preferred_language,omitempty"`
	Status            types.RideStatus `json:"status"`
	DriverName        string           `json:"driver_name"`
	Rating            float64          `json:"rating"`
	TotalRides        uint             `json:"total_rides"`
}

// ListRides returns active rides matching the filter, soonest departure
// first. Source/destination match case-insensitively by substring; the date
// filter matches the calendar date of departure exactly, as stored.
func (c *Catalog) ListRides(filter Filter) ([]RideSummary, error) {
	q := c.db.
		Model(&models.Ride{}).
		Select("rides.*, users.name AS driver_name, users.rating, users.total_rides").
		Joins("JOIN users ON users.id = rides.user_id").
		Where("rides.status = ?", types.RIDE_ACTIVE)

	if source := strings.TrimSpace(filter.Source); source != "" {
		q = q.Where("LOWER(rides.source_city) LIKE ?", "%"+strings.ToLower(source)+"%")
	}
	if destination := strings.TrimSpace(filter.Destination); destination != "" {
		q = q.Where("LOWER(rides.destination_city) LIKE ?", "%"+strings.ToLower(destination)+"%")
	}
	if filter.TravelDate != "" {
		if _, err := time.Parse(config.DATE_PARSE_FORMAT, filter.TravelDate); err != nil {
			return nil, fmt.Errorf("%w: travel_date must be YYYY-MM-DD", ErrValidation)
		}
		q = q.Where("DATE(rides.departure_time) = ?", filter.TravelDate)
	}

	rides := []RideSummary{}
	if err := q.
		Order("rides.departure_time ASC, rides.id ASC").
		Scan(&rides).
		Error; err != nil {
		log.Printf("Error listing rides: %s\n", err.Error())
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return rides, nil
}

func (c *Catalog) GetRide(id uint) (*RideSummary, error) {
	var ride RideSummary
	err := c.db.
		Model(&models.Ride{}).
		Select("rides.*, users.name AS driver_name, users.rating, users.total_rides").
		Joins("JOIN users ON users.id = rides.user_id").
		Where("rides.id = ?", id).
		First(&ride).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRideNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return &ride, nil
}

// CreateRide validates and inserts a new active ride owned by ownerID.
// There is no double-booking risk here; the row is freshly inserted.
func (c *Catalog) CreateRide(ownerID uint, params *types.CreateRideRequestBody) (uint, error) {
	rideType := types.RideType(params.RideType)
	if !rideType.Valid() {
		return 0, fmt.Errorf("%w: unknown ride_type %q", ErrValidation, params.RideType)
	}
	if params.AvailableCapacity < 1 {
		return 0, fmt.Errorf("%w: available_capacity must be a positive integer", ErrValidation)
	}
	if params.PricePerUnit == nil || *params.PricePerUnit < 0 {
		return 0, fmt.Errorf("%w: price_per_unit must be non-negative", ErrValidation)
	}
	departureTime, err := time.Parse(config.TIME_PARSE_FORMAT, params.DepartureTime)
	if err != nil {
		return 0, fmt.Errorf("%w: departure_time must be %q", ErrValidation, config.TIME_PARSE_FORMAT)
	}
	var arrivalTime *time.Time
	if params.ArrivalTime != nil && *params.ArrivalTime != "" {
		at, err := time.Parse(config.TIME_PARSE_FORMAT, *params.ArrivalTime)
		if err != nil {
			return 0, fmt.Errorf("%w: arrival_time must be %q", ErrValidation, config.TIME_PARSE_FORMAT)
		}
		arrivalTime = &at
	}

	ride := models.Ride{
		UserID:            ownerID,
		RideType:          rideType,
		SourceCity:        params.SourceCity,
		DestinationCity:   params.DestinationCity,
		DepartureTime:     departureTime,
		ArrivalTime:       arrivalTime,
		VehicleType:       params.VehicleType,
		VehicleNumber:     params.VehicleNumber,
		AvailableCapacity: params.AvailableCapacity,
		PricePerUnit:      *params.PricePerUnit,
		AdditionalInfo:    params.AdditionalInfo,
		ContactNumber:     params.ContactNumber,
		PreferredLanguage: params.PreferredLanguage,
		Status:            types.RIDE_ACTIVE,
	}
	err = c.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&ride).Error
	})
	if err != nil {
		log.Printf("Error creating ride: %s\n", err.Error())
		return 0, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return ride.ID, nil
}

// RidesForOwner lists every ride the user has posted, any status.
func (c *Catalog) RidesForOwner(ownerID uint) ([]models.Ride, error) {
	var rides []models.Ride
	err := c.db.
		Model(&models.Ride{}).
		Scopes(scopes.ForUser(ownerID)).
		Order("departure_time ASC, id ASC").
		Find(&rides).
		Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return rides, nil
}

// CloseDepartedRides flips active rides whose departure time has passed to
// closed. Runs from the background sweep; the booking engine re-checks status
// under its own lock, so the sweep never races a booking into a closed ride.
func (c *Catalog) CloseDepartedRides(now time.Time) (int64, error) {
	var closed int64
	err := c.db.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Model(&models.Ride{}).
			Where("status = ? AND departure_time < ?", types.RIDE_ACTIVE, now).
			Update("status", types.RIDE_CLOSED)
		if res.Error != nil {
			return res.Error
		}
		closed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return closed, nil
}
