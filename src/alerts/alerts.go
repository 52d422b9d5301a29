package alerts

import (
	"errors"
	"fmt"
	"log"

	"yatrasetu/src/models"
	"yatrasetu/src/models/scopes"
	"yatrasetu/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrStore = errors.New("alert store error")

// Service records SOS events. Alerts are append-only; nothing updates or
// deletes them.
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) RaiseAlert(userID uint, latitude, longitude float64, address *string) (*models.SOSAlert, error) {
	alert := models.SOSAlert{
		Reference: uuid.New(),
		UserID:    userID,
		Latitude:  latitude,
		Longitude: longitude,
		Address:   address,
		Status:    types.ALERT_ACTIVE,
	}
	if err := s.db.Create(&alert).Error; err != nil {
		log.Printf("Error recording SOS alert for user [%d]: %s\n", userID, err.Error())
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return &alert, nil
}

// AlertsForUser returns the user's alerts, newest first.
func (s *Service) AlertsForUser(userID uint) ([]models.SOSAlert, error) {
	var alerts []models.SOSAlert
	err := s.db.
		Model(&models.SOSAlert{}).
		Scopes(scopes.ForUser(userID)).
		Order("created_at DESC").
		Find(&alerts).
		Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return alerts, nil
}
