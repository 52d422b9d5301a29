package models

import (
	"time"

	"yatrasetu/src/types"

	"github.com/google/uuid"
)

// SOSAlert is append-only; there is no update path.
type SOSAlert struct {
	ID        uint              `gorm:"primarykey" json:"id"`
	Reference uuid.UUID         `gorm:"type:uuid" json:"reference,omitempty"`
	UserID    uint              `json:"user_id,omitempty"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Address   *string           `json:"address,omitempty"`
	Status    types.AlertStatus `gorm:"default:'active'" json:"status,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at,omitempty"`

	User User `gorm:"foreignKey:user_id" json:"-"`
}

func (SOSAlert) TableName() string {
	return "sos_alerts"
}
