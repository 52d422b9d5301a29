package models

import (
	"time"

	"yatrasetu/src/types"
)

type User struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name,omitempty"`
	Email       string         `gorm:"uniqueIndex" json:"email,omitempty"`
	Password    string         `json:"-"`
	Phone       string         `json:"phone,omitempty"`
	Role        types.UserRole `gorm:"default:'passenger'" json:"role,omitempty"`
	Rating      float64        `gorm:"default:5.0" json:"rating"`
	TotalRides  uint           `gorm:"default:0" json:"total_rides"`
	MemberSince time.Time      `gorm:"autoCreateTime" json:"member_since,omitempty"`

	Rides    []Ride    `gorm:"foreignKey:user_id" json:"rides,omitempty"`
	Bookings []Booking `gorm:"foreignKey:passenger_id" json:"bookings,omitempty"`
}
