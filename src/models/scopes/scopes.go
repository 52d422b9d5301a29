package scopes

import (
	"yatrasetu/src/types"

	"gorm.io/gorm"
)

func WithID(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func WithActiveStatus(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", types.RIDE_ACTIVE)
}

func ForUser(userId uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userId)
	}
}

func ForPassenger(passengerId uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("passenger_id = ?", passengerId)
	}
}
