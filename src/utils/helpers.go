package utils

import (
	"log"
	"time"

	"yatrasetu/src/models"
	"yatrasetu/src/models/scopes"
	"yatrasetu/src/types"

	"gorm.io/gorm"
)

type UserStats struct {
	ActiveRides   int64   `json:"active_rides"`
	TotalBookings int64   `json:"total_bookings"`
	Rating        float64 `json:"rating"`
	DaysJoined    int     `json:"days_joined"`
}

// GetUserStats collects the dashboard counters for a user's profile page.
func GetUserStats(db *gorm.DB, userID uint) (*UserStats, error) {
	stats := UserStats{Rating: 5.0, DaysJoined: 1}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&models.Ride{}).
			Where("user_id = ? AND status = ?", userID, types.RIDE_ACTIVE).
			Count(&stats.ActiveRides).
			Error; err != nil {
			return err
		}
		if err := tx.
			Model(&models.Booking{}).
			Scopes(scopes.ForPassenger(userID)).
			Count(&stats.TotalBookings).
			Error; err != nil {
			return err
		}
		var user models.User
		if err := tx.
			Model(&models.User{}).
			Select("rating", "member_since").
			Scopes(scopes.WithID(userID)).
			First(&user).
			Error; err != nil {
			return err
		}
		stats.Rating = user.Rating
		if !user.MemberSince.IsZero() {
			days := int(time.Since(user.MemberSince).Hours() / 24)
			if days < 1 {
				days = 1
			}
			stats.DaysJoined = days
		}
		return nil
	})
	if err != nil {
		log.Printf("Error collecting stats for user [%d]: %s\n", userID, err.Error())
		return nil, err
	}
	return &stats, nil
}
