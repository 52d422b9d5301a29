package utils

import (
	"log"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}
	return gormDB, mock
}

func TestGetUserStats(t *testing.T) {
	db, mock := newMockDB(t)

	memberSince := time.Now().AddDate(0, 0, -30)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "rides"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WithArgs(uint(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT "rating","member_since" FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "member_since"}).AddRow(4.8, memberSince))
	mock.ExpectCommit()

	stats, err := GetUserStats(db, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.ActiveRides)
	assert.Equal(t, int64(5), stats.TotalBookings)
	assert.Equal(t, 4.8, stats.Rating)
	assert.Equal(t, 30, stats.DaysJoined)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserStatsNewMember(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "rides"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT "rating","member_since" FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "member_since"}).AddRow(5.0, time.Now()))
	mock.ExpectCommit()

	stats, err := GetUserStats(db, 7)
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.DaysJoined)
	assert.NoError(t, mock.ExpectationsWereMet())
}
