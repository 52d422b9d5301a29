package boot

import (
	"log"
	"time"

	"yatrasetu/src/catalog"
	"yatrasetu/src/db"
	"yatrasetu/src/lib"
	"yatrasetu/src/models"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Ride{},
		&models.Booking{},
		&models.SOSAlert{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// InitScheduler starts the sweep that closes rides whose departure time has
// passed, once a minute.
func InitScheduler(c *catalog.Catalog) {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	id, err := lib.CreateCronJob(func() {
		closed, err := c.CloseDepartedRides(time.Now())
		if err != nil {
			log.Printf("Error closing departed rides: %s\n", err.Error())
			return
		}
		if closed > 0 {
			log.Printf("Closed %d departed ride(s)\n", closed)
		}
	}, time.Minute)
	if err != nil {
		log.Printf("Error scheduling ride sweep: %s\n", err.Error())
		return
	}
	log.Printf("Ride sweep job ID: %s\n", *id)
	sched.Start()
}
