package repository

import (
	"gorm.io/gorm"
)

// Migrate brings the schema up to date for every table this package
// owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&propertyModel{},
		&propertyImageModel{},
		&bookingModel{},
		&contactMessageModel{},
		&blockedDateModel{},
	)
}

// EnsureBookingOverlapConstraint installs the postgres exclusion
// constraint that makes double-booking a database-level error
// (surfaced as constraint idx_bookings_no_overlap). SQLite dev
// databases skip it; the service-level availability check still
// applies there.
func EnsureBookingOverlapConstraint(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	if err := db.Exec(`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS idx_bookings_no_overlap`).Error; err != nil {
		return err
	}

	return db.Exec(`
		ALTER TABLE bookings
		ADD CONSTRAINT idx_bookings_no_overlap
		EXCLUDE USING gist (
			property_id WITH =,
			daterange(check_in::date, check_out::date) WITH &&
		)
		WHERE (status <> 'cancelled')
	`).Error
}
