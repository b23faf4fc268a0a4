package database

import (
	"fmt"

	"warehouse-booking/config"
	"warehouse-booking/logger"
	"warehouse-booking/models/agreement"
	"warehouse-booking/models/booking"
	"warehouse-booking/models/calendar"
	"warehouse-booking/models/inventory"
	"warehouse-booking/models/listing"
	"warehouse-booking/models/log"
	"warehouse-booking/models/notification"
	"warehouse-booking/models/user"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// InitDB opens the configured database and brings the schema up to date.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	var err error
	if cfg.DBDriver == DriverSQLite {
		DB, err = OpenSQLite(cfg.DBSQLitePath)
	} else {
		DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Warn),
		})
	}
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success(fmt.Sprintf("Successfully connected to the %s database", DB.Dialector.Name()))

	if err := Migrate(DB); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	// sqlite cannot ALTER TABLE ADD CONSTRAINT
	if DB.Dialector.Name() == DriverSQLite {
		return DB, nil
	}

	if err := createForeignKeyConstraints(DB); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}
	logger.Success("All foreign key constraints created successfully")

	if err := createIndexes(DB); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// Models returns every persisted model in dependency order.
func Models() []interface{} {
	return []interface{}{
		// Stage 1: identities and the listing catalogue
		&user.User{},
		&listing.Listing{},

		// Stage 2: bookings and everything hanging off them
		&booking.Booking{},
		&booking.BookingStatusEvent{},
		&agreement.StorageAgreement{},
		&inventory.InventoryItem{},
		&calendar.CalendarBlock{},

		// Stage 3: inbox and request logs
		&notification.Notification{},
		&log.Log{},
	}
}

// Migrate runs auto migration for all models in stages.
func Migrate(db *gorm.DB) error {
	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}
	return nil
}

// createIndexes creates additional composite indexes used by list queries.
func createIndexes(db *gorm.DB) error {
	statements := []struct {
		name string
		sql  string
	}{
		{"idx_bookings_renter_created", "CREATE INDEX IF NOT EXISTS idx_bookings_renter_created ON bookings(renter_id, created_at DESC)"},
		{"idx_bookings_host_created", "CREATE INDEX IF NOT EXISTS idx_bookings_host_created ON bookings(host_id, created_at DESC)"},
		{"idx_notifications_user_unread", "CREATE INDEX IF NOT EXISTS idx_notifications_user_unread ON notifications(user_id, is_read)"},
		{"idx_notifications_user_created", "CREATE INDEX IF NOT EXISTS idx_notifications_user_created ON notifications(user_id, created_at DESC)"},
		{"idx_calendar_blocks_listing_dates", "CREATE INDEX IF NOT EXISTS idx_calendar_blocks_listing_dates ON calendar_blocks(listing_id, start_date, end_date)"},
		{"idx_logs_created_at", "CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)"},
	}

	for _, s := range statements {
		if err := db.Exec(s.sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", s.name, err)
		}
	}
	return nil
}

// createForeignKeyConstraints adds the constraints AutoMigrate does not infer
// from plain id columns.
func createForeignKeyConstraints(db *gorm.DB) error {
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_bookings_listing",
			sql: `ALTER TABLE bookings ADD CONSTRAINT fk_bookings_listing
				  FOREIGN KEY (listing_id) REFERENCES listings(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_bookings_renter",
			sql: `ALTER TABLE bookings ADD CONSTRAINT fk_bookings_renter
				  FOREIGN KEY (renter_id) REFERENCES users(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_storage_agreements_booking",
			sql: `ALTER TABLE storage_agreements ADD CONSTRAINT fk_storage_agreements_booking
				  FOREIGN KEY (booking_id) REFERENCES bookings(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_inventory_items_booking",
			sql: `ALTER TABLE inventory_items ADD CONSTRAINT fk_inventory_items_booking
				  FOREIGN KEY (booking_id) REFERENCES bookings(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_calendar_blocks_listing",
			sql: `ALTER TABLE calendar_blocks ADD CONSTRAINT fk_calendar_blocks_listing
				  FOREIGN KEY (listing_id) REFERENCES listings(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "chk_bookings_renter_not_host",
			sql:  `ALTER TABLE bookings ADD CONSTRAINT chk_bookings_renter_not_host CHECK (renter_id <> host_id)`,
		},
	}

	for _, constraint := range constraints {
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`
		if err := db.Raw(checkSQL, constraint.name).Scan(&exists).Error; err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if exists {
			logger.Debug(fmt.Sprintf("Constraint already exists: %s", constraint.name))
			continue
		}
		if err := db.Exec(constraint.sql).Error; err != nil {
			logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
		} else {
			logger.Success(fmt.Sprintf("Successfully created constraint: %s", constraint.name))
		}
	}

	return nil
}

// OpenSQLite opens a single connection sqlite database. Pass ":memory:" for a
// throwaway schema.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// one writer at a time; concurrent transactions queue on the pool
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
