package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/agendai-app/booking-api/internal/config"
	"github.com/agendai-app/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.BarberService{},
		&models.WorkingHours{},
		&models.ShopHours{},
		&models.ShopClosure{},
		&models.BarberAbsence{},
		&models.GuestClient{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Final race guard for double booking: at most one live appointment per
	// barber/date/start. The application pre-check is advisory only, so the
	// process must not come up without this index.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_live_slot
        ON appointments (barber_id, date, start_time)
        WHERE status = 'CONFIRMED'
    `).Error; err != nil {
		log.Fatalf("failed to create idx_live_slot: %v", err)
	}

	return db
}
