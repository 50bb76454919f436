package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lebarbier/salon-api/internal/config"
	"github.com/lebarbier/salon-api/internal/models"
	"github.com/lebarbier/salon-api/internal/timezone"
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
		&models.Salon{},
		&models.User{},
		&models.Barber{},
		&models.Service{},
		&models.BusinessHours{},
		&models.Appointment{},
		&models.Publication{},
		&models.PublicationLike{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Garde-fou de dernier recours contre le double-booking : deux
	// rendez-vous confirmés d'un même barbier ne peuvent pas partager la
	// même heure de début. Le verrou consultatif dans le repository couvre
	// les chevauchements partiels.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_confirmed_slot
        ON appointments (barber_id, start_time)
        WHERE status = 'confirmed'
    `)

	db.Exec(`
        UPDATE salons
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, timezone.DefaultTimezone)

	return db
}
