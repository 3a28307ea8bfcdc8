package postgres

import (
	"time"

	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"psicoagenda/cmd/internal/domain/entity"
)

func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate creates or updates the six entity tables, foreign keys included.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Patient{},
		&entity.Appointment{},
		&entity.Session{},
		&entity.SessionNote{},
		&entity.Questionnaire{},
		&entity.QuestionnaireResponse{},
	)
}
