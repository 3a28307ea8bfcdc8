package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"psicoagenda/cmd/internal/domain/entity"
	"psicoagenda/cmd/internal/utils"
)

// newTestDB opens an in-memory database with the full schema. The pool is
// capped at one connection so the in-memory store is shared by every query.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func newTestPatient() *entity.Patient {
	now := utils.NowUTC()
	email := "ana@mail.com"
	return &entity.Patient{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:      "Ana",
		BirthDate: now.AddDate(-30, 0, 0),
		Email:     &email,
	}
}

func newTestAppointment(patientID uuid.UUID) *entity.Appointment {
	now := utils.NowUTC()
	return &entity.Appointment{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		PatientID: patientID,
		StartsAt:  now.Add(24 * time.Hour),
		EndsAt:    now.Add(25 * time.Hour),
		Mode:      entity.ModeRemote,
		Status:    entity.StatusScheduled,
	}
}
