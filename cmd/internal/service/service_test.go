package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"psicoagenda/cmd/internal/domain"
	"psicoagenda/cmd/internal/domain/entity"
	"psicoagenda/cmd/internal/domain/postgres"
	"psicoagenda/cmd/internal/dto"
	"psicoagenda/cmd/internal/validation"
)

func newTestFactory(t *testing.T) domain.UnitOfWorkFactory {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, postgres.Migrate(db))
	return func() domain.UnitOfWork { return postgres.NewUnitOfWork(db) }
}

func newTestPatientService(t *testing.T) *DefaultPatientService {
	t.Helper()
	return NewPatientService(newTestFactory(t), validation.NewPatientValidator(validation.New()))
}

func strptr(s string) *string { return &s }

func patientRequest() *dto.PatientRequest {
	return &dto.PatientRequest{
		Name:      "Ana",
		LastName:  strptr("Ramirez"),
		BirthDate: "1995-05-10",
		Email:     strptr("ana@mail.com"),
	}
}

func appointmentRequest(patientID uuid.UUID, start time.Time) *dto.AppointmentRequest {
	return &dto.AppointmentRequest{
		PatientID: patientID,
		StartsAt:  start.Format(time.RFC3339),
		EndsAt:    start.Add(time.Hour).Format(time.RFC3339),
		Mode:      string(entity.ModeRemote),
		Status:    string(entity.StatusScheduled),
	}
}
