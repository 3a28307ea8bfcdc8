package service

import (
	"context"

	"github.com/labstack/gommon/log"

	"psicoagenda/cmd/internal/domain"
	"psicoagenda/cmd/internal/dto"
	"psicoagenda/cmd/internal/utils"
	"psicoagenda/cmd/internal/utils/apierror"
)

const upcomingLimit = 5

type DefaultDashboardService struct {
	NewUnitOfWork domain.UnitOfWorkFactory
}

func NewDashboardService(factory domain.UnitOfWorkFactory) *DefaultDashboardService {
	return &DefaultDashboardService{NewUnitOfWork: factory}
}

// GetSummary aggregates the dashboard counters and the five soonest future
// appointments. "Today" is containment in the current UTC calendar day, not
// equality with the current instant.
func (s *DefaultDashboardService) GetSummary(ctx context.Context) (*dto.DashboardResponse, apierror.ErrorResponse) {
	uow := s.NewUnitOfWork()
	defer uow.Close()

	patients, err := uow.Patients().FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch patients for dashboard: %v", err)
		return nil, apierror.InternalServerError
	}

	sessions, err := uow.Sessions().FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch sessions for dashboard: %v", err)
		return nil, apierror.InternalServerError
	}

	now := utils.NowUTC()
	dayStart, dayEnd := utils.DayBoundsUTC(now)
	today, err := uow.Appointments().FindAllBy(ctx, domain.Query{
		Where: "starts_at >= ? AND starts_at < ?",
		Args:  []any{dayStart, dayEnd},
	})
	if err != nil {
		log.Errorf("failed to fetch today's appointments: %v", err)
		return nil, apierror.InternalServerError
	}

	upcoming, err := uow.Appointments().FindAllBy(ctx, domain.Query{
		Where:   "starts_at > ?",
		Args:    []any{now},
		Preload: []string{"Patient"},
		OrderBy: "starts_at asc",
		Limit:   upcomingLimit,
	})
	if err != nil {
		log.Errorf("failed to fetch upcoming appointments: %v", err)
		return nil, apierror.InternalServerError
	}

	upcomingResp := make([]*dto.AppointmentResponse, len(upcoming))
	for i, appt := range upcoming {
		upcomingResp[i] = toAppointmentResponse(appt)
	}

	return &dto.DashboardResponse{
		TotalPatients:          len(patients),
		TotalSessions:          len(sessions),
		TotalAppointmentsToday: len(today),
		UpcomingAppointments:   upcomingResp,
	}, nil
}
