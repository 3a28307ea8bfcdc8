package routes

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"psicoagenda/cmd/internal/dto"
	"psicoagenda/cmd/internal/utils"
	"psicoagenda/cmd/internal/utils/apierror"
)

type DashboardService interface {
	GetSummary(ctx context.Context) (*dto.DashboardResponse, apierror.ErrorResponse)
}

type DefaultDashboardRoute struct {
	DashboardService DashboardService
}

func NewDashboardDefault(dashboardService DashboardService) *DefaultDashboardRoute {
	return &DefaultDashboardRoute{DashboardService: dashboardService}
}

func (d *DefaultDashboardRoute) GetSummary(c echo.Context) error {
	summary, apierr := d.DashboardService.GetSummary(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, summary)
}

// GetHealth is the liveness probe.
func GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, &dto.HealthResponse{
		Service: "PsicoAgenda API",
		Status:  "Healthy",
		UTC:     utils.FormatTime(utils.NowUTC()),
	})
}
