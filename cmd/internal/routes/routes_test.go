package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"psicoagenda/cmd/internal/domain"
	"psicoagenda/cmd/internal/domain/postgres"
	"psicoagenda/cmd/internal/service"
	"psicoagenda/cmd/internal/validation"
)

// newTestServer wires the full stack over an in-memory database, mirroring
// the composition in main.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, postgres.Migrate(db))

	validate := validation.New()
	factory := domain.UnitOfWorkFactory(func() domain.UnitOfWork { return postgres.NewUnitOfWork(db) })

	patientRoutes := NewPatientDefault(service.NewPatientService(factory, validation.NewPatientValidator(validate)))
	apptRoutes := NewAppointmentDefault(service.NewAppointmentService(factory, validation.NewAppointmentValidator(validate)))
	sessionRoutes := NewSessionDefault(service.NewSessionService(factory, validation.NewSessionValidator(validate)))
	noteRoutes := NewSessionNoteDefault(service.NewSessionNoteService(factory, validation.NewSessionNoteValidator(validate)))
	dashboardRoutes := NewDashboardDefault(service.NewDashboardService(factory))

	e := echo.New()
	e.GET("/api/pacientes", patientRoutes.GetPatients)
	e.GET("/api/pacientes/:id", patientRoutes.GetPatient)
	e.POST("/api/pacientes", patientRoutes.CreatePatient)
	e.PUT("/api/pacientes/:id", patientRoutes.UpdatePatient)
	e.DELETE("/api/pacientes/:id", patientRoutes.DeletePatient)
	e.GET("/api/citas", apptRoutes.GetAppointments)
	e.GET("/api/citas/:id", apptRoutes.GetAppointment)
	e.POST("/api/citas", apptRoutes.CreateAppointment)
	e.PUT("/api/citas/:id", apptRoutes.UpdateAppointment)
	e.DELETE("/api/citas/:id", apptRoutes.DeleteAppointment)
	e.GET("/api/sesiones", sessionRoutes.GetSessions)
	e.GET("/api/sesiones/:id", sessionRoutes.GetSession)
	e.POST("/api/sesiones", sessionRoutes.CreateSession)
	e.PUT("/api/sesiones/:id", sessionRoutes.UpdateSession)
	e.DELETE("/api/sesiones/:id", sessionRoutes.DeleteSession)
	e.GET("/api/sesiones/:id/notas", noteRoutes.GetNotes)
	e.POST("/api/sesiones/:id/notas", noteRoutes.CreateNote)
	e.PUT("/api/notas/:id", noteRoutes.UpdateNote)
	e.DELETE("/api/notas/:id", noteRoutes.DeleteNote)
	e.GET("/api/dashboard/summary", dashboardRoutes.GetSummary)
	e.GET("/api/health", GetHealth)
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, "PsicoAgenda API", payload["service"])
	assert.Equal(t, "Healthy", payload["status"])
	assert.NotEmpty(t, payload["utc"])
}

func TestPatientAndAppointmentFlow(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/pacientes", `{
		"name": "Ana",
		"lastName": "Ramirez",
		"birthDate": "1995-05-10"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	patient := decode(t, rec)
	patientID, _ := patient["id"].(string)
	require.NotEmpty(t, patientID)

	start := time.Now().UTC().Add(24 * time.Hour)
	rec = do(e, http.MethodPost, "/api/citas", fmt.Sprintf(`{
		"patientId": %q,
		"start": %q,
		"end": %q,
		"mode": "Remote",
		"status": "Scheduled"
	}`, patientID, start.Format(time.RFC3339), start.Add(time.Hour).Format(time.RFC3339)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	appt := decode(t, rec)
	apptID, _ := appt["id"].(string)
	require.NotEmpty(t, apptID)

	rec = do(e, http.MethodGet, "/api/citas/"+apptID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := decode(t, rec)
	assert.Equal(t, patientID, fetched["patientId"])
	assert.Equal(t, "Scheduled", fetched["status"])
	embedded, ok := fetched["patient"].(map[string]any)
	require.True(t, ok, "the appointment view embeds its patient")
	assert.Equal(t, "Ana", embedded["name"])
	assert.Equal(t, "Ramirez", embedded["lastName"])
}

func TestCreateAppointmentValidationErrors(t *testing.T) {
	e := newTestServer(t)

	start := time.Now().UTC().Add(24 * time.Hour)
	rec := do(e, http.MethodPost, "/api/citas", fmt.Sprintf(`{
		"patientId": %q,
		"start": %q,
		"end": %q,
		"mode": "InPerson",
		"status": "Scheduled"
	}`, "0b5fbad1-b4a7-4f34-a2a1-2f5f43eb0a29", start.Format(time.RFC3339), start.Add(-time.Hour).Format(time.RFC3339)))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	payload := decode(t, rec)
	errs, ok := payload["errors"].([]any)
	require.True(t, ok)
	assert.Len(t, errs, 3, "unknown patient, inverted range and missing location all reported")
}

func TestInvalidIDParam(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/pacientes/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, "Parameter id must be a valid uuid", payload["message"])
}

func TestGetAbsentAppointment(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/citas/0b5fbad1-b4a7-4f34-a2a1-2f5f43eb0a29", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, "Appointment not found", payload["message"])
}

func TestMalformedBody(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/pacientes", `{"name": `)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, "Malformed request body", payload["message"])
}

func TestDeletePatientEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/pacientes", `{"name": "Ana", "birthDate": "1995-05-10"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	patientID, _ := decode(t, rec)["id"].(string)

	rec = do(e, http.MethodDelete, "/api/pacientes/"+patientID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Patient deleted", decode(t, rec)["message"])

	rec = do(e, http.MethodGet, "/api/pacientes/"+patientID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionNotesEndpoints(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/pacientes", `{"name": "Ana", "birthDate": "1995-05-10"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	patientID, _ := decode(t, rec)["id"].(string)

	rec = do(e, http.MethodPost, "/api/sesiones", fmt.Sprintf(`{"patientId": %q, "subjective": "First visit."}`, patientID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	sessionID, _ := decode(t, rec)["id"].(string)
	require.NotEmpty(t, sessionID)

	rec = do(e, http.MethodPost, "/api/sesiones/"+sessionID+"/notas", `{"content": "Homework assigned."}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(e, http.MethodGet, "/api/sesiones/"+sessionID+"/notas", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var notes []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "Homework assigned.", notes[0]["content"])

	rec = do(e, http.MethodGet, "/api/sesiones/"+sessionID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	session := decode(t, rec)
	embedded, ok := session["notes"].([]any)
	require.True(t, ok)
	assert.Len(t, embedded, 1)
}

func TestDashboardSummaryEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/pacientes", `{"name": "Ana", "birthDate": "1995-05-10"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodGet, "/api/dashboard/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	payload := decode(t, rec)
	assert.EqualValues(t, 1, payload["totalPatients"])
	assert.EqualValues(t, 0, payload["totalSessions"])
	_, ok := payload["upcomingAppointments"].([]any)
	assert.True(t, ok)
}
