package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"psicoagenda/cmd/internal/config"
	"psicoagenda/cmd/internal/domain"
	"psicoagenda/cmd/internal/domain/postgres"
	"psicoagenda/cmd/internal/routes"
	"psicoagenda/cmd/internal/service"
	"psicoagenda/cmd/internal/validation"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "psicoagenda",
		Short: "Clinical-practice scheduling API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := postgres.Open(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			return postgres.Migrate(db)
		},
	}
}

func runServer() error {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration: ", err)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	if err := postgres.Migrate(db); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	// Composition root: one unit of work per request flow, validators share
	// one validator instance, services receive the factory.
	validate := validation.New()
	newUnitOfWork := domain.UnitOfWorkFactory(func() domain.UnitOfWork {
		return postgres.NewUnitOfWork(db)
	})

	patientService := service.NewPatientService(newUnitOfWork, validation.NewPatientValidator(validate))
	apptService := service.NewAppointmentService(newUnitOfWork, validation.NewAppointmentValidator(validate))
	sessionService := service.NewSessionService(newUnitOfWork, validation.NewSessionValidator(validate))
	noteService := service.NewSessionNoteService(newUnitOfWork, validation.NewSessionNoteValidator(validate))
	dashboardService := service.NewDashboardService(newUnitOfWork)

	patientRoutes := routes.NewPatientDefault(patientService)
	apptRoutes := routes.NewAppointmentDefault(apptService)
	sessionRoutes := routes.NewSessionDefault(sessionService)
	noteRoutes := routes.NewSessionNoteDefault(noteService)
	dashboardRoutes := routes.NewDashboardDefault(dashboardService)

	e := echo.New()
	if cfg.IsDev() {
		e.Use(middleware.CORS())
	} else {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{cfg.OriginURL},
		}))
	}

	// Patients
	e.GET("/api/pacientes", patientRoutes.GetPatients)
	e.GET("/api/pacientes/:id", patientRoutes.GetPatient)
	e.POST("/api/pacientes", patientRoutes.CreatePatient)
	e.PUT("/api/pacientes/:id", patientRoutes.UpdatePatient)
	e.DELETE("/api/pacientes/:id", patientRoutes.DeletePatient)

	// Appointments
	e.GET("/api/citas", apptRoutes.GetAppointments)
	e.GET("/api/citas/:id", apptRoutes.GetAppointment)
	e.POST("/api/citas", apptRoutes.CreateAppointment)
	e.PUT("/api/citas/:id", apptRoutes.UpdateAppointment)
	e.DELETE("/api/citas/:id", apptRoutes.DeleteAppointment)

	// Sessions and their notes
	e.GET("/api/sesiones", sessionRoutes.GetSessions)
	e.GET("/api/sesiones/:id", sessionRoutes.GetSession)
	e.POST("/api/sesiones", sessionRoutes.CreateSession)
	e.PUT("/api/sesiones/:id", sessionRoutes.UpdateSession)
	e.DELETE("/api/sesiones/:id", sessionRoutes.DeleteSession)
	e.GET("/api/sesiones/:id/notas", noteRoutes.GetNotes)
	e.POST("/api/sesiones/:id/notas", noteRoutes.CreateNote)
	e.PUT("/api/notas/:id", noteRoutes.UpdateNote)
	e.DELETE("/api/notas/:id", noteRoutes.DeleteNote)

	// Dashboard + health
	e.GET("/api/dashboard/summary", dashboardRoutes.GetSummary)
	e.GET("/api/health", routes.GetHealth)

	return e.Start(":" + cfg.Port)
}
