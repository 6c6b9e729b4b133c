package http

import (
	"log/slog"
	"os"

	"github.com/construtec/ponto-backend-go/internal/handler/http/middleware"
	"github.com/construtec/ponto-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	employeeHandler EmployeeHandler,
	timesheetHandler TimesheetHandler,
	ledgerHandler LedgerHandler,
	payrollHandler PayrollHandler,
	calendarHandler CalendarHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ponto-construtec"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees/{employeeID}", func(r chi.Router) {
				r.Route("/schedule", func(r chi.Router) {
					r.Get("/", employeeHandler.GetSchedule)
					r.Get("/day", employeeHandler.GetDaySchedule)
					r.Put("/", employeeHandler.ReplaceSchedule)
				})

				r.Post("/rates", employeeHandler.AppendRate)

				r.Route("/timesheet", func(r chi.Router) {
					r.Get("/", timesheetHandler.GetMonthlyLedger)
					r.Get("/day", timesheetHandler.GetDailyBalance)
				})

				r.Route("/punches", func(r chi.Router) {
					r.Put("/", timesheetHandler.UpsertPunch)
					r.Delete("/", timesheetHandler.DeletePunch)
				})

				r.Route("/abonos", func(r chi.Router) {
					r.Post("/", timesheetHandler.CreateAbono)
					r.Delete("/{abonoID}", timesheetHandler.DeleteAbono)
				})

				r.Route("/ledger/{month}", func(r chi.Router) {
					r.Get("/", ledgerHandler.GetStatus)
					r.Post("/close", ledgerHandler.CloseMonth)
					r.Post("/settle", ledgerHandler.CloseAndSettle)
					r.Post("/reopen", ledgerHandler.ReopenMonth)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/{month}", payrollHandler.GetMonthValue)
					r.Get("/advance", payrollHandler.GetAdvance)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", calendarHandler.ListHolidays)
				r.Post("/", calendarHandler.CreateHoliday)
				r.Delete("/{holidayID}", calendarHandler.DeleteHoliday)
			})
		})
	})
	return r
}
