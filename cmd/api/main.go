package main

import (
	"fmt"
	"net/http"

	"github.com/construtec/ponto-backend-go/internal/config"
	appHTTP "github.com/construtec/ponto-backend-go/internal/handler/http"
	"github.com/construtec/ponto-backend-go/internal/pkg/database"
	"github.com/construtec/ponto-backend-go/internal/pkg/jwt"
	"github.com/construtec/ponto-backend-go/internal/repository/postgresql"
	calendarService "github.com/construtec/ponto-backend-go/internal/service/calendar"
	employeeService "github.com/construtec/ponto-backend-go/internal/service/employee"
	ledgerService "github.com/construtec/ponto-backend-go/internal/service/ledger"
	payrollService "github.com/construtec/ponto-backend-go/internal/service/payroll"
	timesheetService "github.com/construtec/ponto-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	abonoRepo := postgresql.NewAbonoRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)
	payrollLineRepo := postgresql.NewPayrollLineRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	timesheetSvc := timesheetService.NewTimesheetService(
		employeeRepo,
		punchRepo,
		holidayRepo,
		abonoRepo,
		ledgerRepo,
	)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, timesheetSvc)
	ledgerSvc := ledgerService.NewLedgerService(
		txManager,
		employeeRepo,
		ledgerRepo,
		payrollLineRepo,
		timesheetSvc,
		payrollSvc,
	)
	calendarSvc := calendarService.NewCalendarService(holidayRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	ledgerHandler := appHTTP.NewLedgerHandler(ledgerSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)

	router := appHTTP.NewRouter(
		JWTService,
		employeeHandler,
		timesheetHandler,
		ledgerHandler,
		payrollHandler,
		calendarHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
