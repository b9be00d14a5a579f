package main

import (
	"fmt"
	"net/http"

	"github.com/mariana-dist/attendance-backend-go/internal/config"
	appHTTP "github.com/mariana-dist/attendance-backend-go/internal/handler/http"
	"github.com/mariana-dist/attendance-backend-go/internal/pkg/database"
	"github.com/mariana-dist/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/mariana-dist/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/mariana-dist/attendance-backend-go/internal/service/employee"
	importService "github.com/mariana-dist/attendance-backend-go/internal/service/imports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(employeeRepo, punchRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	importSvc := importService.NewImportService(employeeRepo, punchRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	importHandler := appHTTP.NewImportHandler(importSvc)

	router := appHTTP.NewRouter(cfg, attendanceHandler, employeeHandler, importHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
