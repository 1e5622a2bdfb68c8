package main

import (
	"fmt"
	"net/http"

	"github.com/turnos-app/turnos-backend-go/internal/config"
	appHTTP "github.com/turnos-app/turnos-backend-go/internal/handler/http"
	"github.com/turnos-app/turnos-backend-go/internal/pkg/database"
	"github.com/turnos-app/turnos-backend-go/internal/repository/postgresql"
	checklistService "github.com/turnos-app/turnos-backend-go/internal/service/checklist"
	reportService "github.com/turnos-app/turnos-backend-go/internal/service/report"
	rosterService "github.com/turnos-app/turnos-backend-go/internal/service/roster"
	scheduleService "github.com/turnos-app/turnos-backend-go/internal/service/schedule"
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

	workerRepo := postgresql.NewWorkerRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	checklistRepo := postgresql.NewChecklistRepository(db)

	rosterSvc := rosterService.NewRosterService(workerRepo)
	scheduleSvc := scheduleService.NewScheduleService(workerRepo, assignmentRepo)
	reportSvc := reportService.NewReportService(workerRepo, assignmentRepo, checklistRepo, cfg.Report.DefaultSite)
	checklistSvc := checklistService.NewChecklistService(checklistRepo)

	workerHandler := appHTTP.NewWorkerHandler(rosterSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	checklistHandler := appHTTP.NewChecklistHandler(checklistSvc)

	router := appHTTP.NewRouter(
		workerHandler,
		scheduleHandler,
		reportHandler,
		checklistHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
