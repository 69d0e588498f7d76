package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nivel36/janus/internal/config"
	"github.com/nivel36/janus/internal/domain/shift"
	appHTTP "github.com/nivel36/janus/internal/handler/http"
	"github.com/nivel36/janus/internal/pkg/clock"
	"github.com/nivel36/janus/internal/pkg/cron"
	"github.com/nivel36/janus/internal/pkg/database"
	"github.com/nivel36/janus/internal/pkg/jwt"
	"github.com/nivel36/janus/internal/repository/postgresql"
	workshiftService "github.com/nivel36/janus/internal/service/workshift"
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

	timeLogRepo := postgresql.NewTimeLogRepository(db)
	workShiftRepo := postgresql.NewWorkShiftRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	worksiteRepo := postgresql.NewWorksiteRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	adminPolicyRepo := postgresql.NewAdminPolicyRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	policy := shift.ShiftPolicy{
		SelectionMargin:    cfg.Shift.SelectionMargin,
		LongPauseThreshold: cfg.Shift.LongPauseThreshold,
	}
	if err := policy.Validate(); err != nil {
		fmt.Println("Invalid shift policy:", err)
		return
	}
	workShiftSvc := workshiftService.NewWorkShiftService(
		workShiftRepo,
		timeLogRepo,
		scheduleRepo,
		worksiteRepo,
		employeeRepo,
		adminPolicyRepo,
		policy,
		clock.System(),
	)

	scheduler := cron.NewScheduler()
	cron.NewWorkShiftJobs(workShiftSvc, cfg.Cron.PrecomputeInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	workShiftHandler := appHTTP.NewWorkShiftHandler(workShiftSvc)
	router := appHTTP.NewRouter(jwtService, workShiftHandler, cfg.App.Env)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		scheduler.Stop()
		os.Exit(0)
	}()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
