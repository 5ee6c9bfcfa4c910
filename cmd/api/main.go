package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chronos-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/chronos-hr/attendance-backend-go/internal/handler/http"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/database"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/zkteco"
	"github.com/chronos-hr/attendance-backend-go/internal/repository/postgresql"
	authService "github.com/chronos-hr/attendance-backend-go/internal/service/auth"
	deviceService "github.com/chronos-hr/attendance-backend-go/internal/service/device"
	employeeService "github.com/chronos-hr/attendance-backend-go/internal/service/employee"
	holidayService "github.com/chronos-hr/attendance-backend-go/internal/service/holiday"
	permissionService "github.com/chronos-hr/attendance-backend-go/internal/service/permission"
	punchService "github.com/chronos-hr/attendance-backend-go/internal/service/punch"
	reportService "github.com/chronos-hr/attendance-backend-go/internal/service/report"
	syncService "github.com/chronos-hr/attendance-backend-go/internal/service/sync"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	setupLogger(cfg.App.LogLevel)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Pool.Close()

	if err := database.RunMigrations(db); err != nil {
		slog.Error("Error applying migrations", "error", err)
		os.Exit(1)
	}

	deviceRepo := postgresql.NewDeviceRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	permissionRepo := postgresql.NewPermissionRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	gateway := zkteco.NewClient(cfg.Gateway)

	authSvc := authService.NewAuthService(cfg.Admin, jwtService)
	deviceSvc := deviceService.NewDeviceService(gateway, deviceRepo)
	punchSvc := punchService.NewPunchService(punchRepo)
	syncSvc := syncService.NewSyncService(txManager, gateway, punchRepo, deviceRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	permissionSvc := permissionService.NewPermissionService(txManager, permissionRepo, employeeRepo, holidayRepo)
	reportSvc := reportService.NewReportService(punchRepo, employeeRepo, deviceRepo, holidayRepo, permissionRepo)

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Device:     appHTTP.NewDeviceHandler(deviceSvc),
		Punch:      appHTTP.NewPunchHandler(punchSvc),
		Sync:       appHTTP.NewSyncHandler(syncSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Permission: appHTTP.NewPermissionHandler(permissionSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
