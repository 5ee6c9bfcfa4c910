package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/chronos-hr/attendance-backend-go/internal/config"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/punch"
	"github.com/chronos-hr/attendance-backend-go/internal/domain/report"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/database"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/zkteco"
	"github.com/chronos-hr/attendance-backend-go/internal/repository/postgresql"
	reportService "github.com/chronos-hr/attendance-backend-go/internal/service/report"
	syncService "github.com/chronos-hr/attendance-backend-go/internal/service/sync"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "attendctl",
	Short: "Operator CLI for the attendance backend",
	Long: `attendctl runs attendance operations against the same database and
device gateway the API server uses: pulling punches from terminals and
generating reconciliation reports.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(reportCmd)
}

// services bundles what the subcommands need, with a cleanup hook for the
// connection pool.
type services struct {
	sync   punch.SyncService
	report report.ReportService
	close  func()
}

func buildServices() (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	deviceRepo := postgresql.NewDeviceRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	permissionRepo := postgresql.NewPermissionRepository(db)
	txManager := postgresql.NewTxManager(db)
	gateway := zkteco.NewClient(cfg.Gateway)

	return &services{
		sync:   syncService.NewSyncService(txManager, gateway, punchRepo, deviceRepo),
		report: reportService.NewReportService(punchRepo, employeeRepo, deviceRepo, holidayRepo, permissionRepo),
		close:  db.Pool.Close,
	}, nil
}
