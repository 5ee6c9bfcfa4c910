package http

import (
	"log/slog"
	"os"

	"github.com/chronos-hr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/chronos-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Device     DeviceHandler
	Punch      PunchHandler
	Sync       SyncHandler
	Report     ReportHandler
	Employee   EmployeeHandler
	Holiday    HolidayHandler
	Permission PermissionHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/devices", func(r chi.Router) {
				r.Get("/", h.Device.List)
				r.Post("/", h.Device.Register)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Device.Get)
					r.Put("/", h.Device.Update)
					r.Delete("/", h.Device.Delete)
					r.Post("/refresh", h.Device.RefreshInfo)
					r.Get("/users", h.Device.ListUsers)
					r.Get("/raw-logs", h.Device.RawLogs)
					r.Get("/employees", h.Employee.ListByDevice)
					r.Post("/sync", h.Sync.SyncDevice)
					r.Get("/report", h.Report.DeviceReport)
					r.Get("/report/export", h.Report.ExportDeviceReportExcel)
				})
			})

			r.Route("/punches", func(r chi.Router) {
				r.Get("/", h.Punch.List)
				r.Get("/stats", h.Punch.Stats)
				r.Get("/export", h.Punch.ExportCSV)
			})

			r.Post("/sync", h.Sync.SyncAll)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/daily", h.Report.DailySummary)
				r.Get("/daily/export", h.Report.ExportDailySummaryCSV)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Post("/import", h.Employee.ImportCSV)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.Get)
					r.Put("/", h.Employee.Update)
					r.Delete("/", h.Employee.Delete)
					r.Get("/monthly", h.Report.MonthlyAttendance)
					r.Get("/stats", h.Report.AttendanceStats)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)
				r.Post("/", h.Holiday.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Holiday.Get)
					r.Put("/", h.Holiday.Update)
					r.Delete("/", h.Holiday.Delete)
				})
			})

			r.Route("/permissions", func(r chi.Router) {
				r.Get("/", h.Permission.List)
				r.Post("/", h.Permission.Create)
				r.Post("/bulk", h.Permission.BulkCreate)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Permission.Get)
					r.Put("/", h.Permission.Update)
					r.Delete("/", h.Permission.Delete)
				})
			})
		})
	})
	return r
}
