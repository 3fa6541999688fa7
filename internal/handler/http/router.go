package http

import (
	"io"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-core-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterOptions carries the deployment settings the router needs.
type RouterOptions struct {
	Env            string
	Version        string
	AllowedOrigins []string
	LogLevel       slog.Level
	LogOutput      io.Writer // defaults to os.Stdout
}

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Holiday      HolidayHandler
	Notification NotificationHandler
	Analytics    AnalyticsHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, sessions auth.SessionChecker, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	output := opts.LogOutput
	if output == nil {
		output = os.Stdout
	}
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-core"),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth(), sessions))

			r.Post("/auth/logout", h.Auth.Logout)

			r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).
				Post("/admin/employee", h.Employee.Create)

			r.Get("/employees", h.Employee.List)
			r.Route("/employee", func(r chi.Router) {
				r.Get("/team", h.Employee.Team)
				r.Get("/tree-hierarchy", h.Employee.Hierarchy)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).
					Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAnalyticsView))
				r.Get("/overview", h.Analytics.Overview)
				r.Get("/employees/by-designation", h.Analytics.ByDesignation)
				r.Get("/employees/by-manager", h.Analytics.ByManager)
				r.Get("/salary/by-designation", h.Analytics.SalaryStats)
				r.Get("/salary/extremes-by-designation", h.Analytics.SalaryExtremes)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceToggle)).
					Post("/toggle", h.Attendance.Toggle)
				r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).
					Get("/today", h.Attendance.Today)

				r.Group(func(r chi.Router) {
					r.Use(middleware.SelfOrPermission("employeeId", user.PermissionAttendanceViewAll))
					r.Get("/status/{employeeId}", h.Attendance.Status)
					r.Get("/monthly/{employeeId}", h.Attendance.Monthly)
					r.Get("/monthly/{employeeId}/export", h.Attendance.ExportMonthly)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).
					Post("/apply", h.Leave.Apply)
				r.Get("/manager/team", h.Leave.TeamLeaves)
				r.With(middleware.RequirePermission(user.PermissionLeaveDecide)).
					Put("/action/{leaveId}", h.Leave.Decide)
				r.With(middleware.SelfOrPermission("id", user.PermissionLeaveViewAll)).
					Get("/history/{id}", h.Leave.History)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveViewAll))
					r.Get("/admin", h.Leave.AdminSearch)
					r.Get("/admin/summary", h.Leave.Summary)
				})
			})

			r.Route("/holiday", func(r chi.Router) {
				r.Get("/", h.Holiday.List)
				r.Get("/working-days", h.Holiday.WorkingDays)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionHolidayManage))
					r.Post("/", h.Holiday.Create)
					r.Put("/{id}", h.Holiday.Update)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Put("/read-all", h.Notification.MarkAllAsRead)
			})
		})
	})
	return r
}
