package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/config"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/notification"
	appHTTP "github.com/cmlabs-hris/hrms-core-go/internal/handler/http"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hrms-core-go/internal/repository/mongodb"
	"github.com/cmlabs-hris/hrms-core-go/internal/repository/postgresql"
	analyticsService "github.com/cmlabs-hris/hrms-core-go/internal/service/analytics"
	attendanceService "github.com/cmlabs-hris/hrms-core-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hrms-core-go/internal/service/auth"
	calendarService "github.com/cmlabs-hris/hrms-core-go/internal/service/calendar"
	dailyStatusService "github.com/cmlabs-hris/hrms-core-go/internal/service/dailystatus"
	employeeService "github.com/cmlabs-hris/hrms-core-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hrms-core-go/internal/service/leave"
	notificationService "github.com/cmlabs-hris/hrms-core-go/internal/service/notification"
)

const version = "v1.0.0"

// repositories is one storage backend's set of repositories.
type repositories struct {
	employee     employee.EmployeeRepository
	holiday      calendar.HolidayRepository
	attendance   attendance.AttendanceRepository
	leave        leave.LeaveRepository
	notification notification.Repository
	analytics    analytics.AnalyticsRepository
	close        func(ctx context.Context) error
}

func openMongo(ctx context.Context, cfg *config.Config) (repositories, error) {
	db, err := database.NewMongoDB(cfg.Database.MongoURI, cfg.Database.MongoDatabase)
	if err != nil {
		return repositories{}, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := mongodb.EnsureIndexes(ctx, db.Database); err != nil {
		_ = db.Close(ctx)
		return repositories{}, fmt.Errorf("ensure mongodb indexes: %w", err)
	}

	return repositories{
		employee:     mongodb.NewEmployeeRepository(db.Database),
		holiday:      mongodb.NewHolidayRepository(db.Database),
		attendance:   mongodb.NewAttendanceRepository(db.Database),
		leave:        mongodb.NewLeaveRepository(db.Database),
		notification: mongodb.NewNotificationRepository(db.Database),
		analytics:    mongodb.NewAnalyticsRepository(db.Database),
		close:        db.Close,
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (repositories, error) {
	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return repositories{}, fmt.Errorf("connect postgres: %w", err)
	}
	if err := postgresql.Migrate(ctx, db); err != nil {
		db.Close()
		return repositories{}, fmt.Errorf("migrate postgres: %w", err)
	}

	return repositories{
		employee:     postgresql.NewEmployeeRepository(db),
		holiday:      postgresql.NewHolidayRepository(db),
		attendance:   postgresql.NewAttendanceRepository(db),
		leave:        postgresql.NewLeaveRepository(db),
		notification: postgresql.NewNotificationRepository(db),
		analytics:    postgresql.NewAnalyticsRepository(db),
		close: func(context.Context) error {
			db.Close()
			return nil
		},
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).With(
		slog.String("app", "hrms-core"),
		slog.String("env", cfg.App.Env),
	))

	loc, _ := cfg.Location()
	clk := clock.New(loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repos repositories
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		repos, err = openPostgres(ctx, cfg)
	default:
		repos, err = openMongo(ctx, cfg)
	}
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}
	slog.Info("storage ready", "driver", cfg.Database.Driver)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	calendarSvc := calendarService.NewCalendarService(repos.holiday)
	notificationSvc := notificationService.NewNotificationService(repos.notification, clk)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.employee, calendarSvc, clk)
	dailyStatusSvc := dailyStatusService.NewDailyStatusService(repos.leave, calendarSvc, attendanceSvc)
	employeeSvc := employeeService.NewEmployeeService(repos.employee, dailyStatusSvc, clk)
	leaveSvc := leaveService.NewLeaveService(repos.leave, repos.employee, notificationSvc, clk)
	analyticsSvc := analyticsService.NewAnalyticsService(repos.analytics)
	authSvc := serviceAuth.NewAuthService(repos.employee, JWTService)

	created, err := employeeSvc.EnsureBootstrapAdmin(ctx, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword)
	if err != nil {
		log.Fatal("Failed to bootstrap admin:", err)
	}
	if created {
		slog.Info("bootstrap admin created", "email", cfg.Bootstrap.AdminEmail)
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Env:            cfg.App.Env,
			Version:        version,
			AllowedOrigins: cfg.App.AllowedOrigins,
			LogLevel:       level,
		},
		JWTService,
		repos.employee,
		appHTTP.Handlers{
			Auth:         appHTTP.NewAuthHandler(authSvc),
			Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
			Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc, dailyStatusSvc, employeeSvc, clk),
			Leave:        appHTTP.NewLeaveHandler(leaveSvc),
			Holiday:      appHTTP.NewHolidayHandler(calendarSvc),
			Notification: appHTTP.NewNotificationHandler(notificationSvc),
			Analytics:    appHTTP.NewAnalyticsHandler(analyticsSvc),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	if err := repos.close(shutdownCtx); err != nil {
		slog.Error("failed to close storage", "error", err)
	}
}
