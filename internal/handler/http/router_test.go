package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/auth"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/notification"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hrms-core-go/internal/repository/memory"
	analyticsservice "github.com/cmlabs-hris/hrms-core-go/internal/service/analytics"
	attendanceservice "github.com/cmlabs-hris/hrms-core-go/internal/service/attendance"
	authservice "github.com/cmlabs-hris/hrms-core-go/internal/service/auth"
	calendarservice "github.com/cmlabs-hris/hrms-core-go/internal/service/calendar"
	dailystatusservice "github.com/cmlabs-hris/hrms-core-go/internal/service/dailystatus"
	employeeservice "github.com/cmlabs-hris/hrms-core-go/internal/service/employee"
	leaveservice "github.com/cmlabs-hris/hrms-core-go/internal/service/leave"
	notificationservice "github.com/cmlabs-hris/hrms-core-go/internal/service/notification"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin-password"
	testPassword  = "password123"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta *struct {
		Page       int   `json:"page"`
		TotalItems int64 `json:"total_items"`
	} `json:"meta"`
}

type testServer struct {
	router    *chi.Mux
	employees *memory.EmployeeRepository
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	ctx := context.Background()

	// Monday
	clk := &clock.Fixed{T: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)}
	jwtService := jwt.NewJWTService("handler-test-secret", time.Hour)

	employees := memory.NewEmployeeRepository()
	leaves := memory.NewLeaveRepository()

	calendarService := calendarservice.NewCalendarService(memory.NewHolidayRepository())
	notificationService := notificationservice.NewNotificationService(memory.NewNotificationRepository(), clk)
	attendanceService := attendanceservice.NewAttendanceService(memory.NewAttendanceRepository(), employees, calendarService, clk)
	dailyStatusService := dailystatusservice.NewDailyStatusService(leaves, calendarService, attendanceService)
	employeeService := employeeservice.NewEmployeeService(employees, dailyStatusService, clk)
	leaveService := leaveservice.NewLeaveService(leaves, employees, notificationService, clk)

	created, err := employeeService.EnsureBootstrapAdmin(ctx, adminEmail, adminPassword)
	require.NoError(t, err)
	require.True(t, created)

	router := NewRouter(RouterOptions{Env: "test", LogLevel: slog.LevelError, LogOutput: io.Discard}, jwtService, employees, Handlers{
		Auth:         NewAuthHandler(authservice.NewAuthService(employees, jwtService)),
		Employee:     NewEmployeeHandler(employeeService),
		Attendance:   NewAttendanceHandler(attendanceService, dailyStatusService, employeeService, clk),
		Leave:        NewLeaveHandler(leaveService),
		Holiday:      NewHolidayHandler(calendarService),
		Notification: NewNotificationHandler(notificationService),
		Analytics:    NewAnalyticsHandler(analyticsservice.NewAnalyticsService(memory.NewAnalyticsRepository(employees))),
	})

	return testServer{router: router, employees: employees}
}

func (s testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func (s testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var token auth.TokenResponse
	decode(t, rec, &token)
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}

func (s testServer) createEmployee(t *testing.T, adminToken, email, role, reportingTo string) employee.EmployeeResponse {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/admin/employee", adminToken, employee.CreateEmployeeRequest{
		Username:    "User " + email,
		Email:       email,
		Password:    testPassword,
		DOB:         "1992-03-04",
		Gender:      "Male",
		Designation: "Engineer",
		Salary:      5000,
		Role:        role,
		ReportingTo: &reportingTo,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created employee.EmployeeResponse
	decode(t, rec, &created)
	return created
}

// org logs the admin in and creates a manager with one direct report.
func (s testServer) org(t *testing.T) (adminToken string, manager, member employee.EmployeeResponse) {
	t.Helper()
	adminToken = s.login(t, adminEmail, adminPassword)
	admin, err := s.employees.GetByEmail(context.Background(), adminEmail)
	require.NoError(t, err)

	manager = s.createEmployee(t, adminToken, "manager@example.com", "manager", admin.ID)
	member = s.createEmployee(t, adminToken, "member@example.com", "employee", manager.ID)
	return adminToken, manager, member
}

func TestRouter_Heartbeat(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	t.Run("wrong password", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{Email: adminEmail, Password: "nope-nope"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decode(t, rec, nil)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		env := decode(t, rec, nil)
		assert.Contains(t, env.Error.Details, "email")
		assert.Contains(t, env.Error.Details, "password")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		token := s.login(t, adminEmail, adminPassword)
		rec := s.do(t, http.MethodGet, "/api/v1/employees", token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/employees", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/employees", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_EndsSession(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, adminEmail, adminPassword)

	rec := s.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/v1/employees", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_RotatesSession(t *testing.T) {
	s := newTestServer(t)
	first := s.login(t, adminEmail, adminPassword)
	second := s.login(t, adminEmail, adminPassword)

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/v1/employees", first, nil).Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/employees", second, nil).Code)
}

func TestEmployeeRoutes(t *testing.T) {
	s := newTestServer(t)
	adminToken, manager, member := s.org(t)
	memberToken := s.login(t, "member@example.com", testPassword)

	t.Run("create requires employee.manage", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/admin/employee", memberToken, employee.CreateEmployeeRequest{})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/admin/employee", adminToken, employee.CreateEmployeeRequest{
			Username: "Again", Email: "MEMBER@example.com", Password: testPassword, DOB: "1990-01-01",
			Gender: "Female", Designation: "Engineer", Role: "employee", ReportingTo: &manager.ID,
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("salary hidden from other employees", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/employee/"+manager.ID, memberToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]interface{}
		decode(t, rec, &got)
		assert.NotContains(t, got, "salary")
		assert.Contains(t, got, "daily_status")
	})

	t.Run("self update outside allow-list", func(t *testing.T) {
		rec := s.do(t, http.MethodPut, "/api/v1/employee/"+member.ID, memberToken, map[string]interface{}{"salary": 99999})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("self update within allow-list", func(t *testing.T) {
		rec := s.do(t, http.MethodPut, "/api/v1/employee/"+member.ID, memberToken, map[string]interface{}{"username": "Renamed"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var got employee.EmployeeResponse
		decode(t, rec, &got)
		assert.Equal(t, "Renamed", got.Username)
	})

	t.Run("updating someone else is denied", func(t *testing.T) {
		rec := s.do(t, http.MethodPut, "/api/v1/employee/"+manager.ID, memberToken, map[string]interface{}{"username": "Nope"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("list is paged", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/employees?page=1&size=2", memberToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got []employee.EmployeeResponse
		env := decode(t, rec, &got)
		assert.Len(t, got, 2)
		require.NotNil(t, env.Meta)
		assert.EqualValues(t, 3, env.Meta.TotalItems)
	})

	t.Run("delete requires employee.manage", func(t *testing.T) {
		rec := s.do(t, http.MethodDelete, "/api/v1/employee/"+manager.ID, memberToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown employee", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/employee/missing", adminToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAttendanceRoutes(t *testing.T) {
	s := newTestServer(t)
	adminToken, manager, member := s.org(t)
	memberToken := s.login(t, "member@example.com", testPassword)

	var toggled attendance.ToggleResponse
	rec := s.do(t, http.MethodPost, "/api/v1/attendance/toggle", memberToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &toggled)
	assert.Equal(t, attendance.ActionCheckedIn, toggled.Action)

	rec = s.do(t, http.MethodPost, "/api/v1/attendance/toggle", memberToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &toggled)
	assert.Equal(t, attendance.ActionCheckedOut, toggled.Action)

	rec = s.do(t, http.MethodPost, "/api/v1/attendance/toggle", memberToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	decode(t, rec, &toggled)
	assert.Equal(t, attendance.ActionAlreadyClosed, toggled.Action)

	t.Run("status is self or attendance.view_all", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/attendance/status/"+member.ID, memberToken, nil).Code)
		assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/v1/attendance/status/"+manager.ID, memberToken, nil).Code)
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/attendance/status/"+member.ID, adminToken, nil).Code)
	})

	t.Run("status of an unknown employee is not found", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/attendance/status/missing", adminToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	})

	t.Run("today requires attendance.view_all", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/v1/attendance/today", memberToken, nil).Code)
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/attendance/today", adminToken, nil).Code)
	})

	t.Run("monthly", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/attendance/monthly/"+member.ID+"?month=2024-06", memberToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = s.do(t, http.MethodGet, "/api/v1/attendance/monthly/"+member.ID+"?month=june", memberToken, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("export is a pdf", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/attendance/monthly/"+member.ID+"/export?month=2024-06", memberToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
	})
}

func TestLeaveRoutes(t *testing.T) {
	s := newTestServer(t)
	adminToken, _, member := s.org(t)
	memberToken := s.login(t, "member@example.com", testPassword)
	managerToken := s.login(t, "manager@example.com", testPassword)

	apply := map[string]string{"leave_type": "sick leave", "from_date": "2024-06-12", "to_date": "2024-06-13"}

	rec := s.do(t, http.MethodPost, "/api/v1/leave/apply", memberToken, apply)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var applied leave.LeaveResponse
	decode(t, rec, &applied)
	assert.Equal(t, leave.StatusPending, applied.Status)
	assert.Equal(t, 2, applied.TotalDays)

	rec = s.do(t, http.MethodPost, "/api/v1/leave/apply", memberToken, apply)
	assert.Equal(t, http.StatusConflict, rec.Code)

	t.Run("manager sees team leaves", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/leave/manager/team", managerToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var got []leave.LeaveResponse
		decode(t, rec, &got)
		assert.Len(t, got, 1)
	})

	t.Run("only the reporting manager decides", func(t *testing.T) {
		rec := s.do(t, http.MethodPut, "/api/v1/leave/action/"+applied.ID, adminToken, map[string]string{"status": "approved"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("decision is validated", func(t *testing.T) {
		rec := s.do(t, http.MethodPut, "/api/v1/leave/action/"+applied.ID, managerToken, map[string]string{"status": "maybe"})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	rec = s.do(t, http.MethodPut, "/api/v1/leave/action/"+applied.ID, managerToken, map[string]string{"status": "approved"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var decided leave.DecideLeaveResponse
	decode(t, rec, &decided)
	assert.Equal(t, leave.StatusApproved, decided.Leave.Status)
	assert.Empty(t, decided.Warnings)

	rec = s.do(t, http.MethodPut, "/api/v1/leave/action/"+applied.ID, managerToken, map[string]string{"status": "rejected"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	t.Run("history is self or leave.view_all", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/leave/history/"+member.ID, memberToken, nil).Code)
		assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/v1/leave/history/"+member.ID, managerToken, nil).Code)
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/leave/history/"+member.ID, adminToken, nil).Code)
	})

	t.Run("admin search and summary", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/v1/leave/admin", memberToken, nil).Code)

		rec := s.do(t, http.MethodGet, "/api/v1/leave/admin?status=approved", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got []leave.LeaveResponse
		decode(t, rec, &got)
		assert.Len(t, got, 1)

		rec = s.do(t, http.MethodGet, "/api/v1/leave/admin/summary", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var summary leave.SummaryResponse
		decode(t, rec, &summary)
		assert.Equal(t, 1, summary.ByStatus[leave.StatusApproved])
	})

	t.Run("notifications follow the decision", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/notifications", memberToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var list notification.NotificationListResponse
		decode(t, rec, &list)
		require.Len(t, list.Notifications, 1)
		assert.Equal(t, notification.TypeManagerAction, list.Notifications[0].Type)
		assert.EqualValues(t, 1, list.UnreadCount)

		rec = s.do(t, http.MethodPut, "/api/v1/notifications/read-all", memberToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var marked notification.MarkAllReadResponse
		decode(t, rec, &marked)
		assert.EqualValues(t, 1, marked.Updated)

		rec = s.do(t, http.MethodPut, "/api/v1/notifications/read-all", memberToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decode(t, rec, &marked)
		assert.EqualValues(t, 0, marked.Updated)
	})
}

func TestHolidayRoutes(t *testing.T) {
	s := newTestServer(t)
	adminToken, _, _ := s.org(t)
	memberToken := s.login(t, "member@example.com", testPassword)

	holiday := map[string]string{"name": "Founders Day", "from_date": "2024-06-10", "to_date": "2024-06-10", "classification": "holiday"}

	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodPost, "/api/v1/holiday", memberToken, holiday).Code)

	rec := s.do(t, http.MethodPost, "/api/v1/holiday", adminToken, holiday)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created map[string]interface{}
	decode(t, rec, &created)

	assert.Equal(t, http.StatusConflict, s.do(t, http.MethodPost, "/api/v1/holiday", adminToken, holiday).Code)

	t.Run("toggle is refused on a holiday", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/v1/attendance/toggle", memberToken, nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("list by year", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/holiday?year=2024", memberToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var got []map[string]interface{}
		decode(t, rec, &got)
		assert.Len(t, got, 1)

		assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/v1/holiday?year=abc", memberToken, nil).Code)
	})

	t.Run("working days skip the holiday and the weekend", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/holiday/working-days?from=2024-06-10&to=2024-06-16", memberToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var got map[string]interface{}
		decode(t, rec, &got)
		assert.EqualValues(t, 4, got["working_days"])

		rec = s.do(t, http.MethodGet, "/api/v1/holiday/working-days?from=2024-06-16&to=2024-06-10", memberToken, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("working days range is capped", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/v1/holiday/working-days?from=1700-01-01&to=2100-12-31", memberToken, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

		rec = s.do(t, http.MethodGet, "/api/v1/holiday/working-days?from=2024-01-01&to=2024-12-31", memberToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("update rejects a blank name", func(t *testing.T) {
		id, _ := created["id"].(string)
		require.NotEmpty(t, id)
		rec := s.do(t, http.MethodPut, "/api/v1/holiday/"+id, adminToken, map[string]string{"name": "   "})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	})
}

func TestAnalyticsRoutes(t *testing.T) {
	s := newTestServer(t)
	adminToken, _, _ := s.org(t)
	memberToken := s.login(t, "member@example.com", testPassword)

	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/v1/analytics/employees/by-designation", memberToken, nil).Code)

	rec := s.do(t, http.MethodGet, "/api/v1/analytics/employees/by-designation?designation=Engineer", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got []map[string]interface{}
	decode(t, rec, &got)
	require.Len(t, got, 1)
	assert.EqualValues(t, 2, got[0]["employees"])

	for _, path := range []string{
		"/api/v1/analytics/employees/by-manager",
		"/api/v1/analytics/salary/by-designation",
		"/api/v1/analytics/salary/extremes-by-designation",
		"/api/v1/analytics/overview",
	} {
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, path, adminToken, nil).Code, path)
	}
}
