package analytics

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
	"github.com/cmlabs-hris/hrms-core-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) analytics.AnalyticsService {
	t.Helper()
	ctx := context.Background()
	employees := memory.NewEmployeeRepository()

	manager, err := employees.Create(ctx, employee.Employee{
		EmployeeCode: "M001", Username: "Morpheus", Email: "m@example.com",
		Designation: "Engineering Manager", Role: user.RoleManager, Salary: 9000,
	})
	require.NoError(t, err)

	for _, e := range []employee.Employee{
		{Username: "Neo", Email: "neo@example.com", Designation: "Engineer", Salary: 5000},
		{Username: "Trinity", Email: "trinity@example.com", Designation: "Engineer", Salary: 6500},
		{Username: "Tank", Email: "tank@example.com", Designation: "Operator", Salary: 3000},
	} {
		e.Role = user.RoleEmployee
		e.ReportingTo = &manager.ID
		_, err := employees.Create(ctx, e)
		require.NoError(t, err)
	}

	return NewAnalyticsService(memory.NewAnalyticsRepository(employees))
}

func TestByDesignation(t *testing.T) {
	ctx := context.Background()
	svc := seed(t)

	all, err := svc.ByDesignation(ctx, analytics.FilterRequest{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Engineer", all[0].Designation)
	assert.Equal(t, int64(2), all[0].Employees)

	missing, err := svc.ByDesignation(ctx, analytics.NewFilterRequest("Pilot"))
	require.NoError(t, err)
	assert.Equal(t, []analytics.DesignationCountResponse{{Designation: "Pilot", Employees: 0}}, missing)
}

func TestByManager(t *testing.T) {
	got, err := seed(t).ByManager(context.Background(), analytics.FilterRequest{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Morpheus", got[0].ManagerName)
	assert.Equal(t, int64(3), got[0].EmployeeCount)
}

func TestSalaryReports_EmployeesOnly(t *testing.T) {
	ctx := context.Background()
	svc := seed(t)

	stats, err := svc.SalaryStats(ctx, analytics.FilterRequest{})
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "Engineer", stats[0].Designation)
	assert.Equal(t, 11500.0, stats[0].TotalSalary)
	assert.Equal(t, 5750.0, stats[0].AverageSalary)

	extremes, err := svc.SalaryExtremes(ctx, analytics.NewFilterRequest("Engineer"))
	require.NoError(t, err)
	require.Len(t, extremes, 1)
	assert.Equal(t, "Trinity", extremes[0].HighestPaid.Username)
	assert.Equal(t, "Neo", extremes[0].LowestPaid.Username)
}

func TestOverview(t *testing.T) {
	got, err := seed(t).Overview(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.ByDesignation, 3)
	assert.Len(t, got.ByManager, 1)
	assert.Len(t, got.SalaryStats, 2)
	assert.Len(t, got.SalaryExtremes, 2)
}
