package dailystatus

import (
	"time"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/leave"
	"github.com/cmlabs-hris/hrms-core-go/internal/pkg/clock"
)

type Status string

const (
	StatusHoliday      Status = "holiday"
	StatusOnLeave      Status = "on-leave"
	StatusCheckIn      Status = Status(attendance.StatusCheckIn)
	StatusCheckOut     Status = Status(attendance.StatusCheckOut)
	StatusYetToCheckIn Status = Status(attendance.StatusYetToCheckIn)
)

// DailyStatus is what an employee is doing on one calendar day.
type DailyStatus struct {
	Status     Status
	Holiday    *calendar.Holiday
	Leave      *leave.Leave
	Attendance attendance.DayRecord
}

// Resolve applies the precedence holiday > on-leave > attendance. A rejected
// leave is ignored. Any argument may be nil.
func Resolve(holiday *calendar.Holiday, lv *leave.Leave, record *attendance.Attendance) DailyStatus {
	ds := DailyStatus{Attendance: attendance.RecordFor(record)}

	switch {
	case holiday != nil:
		ds.Status = StatusHoliday
		ds.Holiday = holiday
	case lv != nil && lv.Blocks():
		ds.Status = StatusOnLeave
		ds.Leave = lv
	default:
		ds.Status = Status(ds.Attendance.Status)
	}

	return ds
}

// Merge resolves a batch of employees from the results of one holiday lookup,
// one leave query and one attendance query.
func Merge(employeeIDs []string, holiday *calendar.Holiday, leaves []leave.Leave, records []attendance.Attendance) map[string]DailyStatus {
	leaveByEmployee := make(map[string]*leave.Leave, len(leaves))
	for i := range leaves {
		if !leaves[i].Blocks() {
			continue
		}
		leaveByEmployee[leaves[i].EmployeeID] = &leaves[i]
	}

	recordByEmployee := make(map[string]*attendance.Attendance, len(records))
	for i := range records {
		recordByEmployee[records[i].EmployeeID] = &records[i]
	}

	out := make(map[string]DailyStatus, len(employeeIDs))
	for _, id := range employeeIDs {
		out[id] = Resolve(holiday, leaveByEmployee[id], recordByEmployee[id])
	}
	return out
}

// Response is the JSON view of a DailyStatus.
type Response struct {
	EmployeeID string                `json:"employee_id,omitempty"`
	Date       string                `json:"date"`
	Status     Status                `json:"status"`
	Holiday    *HolidayRef           `json:"holiday,omitempty"`
	Leave      *LeaveRef             `json:"leave,omitempty"`
	Attendance *attendance.DayRecord `json:"attendance,omitempty"`
}

type HolidayRef struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Classification calendar.Classification `json:"classification"`
}

type LeaveRef struct {
	ID        string          `json:"id"`
	LeaveType leave.LeaveType `json:"leave_type"`
	Status    leave.Status    `json:"status"`
	FromDate  string          `json:"from_date"`
	ToDate    string          `json:"to_date"`
}

func NewResponse(employeeID string, day time.Time, ds DailyStatus) Response {
	resp := Response{
		EmployeeID: employeeID,
		Date:       day.Format(clock.DateLayout),
		Status:     ds.Status,
	}
	if ds.Holiday != nil {
		resp.Holiday = &HolidayRef{ID: ds.Holiday.ID, Name: ds.Holiday.Name, Classification: ds.Holiday.Classification}
	}
	if ds.Leave != nil {
		resp.Leave = &LeaveRef{
			ID:        ds.Leave.ID,
			LeaveType: ds.Leave.LeaveType,
			Status:    ds.Leave.Status,
			FromDate:  ds.Leave.FromDate.Format(clock.DateLayout),
			ToDate:    ds.Leave.ToDate.Format(clock.DateLayout),
		}
	}
	if ds.Attendance.CheckIn != nil {
		rec := ds.Attendance
		resp.Attendance = &rec
	}
	return resp
}
