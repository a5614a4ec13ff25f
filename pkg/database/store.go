package database

import (
	"gorm.io/gorm"

	"github.com/shaelw/store-scheduler-go/pkg/models"
)

// Store adapts the database to the scheduler: it loads one immutable input
// snapshot and implements the engine's shift and decision sinks.
type Store struct {
	DB *gorm.DB
}

// LoadSnapshot reads employees, availability and store needs in one pass.
// The scheduler holds the returned snapshot for the whole run; nothing is
// re-read mid-run.
func (s *Store) LoadSnapshot() (models.ScheduleInput, error) {
	var input models.ScheduleInput

	var emps []Employee
	if err := s.DB.Order("id").Find(&emps).Error; err != nil {
		return input, err
	}
	for _, e := range emps {
		input.Employees = append(input.Employees, models.Employee{
			ID:   int(e.ID),
			Name: e.Name,
			Role: e.Role,
		})
	}

	var avail []Availability
	if err := s.DB.Order("id").Find(&avail).Error; err != nil {
		return input, err
	}
	for _, a := range avail {
		input.Availability = append(input.Availability, models.AvailabilityWindow{
			EmployeeID: int(a.EmployeeID),
			DayOfWeek:  a.DayOfWeek,
			StartTime:  a.StartTime,
			EndTime:    a.EndTime,
		})
	}

	// Table order is the scheduler's processing order
	var needs []StoreNeed
	if err := s.DB.Order("id").Find(&needs).Error; err != nil {
		return input, err
	}
	for _, n := range needs {
		input.StoreNeeds = append(input.StoreNeeds, models.StoreNeed{
			ID:              int(n.ID),
			DayOfWeek:       n.DayOfWeek,
			Hour:            n.Hour,
			NeededEmployees: n.NeededEmployees,
			Role:            n.Role,
		})
	}

	return input, nil
}

// SaveShift implements scheduler.ShiftSink
func (s *Store) SaveShift(rec models.ShiftRecord) error {
	return s.DB.Create(&ScheduleShift{
		EmployeeID: uint(rec.EmployeeID),
		ShiftDate:  rec.ShiftDate,
		StartTime:  rec.StartTime,
		EndTime:    rec.EndTime,
	}).Error
}

// RecordDecision implements scheduler.DecisionSink
func (s *Store) RecordDecision(d models.Decision) error {
	return s.DB.Create(&HistoricalSchedule{
		Date:                 d.Date,
		ShiftStart:           d.ShiftStart,
		ShiftEnd:             d.ShiftEnd,
		EmployeeID:           uint(d.EmployeeID),
		EmployeeAvailability: d.EmployeeAvailability,
		EmployeeRole:         d.EmployeeRole,
		TotalHoursAssigned:   d.TotalHoursAssigned,
		BusinessNeedRole:     d.BusinessNeedRole,
		BusinessNeedCount:    d.BusinessNeedCount,
		WasScheduled:         d.WasScheduled,
	}).Error
}
