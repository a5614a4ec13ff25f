package scheduler

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/shaelw/store-scheduler-go/pkg/models"
	"github.com/shaelw/store-scheduler-go/pkg/timeutil"
)

// ShiftSink persists one assignment produced by a run
type ShiftSink interface {
	SaveShift(rec models.ShiftRecord) error
}

// DecisionSink persists one audit row per candidate considered for a slot
type DecisionSink interface {
	RecordDecision(d models.Decision) error
}

// Scheduler fills weekly store needs from employee availability.
// It reads an immutable snapshot and writes through the injected sinks;
// sink failures are collected on the result, never fatal to the run.
type Scheduler struct {
	Employees    []models.Employee
	Availability []models.AvailabilityWindow
	Needs        []models.StoreNeed

	Shifts    ShiftSink
	Decisions DecisionSink
}

// New creates a scheduler over one input snapshot. Either sink may be nil,
// in which case that class of writes is skipped.
func New(input models.ScheduleInput, shifts ShiftSink, decisions DecisionSink) *Scheduler {
	return &Scheduler{
		Employees:    input.Employees,
		Availability: input.Availability,
		Needs:        input.StoreNeeds,
		Shifts:       shifts,
		Decisions:    decisions,
	}
}

// candidate is an employee eligible for one need row, with the availability
// snapshot that made them eligible
type candidate struct {
	emp      models.Employee
	snapshot string
}

// Run allocates the full Monday-Sunday week. weekStart is the calendar date
// of the week's Monday; shift dates are weekStart plus the day offset.
// A malformed time string anywhere in the snapshot aborts the whole run.
func (s *Scheduler) Run(weekStart time.Time) (*models.Result, error) {
	result := &models.Result{Schedule: make(models.Schedule, len(models.Days))}

	// Candidate order is employee id ascending, regardless of input order
	emps := make([]models.Employee, len(s.Employees))
	copy(emps, s.Employees)
	sort.Slice(emps, func(i, j int) bool { return emps[i].ID < emps[j].ID })

	dlog := decisionLog{sink: s.Decisions, result: result}
	hoursAssigned := make(map[int]float64, len(emps))

	for dayIndex, day := range models.Days {
		result.Schedule[day] = map[string][]string{}
		date := weekStart.AddDate(0, 0, dayIndex).Format("2006-01-02")

		// Needs are processed in table order, not sorted by hour
		for _, need := range s.Needs {
			if need.DayOfWeek != day {
				continue
			}

			hour := need.Hour
			if _, ok := result.Schedule[day][hour]; !ok {
				result.Schedule[day][hour] = []string{}
			}
			shiftEnd, err := hourAfter(hour)
			if err != nil {
				return nil, err
			}

			candidates, err := s.candidatesFor(emps, day, hour)
			if err != nil {
				return nil, err
			}

			for i, cand := range candidates {
				scheduled := i < need.NeededEmployees
				if scheduled {
					result.Schedule[day][hour] = append(result.Schedule[day][hour], cand.emp.Name)
					hoursAssigned[cand.emp.ID]++
					s.saveShift(result, models.ShiftRecord{
						EmployeeID: cand.emp.ID,
						ShiftDate:  date,
						StartTime:  hour,
						EndTime:    shiftEnd,
					})
				}
				dlog.record(models.Decision{
					Date:                 date,
					ShiftStart:           hour,
					ShiftEnd:             shiftEnd,
					EmployeeID:           cand.emp.ID,
					EmployeeAvailability: cand.snapshot,
					EmployeeRole:         cand.emp.Role,
					TotalHoursAssigned:   hoursAssigned[cand.emp.ID],
					BusinessNeedRole:     need.Role,
					BusinessNeedCount:    need.NeededEmployees,
					WasScheduled:         scheduled,
				})
			}
		}
	}

	return result, nil
}

// candidatesFor returns, in directory order, every employee with at least one
// window on the given day covering the hour. Existence check only: the first
// matching window decides, multiple or overlapping windows are not resolved.
func (s *Scheduler) candidatesFor(emps []models.Employee, day, hour string) ([]candidate, error) {
	var out []candidate
	for _, emp := range emps {
		matched := false
		for _, w := range s.Availability {
			if w.EmployeeID != emp.ID || w.DayOfWeek != day {
				continue
			}
			ok, err := timeutil.Within(hour, w.StartTime, w.EndTime)
			if err != nil {
				return nil, err
			}
			if ok {
				matched = true
				break
			}
		}
		if matched {
			out = append(out, candidate{emp: emp, snapshot: s.daySnapshot(emp.ID, day)})
		}
	}
	return out, nil
}

// daySnapshot serializes an employee's windows for one day, e.g.
// "09:00-13:00;14:00-18:00"
func (s *Scheduler) daySnapshot(employeeID int, day string) string {
	var parts []string
	for _, w := range s.Availability {
		if w.EmployeeID == employeeID && w.DayOfWeek == day {
			parts = append(parts, w.StartTime+"-"+w.EndTime)
		}
	}
	return strings.Join(parts, ";")
}

func (s *Scheduler) saveShift(result *models.Result, rec models.ShiftRecord) {
	if s.Shifts == nil {
		return
	}
	if err := s.Shifts.SaveShift(rec); err != nil {
		log.Printf("save shift for employee %d on %s: %v", rec.EmployeeID, rec.ShiftDate, err)
		result.SinkErrors = append(result.SinkErrors, models.SinkError{
			Sink:   "shifts",
			Detail: err.Error(),
		})
	}
}

// decisionLog writes audit rows through the sink. A failed write is logged
// and collected on the result; it never interrupts the allocation loop.
type decisionLog struct {
	sink   DecisionSink
	result *models.Result
}

func (l *decisionLog) record(d models.Decision) {
	if l.sink == nil {
		return
	}
	if err := l.sink.RecordDecision(d); err != nil {
		log.Printf("record decision for employee %d on %s %s: %v", d.EmployeeID, d.Date, d.ShiftStart, err)
		l.result.SinkErrors = append(l.result.SinkErrors, models.SinkError{
			Sink:   "decisions",
			Detail: err.Error(),
		})
	}
}

// hourAfter returns the HH:MM one hour after t. Slots are hourly, so the
// persisted end time is always the following hour.
func hourAfter(t string) (string, error) {
	n, err := timeutil.ToNumber(t)
	if err != nil {
		return "", err
	}
	h := int(n)
	m := int((n-float64(h))*60 + 0.5)
	return fmt.Sprintf("%02d:%02d", h+1, m), nil
}
