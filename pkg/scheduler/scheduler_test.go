package scheduler

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shaelw/store-scheduler-go/pkg/models"
)

// memSink implements both sinks in memory and can be made to fail
type memSink struct {
	shifts        []models.ShiftRecord
	decisions     []models.Decision
	failShifts    bool
	failDecisions bool
}

func (m *memSink) SaveShift(rec models.ShiftRecord) error {
	if m.failShifts {
		return errors.New("shift insert failed")
	}
	m.shifts = append(m.shifts, rec)
	return nil
}

func (m *memSink) RecordDecision(d models.Decision) error {
	if m.failDecisions {
		return errors.New("decision insert failed")
	}
	m.decisions = append(m.decisions, d)
	return nil
}

var weekStart = time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)

func exampleInput() models.ScheduleInput {
	return models.ScheduleInput{
		Employees: []models.Employee{
			{ID: 1, Name: "Alice", Role: "Cashier"},
			{ID: 2, Name: "Bob", Role: "Stocker"},
			{ID: 3, Name: "Charlie", Role: "Cashier"},
		},
		Availability: []models.AvailabilityWindow{
			{EmployeeID: 1, DayOfWeek: "Monday", StartTime: "09:00", EndTime: "13:00"},
			{EmployeeID: 2, DayOfWeek: "Monday", StartTime: "10:00", EndTime: "15:00"},
			{EmployeeID: 3, DayOfWeek: "Monday", StartTime: "08:00", EndTime: "11:00"},
		},
		StoreNeeds: []models.StoreNeed{
			{ID: 1, DayOfWeek: "Monday", Hour: "09:00", NeededEmployees: 1, Role: "Cashier"},
		},
	}
}

func TestRun_FirstFit(t *testing.T) {
	sink := &memSink{}
	s := New(exampleInput(), sink, sink)

	result, err := s.Run(weekStart)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// Bob's window starts at 10:00, so candidates at 09:00 are Alice and
	// Charlie; directory order picks Alice
	got := result.Schedule["Monday"]["09:00"]
	if !reflect.DeepEqual(got, []string{"Alice"}) {
		t.Errorf("Expected Monday 09:00 = [Alice], got %v", got)
	}

	if len(sink.shifts) != 1 {
		t.Fatalf("Expected 1 persisted shift, got %d", len(sink.shifts))
	}
	shift := sink.shifts[0]
	if shift.EmployeeID != 1 || shift.ShiftDate != "2026-04-06" || shift.StartTime != "09:00" || shift.EndTime != "10:00" {
		t.Errorf("Unexpected shift record: %+v", shift)
	}

	// One decision per candidate considered: Alice scheduled, Charlie passed over
	if len(sink.decisions) != 2 {
		t.Fatalf("Expected 2 decisions, got %d", len(sink.decisions))
	}
	if !sink.decisions[0].WasScheduled || sink.decisions[0].EmployeeID != 1 {
		t.Errorf("Expected first decision to schedule Alice, got %+v", sink.decisions[0])
	}
	if sink.decisions[1].WasScheduled || sink.decisions[1].EmployeeID != 3 {
		t.Errorf("Expected second decision to pass over Charlie, got %+v", sink.decisions[1])
	}
	if sink.decisions[1].EmployeeAvailability != "08:00-11:00" {
		t.Errorf("Expected Charlie's availability snapshot 08:00-11:00, got %q", sink.decisions[1].EmployeeAvailability)
	}
}

func TestRun_FillsMinOfNeedAndCandidates(t *testing.T) {
	input := exampleInput()
	input.StoreNeeds = []models.StoreNeed{
		{ID: 1, DayOfWeek: "Monday", Hour: "10:00", NeededEmployees: 5},
	}

	sink := &memSink{}
	result, err := New(input, sink, sink).Run(weekStart)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// All three are available at 10:00 but need is 5: fill min(5, 3) = 3
	got := result.Schedule["Monday"]["10:00"]
	if !reflect.DeepEqual(got, []string{"Alice", "Bob", "Charlie"}) {
		t.Errorf("Expected all three scheduled at 10:00, got %v", got)
	}

	scheduled := 0
	for _, d := range sink.decisions {
		if d.WasScheduled {
			scheduled++
		}
	}
	if scheduled != 3 || len(sink.decisions) != 3 {
		t.Errorf("Expected 3 scheduled decisions out of 3, got %d of %d", scheduled, len(sink.decisions))
	}
}

func TestRun_ZeroNeed(t *testing.T) {
	input := exampleInput()
	input.StoreNeeds = []models.StoreNeed{
		{ID: 1, DayOfWeek: "Monday", Hour: "09:00", NeededEmployees: 0},
	}

	sink := &memSink{}
	result, err := New(input, sink, sink).Run(weekStart)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	got, ok := result.Schedule["Monday"]["09:00"]
	if !ok || len(got) != 0 {
		t.Errorf("Expected empty slot entry for Monday 09:00, got %v (present=%v)", got, ok)
	}

	// Both candidates still get audited, neither scheduled
	if len(sink.decisions) != 2 {
		t.Fatalf("Expected 2 decisions, got %d", len(sink.decisions))
	}
	for _, d := range sink.decisions {
		if d.WasScheduled {
			t.Errorf("Expected no scheduled decisions for a zero need, got %+v", d)
		}
	}
	if len(sink.shifts) != 0 {
		t.Errorf("Expected no persisted shifts, got %d", len(sink.shifts))
	}
}

func TestRun_EmptyNeeds(t *testing.T) {
	input := exampleInput()
	input.StoreNeeds = nil

	result, err := New(input, nil, nil).Run(weekStart)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if len(result.Schedule) != len(models.Days) {
		t.Fatalf("Expected %d days in schedule, got %d", len(models.Days), len(result.Schedule))
	}
	for _, day := range models.Days {
		if hours, ok := result.Schedule[day]; !ok || len(hours) != 0 {
			t.Errorf("Expected empty day %s, got %v", day, hours)
		}
	}
}

func TestRun_DuplicateNeedRows(t *testing.T) {
	input := exampleInput()
	// Two independent rows for the same slot double the requirement
	input.StoreNeeds = []models.StoreNeed{
		{ID: 1, DayOfWeek: "Monday", Hour: "10:00", NeededEmployees: 1},
		{ID: 2, DayOfWeek: "Monday", Hour: "10:00", NeededEmployees: 1},
	}

	sink := &memSink{}
	result, err := New(input, sink, sink).Run(weekStart)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	got := result.Schedule["Monday"]["10:00"]
	if !reflect.DeepEqual(got, []string{"Alice", "Alice"}) {
		t.Errorf("Expected Alice selected by each row independently, got %v", got)
	}
}

func TestRun_DeterministicOrder(t *testing.T) {
	input := exampleInput()
	first, err := New(input, nil, nil).Run(weekStart)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// Reverse directory order; candidate order is by id, so the result
	// must not change
	shuffled := exampleInput()
	shuffled.Employees = []models.Employee{
		shuffled.Employees[2], shuffled.Employees[0], shuffled.Employees[1],
	}
	second, err := New(shuffled, nil, nil).Run(weekStart)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if !reflect.DeepEqual(first.Schedule, second.Schedule) {
		t.Errorf("Expected identical schedules regardless of input order:\n%v\n%v", first.Schedule, second.Schedule)
	}
}

func TestRun_InvalidTimeAbortsRun(t *testing.T) {
	input := exampleInput()
	input.Availability = append(input.Availability, models.AvailabilityWindow{
		EmployeeID: 2, DayOfWeek: "Monday", StartTime: "ten", EndTime: "15:00",
	})

	sink := &memSink{}
	result, err := New(input, sink, sink).Run(weekStart)
	if err == nil {
		t.Fatal("Expected run to fail on malformed time, got nil error")
	}
	if result != nil {
		t.Errorf("Expected no partial result, got %v", result)
	}
}

func TestRun_SinkFailuresDoNotAbort(t *testing.T) {
	sink := &memSink{failShifts: true, failDecisions: true}
	result, err := New(exampleInput(), sink, sink).Run(weekStart)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// Allocation still happened
	got := result.Schedule["Monday"]["09:00"]
	if !reflect.DeepEqual(got, []string{"Alice"}) {
		t.Errorf("Expected Monday 09:00 = [Alice] despite sink failures, got %v", got)
	}

	// 1 failed shift write + 2 failed decision writes
	if len(result.SinkErrors) != 3 {
		t.Fatalf("Expected 3 collected sink errors, got %d: %v", len(result.SinkErrors), result.SinkErrors)
	}
	shiftErrs, decisionErrs := 0, 0
	for _, e := range result.SinkErrors {
		switch e.Sink {
		case "shifts":
			shiftErrs++
		case "decisions":
			decisionErrs++
		}
	}
	if shiftErrs != 1 || decisionErrs != 2 {
		t.Errorf("Expected 1 shift error and 2 decision errors, got %d and %d", shiftErrs, decisionErrs)
	}
}

func TestRun_TracksHoursAssigned(t *testing.T) {
	input := exampleInput()
	input.StoreNeeds = []models.StoreNeed{
		{ID: 1, DayOfWeek: "Monday", Hour: "09:00", NeededEmployees: 1},
		{ID: 2, DayOfWeek: "Monday", Hour: "10:00", NeededEmployees: 1},
	}

	sink := &memSink{}
	_, err := New(input, sink, sink).Run(weekStart)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// Alice wins both slots; her second decision shows 2 cumulative hours.
	// Double-booking across hours is allowed.
	var last *models.Decision
	for i := range sink.decisions {
		d := &sink.decisions[i]
		if d.EmployeeID == 1 && d.ShiftStart == "10:00" {
			last = d
		}
	}
	if last == nil {
		t.Fatal("Expected a 10:00 decision for Alice")
	}
	if !last.WasScheduled || last.TotalHoursAssigned != 2 {
		t.Errorf("Expected Alice scheduled with 2 cumulative hours, got %+v", last)
	}
}
