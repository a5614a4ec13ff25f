package models

// Days lists the days of the scheduling week in fixed order.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Employee represents a person in the store directory
type Employee struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// AvailabilityWindow is one half-open [start, end) window an employee can work
type AvailabilityWindow struct {
	EmployeeID int    `json:"employee_id"`
	DayOfWeek  string `json:"day_of_week"`
	StartTime  string `json:"start_time"` // "HH:MM", 24h
	EndTime    string `json:"end_time"`   // "HH:MM", 24h
}

// StoreNeed is one per-hour staffing requirement row
type StoreNeed struct {
	ID              int    `json:"id"`
	DayOfWeek       string `json:"day_of_week"`
	Hour            string `json:"hour"` // "HH:MM", 24h
	NeededEmployees int    `json:"needed_employees"`
	Role            string `json:"role,omitempty"`
}

// ShiftRecord is one persisted assignment produced by a scheduling run
type ShiftRecord struct {
	EmployeeID int    `json:"employee_id"`
	ShiftDate  string `json:"shift_date"` // "2006-01-02"
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// Decision is one audit row: an employee considered for a slot, scheduled or passed over
type Decision struct {
	Date                 string  `json:"date"`
	ShiftStart           string  `json:"shift_start"`
	ShiftEnd             string  `json:"shift_end"`
	EmployeeID           int     `json:"employee_id"`
	EmployeeAvailability string  `json:"employee_availability"`
	EmployeeRole         string  `json:"employee_role"`
	TotalHoursAssigned   float64 `json:"total_hours_assigned"`
	BusinessNeedRole     string  `json:"business_need_role"`
	BusinessNeedCount    int     `json:"business_need_count"`
	WasScheduled         bool    `json:"was_scheduled"`
}

// Schedule maps day -> hour -> employee names in selection order
type Schedule map[string]map[string][]string

// SinkError records a persistence write that failed during a run
type SinkError struct {
	Sink   string `json:"sink"` // "shifts" or "decisions"
	Detail string `json:"detail"`
}

// Result is the outcome of one allocation run
type Result struct {
	Schedule   Schedule    `json:"schedule"`
	SinkErrors []SinkError `json:"sink_errors,omitempty"`
}

// ScheduleInput is the snapshot consumed by one allocation run
type ScheduleInput struct {
	Employees    []Employee           `json:"employees"`
	Availability []AvailabilityWindow `json:"availability"`
	StoreNeeds   []StoreNeed          `json:"store_needs"`
}
