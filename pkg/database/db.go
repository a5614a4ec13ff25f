package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Employee represents the employees table
type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Availability represents the availability table. Times are "HH:MM" strings
// on a 24h clock; windows are half-open [start_time, end_time).
type Availability struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	EmployeeID uint   `gorm:"index;not null" json:"employee_id"`
	DayOfWeek  string `gorm:"not null" json:"day_of_week"`
	StartTime  string `gorm:"not null" json:"start_time"`
	EndTime    string `gorm:"not null" json:"end_time"`
}

// StoreNeed represents the store_needs table: one staffing requirement
// per (day, hour) row
type StoreNeed struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	DayOfWeek       string `gorm:"not null" json:"day_of_week"`
	Hour            string `gorm:"not null" json:"hour"`
	NeededEmployees int    `gorm:"not null;default:0" json:"needed_employees"`
	Role            string `json:"role"`
}

// ScheduleShift represents the schedule_shifts table: one row per assignment
// made by a scheduling run. Append-only.
type ScheduleShift struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"index;not null" json:"employee_id"`
	ShiftDate  string    `gorm:"index;not null" json:"shift_date"`
	StartTime  string    `gorm:"not null" json:"start_time"`
	EndTime    string    `gorm:"not null" json:"end_time"`
	CreatedAt  time.Time `json:"created_at"`
}

// HistoricalSchedule represents the historical_schedules table: one audit row
// per candidate considered for a slot, scheduled or not. Append-only.
type HistoricalSchedule struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Date                 string    `gorm:"index;not null" json:"date"`
	ShiftStart           string    `gorm:"not null" json:"shift_start"`
	ShiftEnd             string    `gorm:"not null" json:"shift_end"`
	EmployeeID           uint      `gorm:"index;not null" json:"employee_id"`
	EmployeeAvailability string    `json:"employee_availability"`
	EmployeeRole         string    `json:"employee_role"`
	TotalHoursAssigned   float64   `json:"total_hours_assigned"`
	BusinessNeedRole     string    `json:"business_need_role"`
	BusinessNeedCount    int       `json:"business_need_count"`
	WasScheduled         bool      `gorm:"not null" json:"was_scheduled"`
	CreatedAt            time.Time `json:"created_at"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitDB initializes the database connection and migrates the schema
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "scheduler.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto Migration
	db.AutoMigrate(&Employee{}, &Availability{}, &StoreNeed{}, &ScheduleShift{}, &HistoricalSchedule{}, &MasterUser{})

	return db
}
