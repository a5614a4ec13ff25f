package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shaelw/store-scheduler-go/pkg/database"
)

// ListEmployees returns all employees in the directory
func (h *Handler) ListEmployees(c *gin.Context) {
	var emps []database.Employee
	if err := h.DB.Order("id").Find(&emps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get employees"})
		return
	}
	c.JSON(http.StatusOK, emps)
}

// CreateEmployee adds a new employee
func (h *Handler) CreateEmployee(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	emp := database.Employee{Name: req.Name, Role: req.Role}
	if err := h.DB.Create(&emp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create employee"})
		return
	}
	c.JSON(http.StatusCreated, emp)
}

// UpdateEmployee mutates an employee's name and role; the id is immutable
func (h *Handler) UpdateEmployee(c *gin.Context) {
	id := c.Param("id")

	var emp database.Employee
	if err := h.DB.First(&emp, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	var req struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != "" {
		emp.Name = req.Name
	}
	if req.Role != "" {
		emp.Role = req.Role
	}
	if err := h.DB.Save(&emp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update employee"})
		return
	}
	c.JSON(http.StatusOK, emp)
}

// DeleteEmployee removes an employee and their availability windows
func (h *Handler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")
	if err := h.DB.Delete(&database.Employee{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete employee"})
		return
	}
	h.DB.Where("employee_id = ?", id).Delete(&database.Availability{})
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

// GetAvailability returns all availability windows for one employee
func (h *Handler) GetAvailability(c *gin.Context) {
	id := c.Param("id")
	var windows []database.Availability
	if err := h.DB.Where("employee_id = ?", id).Order("id").Find(&windows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get availability"})
		return
	}
	c.JSON(http.StatusOK, windows)
}

// CreateAvailability adds one availability window. Overlapping windows for
// the same employee and day are accepted as-is.
func (h *Handler) CreateAvailability(c *gin.Context) {
	var req database.Availability
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg, ok := validateWindow(req.DayOfWeek, req.StartTime, req.EndTime); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var emp database.Employee
	if err := h.DB.First(&emp, req.EmployeeID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown employee_id"})
		return
	}

	req.ID = 0
	if err := h.DB.Create(&req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create availability"})
		return
	}
	c.JSON(http.StatusCreated, req)
}

// DeleteAvailability removes one availability window
func (h *Handler) DeleteAvailability(c *gin.Context) {
	id := c.Param("id")
	if err := h.DB.Delete(&database.Availability{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability deleted"})
}

// ListStoreNeeds returns all staffing requirement rows in table order
func (h *Handler) ListStoreNeeds(c *gin.Context) {
	var needs []database.StoreNeed
	if err := h.DB.Order("id").Find(&needs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get store needs"})
		return
	}
	c.JSON(http.StatusOK, needs)
}

// CreateStoreNeed adds one staffing requirement row. Duplicate (day, hour)
// rows are allowed and are processed independently by the scheduler.
func (h *Handler) CreateStoreNeed(c *gin.Context) {
	var req database.StoreNeed
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg, ok := validateNeed(req.DayOfWeek, req.Hour, req.NeededEmployees); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	req.ID = 0
	if err := h.DB.Create(&req).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create store need"})
		return
	}
	c.JSON(http.StatusCreated, req)
}

// UpdateStoreNeed mutates one staffing requirement row
func (h *Handler) UpdateStoreNeed(c *gin.Context) {
	id := c.Param("id")

	var need database.StoreNeed
	if err := h.DB.First(&need, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store need not found"})
		return
	}

	var req database.StoreNeed
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if msg, ok := validateNeed(req.DayOfWeek, req.Hour, req.NeededEmployees); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	need.DayOfWeek = req.DayOfWeek
	need.Hour = req.Hour
	need.NeededEmployees = req.NeededEmployees
	need.Role = req.Role
	if err := h.DB.Save(&need).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update store need"})
		return
	}
	c.JSON(http.StatusOK, need)
}

// DeleteStoreNeed removes one staffing requirement row
func (h *Handler) DeleteStoreNeed(c *gin.Context) {
	id := c.Param("id")
	if err := h.DB.Delete(&database.StoreNeed{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete store need"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Store need deleted"})
}

// ListShifts returns persisted shift rows, newest date first, optionally
// filtered by shift_date
func (h *Handler) ListShifts(c *gin.Context) {
	q := h.DB.Order("shift_date desc, start_time")
	if date := c.Query("date"); date != "" {
		q = q.Where("shift_date = ?", date)
	}

	var shifts []database.ScheduleShift
	if err := q.Find(&shifts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get shifts"})
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// ListHistory returns the append-only decision history, newest first
func (h *Handler) ListHistory(c *gin.Context) {
	q := h.DB.Order("date desc, shift_start")
	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}
	if c.Query("scheduled") == "true" {
		q = q.Where("was_scheduled = ?", true)
	}

	var rows []database.HistoricalSchedule
	if err := q.Limit(500).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get history"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
