package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shaelw/store-scheduler-go/pkg/models"
	"github.com/shaelw/store-scheduler-go/pkg/timeutil"
)

func validDay(day string) bool {
	for _, d := range models.Days {
		if d == day {
			return true
		}
	}
	return false
}

// validateWindow checks an availability window before it enters the
// reference data. The engine assumes valid times, so malformed rows are
// rejected at the edge.
func validateWindow(day, start, end string) (string, bool) {
	if !validDay(day) {
		return "day_of_week must be Monday through Sunday", false
	}
	sn, err := timeutil.ToNumber(start)
	if err != nil {
		return err.Error(), false
	}
	en, err := timeutil.ToNumber(end)
	if err != nil {
		return err.Error(), false
	}
	if sn >= en {
		return "start_time must be before end_time", false
	}
	return "", true
}

// validateNeed checks a store-need row before it enters the reference data
func validateNeed(day, hour string, needed int) (string, bool) {
	if !validDay(day) {
		return "day_of_week must be Monday through Sunday", false
	}
	if _, err := timeutil.ToNumber(hour); err != nil {
		return err.Error(), false
	}
	if needed < 0 {
		return "needed_employees must be >= 0", false
	}
	return "", true
}

// ValidateInput sanity-checks an ad-hoc scheduling snapshot without running
// the engine or touching the database
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	// Duplicate employee ids make the directory order ambiguous
	empIDs := make(map[int]bool)
	for _, e := range input.Employees {
		if empIDs[e.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": fmt.Sprintf("Duplicate employee ID: %d", e.ID)})
			return
		}
		empIDs[e.ID] = true
	}

	for _, w := range input.Availability {
		if !empIDs[w.EmployeeID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": fmt.Sprintf("Availability references unknown employee ID: %d", w.EmployeeID)})
			return
		}
		if msg, ok := validateWindow(w.DayOfWeek, w.StartTime, w.EndTime); !ok {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": msg})
			return
		}
	}

	for _, n := range input.StoreNeeds {
		if msg, ok := validateNeed(n.DayOfWeek, n.Hour, n.NeededEmployees); !ok {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": msg})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"employee_count":   len(input.Employees),
			"window_count":     len(input.Availability),
			"store_need_count": len(input.StoreNeeds),
		},
	})
}
