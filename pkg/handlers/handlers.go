package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shaelw/store-scheduler-go/pkg/auth"
	"github.com/shaelw/store-scheduler-go/pkg/database"
	"github.com/shaelw/store-scheduler-go/pkg/models"
	"github.com/shaelw/store-scheduler-go/pkg/scheduler"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	DB *gorm.DB
}

// AuthMiddleware verifies the JWT token for manager routes
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Strip "Bearer " if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// Login handles manager login
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user database.MasterUser
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.CreateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// RunSchedule loads the current snapshot, runs the allocation engine and
// persists shifts plus the decision history. The optional week_start field
// ("2006-01-02") anchors shift dates; it defaults to the Monday of the
// current week.
func (h *Handler) RunSchedule(c *gin.Context) {
	var req struct {
		WeekStart string `json:"week_start"`
	}
	// Body is optional
	_ = c.ShouldBindJSON(&req)

	weekStart := mondayOf(time.Now())
	if req.WeekStart != "" {
		parsed, err := time.Parse("2006-01-02", req.WeekStart)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "week_start must be formatted 2006-01-02"})
			return
		}
		weekStart = parsed
	}

	store := &database.Store{DB: h.DB}
	input, err := store.LoadSnapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load scheduling data"})
		return
	}

	s := scheduler.New(input, store, store)
	result, err := s.Run(weekStart)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"week_start":  weekStart.Format("2006-01-02"),
		"schedule":    result.Schedule,
		"unfilled":    unfilledSlots(result),
		"sink_errors": result.SinkErrors,
	})
}

// unfilledSlots lists "Day HH:MM" keys whose assignee list came back empty,
// in week order
func unfilledSlots(result *models.Result) []string {
	out := []string{}
	for _, day := range models.Days {
		hours := make([]string, 0, len(result.Schedule[day]))
		for hour := range result.Schedule[day] {
			hours = append(hours, hour)
		}
		sort.Strings(hours)
		for _, hour := range hours {
			if len(result.Schedule[day][hour]) == 0 {
				out = append(out, day+" "+hour)
			}
		}
	}
	return out
}

// ScheduleCSV exports persisted shifts as CSV, optionally filtered by
// shift_date
func (h *Handler) ScheduleCSV(c *gin.Context) {
	q := h.DB.Order("shift_date, start_time")
	if date := c.Query("date"); date != "" {
		q = q.Where("shift_date = ?", date)
	}

	var shifts []database.ScheduleShift
	if err := q.Find(&shifts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shifts"})
		return
	}

	names := make(map[uint]string)
	var emps []database.Employee
	h.DB.Find(&emps)
	for _, e := range emps {
		names[e.ID] = e.Name
	}

	var outCSV strings.Builder
	writer := csv.NewWriter(&outCSV)
	writer.Write([]string{"employee_id", "employee_name", "shift_date", "start_time", "end_time"})

	for _, sh := range shifts {
		writer.Write([]string{
			fmt.Sprintf("%d", sh.EmployeeID),
			names[sh.EmployeeID],
			sh.ShiftDate,
			sh.StartTime,
			sh.EndTime,
		})
	}
	writer.Flush()

	c.JSON(http.StatusOK, gin.H{"csv": outCSV.String()})
}

// mondayOf returns the Monday of the week containing t, at midnight
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}
