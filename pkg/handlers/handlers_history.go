package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/shaelw/store-scheduler-go/pkg/database"
)

// ShiftHealth summarizes how one (date, shift) slot was staffed relative to
// its business need
type ShiftHealth struct {
	Date           string `json:"date"`
	ShiftStart     string `json:"shift_start"`
	ShiftEnd       string `json:"shift_end"`
	TotalScheduled int    `json:"total_scheduled"`
	BusinessNeed   int    `json:"business_need"`
	StaffingGap    int    `json:"staffing_gap"` // scheduled - need
	Status         string `json:"shift_status"` // Perfect | Understaffed | Overstaffed
}

// HistoryHealth aggregates the decision history into a per-shift staffing
// health check, worst slots first
func (h *Handler) HistoryHealth(c *gin.Context) {
	q := h.DB.Order("date, shift_start")
	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}

	var rows []database.HistoricalSchedule
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get history"})
		return
	}

	type key struct{ date, start, end string }
	order := []key{}
	byShift := make(map[key]*ShiftHealth)

	for _, row := range rows {
		k := key{row.Date, row.ShiftStart, row.ShiftEnd}
		sh, ok := byShift[k]
		if !ok {
			sh = &ShiftHealth{
				Date:       row.Date,
				ShiftStart: row.ShiftStart,
				ShiftEnd:   row.ShiftEnd,
				// first row's count, matching how the slot was filled
				BusinessNeed: row.BusinessNeedCount,
			}
			byShift[k] = sh
			order = append(order, k)
		}
		if row.WasScheduled {
			sh.TotalScheduled++
		}
	}

	out := make([]ShiftHealth, 0, len(order))
	for _, k := range order {
		sh := byShift[k]
		sh.StaffingGap = sh.TotalScheduled - sh.BusinessNeed
		switch {
		case sh.StaffingGap == 0:
			sh.Status = "Perfect"
		case sh.StaffingGap < 0:
			sh.Status = "Understaffed"
		default:
			sh.Status = "Overstaffed"
		}
		out = append(out, *sh)
	}

	// Most understaffed first
	sort.SliceStable(out, func(i, j int) bool { return out[i].StaffingGap < out[j].StaffingGap })

	c.JSON(http.StatusOK, gin.H{"shifts": out})
}
