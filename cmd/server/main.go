package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/shaelw/store-scheduler-go/pkg/auth"
	"github.com/shaelw/store-scheduler-go/pkg/database"
	"github.com/shaelw/store-scheduler-go/pkg/handlers"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := &handlers.Handler{DB: db}

	r := gin.Default()

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Store Shift Scheduler API",
			"version": "1.0.0",
		})
	})

	r.POST("/login", h.Login)

	// Reference data, read side is open
	r.GET("/employees", h.ListEmployees)
	r.GET("/availability/:id", h.GetAvailability)
	r.GET("/store_needs", h.ListStoreNeeds)
	r.GET("/shifts", h.ListShifts)
	r.GET("/history", h.ListHistory)
	r.GET("/history/health", h.HistoryHealth)

	r.POST("/schedule/validate", h.ValidateInput)

	// Mutations and scheduling runs require a manager token
	mgr := r.Group("/")
	mgr.Use(h.AuthMiddleware())
	{
		mgr.POST("/employees", h.CreateEmployee)
		mgr.PUT("/employees/:id", h.UpdateEmployee)
		mgr.DELETE("/employees/:id", h.DeleteEmployee)

		mgr.POST("/availability", h.CreateAvailability)
		mgr.DELETE("/availability/:id", h.DeleteAvailability)

		mgr.POST("/store_needs", h.CreateStoreNeed)
		mgr.PUT("/store_needs/:id", h.UpdateStoreNeed)
		mgr.DELETE("/store_needs/:id", h.DeleteStoreNeed)

		mgr.POST("/schedule/run", h.RunSchedule)
		mgr.GET("/schedule/csv", h.ScheduleCSV)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
