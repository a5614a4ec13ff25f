package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/shaelw/store-scheduler-go/pkg/database"
	"github.com/shaelw/store-scheduler-go/pkg/models"
	"github.com/shaelw/store-scheduler-go/pkg/scheduler"
)

// Batch runner: loads the current snapshot, allocates one week and prints
// the result per day. Meant for on-demand or nightly invocation; concurrent
// runs are not serialized here.
func main() {
	weekFlag := flag.String("week", "", "Monday of the week to schedule (2006-01-02); defaults to the current week")
	dryRun := flag.Bool("dry-run", false, "allocate and print without persisting shifts or history")
	flag.Parse()

	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	weekStart := mondayOf(time.Now())
	if *weekFlag != "" {
		parsed, err := time.Parse("2006-01-02", *weekFlag)
		if err != nil {
			log.Fatalf("invalid -week value %q: %v", *weekFlag, err)
		}
		weekStart = parsed
	}

	db := database.InitDB()
	store := &database.Store{DB: db}

	input, err := store.LoadSnapshot()
	if err != nil {
		log.Fatalf("could not load scheduling data: %v", err)
	}
	if len(input.StoreNeeds) == 0 {
		log.Println("no store needs found, nothing to schedule")
	}

	var s *scheduler.Scheduler
	if *dryRun {
		s = scheduler.New(input, nil, nil)
	} else {
		s = scheduler.New(input, store, store)
	}

	result, err := s.Run(weekStart)
	if err != nil {
		log.Fatalf("scheduling run failed: %v", err)
	}

	printSchedule(result.Schedule)

	if n := len(result.SinkErrors); n > 0 {
		log.Printf("%d persistence writes failed; history for this run is incomplete", n)
	}
}

func printSchedule(schedule models.Schedule) {
	for _, day := range models.Days {
		fmt.Printf("\n--- %s ---\n", day)

		hours := make([]string, 0, len(schedule[day]))
		for hour := range schedule[day] {
			hours = append(hours, hour)
		}
		sort.Strings(hours)

		for _, hour := range hours {
			names := schedule[day][hour]
			if len(names) == 0 {
				fmt.Printf("%s: Unfilled\n", hour)
			} else {
				fmt.Printf("%s: %s\n", hour, strings.Join(names, ", "))
			}
		}
	}
}

// mondayOf returns the Monday of the week containing t, at midnight
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}
