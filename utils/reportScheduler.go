package utils

import (
	"encoding/json"
	"log"
	"time"

	"steakz/database"
	"steakz/models"
	"steakz/reports"

	"github.com/robfig/cron/v3"
	"gorm.io/datatypes"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REPORT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// snapshotDailyReport reduces today's reservations into a Summary and
// persists it, replacing any earlier snapshot for the same day.
func snapshotDailyReport() {
	db := database.Database.Db

	now := time.Now()
	year, month, dayOfMonth := now.Date()
	start := time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 1)

	var reservations []models.Reservation
	if err := db.
		Preload("Orders").
		Where("date >= ? AND date < ?", start, end).
		Find(&reservations).Error; err != nil {
		logScheduler("Error fetching today's reservations: " + err.Error())
		return
	}

	summary := reports.Summarize(reservations)
	payload, err := json.Marshal(summary)
	if err != nil {
		logScheduler("Error encoding report summary: " + err.Error())
		return
	}

	var report models.DailyReport
	if err := db.Where("day = ?", start).First(&report).Error; err != nil {
		report = models.DailyReport{Day: start, Summary: datatypes.JSON(payload)}
		if err := db.Create(&report).Error; err != nil {
			logScheduler("Error saving daily report: " + err.Error())
			return
		}
	} else {
		if err := db.Model(&report).Update("summary", datatypes.JSON(payload)).Error; err != nil {
			logScheduler("Error updating daily report: " + err.Error())
			return
		}
	}

	logScheduler("Daily report snapshot saved")
}

// InitializeReportScheduler starts the nightly report snapshot at 23:55
// local time.
func InitializeReportScheduler() *cron.Cron {
	c := cron.New(cron.WithLocation(time.Local))

	c.AddFunc("55 23 * * *", func() {
		snapshotDailyReport()
	})

	c.Start()

	logScheduler("Report scheduler started - snapshots daily at 23:55")
	return c
}
