package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DailyReport is a persisted snapshot of one day's report, written by the
// nightly scheduler. Summary holds the serialized reports.Summary.
type DailyReport struct {
	gorm.Model
	Day     time.Time      `gorm:"not null;type:date;uniqueIndex" json:"day"`
	Summary datatypes.JSON `json:"summary"`
}

func (DailyReport) TableName() string {
	return "daily_reports"
}
