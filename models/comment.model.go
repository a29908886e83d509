package models

import "gorm.io/gorm"

// Comment is a customer review. Created unapproved; an admin either approves
// it (one-way) or deletes it.
type Comment struct {
	gorm.Model
	Content  string `gorm:"type:text;not null" json:"content"`
	UserName string `gorm:"not null" json:"userName"`
	Stars    int    `gorm:"not null;check:stars >= 1 AND stars <= 5" json:"stars"`
	Approved bool   `gorm:"default:false" json:"approved"`
}
