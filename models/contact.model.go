package models

import "gorm.io/gorm"

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	gorm.Model
	Reference string `gorm:"uniqueIndex;not null" json:"reference"`
	Name      string `gorm:"not null" json:"name"`
	Email     string `gorm:"not null" json:"email"`
	Message   string `gorm:"type:text;not null" json:"message"`
}
