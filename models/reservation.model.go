package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation status values. IsPaid/Status and Served are independent flags:
// a reservation can be served before payment or paid before serving.
const (
	ReservationBooked = "booked"
	ReservationPaid   = "paid"
)

type Reservation struct {
	gorm.Model
	UserID uint      `gorm:"not null" json:"userId"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Name   string    `gorm:"not null" json:"name"`
	Date   time.Time `gorm:"not null;type:date" json:"date"`
	Time   string    `gorm:"not null" json:"time"` // one of the configured slot universe, e.g. "13:00"
	IsPaid bool      `gorm:"default:false" json:"isPaid"`
	Status string    `gorm:"default:'booked'" json:"status"`
	Served bool      `gorm:"default:false" json:"served"`

	Orders []Order `gorm:"foreignKey:ReservationID" json:"orders"`
}

// Order is a single line item on a reservation. Created atomically with its
// parent reservation and immutable thereafter.
type Order struct {
	gorm.Model
	ReservationID uint    `gorm:"not null" json:"reservationId"`
	MenuItem      string  `gorm:"not null" json:"menuItem"`
	Price         float64 `gorm:"not null;check:price >= 0" json:"price"`
}

func (Reservation) TableName() string {
	return "reservations"
}

func (Order) TableName() string {
	return "orders"
}
