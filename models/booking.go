package models

import (
	"time"

	"gorm.io/gorm"
)

// Status values shared by Booking and ServiceOrder. Both follow the same
// lifecycle: pending -> confirmed -> completed, with cancellation allowed
// from pending or confirmed.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled || s == StatusCompleted
}

type Booking struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClientID uint `gorm:"index;column:client_id" json:"clientId"`
	RoomID   uint `gorm:"index;column:room_id" json:"roomId"`

	ReferenceCode string    `gorm:"column:reference_code;uniqueIndex;size:64" json:"referenceCode"`
	CheckInDate   time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate  time.Time `gorm:"column:check_out_date" json:"checkOutDate"`
	Guests        int       `json:"guests"`
	Status        string    `gorm:"size:20;default:pending;index" json:"status"`

	// Derived: nights x nightly rate at creation time. Never taken from
	// the request payload.
	TotalPrice float64 `gorm:"column:total_price" json:"totalPrice"`

	SpecialRequests string `gorm:"size:500" json:"specialRequests,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Room   Room   `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
