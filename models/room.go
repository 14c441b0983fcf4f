package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeLuxury = "luxury"

	RoomStatusAvailable   = "available"
	RoomStatusBooked      = "booked"
	RoomStatusMaintenance = "maintenance"
)

func ValidRoomType(t string) bool {
	return t == RoomTypeSingle || t == RoomTypeDouble || t == RoomTypeLuxury
}

func ValidRoomStatus(s string) bool {
	return s == RoomStatusAvailable || s == RoomStatusBooked || s == RoomStatusMaintenance
}

type Room struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RoomNumber string `gorm:"column:room_number;uniqueIndex;size:50" json:"roomNumber"`
	Name       string `gorm:"size:100" json:"name"`

	Type          string  `gorm:"size:20;default:single" json:"type"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"pricePerNight"`
	Capacity      int     `json:"capacity"`
	Status        string  `gorm:"size:20;default:available" json:"status"`
	Description   string  `gorm:"size:500" json:"description"`

	Amenities datatypes.JSON `json:"amenities,omitempty"`
	Images    datatypes.JSON `json:"images,omitempty"`

	// Derived from reviews; recomputed by the review service, never
	// accepted from request payloads.
	Rating     float64 `json:"rating"`
	NumReviews int     `gorm:"column:num_reviews" json:"numReviews"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
