package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ServiceCategorySpa            = "spa"
	ServiceCategoryDining         = "dining"
	ServiceCategoryActivities     = "activities"
	ServiceCategoryTransportation = "transportation"
	ServiceCategoryOther          = "other"
)

func ValidServiceCategory(c string) bool {
	switch c {
	case ServiceCategorySpa, ServiceCategoryDining, ServiceCategoryActivities,
		ServiceCategoryTransportation, ServiceCategoryOther:
		return true
	}
	return false
}

// Service is an orderable offering (spa treatment, airport transfer, ...).
type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100" json:"name"`
	Description string  `gorm:"size:500" json:"description"`
	Price       float64 `json:"price"`
	Category    string  `gorm:"size:30" json:"category"`
	Duration    int     `json:"duration"` // minutes
	IsAvailable bool    `gorm:"default:true" json:"isAvailable"`
	Image       string  `gorm:"size:500" json:"image,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
