package models

import (
	"time"

	"gorm.io/gorm"
)

type ServiceOrder struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ClientID  uint `gorm:"index;column:client_id" json:"clientId"`
	ServiceID uint `gorm:"index;column:service_id" json:"serviceId"`

	AppointmentDate time.Time `gorm:"column:appointment_date" json:"appointmentDate"`
	Quantity        int       `json:"quantity"`
	Status          string    `gorm:"size:20;default:pending;index" json:"status"`

	// Derived: unit price x quantity at creation time.
	TotalPrice float64 `gorm:"column:total_price" json:"totalPrice"`

	SpecialRequests string `gorm:"size:500" json:"specialRequests,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Client  Client  `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}
