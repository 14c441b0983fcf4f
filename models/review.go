package models

import (
	"time"
)

// Review of a room by a client. The composite unique index enforces at most
// one review per (client, room) pair. Reviews are hard-deleted: a soft-deleted
// row would keep holding the unique slot and block re-reviewing.
type Review struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClientID uint `gorm:"column:client_id;uniqueIndex:idx_reviews_client_room" json:"clientId"`
	RoomID   uint `gorm:"column:room_id;uniqueIndex:idx_reviews_client_room;index" json:"roomId"`

	Rating  int    `json:"rating"`
	Comment string `gorm:"size:1000" json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Client Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Room   Room   `gorm:"foreignKey:RoomID" json:"-"`
}
