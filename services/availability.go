package services

import (
	"fmt"
	"time"

	"resort-backend/models"

	"gorm.io/gorm"
)

// roomAvailable reports whether the room has no pending or confirmed booking
// whose date range conflicts with [checkIn, checkOut).
//
// A conflict is: existing.check_in_date <= checkOut AND
// existing.check_out_date >= checkIn. The comparison is inclusive, so
// back-to-back stays that share a boundary date are treated as a conflict.
// Run inside the same transaction as the subsequent insert so the check and
// the write serialize through the database.
func roomAvailable(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := tx.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []string{models.StatusPending, models.StatusConfirmed}).
		Where("check_in_date <= ? AND check_out_date >= ?", checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check availability for room %d: %w", roomID, err)
	}
	return count == 0, nil
}

// IsRoomAvailable is the standalone availability check used by the HTTP
// layer for pre-booking queries. Best effort only: without the enclosing
// booking transaction the answer can be stale by the time a booking is made.
func (s *BookingService) IsRoomAvailable(roomID uint, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, validationErr("check-out date must be after check-in date")
	}
	return roomAvailable(s.DB, roomID, checkIn, checkOut)
}
