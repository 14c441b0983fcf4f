package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"resort-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxSpecialRequestsLen = 500

// BookingService owns the booking lifecycle: creation with availability and
// pricing, status transitions, and deletion.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CreateBookingInput carries caller-supplied booking fields. TotalPrice and
// Status are always derived server-side.
type CreateBookingInput struct {
	ClientID        uint
	RoomID          uint
	CheckInDate     time.Time
	CheckOutDate    time.Time
	Guests          int
	SpecialRequests string
}

// CreateBooking validates the request, checks availability and persists a
// pending booking. The availability check and the insert share one
// transaction so two overlapping requests serialize through the database
// instead of both observing a free room.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	if !in.CheckOutDate.After(in.CheckInDate) {
		return nil, validationErr("check-out date must be after check-in date")
	}
	if in.Guests < 1 {
		return nil, validationErr("number of guests must be at least 1")
	}
	if len(in.SpecialRequests) > maxSpecialRequestsLen {
		return nil, validationErr("special requests cannot be more than %d characters", maxSpecialRequestsLen)
	}

	var booking *models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: room %d", ErrNotFound, in.RoomID)
			}
			return fmt.Errorf("db error checking room %d: %w", in.RoomID, err)
		}
		if in.Guests > room.Capacity {
			return validationErr("room %s sleeps at most %d guests", room.RoomNumber, room.Capacity)
		}

		available, err := roomAvailable(tx, in.RoomID, in.CheckInDate, in.CheckOutDate)
		if err != nil {
			return err
		}
		if !available {
			return ErrRoomUnavailable
		}

		total, err := PriceForStay(room.PricePerNight, in.CheckInDate, in.CheckOutDate)
		if err != nil {
			return err
		}

		booking = &models.Booking{
			ClientID:        in.ClientID,
			RoomID:          in.RoomID,
			ReferenceCode:   newReferenceCode(),
			CheckInDate:     in.CheckInDate,
			CheckOutDate:    in.CheckOutDate,
			Guests:          in.Guests,
			Status:          models.StatusPending,
			TotalPrice:      total,
			SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		}
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// GetBooking loads a booking with its room, enforcing the owner-or-admin
// read rule.
func (s *BookingService) GetBooking(id, callerID uint, callerRole models.Role) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", id, err)
	}
	if booking.ClientID != callerID && !callerRole.IsAdmin() {
		return nil, fmt.Errorf("%w: booking belongs to another client", ErrNotAuthorized)
	}
	return &booking, nil
}

// ListBookings returns bookings visible to the caller, newest first.
// Non-admin callers only ever see their own.
func (s *BookingService) ListBookings(callerID uint, callerRole models.Role, page, limit int) ([]models.Booking, int64, error) {
	q := s.DB.Model(&models.Booking{})
	if !callerRole.IsAdmin() {
		q = q.Where("client_id = ?", callerID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var bookings []models.Booking
	err := q.Preload("Room").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, total, nil
}

// UpdateBookingStatus applies a lifecycle transition after checking that the
// caller may perform it.
func (s *BookingService) UpdateBookingStatus(id, callerID uint, callerRole models.Role, newStatus string) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: booking %d", ErrNotFound, id)
			}
			return fmt.Errorf("failed to load booking %d: %w", id, err)
		}

		isOwner := booking.ClientID == callerID
		if !isOwner && !callerRole.IsAdminOrStaff() {
			return fmt.Errorf("%w: booking belongs to another client", ErrNotAuthorized)
		}
		if err := checkTransition(booking.Status, newStatus, callerRole, isOwner); err != nil {
			return err
		}

		booking.Status = newStatus
		return tx.Model(&booking).Update("status", newStatus).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// DeleteBooking removes a booking. Permitted only for the owning client or
// admin. Deletion does not recompute anything.
func (s *BookingService) DeleteBooking(id, callerID uint, callerRole models.Role) error {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: booking %d", ErrNotFound, id)
		}
		return fmt.Errorf("failed to load booking %d: %w", id, err)
	}
	if booking.ClientID != callerID && !callerRole.IsAdmin() {
		return fmt.Errorf("%w: booking belongs to another client", ErrNotAuthorized)
	}
	if err := s.DB.Delete(&booking).Error; err != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, err)
	}
	return nil
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}
