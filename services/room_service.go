package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resort-backend/models"

	"gorm.io/gorm"
)

// RoomService manages the room catalog. Reads go through the room cache
// when one is configured.
type RoomService struct {
	DB    *gorm.DB
	Cache *RoomCache
}

func NewRoomService(db *gorm.DB, cache *RoomCache) *RoomService {
	return &RoomService{DB: db, Cache: cache}
}

// RoomFilter narrows catalog listings. Zero values mean "no constraint".
type RoomFilter struct {
	Type     string
	Status   string
	MinPrice float64
	MaxPrice float64
	Search   string
}

func (s *RoomService) CreateRoom(room *models.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}
	// Derived fields are never taken from the caller.
	room.Rating = 0
	room.NumReviews = 0

	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateRoom, room.RoomNumber)
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) GetRoom(id uint) (*models.Room, error) {
	ctx := context.Background()
	if room, ok := s.Cache.Get(ctx, id); ok {
		return room, nil
	}

	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: room %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}

	s.Cache.Set(ctx, &room)
	return &room, nil
}

func (s *RoomService) ListRooms(filter RoomFilter, page, limit int) ([]models.Room, int64, error) {
	q := s.DB.Model(&models.Room{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.MinPrice > 0 {
		q = q.Where("price_per_night >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		q = q.Where("price_per_night <= ?", filter.MaxPrice)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	var rooms []models.Room
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rooms).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, total, nil
}

// UpdateRoom applies a partial update. Identity, timestamps and the derived
// rating fields are stripped before writing.
func (s *RoomService) UpdateRoom(id uint, updates map[string]interface{}) (*models.Room, error) {
	for _, k := range []string{"id", "created_at", "updated_at", "deleted_at", "rating", "num_reviews", "numReviews"} {
		delete(updates, k)
	}
	if t, ok := updates["type"].(string); ok && !models.ValidRoomType(t) {
		return nil, validationErr("unknown room type %q", t)
	}
	if st, ok := updates["status"].(string); ok && !models.ValidRoomStatus(st) {
		return nil, validationErr("unknown room status %q", st)
	}

	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: room %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
			if isDuplicateKeyErr(err) {
				return nil, fmt.Errorf("%w: %v", ErrDuplicateRoom, updates["roomNumber"])
			}
			return nil, fmt.Errorf("failed to update room %d: %w", id, err)
		}
	}

	s.Cache.Invalidate(context.Background(), id)

	if err := s.DB.First(&room, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) DeleteRoom(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: room %d", ErrNotFound, id)
	}
	s.Cache.Invalidate(context.Background(), id)
	return nil
}

func validateRoom(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return validationErr("room number is required")
	}
	if room.Type == "" {
		room.Type = models.RoomTypeSingle
	}
	if !models.ValidRoomType(room.Type) {
		return validationErr("unknown room type %q", room.Type)
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if !models.ValidRoomStatus(room.Status) {
		return validationErr("unknown room status %q", room.Status)
	}
	if room.PricePerNight <= 0 {
		return validationErr("price per night must be positive")
	}
	if room.Capacity < 1 || room.Capacity > 10 {
		return validationErr("capacity must be between 1 and 10")
	}
	if len(room.Description) > maxSpecialRequestsLen {
		return validationErr("description cannot be more than %d characters", maxSpecialRequestsLen)
	}
	return nil
}
