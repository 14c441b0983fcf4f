package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"resort-backend/models"

	"gorm.io/gorm"
)

// ReviewService manages reviews and keeps the owning room's aggregate
// rating in sync. Every write recomputes the aggregate inside the same
// transaction, so callers never observe a review without its effect on the
// room.
type ReviewService struct {
	DB    *gorm.DB
	Cache *RoomCache
}

func NewReviewService(db *gorm.DB, cache *RoomCache) *ReviewService {
	return &ReviewService{DB: db, Cache: cache}
}

func validateReviewInput(rating int, comment string) (string, error) {
	if rating < 1 || rating > 5 {
		return "", validationErr("rating must be between 1 and 5")
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return "", validationErr("comment is required")
	}
	return comment, nil
}

// CreateReview records a review and recomputes the room's rating. A second
// review by the same client for the same room is rejected.
func (s *ReviewService) CreateReview(clientID, roomID uint, rating int, comment string) (*models.Review, error) {
	comment, err := validateReviewInput(rating, comment)
	if err != nil {
		return nil, err
	}

	var review *models.Review
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: room %d", ErrNotFound, roomID)
			}
			return fmt.Errorf("db error checking room %d: %w", roomID, err)
		}

		var existing int64
		if err := tx.Model(&models.Review{}).
			Where("client_id = ? AND room_id = ?", clientID, roomID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check existing review: %w", err)
		}
		if existing > 0 {
			return ErrDuplicateReview
		}

		review = &models.Review{
			ClientID: clientID,
			RoomID:   roomID,
			Rating:   rating,
			Comment:  comment,
		}
		if err := tx.Create(review).Error; err != nil {
			// The unique index backs up the existence check under
			// concurrent creates.
			if isDuplicateKeyErr(err) {
				return ErrDuplicateReview
			}
			return fmt.Errorf("failed to create review: %w", err)
		}
		return recomputeRoomRating(tx, roomID)
	})
	if err != nil {
		return nil, err
	}

	s.Cache.Invalidate(context.Background(), roomID)

	// Reload with the client for the response envelope.
	if err := s.DB.Preload("Client").First(review, review.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload review: %w", err)
	}
	return review, nil
}

// UpdateReview changes rating/comment. Only the owning client may update.
func (s *ReviewService) UpdateReview(id, callerID uint, rating int, comment string) (*models.Review, error) {
	comment, err := validateReviewInput(rating, comment)
	if err != nil {
		return nil, err
	}

	var review models.Review
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&review, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: review %d", ErrNotFound, id)
			}
			return fmt.Errorf("failed to load review %d: %w", id, err)
		}
		if review.ClientID != callerID {
			return fmt.Errorf("%w: review belongs to another client", ErrNotAuthorized)
		}

		review.Rating = rating
		review.Comment = comment
		if err := tx.Model(&review).Updates(map[string]interface{}{
			"rating":  rating,
			"comment": comment,
		}).Error; err != nil {
			return fmt.Errorf("failed to update review %d: %w", id, err)
		}
		return recomputeRoomRating(tx, review.RoomID)
	})
	if err != nil {
		return nil, err
	}

	s.Cache.Invalidate(context.Background(), review.RoomID)
	return &review, nil
}

// DeleteReview removes a review (owning client or admin) and recomputes the
// room's rating; deleting the last review resets it to zero.
func (s *ReviewService) DeleteReview(id, callerID uint, callerRole models.Role) error {
	var roomID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: review %d", ErrNotFound, id)
			}
			return fmt.Errorf("failed to load review %d: %w", id, err)
		}
		if review.ClientID != callerID && !callerRole.IsAdmin() {
			return fmt.Errorf("%w: review belongs to another client", ErrNotAuthorized)
		}

		roomID = review.RoomID
		if err := tx.Delete(&review).Error; err != nil {
			return fmt.Errorf("failed to delete review %d: %w", id, err)
		}
		return recomputeRoomRating(tx, roomID)
	})
	if err != nil {
		return err
	}

	s.Cache.Invalidate(context.Background(), roomID)
	return nil
}

func (s *ReviewService) GetReview(id uint) (*models.Review, error) {
	var review models.Review
	if err := s.DB.Preload("Client").First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: review %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load review %d: %w", id, err)
	}
	return &review, nil
}

// ListReviews returns reviews newest first, optionally filtered by room.
func (s *ReviewService) ListReviews(roomID uint, page, limit int) ([]models.Review, int64, error) {
	q := s.DB.Model(&models.Review{})
	if roomID != 0 {
		q = q.Where("room_id = ?", roomID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var reviews []models.Review
	err := q.Preload("Client").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, total, nil
}

// ListRoomReviews returns every review for one room, no pagination.
func (s *ReviewService) ListRoomReviews(roomID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.Preload("Client").
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for room %d: %w", roomID, err)
	}
	return reviews, nil
}

// recomputeRoomRating rewrites the room's cached aggregate from the surviving
// reviews: arithmetic mean rounded to one decimal, or zeroes when none
// remain. Idempotent; callers run it inside the review's transaction.
func recomputeRoomRating(tx *gorm.DB, roomID uint) error {
	var reviews []models.Review
	if err := tx.Where("room_id = ?", roomID).Find(&reviews).Error; err != nil {
		return fmt.Errorf("failed to load reviews for room %d: %w", roomID, err)
	}

	rating := 0.0
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		rating = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}

	err := tx.Model(&models.Room{}).Where("id = ?", roomID).
		Updates(map[string]interface{}{
			"rating":      rating,
			"num_reviews": len(reviews),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update rating for room %d: %w", roomID, err)
	}
	return nil
}

func isDuplicateKeyErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
