package services

import (
	"testing"

	"resort-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func roomRating(t *testing.T, db *gorm.DB, id uint) (float64, int) {
	t.Helper()
	var room models.Room
	require.NoError(t, db.First(&room, id).Error)
	return room.Rating, room.NumReviews
}

func TestCreateReviewRecomputesRating(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, nil)
	alice := createTestClient(t, db, "alice@example.com", models.RoleUser)
	bob := createTestClient(t, db, "bob@example.com", models.RoleUser)
	room := createTestRoom(t, db, "101", 100, 2)

	review, err := svc.CreateReview(alice.ID, room.ID, 4, "comfortable stay")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, review.Client.ID)

	rating, count := roomRating(t, db, room.ID)
	assert.Equal(t, 4.0, rating)
	assert.Equal(t, 1, count)

	_, err = svc.CreateReview(bob.ID, room.ID, 5, "great view")
	require.NoError(t, err)

	// (4+5)/2 = 4.5
	rating, count = roomRating(t, db, room.ID)
	assert.Equal(t, 4.5, rating)
	assert.Equal(t, 2, count)
}

func TestCreateReviewRoundsToOneDecimal(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, nil)
	room := createTestRoom(t, db, "101", 100, 2)

	ratings := []int{5, 4, 4}
	for i, r := range ratings {
		client := createTestClient(t, db, string(rune('a'+i))+"@example.com", models.RoleUser)
		_, err := svc.CreateReview(client.ID, room.ID, r, "fine")
		require.NoError(t, err)
	}

	// 13/3 = 4.333... rounds to 4.3.
	rating, count := roomRating(t, db, room.ID)
	assert.Equal(t, 4.3, rating)
	assert.Equal(t, 3, count)
}

func TestCreateReviewValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, nil)
	client := createTestClient(t, db, "alice@example.com", models.RoleUser)
	room := createTestRoom(t, db, "101", 100, 2)

	_, err := svc.CreateReview(client.ID, room.ID, 0, "fine")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateReview(client.ID, room.ID, 6, "fine")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateReview(client.ID, room.ID, 3, "   ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateReview(client.ID, 999, 3, "fine")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDuplicateReviewRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, nil)
	client := createTestClient(t, db, "alice@example.com", models.RoleUser)
	room := createTestRoom(t, db, "101", 100, 2)
	other := createTestRoom(t, db, "102", 100, 2)

	_, err := svc.CreateReview(client.ID, room.ID, 4, "nice")
	require.NoError(t, err)

	_, err = svc.CreateReview(client.ID, room.ID, 5, "changed my mind")
	assert.ErrorIs(t, err, ErrDuplicateReview)

	// One review per room, not one per client overall.
	_, err = svc.CreateReview(client.ID, other.ID, 5, "also nice")
	assert.NoError(t, err)
}

func TestUpdateReviewRecomputesRating(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, nil)
	alice := createTestClient(t, db, "alice@example.com", models.RoleUser)
	bob := createTestClient(t, db, "bob@example.com", models.RoleUser)
	room := createTestRoom(t, db, "101", 100, 2)

	review, err := svc.CreateReview(alice.ID, room.ID, 2, "noisy")
	require.NoError(t, err)

	updated, err := svc.UpdateReview(review.ID, alice.ID, 5, "they fixed it")
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)

	rating, _ := roomRating(t, db, room.ID)
	assert.Equal(t, 5.0, rating)

	// Only the owner may update.
	_, err = svc.UpdateReview(review.ID, bob.ID, 1, "drive-by")
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestDeleteReviewResetsRating(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, nil)
	alice := createTestClient(t, db, "alice@example.com", models.RoleUser)
	bob := createTestClient(t, db, "bob@example.com", models.RoleUser)
	admin := createTestClient(t, db, "boss@admin.com", models.RoleAdmin)
	room := createTestRoom(t, db, "101", 100, 2)

	r1, err := svc.CreateReview(alice.ID, room.ID, 4, "good")
	require.NoError(t, err)
	r2, err := svc.CreateReview(bob.ID, room.ID, 2, "meh")
	require.NoError(t, err)

	err = svc.DeleteReview(r1.ID, bob.ID, models.RoleUser)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	require.NoError(t, svc.DeleteReview(r1.ID, alice.ID, models.RoleUser))
	rating, count := roomRating(t, db, room.ID)
	assert.Equal(t, 2.0, rating)
	assert.Equal(t, 1, count)

	// Admin may delete any review; removing the last one zeroes the room.
	require.NoError(t, svc.DeleteReview(r2.ID, admin.ID, models.RoleAdmin))
	rating, count = roomRating(t, db, room.ID)
	assert.Equal(t, 0.0, rating)
	assert.Equal(t, 0, count)
}

func TestDeleteReviewAllowsReReview(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, nil)
	client := createTestClient(t, db, "alice@example.com", models.RoleUser)
	room := createTestRoom(t, db, "101", 100, 2)

	review, err := svc.CreateReview(client.ID, room.ID, 3, "average")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteReview(review.ID, client.ID, models.RoleUser))

	_, err = svc.CreateReview(client.ID, room.ID, 4, "second visit")
	assert.NoError(t, err)
}

func TestListRoomReviews(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, nil)
	alice := createTestClient(t, db, "alice@example.com", models.RoleUser)
	bob := createTestClient(t, db, "bob@example.com", models.RoleUser)
	room := createTestRoom(t, db, "101", 100, 2)
	other := createTestRoom(t, db, "102", 100, 2)

	_, err := svc.CreateReview(alice.ID, room.ID, 4, "good")
	require.NoError(t, err)
	_, err = svc.CreateReview(bob.ID, room.ID, 5, "great")
	require.NoError(t, err)
	_, err = svc.CreateReview(alice.ID, other.ID, 1, "bad")
	require.NoError(t, err)

	reviews, err := svc.ListRoomReviews(room.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	filtered, total, err := svc.ListReviews(other.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, filtered, 1)
	assert.Equal(t, 1, filtered[0].Rating)

	all, total, err := svc.ListReviews(0, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, all, 3)
}
