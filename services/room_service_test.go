package services

import (
	"context"
	"testing"
	"time"

	"resort-backend/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *RoomCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRoomCache(client, time.Minute)
}

func TestCreateRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db, nil)

	room := &models.Room{
		RoomNumber:    "201",
		Name:          "Garden Suite",
		Type:          models.RoomTypeLuxury,
		PricePerNight: 250,
		Capacity:      4,
		Rating:        4.9, // caller-supplied, must be ignored
		NumReviews:    12,
	}
	require.NoError(t, svc.CreateRoom(room))
	assert.Equal(t, 0.0, room.Rating)
	assert.Equal(t, 0, room.NumReviews)
	assert.Equal(t, models.RoomStatusAvailable, room.Status)

	dup := &models.Room{RoomNumber: "201", Name: "Imposter", Type: models.RoomTypeSingle, PricePerNight: 50, Capacity: 1}
	assert.ErrorIs(t, svc.CreateRoom(dup), ErrDuplicateRoom)
}

func TestCreateRoomValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db, nil)

	cases := []*models.Room{
		{RoomNumber: "", PricePerNight: 50, Capacity: 1},
		{RoomNumber: "301", Type: "penthouse", PricePerNight: 50, Capacity: 1},
		{RoomNumber: "301", PricePerNight: 0, Capacity: 1},
		{RoomNumber: "301", PricePerNight: 50, Capacity: 0},
		{RoomNumber: "301", PricePerNight: 50, Capacity: 11},
	}
	for _, room := range cases {
		assert.ErrorIs(t, svc.CreateRoom(room), ErrValidation)
	}
}

func TestGetRoomUsesCache(t *testing.T) {
	db := newTestDB(t)
	cache := newTestCache(t)
	svc := NewRoomService(db, cache)
	room := createTestRoom(t, db, "101", 100, 2)

	// First read populates the cache.
	got, err := svc.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Equal(t, room.RoomNumber, got.RoomNumber)

	cached, ok := cache.Get(context.Background(), room.ID)
	require.True(t, ok)
	assert.Equal(t, room.RoomNumber, cached.RoomNumber)

	// Second read is served from the cache even if the row vanishes.
	require.NoError(t, db.Unscoped().Delete(&models.Room{}, room.ID).Error)
	got, err = svc.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Equal(t, room.ID, got.ID)
}

func TestUpdateRoomInvalidatesCache(t *testing.T) {
	db := newTestDB(t)
	cache := newTestCache(t)
	svc := NewRoomService(db, cache)
	room := createTestRoom(t, db, "101", 100, 2)

	_, err := svc.GetRoom(room.ID)
	require.NoError(t, err)
	_, ok := cache.Get(context.Background(), room.ID)
	require.True(t, ok)

	updated, err := svc.UpdateRoom(room.ID, map[string]interface{}{
		"price_per_night": 120.0,
		"rating":          5.0, // derived, stripped
	})
	require.NoError(t, err)
	assert.Equal(t, 120.0, updated.PricePerNight)
	assert.Equal(t, 0.0, updated.Rating)

	_, ok = cache.Get(context.Background(), room.ID)
	assert.False(t, ok)
}

func TestGetRoomWithoutCache(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db, nil)
	room := createTestRoom(t, db, "101", 100, 2)

	got, err := svc.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Equal(t, room.ID, got.ID)

	_, err = svc.GetRoom(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListRoomsFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db, nil)

	require.NoError(t, svc.CreateRoom(&models.Room{
		RoomNumber: "101", Name: "Standard Single", Type: models.RoomTypeSingle,
		PricePerNight: 80, Capacity: 1,
	}))
	require.NoError(t, svc.CreateRoom(&models.Room{
		RoomNumber: "201", Name: "Ocean Suite", Type: models.RoomTypeLuxury,
		PricePerNight: 300, Capacity: 4, Description: "panoramic sea view",
	}))

	suites, total, err := svc.ListRooms(RoomFilter{Type: models.RoomTypeLuxury}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, suites, 1)
	assert.Equal(t, "201", suites[0].RoomNumber)

	cheap, total, err := svc.ListRooms(RoomFilter{MaxPrice: 100}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "101", cheap[0].RoomNumber)

	matched, total, err := svc.ListRooms(RoomFilter{Search: "sea view"}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "201", matched[0].RoomNumber)
}

func TestDeleteRoom(t *testing.T) {
	db := newTestDB(t)
	cache := newTestCache(t)
	svc := NewRoomService(db, cache)
	room := createTestRoom(t, db, "101", 100, 2)

	_, err := svc.GetRoom(room.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRoom(room.ID))
	_, ok := cache.Get(context.Background(), room.ID)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.DeleteRoom(room.ID), ErrNotFound)
}
