package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"resort-backend/models"

	"github.com/redis/go-redis/v9"
)

// RoomCache is a read-through cache for room records. Every method is safe
// on a nil receiver or nil client, so the services work unchanged when
// Redis is not configured.
type RoomCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRoomCache(client *redis.Client, ttl time.Duration) *RoomCache {
	return &RoomCache{client: client, ttl: ttl}
}

func roomKey(id uint) string {
	return fmt.Sprintf("room:%d", id)
}

func (c *RoomCache) Get(ctx context.Context, id uint) (*models.Room, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, roomKey(id)).Result()
	if err != nil {
		return nil, false
	}
	var room models.Room
	if err := json.Unmarshal([]byte(val), &room); err != nil {
		return nil, false
	}
	return &room, true
}

func (c *RoomCache) Set(ctx context.Context, room *models.Room) {
	if c == nil || c.client == nil || room == nil {
		return
	}
	data, err := json.Marshal(room)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, roomKey(room.ID), data, c.ttl).Err()
}

// Invalidate drops the cached entry after any write that touches the room,
// including review-driven rating recomputes.
func (c *RoomCache) Invalidate(ctx context.Context, id uint) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, roomKey(id)).Err()
}
