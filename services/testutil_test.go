package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"resort-backend/config"
	"resort-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createTestClient(t *testing.T, db *gorm.DB, email string, role models.Role) *models.Client {
	t.Helper()
	client := &models.Client{
		FirstName: "Test",
		LastName:  "Client",
		Email:     email,
		Password:  "irrelevant-hash",
		Role:      role,
	}
	require.NoError(t, db.Create(client).Error)
	return client
}

func createTestRoom(t *testing.T, db *gorm.DB, number string, nightly float64, capacity int) *models.Room {
	t.Helper()
	room := &models.Room{
		RoomNumber:    number,
		Name:          "Room " + number,
		Type:          models.RoomTypeDouble,
		PricePerNight: nightly,
		Capacity:      capacity,
		Status:        models.RoomStatusAvailable,
		Description:   "test room",
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func createTestService(t *testing.T, db *gorm.DB, name string, price float64) *models.Service {
	t.Helper()
	svc := &models.Service{
		Name:        name,
		Description: "test service",
		Price:       price,
		Category:    models.ServiceCategorySpa,
		Duration:    60,
		IsAvailable: true,
	}
	require.NoError(t, db.Create(svc).Error)
	return svc
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
