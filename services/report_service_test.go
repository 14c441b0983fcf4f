package services

import (
	"bytes"
	"testing"

	"resort-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)
	bookings := NewBookingService(db)

	client := createTestClient(t, db, "guest@example.com", models.RoleUser)
	admin := createTestClient(t, db, "boss@admin.com", models.RoleAdmin)
	room := createTestRoom(t, db, "101", 100, 2)
	createTestService(t, db, "Massage", 50)

	b1, err := bookings.CreateBooking(CreateBookingInput{
		ClientID: client.ID, RoomID: room.ID,
		CheckInDate: date("2024-07-01"), CheckOutDate: date("2024-07-03"), Guests: 1,
	})
	require.NoError(t, err)
	_, err = bookings.CreateBooking(CreateBookingInput{
		ClientID: client.ID, RoomID: room.ID,
		CheckInDate: date("2024-08-01"), CheckOutDate: date("2024-08-04"), Guests: 1,
	})
	require.NoError(t, err)
	_, err = bookings.UpdateBookingStatus(b1.ID, admin.ID, models.RoleAdmin, models.StatusConfirmed)
	require.NoError(t, err)

	stats, err := reports.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Clients)
	assert.EqualValues(t, 1, stats.Rooms)
	assert.EqualValues(t, 1, stats.Services)
	assert.EqualValues(t, 2, stats.Bookings)
	assert.Equal(t, 200.0, stats.Revenue[models.StatusConfirmed])
	assert.Equal(t, 300.0, stats.Revenue[models.StatusPending])
}

func TestExportBookings(t *testing.T) {
	db := newTestDB(t)
	reports := NewReportService(db)
	bookings := NewBookingService(db)

	client := createTestClient(t, db, "guest@example.com", models.RoleUser)
	room := createTestRoom(t, db, "101", 100, 2)
	booking, err := bookings.CreateBooking(CreateBookingInput{
		ClientID: client.ID, RoomID: room.ID,
		CheckInDate: date("2024-07-01"), CheckOutDate: date("2024-07-03"), Guests: 2,
	})
	require.NoError(t, err)

	buf, err := reports.ExportBookings()
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Reference", rows[0][0])
	assert.Equal(t, booking.ReferenceCode, rows[1][0])
	assert.Equal(t, "101", rows[1][3])
}
