package controllers

import (
	"net/http"
	"time"

	"resort-backend/middleware"
	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type createBookingPayload struct {
	RoomID          uint   `json:"roomId" binding:"required"`
	CheckInDate     string `json:"checkInDate" binding:"required"`
	CheckOutDate    string `json:"checkOutDate" binding:"required"`
	Guests          int    `json:"guests" binding:"required,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

// parseDate accepts both bare dates and RFC3339 timestamps, the two formats
// clients send.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	client, ok := middleware.CurrentClient(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	checkIn, ok1 := parseDate(payload.CheckInDate)
	checkOut, ok2 := parseDate(payload.CheckOutDate)
	if !ok1 || !ok2 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid check-in or check-out date format")
		return
	}

	booking, err := bc.Bookings.CreateBooking(services.CreateBookingInput{
		ClientID:        client.ID,
		RoomID:          payload.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Guests:          payload.Guests,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetBookings lists bookings; non-admin callers only see their own.
func (bc *BookingController) GetBookings(c *gin.Context) {
	client, ok := middleware.CurrentClient(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	page := utils.ParsePage(c)
	bookings, total, err := bc.Bookings.ListBookings(client.ID, client.Role, page.Page, page.Limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONList(c, http.StatusOK, total, page, bookings)
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	client, ok := middleware.CurrentClient(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id")
		return
	}

	booking, err := bc.Bookings.GetBooking(id, client.ID, client.Role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

// UpdateBookingStatus applies a lifecycle transition; authorization lives in
// the service.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	client, ok := middleware.CurrentClient(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Status is required")
		return
	}

	booking, err := bc.Bookings.UpdateBookingStatus(id, client.ID, client.Role, payload.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	client, ok := middleware.CurrentClient(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := bc.Bookings.DeleteBooking(id, client.ID, client.Role); err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{})
}

// CheckAvailability answers pre-booking queries.
// GET /api/rooms/:id/availability?checkIn=...&checkOut=...
func (bc *BookingController) CheckAvailability(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id")
		return
	}

	checkIn, ok1 := parseDate(c.Query("checkIn"))
	checkOut, ok2 := parseDate(c.Query("checkOut"))
	if !ok1 || !ok2 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid check-in or check-out date format")
		return
	}

	available, err := bc.Bookings.IsRoomAvailable(id, checkIn, checkOut)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"available": available})
}
