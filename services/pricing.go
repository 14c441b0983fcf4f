package services

import (
	"math"
	"time"
)

// Nights returns the number of billable nights between check-in and
// check-out, rounding partial days up.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// PriceForStay derives the total price of a stay from the nightly rate.
// The date range must span at least one night.
func PriceForStay(nightlyRate float64, checkIn, checkOut time.Time) (float64, error) {
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return 0, validationErr("check-out date must be after check-in date")
	}
	return float64(nights) * nightlyRate, nil
}

// PriceForOrder derives the total price of a service order.
func PriceForOrder(unitPrice float64, quantity int) (float64, error) {
	if quantity <= 0 {
		return 0, validationErr("quantity must be at least 1")
	}
	return unitPrice * float64(quantity), nil
}
