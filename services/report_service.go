package services

import (
	"bytes"
	"fmt"

	"resort-backend/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReportService backs the admin dashboard: aggregate counts, revenue and the
// bookings spreadsheet export. Convenience views only; nothing here is
// consulted by the booking lifecycle.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

type DashboardStats struct {
	Clients       int64              `json:"clients"`
	Rooms         int64              `json:"rooms"`
	Services      int64              `json:"services"`
	Bookings      int64              `json:"bookings"`
	ServiceOrders int64              `json:"serviceOrders"`
	Reviews       int64              `json:"reviews"`
	Revenue       map[string]float64 `json:"revenueByStatus"`
}

func (s *ReportService) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{Revenue: map[string]float64{}}

	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.Client{}, &stats.Clients},
		{&models.Room{}, &stats.Rooms},
		{&models.Service{}, &stats.Services},
		{&models.Booking{}, &stats.Bookings},
		{&models.ServiceOrder{}, &stats.ServiceOrders},
		{&models.Review{}, &stats.Reviews},
	}
	for _, c := range counts {
		if err := s.DB.Model(c.model).Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("failed to count records: %w", err)
		}
	}

	rows := []struct {
		Status  string
		Revenue float64
	}{}
	err := s.DB.Model(&models.Booking{}).
		Select("status, COALESCE(SUM(total_price), 0) AS revenue").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking revenue: %w", err)
	}
	for _, r := range rows {
		stats.Revenue[r.Status] = r.Revenue
	}
	return stats, nil
}

// ExportBookings renders every booking into an xlsx workbook and returns it
// as an in-memory buffer for the HTTP layer to stream.
func (s *ReportService) ExportBookings() (*bytes.Buffer, error) {
	var bookings []models.Booking
	err := s.DB.Preload("Client").Preload("Room").
		Order("check_in_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Reference", "Client", "Email", "Room", "Check-in", "Check-out", "Guests", "Status", "Total"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheet, "A1", lastHeader, headerStyle)

	for i, b := range bookings {
		row := i + 2
		values := []interface{}{
			b.ReferenceCode,
			b.Client.FirstName + " " + b.Client.LastName,
			b.Client.Email,
			b.Room.RoomNumber,
			b.CheckInDate.Format("2006-01-02"),
			b.CheckOutDate.Format("2006-01-02"),
			b.Guests,
			b.Status,
			b.TotalPrice,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "D", 22)
	_ = f.SetColWidth(sheet, "E", "I", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}
