package controllers

import (
	"fmt"
	"net/http"
	"time"

	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminController serves the dashboard: aggregate stats and exports.
type AdminController struct {
	Reports *services.ReportService
}

func NewAdminController(reports *services.ReportService) *AdminController {
	return &AdminController{Reports: reports}
}

func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.Reports.Stats()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// ExportBookings streams all bookings as an xlsx attachment.
func (ac *AdminController) ExportBookings(c *gin.Context) {
	buf, err := ac.Reports.ExportBookings()
	if err != nil {
		writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
