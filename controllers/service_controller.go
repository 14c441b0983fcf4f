package controllers

import (
	"net/http"

	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
)

type ServiceController struct {
	Catalog *services.ServiceCatalogService
}

func NewServiceController(catalog *services.ServiceCatalogService) *ServiceController {
	return &ServiceController{Catalog: catalog}
}

// GetServices lists the service catalog.
// GET /api/services?category=&available=&search=&page=&limit=
func (sc *ServiceController) GetServices(c *gin.Context) {
	filter := services.ServiceFilter{
		Category:      c.Query("category"),
		AvailableOnly: c.Query("available") == "true",
		Search:        c.Query("search"),
	}

	page := utils.ParsePage(c)
	list, total, err := sc.Catalog.ListServices(filter, page.Page, page.Limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONList(c, http.StatusOK, total, page, list)
}

func (sc *ServiceController) GetService(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id")
		return
	}
	svc, err := sc.Catalog.GetService(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, svc)
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := sc.Catalog.CreateService(&svc); err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, svc)
}

func (sc *ServiceController) UpdateService(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	svc, err := sc.Catalog.UpdateService(id, updates)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, svc)
}

func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := sc.Catalog.DeleteService(id); err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{})
}
