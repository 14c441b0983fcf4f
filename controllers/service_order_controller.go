package controllers

import (
	"net/http"

	"resort-backend/middleware"
	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
)

type ServiceOrderController struct {
	Orders *services.ServiceOrderService
}

func NewServiceOrderController(orders *services.ServiceOrderService) *ServiceOrderController {
	return &ServiceOrderController{Orders: orders}
}

type createOrderPayload struct {
	ServiceID       uint   `json:"serviceId" binding:"required"`
	AppointmentDate string `json:"appointmentDate" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

func (oc *ServiceOrderController) CreateServiceOrder(c *gin.Context) {
	client, ok := middleware.CurrentClient(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	var payload createOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	when, ok2 := parseDate(payload.AppointmentDate)
	if !ok2 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid appointment date format")
		return
	}

	order, err := oc.Orders.CreateServiceOrder(services.CreateServiceOrderInput{
		ClientID:        client.ID,
		ServiceID:       payload.ServiceID,
		AppointmentDate: when,
		Quantity:        payload.Quantity,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, order)
}

func (oc *ServiceOrderController) GetServiceOrders(c *gin.Context) {
	client, ok := middleware.CurrentClient(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	page := utils.ParsePage(c)
	orders, total, err := oc.Orders.ListServiceOrders(client.ID, client.Role, page.Page, page.Limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONList(c, http.StatusOK, total, page, orders)
}

func (oc *ServiceOrderController) GetServiceOrder(c *gin.Context) {
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

	order, err := oc.Orders.GetServiceOrder(id, client.ID, client.Role)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}

func (oc *ServiceOrderController) UpdateServiceOrderStatus(c *gin.Context) {
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

	order, err := oc.Orders.UpdateServiceOrderStatus(id, client.ID, client.Role, payload.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, order)
}

func (oc *ServiceOrderController) DeleteServiceOrder(c *gin.Context) {
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

	if err := oc.Orders.DeleteServiceOrder(id, client.ID, client.Role); err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{})
}
