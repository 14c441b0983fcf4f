package controllers

import (
	"net/http"

	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
)

// ClientController exposes admin-only account management.
type ClientController struct {
	Clients *services.ClientService
}

func NewClientController(clients *services.ClientService) *ClientController {
	return &ClientController{Clients: clients}
}

// GetClients lists accounts with search and role filtering.
// GET /api/clients?search=&role=&page=&limit=
func (cc *ClientController) GetClients(c *gin.Context) {
	filter := services.ClientFilter{
		Role:   c.Query("role"),
		Search: c.Query("search"),
	}

	page := utils.ParsePage(c)
	clients, total, err := cc.Clients.ListClients(filter, page.Page, page.Limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONList(c, http.StatusOK, total, page, clients)
}

func (cc *ClientController) GetClient(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id")
		return
	}
	client, err := cc.Clients.GetClient(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, client)
}

func (cc *ClientController) UpdateClient(c *gin.Context) {
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

	client, err := cc.Clients.UpdateClient(id, updates)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, client)
}

func (cc *ClientController) DeleteClient(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := cc.Clients.DeleteClient(id); err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{})
}
