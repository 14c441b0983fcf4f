package controllers

import (
	"net/http"

	"resort-backend/middleware"
	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Clients *services.ClientService
	Tokens  *utils.TokenIssuer
}

func NewAuthController(clients *services.ClientService, tokens *utils.TokenIssuer) *AuthController {
	return &AuthController{Clients: clients, Tokens: tokens}
}

type registerPayload struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required,min=6"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account and returns a signed token alongside the
// public profile fields.
func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	client, err := ac.Clients.Register(services.RegisterInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Password:  payload.Password,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	ac.tokenResponse(c, http.StatusCreated, client)
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please provide an email and password")
		return
	}

	client, err := ac.Clients.Authenticate(payload.Email, payload.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	ac.tokenResponse(c, http.StatusOK, client)
}

// Me returns the authenticated client's profile.
func (ac *AuthController) Me(c *gin.Context) {
	client, ok := middleware.CurrentClient(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, client)
}

type updateDetailsPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// UpdateDetails lets the authenticated client change their own profile
// fields. Role and password never travel through this endpoint.
func (ac *AuthController) UpdateDetails(c *gin.Context) {
	client, ok := middleware.CurrentClient(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	var payload updateDetailsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updates := map[string]interface{}{}
	if payload.FirstName != "" {
		updates["first_name"] = payload.FirstName
	}
	if payload.LastName != "" {
		updates["last_name"] = payload.LastName
	}
	if payload.Email != "" {
		updates["email"] = payload.Email
	}
	if payload.Phone != "" {
		updates["phone"] = payload.Phone
	}

	updated, err := ac.Clients.UpdateClient(client.ID, updates)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (ac *AuthController) tokenResponse(c *gin.Context, code int, client *models.Client) {
	token, err := ac.Tokens.Sign(client)
	if err != nil {
		_ = c.Error(err)
		utils.JSONError(c, http.StatusInternalServerError, "Server Error")
		return
	}

	c.JSON(code, gin.H{
		"success": true,
		"token":   token,
		"data": gin.H{
			"id":        client.ID,
			"firstName": client.FirstName,
			"lastName":  client.LastName,
			"email":     client.Email,
			"role":      client.Role,
		},
	})
}
