package controllers

import (
	"net/http"
	"strconv"

	"resort-backend/middleware"
	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

type reviewPayload struct {
	RoomID  uint   `json:"roomId"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	client, ok := middleware.CurrentClient(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	var payload reviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if payload.RoomID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "roomId is required")
		return
	}

	review, err := rc.Reviews.CreateReview(client.ID, payload.RoomID, payload.Rating, payload.Comment)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, review)
}

// GetReviews lists reviews, optionally filtered by ?roomId=.
func (rc *ReviewController) GetReviews(c *gin.Context) {
	var roomID uint
	if v, err := strconv.ParseUint(c.Query("roomId"), 10, 32); err == nil {
		roomID = uint(v)
	}

	page := utils.ParsePage(c)
	reviews, total, err := rc.Reviews.ListReviews(roomID, page.Page, page.Limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONList(c, http.StatusOK, total, page, reviews)
}

func (rc *ReviewController) GetReview(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id")
		return
	}
	review, err := rc.Reviews.GetReview(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, review)
}

// GetRoomReviews lists all reviews for one room.
// GET /api/rooms/:id/reviews
func (rc *ReviewController) GetRoomReviews(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room id")
		return
	}
	reviews, err := rc.Reviews.ListRoomReviews(uint(roomID))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(reviews),
		"data":    reviews,
	})
}

func (rc *ReviewController) UpdateReview(c *gin.Context) {
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

	var payload reviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	review, err := rc.Reviews.UpdateReview(id, client.ID, payload.Rating, payload.Comment)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, review)
}

func (rc *ReviewController) DeleteReview(c *gin.Context) {
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

	if err := rc.Reviews.DeleteReview(id, client.ID, client.Role); err != nil {
		writeServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{})
}
