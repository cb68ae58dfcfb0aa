package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raffialdf/evently/internal/helpers"
	"github.com/raffialdf/evently/internal/models"
)

type FeedbackRequest struct {
	UserID   uuid.UUID `json:"user_id" binding:"required"`
	EventID  uuid.UUID `json:"event_id" binding:"required"`
	Feedback string    `json:"feedback" binding:"required"`
}

func ListFeedbacks(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	pagination, err := helpers.ParsePagination(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var totalCount int64
	gormDB.Model(&models.Feedback{}).Count(&totalCount)

	var feedbacks []models.Feedback
	if err := gormDB.Offset(pagination.Offset()).Limit(pagination.Limit).Order("created_at DESC").Find(&feedbacks).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving feedback.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"feedbacks": models.NewFeedbackViews(feedbacks),
		"total":     totalCount,
		"page":      pagination.Page,
		"limit":     pagination.Limit,
	})
}

func CreateFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var user models.User
	if err := gormDB.Where("id = ?", req.UserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "User not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving user.")
		return
	}

	var event models.Event
	if err := gormDB.Where("id = ?", req.EventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	feedback := models.Feedback{
		UserID:   req.UserID,
		EventID:  req.EventID,
		Feedback: req.Feedback,
	}

	if err := gormDB.Create(&feedback).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create feedback.")
		return
	}

	c.JSON(http.StatusCreated, models.NewFeedbackView(&feedback))
}
