package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raffialdf/evently/internal/helpers"
	"github.com/raffialdf/evently/internal/models"
)

type CreateEventRequest struct {
	Name             string    `json:"name" binding:"required"`
	ImageURL         string    `json:"image_url" binding:"required"`
	Datetime         time.Time `json:"datetime"`
	Location         string    `json:"location" binding:"required"`
	Description      string    `json:"description" binding:"required"`
	Capacity         *int      `json:"capacity" binding:"required,gt=0"`
	TicketsRemaining *int      `json:"tickets_remaining" binding:"required,gte=0"`
}

// UpdateEventRequest applies partial-update semantics: only the fields
// present in the body are written.
type UpdateEventRequest struct {
	ID               uuid.UUID  `json:"id" binding:"required"`
	Name             *string    `json:"name"`
	ImageURL         *string    `json:"image_url"`
	Datetime         *time.Time `json:"datetime"`
	Location         *string    `json:"location"`
	Capacity         *int       `json:"capacity"`
	Description      *string    `json:"description"`
	TicketsRemaining *int       `json:"tickets_remaining"`
}

type DeleteEventRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
}

func CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	if *req.TicketsRemaining > *req.Capacity {
		helpers.RespondWithError(c, http.StatusBadRequest, "Remaining tickets cannot exceed capacity.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	datetime := req.Datetime
	if datetime.IsZero() {
		datetime = time.Now().UTC()
	}

	event := models.Event{
		Name:             req.Name,
		ImageURL:         req.ImageURL,
		Datetime:         datetime,
		Location:         req.Location,
		Capacity:         *req.Capacity,
		Description:      req.Description,
		TicketsRemaining: *req.TicketsRemaining,
	}

	if err := gormDB.Create(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully.",
		"event":   models.NewEventView(&event),
	})
}

func GetEvent(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	c.JSON(http.StatusOK, models.NewEventView(&event))
}

func ListEvents(c *gin.Context) {
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

	query := gormDB.Model(&models.Event{})
	if location := c.Query("location"); location != "" {
		query = query.Where("location = ?", location)
	}

	var totalCount int64
	query.Count(&totalCount)

	var events []models.Event
	if err := query.Offset(pagination.Offset()).Limit(pagination.Limit).Order("datetime ASC").Find(&events).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": models.NewEventViews(events),
		"total":  totalCount,
		"page":   pagination.Page,
		"limit":  pagination.Limit,
	})
}

func UpdateEvent(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing event ID.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ?", req.ID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding event.")
		return
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.ImageURL != nil {
		event.ImageURL = *req.ImageURL
	}
	if req.Datetime != nil {
		event.Datetime = *req.Datetime
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Capacity != nil {
		event.Capacity = *req.Capacity
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.TicketsRemaining != nil {
		event.TicketsRemaining = *req.TicketsRemaining
	}

	if event.TicketsRemaining < 0 || event.TicketsRemaining > event.Capacity {
		helpers.RespondWithError(c, http.StatusBadRequest, "Remaining tickets must be between 0 and capacity.")
		return
	}

	if err := gormDB.Save(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
		"event":   models.NewEventView(&event),
	})
}

// DeleteEvent hard-deletes the event and everything referencing it
// (tickets, purchase links, feedback, organizer rows) in one
// transaction.
func DeleteEvent(c *gin.Context) {
	var req DeleteEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing event ID.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	err := gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", req.ID).Delete(&models.Ticket{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", req.ID).Delete(&models.UserEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", req.ID).Delete(&models.Feedback{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", req.ID).Delete(&models.EventOrganizer{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", req.ID).Delete(&models.Event{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully.",
	})
}
