package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/raffialdf/evently/internal/helpers"
	"github.com/raffialdf/evently/internal/middleware"
	"github.com/raffialdf/evently/internal/models"
)

type PurchaseRequest struct {
	EventID     uuid.UUID `json:"event_id" binding:"required"`
	PhoneNumber string    `json:"phone_number" binding:"required"`
	Price       float64   `json:"price"`
}

var (
	errNoTicketsAvailable = errors.New("no tickets available")
	errAlreadyPurchased   = errors.New("already purchased")
)

func ListTickets(c *gin.Context) {
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
	gormDB.Model(&models.Ticket{}).Count(&totalCount)

	var tickets []models.Ticket
	if err := gormDB.Offset(pagination.Offset()).Limit(pagination.Limit).Order("created_at DESC").Find(&tickets).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving tickets.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tickets": models.NewTicketViews(tickets),
		"total":   totalCount,
		"page":    pagination.Page,
		"limit":   pagination.Limit,
	})
}

// PurchaseTicket decrements the event's remaining-ticket counter and
// issues a ticket in one transaction. The capacity check and the
// decrement are a single conditional UPDATE: concurrent purchases
// serialize on the row lock, and whoever loses the last ticket sees
// zero rows affected.
func PurchaseTicket(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}
	purchaserID := userID.(uuid.UUID)

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ?", req.EventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	var ticket models.Ticket
	err := gormDB.Transaction(func(tx *gorm.DB) error {
		var existing models.UserEvent
		if err := tx.Where("user_id = ? AND event_id = ?", purchaserID, req.EventID).First(&existing).Error; err == nil {
			return errAlreadyPurchased
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		result := tx.Model(&models.Event{}).
			Where("id = ? AND tickets_remaining > 0", req.EventID).
			UpdateColumn("tickets_remaining", gorm.Expr("tickets_remaining - 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errNoTicketsAvailable
		}

		var updated models.Event
		if err := tx.Where("id = ?", req.EventID).First(&updated).Error; err != nil {
			return err
		}
		ticketNumber := updated.Capacity - updated.TicketsRemaining

		ticket = models.Ticket{
			EventID:      req.EventID,
			TicketNumber: ticketNumber,
			Price:        req.Price,
			UserID:       &purchaserID,
			PhoneNumber:  &req.PhoneNumber,
		}
		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}

		userEvent := models.UserEvent{
			UserID:       purchaserID,
			EventID:      req.EventID,
			TicketNumber: ticketNumber,
		}
		return tx.Create(&userEvent).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, errNoTicketsAvailable):
			helpers.RespondWithError(c, http.StatusConflict, "No tickets available for this event.")
		case errors.Is(err, errAlreadyPurchased):
			helpers.RespondWithError(c, http.StatusConflict, "You already have a ticket for this event.")
		default:
			helpers.RespondWithError(c, http.StatusInternalServerError, "Purchase failed.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Ticket purchased successfully.",
		"ticket":  models.NewTicketView(&ticket),
	})
}

// TicketQR renders a PNG QR code for a ticket owned by the caller. The
// payload carries an HMAC signature so door scanners can verify it
// against the database.
func TicketQR(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}
	ownerID := userID.(uuid.UUID)

	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket ID.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	cfg := middleware.GetConfig(c)
	if cfg == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Configuration not found.")
		return
	}

	var ticket models.Ticket
	if err := gormDB.Where("id = ?", ticketID).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving ticket.")
		return
	}

	if ticket.UserID == nil || *ticket.UserID != ownerID {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to generate a QR code for this ticket.")
		return
	}

	qrData := helpers.TicketQRData(ticket.ID, ticket.EventID, ownerID, cfg.JWTSecret)

	qrImage, err := qrcode.Encode(qrData, qrcode.Medium, 256)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code.")
		return
	}

	c.Data(http.StatusOK, "image/png", qrImage)
}
