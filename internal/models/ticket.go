package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ticket struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	EventID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Event        Event
	TicketNumber int        `gorm:"not null"`
	Price        float64    `gorm:"not null"`
	UserID       *uuid.UUID `gorm:"type:uuid;index"`
	PhoneNumber  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ticket *Ticket) BeforeCreate(tx *gorm.DB) (err error) {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	return
}

type TicketView struct {
	ID           uuid.UUID  `json:"id"`
	EventID      uuid.UUID  `json:"event_id"`
	TicketNumber int        `json:"ticket_number"`
	Price        float64    `json:"price"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	PhoneNumber  *string    `json:"phone_number,omitempty"`
}

func NewTicketView(ticket *Ticket) TicketView {
	return TicketView{
		ID:           ticket.ID,
		EventID:      ticket.EventID,
		TicketNumber: ticket.TicketNumber,
		Price:        ticket.Price,
		UserID:       ticket.UserID,
		PhoneNumber:  ticket.PhoneNumber,
	}
}

func NewTicketViews(tickets []Ticket) []TicketView {
	views := make([]TicketView, 0, len(tickets))
	for i := range tickets {
		views = append(views, NewTicketView(&tickets[i]))
	}
	return views
}
