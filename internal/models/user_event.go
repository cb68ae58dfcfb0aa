package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserEvent links a purchaser to an event. A user holds at most one
// link per event.
type UserEvent struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_events_user_event"`
	EventID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_events_user_event"`
	TicketNumber int       `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userEvent *UserEvent) BeforeCreate(tx *gorm.DB) (err error) {
	if userEvent.ID == uuid.Nil {
		userEvent.ID = uuid.New()
	}
	return
}

func (UserEvent) TableName() string {
	return "user_events"
}

type UserEventView struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	EventID      uuid.UUID `json:"event_id"`
	TicketNumber int       `json:"ticket_number"`
}

func NewUserEventView(userEvent *UserEvent) UserEventView {
	return UserEventView{
		ID:           userEvent.ID,
		UserID:       userEvent.UserID,
		EventID:      userEvent.EventID,
		TicketNumber: userEvent.TicketNumber,
	}
}

func NewUserEventViews(userEvents []UserEvent) []UserEventView {
	views := make([]UserEventView, 0, len(userEvents))
	for i := range userEvents {
		views = append(views, NewUserEventView(&userEvents[i]))
	}
	return views
}
