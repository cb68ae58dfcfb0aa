package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	Name             string    `gorm:"not null"`
	ImageURL         string    `gorm:"not null"`
	Datetime         time.Time
	Location         string `gorm:"not null"`
	Capacity         int    `gorm:"not null"`
	Description      string `gorm:"type:text"`
	TicketsRemaining int    `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Tickets          []Ticket         `gorm:"foreignKey:EventID"`
	UserEvents       []UserEvent      `gorm:"foreignKey:EventID"`
	Feedbacks        []Feedback       `gorm:"foreignKey:EventID"`
	Organizers       []EventOrganizer `gorm:"foreignKey:EventID"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}

type EventView struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	ImageURL         string    `json:"image_url"`
	Datetime         time.Time `json:"datetime"`
	Location         string    `json:"location"`
	Capacity         int       `json:"capacity"`
	Description      string    `json:"description"`
	TicketsRemaining int       `json:"tickets_remaining"`
}

func NewEventView(event *Event) EventView {
	return EventView{
		ID:               event.ID,
		Name:             event.Name,
		ImageURL:         event.ImageURL,
		Datetime:         event.Datetime,
		Location:         event.Location,
		Capacity:         event.Capacity,
		Description:      event.Description,
		TicketsRemaining: event.TicketsRemaining,
	}
}

func NewEventViews(events []Event) []EventView {
	views := make([]EventView, 0, len(events))
	for i := range events {
		views = append(views, NewEventView(&events[i]))
	}
	return views
}
