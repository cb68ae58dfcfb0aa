package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventOrganizer struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	EventID     uuid.UUID `gorm:"type:uuid;not null;index"`
	OrganizerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Organizer   User      `gorm:"foreignKey:OrganizerID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (organizer *EventOrganizer) BeforeCreate(tx *gorm.DB) (err error) {
	if organizer.ID == uuid.Nil {
		organizer.ID = uuid.New()
	}
	return
}

type EventOrganizerView struct {
	ID          uuid.UUID `json:"id"`
	EventID     uuid.UUID `json:"event_id"`
	OrganizerID uuid.UUID `json:"organizer_id"`
}

func NewEventOrganizerView(organizer *EventOrganizer) EventOrganizerView {
	return EventOrganizerView{
		ID:          organizer.ID,
		EventID:     organizer.EventID,
		OrganizerID: organizer.OrganizerID,
	}
}

func NewEventOrganizerViews(organizers []EventOrganizer) []EventOrganizerView {
	views := make([]EventOrganizerView, 0, len(organizers))
	for i := range organizers {
		views = append(views, NewEventOrganizerView(&organizers[i]))
	}
	return views
}
