package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Feedback struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Feedback  string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (feedback *Feedback) BeforeCreate(tx *gorm.DB) (err error) {
	if feedback.ID == uuid.Nil {
		feedback.ID = uuid.New()
	}
	return
}

func (Feedback) TableName() string {
	return "feedback"
}

type FeedbackView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	EventID   uuid.UUID `json:"event_id"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}

func NewFeedbackView(feedback *Feedback) FeedbackView {
	return FeedbackView{
		ID:        feedback.ID,
		UserID:    feedback.UserID,
		EventID:   feedback.EventID,
		Feedback:  feedback.Feedback,
		CreatedAt: feedback.CreatedAt,
	}
}

func NewFeedbackViews(feedbacks []Feedback) []FeedbackView {
	views := make([]FeedbackView, 0, len(feedbacks))
	for i := range feedbacks {
		views = append(views, NewFeedbackView(&feedbacks[i]))
	}
	return views
}
