package models

import "time"

// TimePoll is a meeting-time scheduling poll over StartDate..EndDate
// (inclusive) and the daily window [DayStart, DayEnd).
type TimePoll struct {
	ID        int            `gorm:"primaryKey" json:"id"`
	ProjectID int            `gorm:"not null;index" json:"project_id"`
	CreatorID int            `gorm:"not null" json:"creator_id"`
	Title     string         `gorm:"not null" json:"title"`
	StartDate Date           `gorm:"not null" json:"start_date"`
	EndDate   Date           `gorm:"not null;index" json:"end_date"`
	DayStart  TimeOfDay      `gorm:"not null" json:"day_start"`
	DayEnd    TimeOfDay      `gorm:"not null" json:"day_end"`
	Responses []TimeResponse `gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
}

// TimeResponse is one free interval [StartAt, EndAt) submitted by a user.
type TimeResponse struct {
	ID      int           `gorm:"primaryKey" json:"id"`
	PollID  int           `gorm:"not null;index:idx_response_poll_user" json:"poll_id"`
	UserID  int           `gorm:"not null;index:idx_response_poll_user" json:"user_id"`
	StartAt LocalDateTime `gorm:"not null" json:"start"`
	EndAt   LocalDateTime `gorm:"not null" json:"end"`
}

type CreateTimePollRequest struct {
	ProjectID int       `json:"project_id" binding:"required"`
	Title     string    `json:"title" binding:"required"`
	StartDate Date      `json:"start_date"`
	Duration  int       `json:"duration" binding:"required"`
	DayStart  TimeOfDay `json:"start_time_of_day"`
	DayEnd    TimeOfDay `json:"end_time_of_day"`
}

type TimeRange struct {
	Start LocalDateTime `json:"start"`
	End   LocalDateTime `json:"end"`
}

type SubmitAvailabilityRequest struct {
	AvailableTimes []TimeRange `json:"available_times"`
}
