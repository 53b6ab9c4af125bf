package models

import "time"

type Post struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	ProjectID int       `gorm:"not null;index" json:"project_id"`
	UserID    int       `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	IsNotice  bool      `gorm:"default:false" json:"is_notice"`
	HasVoting bool      `gorm:"default:false" json:"has_voting"`
	Vote      *Vote     `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdatePostRequest carries the fields to change; nil leaves a field as is.
type UpdatePostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	IsNotice *bool   `json:"is_notice"`
}

type CreatePostRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content"`
	IsNotice  bool   `json:"is_notice"`
	HasVoting bool   `json:"has_voting"`

	// Only read when HasVoting is set.
	VoteTitle            string         `json:"vote_title"`
	VoteOptions          []string       `json:"vote_options"`
	AllowMultipleChoices bool           `json:"allow_multiple_choices"`
	IsAnonymous          bool           `json:"is_anonymous"`
	VoteEndTime          *LocalDateTime `json:"vote_end_time"`
}
