package models

import (
	"time"

	"cloud.google.com/go/civil"
)

// Vote is the poll attached to a post. A post has at most one.
type Vote struct {
	ID            int            `gorm:"primaryKey" json:"id"`
	PostID        int            `gorm:"not null;uniqueIndex" json:"post_id"`
	Title         string         `gorm:"not null" json:"title"`
	StartAt       LocalDateTime  `json:"start_at"`
	EndAt         *LocalDateTime `json:"end_at"` // nil: never closes
	AllowMultiple bool           `gorm:"not null;default:false" json:"allow_multiple_choices"`
	IsAnonymous   bool           `gorm:"not null;default:false" json:"is_anonymous"`
	Options       []VoteOption   `gorm:"foreignKey:VoteID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// ClosedAt reports whether the deadline lies strictly before now.
func (v *Vote) ClosedAt(now civil.DateTime) bool {
	return v.EndAt != nil && v.EndAt.Before(now)
}

type VoteOption struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	VoteID   int    `gorm:"not null;index" json:"vote_id"`
	Content  string `gorm:"not null" json:"content"`
	Position int    `gorm:"not null;default:0" json:"position"`
	// Count caches the number of VoteRecords of this option. It is only
	// written in the same transaction that inserts or deletes a record.
	Count   int          `gorm:"column:vote_count;not null;default:0;check:vote_count >= 0" json:"count"`
	Records []VoteRecord `gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE" json:"-"`
}

// VoteRecord is one user's selection of one option. VoteID duplicates the
// option's parent so (user, vote) lookups need no join.
type VoteRecord struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    int       `gorm:"not null;uniqueIndex:idx_record_user_option;index:idx_record_user_vote" json:"user_id"`
	VoteID    int       `gorm:"not null;index:idx_record_user_vote" json:"vote_id"`
	OptionID  int       `gorm:"not null;uniqueIndex:idx_record_user_option" json:"option_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateVoteRequest struct {
	PostID               int            `json:"post_id" binding:"required"`
	Title                string         `json:"title" binding:"required"`
	OptionContents       []string       `json:"option_contents"`
	AllowMultipleChoices bool           `json:"allow_multiple_choices"`
	IsAnonymous          bool           `json:"is_anonymous"`
	EndTime              *LocalDateTime `json:"end_time"`
}
