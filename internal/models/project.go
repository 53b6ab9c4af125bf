package models

import "time"

type ProjectRole string

const (
	ProjectRoleOwner  ProjectRole = "OWNER"
	ProjectRoleMember ProjectRole = "MEMBER"
)

type Project struct {
	ID          int             `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Code        string          `gorm:"uniqueIndex;not null" json:"code"` // join code handed out by the owner
	OwnerID     int             `gorm:"not null" json:"owner_id"`
	Members     []ProjectMember `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ProjectMember struct {
	ID        int         `gorm:"primaryKey" json:"id"`
	ProjectID int         `gorm:"not null;uniqueIndex:idx_project_member" json:"project_id"`
	UserID    int         `gorm:"not null;uniqueIndex:idx_project_member" json:"user_id"`
	Role      ProjectRole `gorm:"not null;default:'MEMBER'" json:"role"`
	User      User        `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type JoinProjectRequest struct {
	Code string `json:"code" binding:"required"`
}
