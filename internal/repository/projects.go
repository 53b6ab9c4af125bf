package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/teamboard/backend/internal/apperr"
	"github.com/teamboard/backend/internal/models"
)

type ProjectStore struct {
	db *gorm.DB
}

func NewProjectStore(db *gorm.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// Create inserts the project and makes its owner the first member.
func (s *ProjectStore) Create(ctx context.Context, project *models.Project) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ok, err := userExists(tx, project.OwnerID); err != nil {
			return err
		} else if !ok {
			return apperr.NotFound("repository.CreateProject", "user not found")
		}
		if err := tx.Omit("Members").Create(project).Error; err != nil {
			return err
		}
		owner := models.ProjectMember{
			ProjectID: project.ID,
			UserID:    project.OwnerID,
			Role:      models.ProjectRoleOwner,
		}
		return tx.Omit("User").Create(&owner).Error
	})
	return translate("repository.CreateProject", err, "")
}

func (s *ProjectStore) FindByID(ctx context.Context, projectID int) (*models.Project, error) {
	var project models.Project
	err := s.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Members.User").
		First(&project, projectID).Error
	if err != nil {
		return nil, translate("repository.FindProject", err, "project not found")
	}
	return &project, nil
}

func (s *ProjectStore) FindByCode(ctx context.Context, code string) (*models.Project, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).Where("code = ?", code).First(&project).Error; err != nil {
		return nil, translate("repository.FindProjectByCode", err, "no project with this code")
	}
	return &project, nil
}

// AddMember joins userID to the project. Joining twice is a Conflict.
func (s *ProjectStore) AddMember(ctx context.Context, projectID, userID int) error {
	member := models.ProjectMember{ProjectID: projectID, UserID: userID, Role: models.ProjectRoleMember}
	err := s.db.WithContext(ctx).Omit("User").Create(&member).Error
	if isUniqueViolation(err) {
		return apperr.Conflict("repository.AddMember", "already a member of this project")
	}
	return translate("repository.AddMember", err, "")
}

func (s *ProjectStore) IsMember(ctx context.Context, projectID, userID int) (bool, error) {
	ok, err := isMember(s.db.WithContext(ctx), projectID, userID)
	return ok, translate("repository.IsMember", err, "")
}
