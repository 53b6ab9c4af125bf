package repository

import (
	"gorm.io/gorm"

	"github.com/teamboard/backend/internal/models"
)

func exists(db *gorm.DB, model interface{}, query string, args ...interface{}) (bool, error) {
	var n int64
	if err := db.Model(model).Where(query, args...).Limit(1).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func userExists(db *gorm.DB, userID int) (bool, error) {
	return exists(db, &models.User{}, "id = ?", userID)
}

func projectExists(db *gorm.DB, projectID int) (bool, error) {
	return exists(db, &models.Project{}, "id = ?", projectID)
}

func isMember(db *gorm.DB, projectID, userID int) (bool, error) {
	return exists(db, &models.ProjectMember{}, "project_id = ? AND user_id = ?", projectID, userID)
}
