package repository

import (
	"context"

	"cloud.google.com/go/civil"
	"gorm.io/gorm"

	"github.com/teamboard/backend/internal/models"
)

// PollStore keeps time polls and availability responses in Postgres.
type PollStore struct {
	db *gorm.DB
}

func NewPollStore(db *gorm.DB) *PollStore {
	return &PollStore{db: db}
}

func (s *PollStore) CreatePoll(ctx context.Context, poll *models.TimePoll) error {
	return translate("repository.CreatePoll", s.db.WithContext(ctx).Create(poll).Error, "")
}

func (s *PollStore) FindPoll(ctx context.Context, pollID int) (*models.TimePoll, error) {
	var poll models.TimePoll
	if err := s.db.WithContext(ctx).First(&poll, pollID).Error; err != nil {
		return nil, translate("repository.FindPoll", err, "time poll not found")
	}
	return &poll, nil
}

func (s *PollStore) ListActivePolls(ctx context.Context, projectID int, today civil.Date) ([]models.TimePoll, error) {
	var polls []models.TimePoll
	err := s.db.WithContext(ctx).
		Where("project_id = ? AND end_date >= ?", projectID, models.Date{Date: today}).
		Order("created_at DESC, id DESC").
		Find(&polls).Error
	if err != nil {
		return nil, translate("repository.ListActivePolls", err, "")
	}
	return polls, nil
}

func (s *PollStore) CountRespondents(ctx context.Context, pollIDs []int) (map[int]int, error) {
	counts := make(map[int]int, len(pollIDs))
	if len(pollIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PollID int
		Users  int
	}
	err := s.db.WithContext(ctx).
		Model(&models.TimeResponse{}).
		Select("poll_id, COUNT(DISTINCT user_id) AS users").
		Where("poll_id IN ?", pollIDs).
		Group("poll_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate("repository.CountRespondents", err, "")
	}

	for _, r := range rows {
		counts[r.PollID] = r.Users
	}
	return counts, nil
}

func (s *PollStore) ListResponses(ctx context.Context, pollID int) ([]models.TimeResponse, error) {
	var responses []models.TimeResponse
	err := s.db.WithContext(ctx).
		Where("poll_id = ?", pollID).
		Order("id").
		Find(&responses).Error
	if err != nil {
		return nil, translate("repository.ListResponses", err, "")
	}
	return responses, nil
}

// ReplaceResponses swaps the user's rows in one transaction. Concurrent
// readers see either the old set or the new one.
func (s *PollStore) ReplaceResponses(ctx context.Context, pollID, userID int, responses []models.TimeResponse) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("poll_id = ? AND user_id = ?", pollID, userID).Delete(&models.TimeResponse{}).Error; err != nil {
			return err
		}
		if len(responses) == 0 {
			return nil
		}
		return tx.Create(&responses).Error
	})
	return translate("repository.ReplaceResponses", err, "")
}

func (s *PollStore) ProjectExists(ctx context.Context, projectID int) (bool, error) {
	ok, err := projectExists(s.db.WithContext(ctx), projectID)
	return ok, translate("repository.ProjectExists", err, "")
}

func (s *PollStore) UserExists(ctx context.Context, userID int) (bool, error) {
	ok, err := userExists(s.db.WithContext(ctx), userID)
	return ok, translate("repository.UserExists", err, "")
}

func (s *PollStore) IsMember(ctx context.Context, projectID, userID int) (bool, error) {
	ok, err := isMember(s.db.WithContext(ctx), projectID, userID)
	return ok, translate("repository.IsMember", err, "")
}
