package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/teamboard/backend/internal/apperr"
	"github.com/teamboard/backend/internal/models"
)

type PostStore struct {
	db *gorm.DB
}

func NewPostStore(db *gorm.DB) *PostStore {
	return &PostStore{db: db}
}

// Create inserts the post and, when vote is not nil, its vote with options,
// all in one transaction.
func (s *PostStore) Create(ctx context.Context, post *models.Post, vote *models.Vote) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post.HasVoting = vote != nil
		if err := tx.Omit("User", "Vote").Create(post).Error; err != nil {
			return err
		}
		if vote == nil {
			return nil
		}
		vote.PostID = post.ID
		return tx.Create(vote).Error
	})
	return translate("repository.CreatePost", err, "")
}

func (s *PostStore) FindByID(ctx context.Context, postID int) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).Preload("User").First(&post, postID).Error; err != nil {
		return nil, translate("repository.FindPost", err, "post not found")
	}
	return &post, nil
}

func (s *PostStore) ListByProject(ctx context.Context, projectID int) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("project_id = ?", projectID).
		Order("is_notice DESC, created_at DESC, id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, translate("repository.ListPosts", err, "")
	}
	return posts, nil
}

// Update applies the editable fields of changes to the post. Only the author
// may edit it.
func (s *PostStore) Update(ctx context.Context, postID, userID int, changes models.UpdatePostRequest) (*models.Post, error) {
	const op = "repository.UpdatePost"
	var post models.Post
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, postID).Error; err != nil {
			return err
		}
		if post.UserID != userID {
			return apperr.Forbidden(op, "only the author can edit this post")
		}

		updates := map[string]interface{}{}
		if changes.Title != nil {
			updates["title"] = *changes.Title
		}
		if changes.Content != nil {
			updates["content"] = *changes.Content
		}
		if changes.IsNotice != nil {
			updates["is_notice"] = *changes.IsNotice
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&post).Updates(updates).Error
	})
	if err != nil {
		return nil, translate(op, err, "post not found")
	}
	return &post, nil
}

// Delete removes a post written by userID. The vote, its options and records
// go with it through the foreign key cascades.
func (s *PostStore) Delete(ctx context.Context, postID, userID int) error {
	const op = "repository.DeletePost"
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id, user_id").First(&post, postID).Error; err != nil {
			return err
		}
		if post.UserID != userID {
			return apperr.Forbidden(op, "only the author can delete this post")
		}
		return tx.Delete(&models.Post{}, postID).Error
	})
	return translate(op, err, "post not found")
}
