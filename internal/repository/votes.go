package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/teamboard/backend/internal/models"
	"github.com/teamboard/backend/internal/voting"
)

// VoteStore backs the vote tally engine.
type VoteStore struct {
	db *gorm.DB
}

func NewVoteStore(db *gorm.DB) *VoteStore {
	return &VoteStore{db: db}
}

func (s *VoteStore) InTx(ctx context.Context, fn func(tx voting.Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(voteTx{db: tx})
	})
}

func (s *VoteStore) FindVote(ctx context.Context, voteID int) (*models.Vote, error) {
	var vote models.Vote
	err := s.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("position, id") }).
		First(&vote, voteID).Error
	if err != nil {
		return nil, translate("repository.FindVote", err, "vote not found")
	}
	return &vote, nil
}

func (s *VoteStore) FindVoteByPost(ctx context.Context, postID int) (*models.Vote, error) {
	var vote models.Vote
	err := s.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("position, id") }).
		Where("post_id = ?", postID).
		First(&vote).Error
	if err != nil {
		return nil, translate("repository.FindVoteByPost", err, "vote not found")
	}
	return &vote, nil
}

func (s *VoteStore) ListRecords(ctx context.Context, voteID int) ([]models.VoteRecord, error) {
	var records []models.VoteRecord
	err := s.db.WithContext(ctx).Where("vote_id = ?", voteID).Order("id").Find(&records).Error
	if err != nil {
		return nil, translate("repository.ListRecords", err, "")
	}
	return records, nil
}

func (s *VoteStore) UserNames(ctx context.Context, userIDs []int) (map[int]string, error) {
	names := make(map[int]string, len(userIDs))
	if len(userIDs) == 0 {
		return names, nil
	}
	var users []models.User
	if err := s.db.WithContext(ctx).Select("id, name").Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, translate("repository.UserNames", err, "")
	}
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

type voteTx struct {
	db *gorm.DB
}

func (tx voteTx) GetOption(optionID int) (*models.VoteOption, error) {
	var opt models.VoteOption
	if err := tx.db.First(&opt, optionID).Error; err != nil {
		return nil, translate("repository.GetOption", err, "vote option not found")
	}
	return &opt, nil
}

func (tx voteTx) LockVote(voteID int) (*models.Vote, error) {
	var vote models.Vote
	err := tx.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&vote, voteID).Error
	if err != nil {
		return nil, translate("repository.LockVote", err, "vote not found")
	}
	return &vote, nil
}

func (tx voteTx) UserExists(userID int) (bool, error) {
	ok, err := userExists(tx.db, userID)
	return ok, translate("repository.UserExists", err, "")
}

func (tx voteTx) PostExists(postID int) (bool, error) {
	ok, err := exists(tx.db, &models.Post{}, "id = ?", postID)
	return ok, translate("repository.PostExists", err, "")
}

func (tx voteTx) PostHasVote(postID int) (bool, error) {
	ok, err := exists(tx.db, &models.Vote{}, "post_id = ?", postID)
	return ok, translate("repository.PostHasVote", err, "")
}

func (tx voteTx) IsPostMember(postID, userID int) (bool, error) {
	ok, err := exists(
		tx.db.Joins("JOIN posts ON posts.project_id = project_members.project_id"),
		&models.ProjectMember{},
		"posts.id = ? AND project_members.user_id = ?", postID, userID,
	)
	return ok, translate("repository.IsPostMember", err, "")
}

func (tx voteTx) FindRecordsByUserAndVote(userID, voteID int) ([]models.VoteRecord, error) {
	var records []models.VoteRecord
	err := tx.db.Where("user_id = ? AND vote_id = ?", userID, voteID).Find(&records).Error
	if err != nil {
		return nil, translate("repository.FindRecordsByUserAndVote", err, "")
	}
	return records, nil
}

func (tx voteTx) FindRecordByUserAndOption(userID, optionID int) (*models.VoteRecord, error) {
	var records []models.VoteRecord
	err := tx.db.Where("user_id = ? AND option_id = ?", userID, optionID).Limit(1).Find(&records).Error
	if err != nil {
		return nil, translate("repository.FindRecordByUserAndOption", err, "")
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (tx voteTx) InsertRecord(record *models.VoteRecord) error {
	return translate("repository.InsertRecord", tx.db.Create(record).Error, "")
}

func (tx voteTx) DeleteRecord(recordID int) error {
	return translate("repository.DeleteRecord", tx.db.Delete(&models.VoteRecord{}, recordID).Error, "")
}

func (tx voteTx) AdjustCount(optionID, delta int) error {
	err := tx.db.Model(&models.VoteOption{}).
		Where("id = ?", optionID).
		UpdateColumn("vote_count", gorm.Expr("vote_count + ?", delta)).Error
	return translate("repository.AdjustCount", err, "")
}

func (tx voteTx) CreateVote(vote *models.Vote) error {
	if err := tx.db.Create(vote).Error; err != nil {
		return translate("repository.CreateVote", err, "")
	}
	err := tx.db.Model(&models.Post{}).Where("id = ?", vote.PostID).Update("has_voting", true).Error
	return translate("repository.CreateVote", err, "")
}
