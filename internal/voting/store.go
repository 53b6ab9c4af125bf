package voting

import (
	"context"

	"github.com/teamboard/backend/internal/models"
)

// Store runs tally mutations inside a transaction and serves the read side
// of vote views.
type Store interface {
	// InTx runs fn in one database transaction. If fn returns an error
	// every write made through tx is rolled back.
	InTx(ctx context.Context, fn func(tx Tx) error) error

	// FindVote loads a vote with its options ordered by position.
	FindVote(ctx context.Context, voteID int) (*models.Vote, error)
	FindVoteByPost(ctx context.Context, postID int) (*models.Vote, error)
	ListRecords(ctx context.Context, voteID int) ([]models.VoteRecord, error)
	UserNames(ctx context.Context, userIDs []int) (map[int]string, error)
}

// Tx is the transactional view of the store. Lookups of a missing row return
// an apperr NotFound error unless documented otherwise.
type Tx interface {
	GetOption(optionID int) (*models.VoteOption, error)
	// LockVote loads the vote row and holds a write lock on it until the
	// transaction ends, serializing every tally change of that vote.
	LockVote(voteID int) (*models.Vote, error)
	UserExists(userID int) (bool, error)
	PostExists(postID int) (bool, error)
	PostHasVote(postID int) (bool, error)
	// IsPostMember reports whether userID belongs to the post's project.
	IsPostMember(postID, userID int) (bool, error)

	FindRecordsByUserAndVote(userID, voteID int) ([]models.VoteRecord, error)
	// FindRecordByUserAndOption returns nil, nil when there is no record.
	FindRecordByUserAndOption(userID, optionID int) (*models.VoteRecord, error)
	InsertRecord(record *models.VoteRecord) error
	DeleteRecord(recordID int) error
	// AdjustCount adds delta to the option's cached count.
	AdjustCount(optionID, delta int) error

	// CreateVote inserts the vote with its options and marks the post as
	// carrying a vote.
	CreateVote(vote *models.Vote) error
}
