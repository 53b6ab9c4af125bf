package voting

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"

	"github.com/teamboard/backend/internal/apperr"
	"github.com/teamboard/backend/internal/models"
)

var (
	ErrVoteClosed            = apperr.Conflict("", "vote is already closed")
	ErrAlreadyVoted          = apperr.Conflict("", "already voted, use recast to change the selection")
	ErrOptionAlreadySelected = apperr.Conflict("", "option already selected")
)

// Engine applies casts and recasts. Every operation runs in a single
// transaction that locks the parent vote, so the cached option counts always
// equal the number of records.
type Engine struct {
	store  Store
	loc    *time.Location
	now    func() time.Time
	logger *zap.SugaredLogger
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine builds an Engine. Deadlines are naive wall clock values compared
// against the current time in loc.
func NewEngine(store Store, loc *time.Location, logger *zap.SugaredLogger, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		loc:    loc,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) wallClock() civil.DateTime {
	return civil.DateTimeOf(e.now().In(e.loc))
}

// Cast records userID's selection of optionID.
//
// Single choice votes accept one record per user and vote; multiple choice
// votes accept one record per user and option.
func (e *Engine) Cast(ctx context.Context, optionID, userID int) error {
	const op = "voting.Cast"
	now := e.wallClock()

	err := e.store.InTx(ctx, func(tx Tx) error {
		vote, err := openVote(tx, op, optionID, userID, now)
		if err != nil {
			return err
		}

		if vote.AllowMultiple {
			rec, err := tx.FindRecordByUserAndOption(userID, optionID)
			if err != nil {
				return err
			}
			if rec != nil {
				return ErrOptionAlreadySelected.WithOp(op)
			}
		} else {
			recs, err := tx.FindRecordsByUserAndVote(userID, vote.ID)
			if err != nil {
				return err
			}
			if len(recs) > 0 {
				return ErrAlreadyVoted.WithOp(op)
			}
		}

		return addRecord(tx, vote.ID, optionID, userID)
	})
	if err != nil {
		e.logger.Infow("Cast rejected", "option_id", optionID, "user_id", userID, "error", err)
		return err
	}

	e.logger.Infow("Vote cast", "option_id", optionID, "user_id", userID)
	return nil
}

// Recast changes userID's selection.
//
// On a single choice vote every previous record is removed and optionID is
// selected; picking the current option again leaves the counts unchanged. On
// a multiple choice vote the (user, option) record is toggled.
func (e *Engine) Recast(ctx context.Context, optionID, userID int) error {
	const op = "voting.Recast"
	now := e.wallClock()

	err := e.store.InTx(ctx, func(tx Tx) error {
		vote, err := openVote(tx, op, optionID, userID, now)
		if err != nil {
			return err
		}

		if vote.AllowMultiple {
			rec, err := tx.FindRecordByUserAndOption(userID, optionID)
			if err != nil {
				return err
			}
			if rec != nil {
				return removeRecord(tx, *rec)
			}
			return addRecord(tx, vote.ID, optionID, userID)
		}

		recs, err := tx.FindRecordsByUserAndVote(userID, vote.ID)
		if err != nil {
			return err
		}
		for _, rec := range recs {
			if err := removeRecord(tx, rec); err != nil {
				return err
			}
		}
		return addRecord(tx, vote.ID, optionID, userID)
	})
	if err != nil {
		e.logger.Infow("Recast rejected", "option_id", optionID, "user_id", userID, "error", err)
		return err
	}

	e.logger.Infow("Vote recast", "option_id", optionID, "user_id", userID)
	return nil
}

// openVote resolves and locks the vote of optionID, then checks the deadline
// and the user, in that order.
func openVote(tx Tx, op string, optionID, userID int, now civil.DateTime) (*models.Vote, error) {
	opt, err := tx.GetOption(optionID)
	if err != nil {
		return nil, err
	}
	vote, err := tx.LockVote(opt.VoteID)
	if err != nil {
		return nil, err
	}
	if vote.ClosedAt(now) {
		return nil, ErrVoteClosed.WithOp(op)
	}
	ok, err := tx.UserExists(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound(op, "user not found")
	}
	return vote, nil
}

func addRecord(tx Tx, voteID, optionID, userID int) error {
	rec := &models.VoteRecord{VoteID: voteID, OptionID: optionID, UserID: userID}
	if err := tx.InsertRecord(rec); err != nil {
		return err
	}
	return tx.AdjustCount(optionID, 1)
}

func removeRecord(tx Tx, rec models.VoteRecord) error {
	if err := tx.DeleteRecord(rec.ID); err != nil {
		return err
	}
	return tx.AdjustCount(rec.OptionID, -1)
}
