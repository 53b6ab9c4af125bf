package voting

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/teamboard/backend/internal/apperr"
	"github.com/teamboard/backend/internal/models"
)

var errInjected = errors.New("injected failure")

// memStore is an in-memory Store. InTx holds a single mutex for the whole
// transaction and restores a snapshot when fn fails.
type memStore struct {
	mu      sync.Mutex
	nextID  int
	users   map[int]string
	posts   map[int]bool // post id -> has vote
	votes   map[int]models.Vote
	options map[int]models.VoteOption
	records map[int]models.VoteRecord

	// users outside every post's project
	outsiders map[int]bool

	failAdjust bool
}

func newMemStore() *memStore {
	return &memStore{
		nextID:  100,
		users:   map[int]string{},
		posts:   map[int]bool{},
		votes:   map[int]models.Vote{},
		options: map[int]models.VoteOption{},
		records: map[int]models.VoteRecord{},

		outsiders: map[int]bool{},
	}
}

func (s *memStore) id() int {
	s.nextID++
	return s.nextID
}

func (s *memStore) addUser(id int, name string) {
	s.users[id] = name
}

// addVote stores a vote with the given options and returns the vote id and
// option ids in order.
func (s *memStore) addVote(postID int, allowMultiple bool, endAt *models.LocalDateTime, contents ...string) (int, []int) {
	vote := models.Vote{ID: s.id(), PostID: postID, Title: "lunch", AllowMultiple: allowMultiple, EndAt: endAt}
	s.votes[vote.ID] = vote
	s.posts[postID] = true

	ids := make([]int, len(contents))
	for i, c := range contents {
		opt := models.VoteOption{ID: s.id(), VoteID: vote.ID, Content: c, Position: i}
		s.options[opt.ID] = opt
		ids[i] = opt.ID
	}
	return vote.ID, ids
}

func (s *memStore) count(optionID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.options[optionID].Count
}

func (s *memStore) recordsOf(optionID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.records {
		if r.OptionID == optionID {
			n++
		}
	}
	return n
}

func (s *memStore) InTx(_ context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.copyState()
	if err := fn(memTx{s}); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

type memState struct {
	nextID  int
	posts   map[int]bool
	votes   map[int]models.Vote
	options map[int]models.VoteOption
	records map[int]models.VoteRecord
}

func (s *memStore) copyState() memState {
	st := memState{
		nextID:  s.nextID,
		posts:   make(map[int]bool, len(s.posts)),
		votes:   make(map[int]models.Vote, len(s.votes)),
		options: make(map[int]models.VoteOption, len(s.options)),
		records: make(map[int]models.VoteRecord, len(s.records)),
	}
	for k, v := range s.posts {
		st.posts[k] = v
	}
	for k, v := range s.votes {
		st.votes[k] = v
	}
	for k, v := range s.options {
		st.options[k] = v
	}
	for k, v := range s.records {
		st.records[k] = v
	}
	return st
}

func (s *memStore) restore(st memState) {
	s.nextID = st.nextID
	s.posts = st.posts
	s.votes = st.votes
	s.options = st.options
	s.records = st.records
}

func (s *memStore) FindVote(_ context.Context, voteID int) (*models.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadVote(voteID)
}

func (s *memStore) FindVoteByPost(_ context.Context, postID int) (*models.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, v := range s.votes {
		if v.PostID == postID {
			return s.loadVote(id)
		}
	}
	return nil, apperr.NotFound("memStore.FindVoteByPost", "vote not found")
}

func (s *memStore) loadVote(voteID int) (*models.Vote, error) {
	v, ok := s.votes[voteID]
	if !ok {
		return nil, apperr.NotFound("memStore.FindVote", "vote not found")
	}
	v.Options = nil
	for _, o := range s.options {
		if o.VoteID == voteID {
			v.Options = append(v.Options, o)
		}
	}
	sort.Slice(v.Options, func(i, j int) bool { return v.Options[i].Position < v.Options[j].Position })
	return &v, nil
}

func (s *memStore) ListRecords(_ context.Context, voteID int) ([]models.VoteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.VoteRecord
	for _, r := range s.records {
		if r.VoteID == voteID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) UserNames(_ context.Context, userIDs []int) (map[int]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make(map[int]string, len(userIDs))
	for _, id := range userIDs {
		if n, ok := s.users[id]; ok {
			names[id] = n
		}
	}
	return names, nil
}

type memTx struct {
	s *memStore
}

func (tx memTx) GetOption(optionID int) (*models.VoteOption, error) {
	o, ok := tx.s.options[optionID]
	if !ok {
		return nil, apperr.NotFound("memTx.GetOption", "vote option not found")
	}
	return &o, nil
}

func (tx memTx) LockVote(voteID int) (*models.Vote, error) {
	v, ok := tx.s.votes[voteID]
	if !ok {
		return nil, apperr.NotFound("memTx.LockVote", "vote not found")
	}
	return &v, nil
}

func (tx memTx) UserExists(userID int) (bool, error) {
	_, ok := tx.s.users[userID]
	return ok, nil
}

func (tx memTx) PostExists(postID int) (bool, error) {
	_, ok := tx.s.posts[postID]
	return ok, nil
}

func (tx memTx) PostHasVote(postID int) (bool, error) {
	return tx.s.posts[postID], nil
}

func (tx memTx) IsPostMember(postID, userID int) (bool, error) {
	return !tx.s.outsiders[userID], nil
}

func (tx memTx) FindRecordsByUserAndVote(userID, voteID int) ([]models.VoteRecord, error) {
	var out []models.VoteRecord
	for _, r := range tx.s.records {
		if r.UserID == userID && r.VoteID == voteID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (tx memTx) FindRecordByUserAndOption(userID, optionID int) (*models.VoteRecord, error) {
	for _, r := range tx.s.records {
		if r.UserID == userID && r.OptionID == optionID {
			return &r, nil
		}
	}
	return nil, nil
}

func (tx memTx) InsertRecord(record *models.VoteRecord) error {
	for _, r := range tx.s.records {
		if r.UserID == record.UserID && r.OptionID == record.OptionID {
			return apperr.Conflict("memTx.InsertRecord", "duplicate vote record")
		}
	}
	record.ID = tx.s.id()
	tx.s.records[record.ID] = *record
	return nil
}

func (tx memTx) DeleteRecord(recordID int) error {
	delete(tx.s.records, recordID)
	return nil
}

func (tx memTx) AdjustCount(optionID, delta int) error {
	if tx.s.failAdjust {
		return errInjected
	}
	o := tx.s.options[optionID]
	o.Count += delta
	tx.s.options[optionID] = o
	return nil
}

func (tx memTx) CreateVote(vote *models.Vote) error {
	vote.ID = tx.s.id()
	for i := range vote.Options {
		vote.Options[i].ID = tx.s.id()
		vote.Options[i].VoteID = vote.ID
		tx.s.options[vote.Options[i].ID] = vote.Options[i]
	}
	stored := *vote
	stored.Options = nil
	tx.s.votes[vote.ID] = stored
	tx.s.posts[vote.PostID] = true
	return nil
}
