package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agora/internal/database"
)

func TestVoteService_Apply(t *testing.T) {
	const (
		messageID uint = 7
		userID    uint = 3
	)

	tcases := []struct {
		name   string
		action VoteAction
		setup  func(repo *database.MockRepository)
	}{
		{
			name:   "fresh plus vote is added",
			action: VotePlus,
			setup: func(repo *database.MockRepository) {
				repo.On("HasPlusVote", messageID, userID).Return(false, nil).Once()
				repo.On("HasMinusVote", messageID, userID).Return(false, nil).Once()
				repo.On("AddPlusVote", messageID, userID).Return(nil).Once()
			},
		},
		{
			name:   "repeated plus vote toggles off",
			action: VotePlus,
			setup: func(repo *database.MockRepository) {
				repo.On("HasPlusVote", messageID, userID).Return(true, nil).Once()
				repo.On("RemovePlusVote", messageID, userID).Return(nil).Once()
			},
		},
		{
			name:   "plus vote switches an existing minus",
			action: VotePlus,
			setup: func(repo *database.MockRepository) {
				repo.On("HasPlusVote", messageID, userID).Return(false, nil).Once()
				repo.On("HasMinusVote", messageID, userID).Return(true, nil).Once()
				repo.On("RemoveMinusVote", messageID, userID).Return(nil).Once()
				repo.On("AddPlusVote", messageID, userID).Return(nil).Once()
			},
		},
		{
			name:   "minus vote switches an existing plus",
			action: VoteMinus,
			setup: func(repo *database.MockRepository) {
				repo.On("HasMinusVote", messageID, userID).Return(false, nil).Once()
				repo.On("HasPlusVote", messageID, userID).Return(true, nil).Once()
				repo.On("RemovePlusVote", messageID, userID).Return(nil).Once()
				repo.On("AddMinusVote", messageID, userID).Return(nil).Once()
			},
		},
		{
			name:   "repeated minus vote toggles off",
			action: VoteMinus,
			setup: func(repo *database.MockRepository) {
				repo.On("HasMinusVote", messageID, userID).Return(true, nil).Once()
				repo.On("RemoveMinusVote", messageID, userID).Return(nil).Once()
			},
		},
		{
			name:   "unknown action changes nothing",
			action: VoteAction("e"),
			setup:  func(repo *database.MockRepository) {},
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &database.MockRepository{}
			tc.setup(repo)

			svc := NewVoteService(repo)
			err := svc.Apply(messageID, userID, tc.action)

			assert.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

// Applying the same vote twice must return the sets to their pre-call
// state: the first call adds, the second removes.
func TestVoteService_Apply_toggleLaw(t *testing.T) {
	const (
		messageID uint = 1
		userID    uint = 2
	)

	repo := &database.MockRepository{}
	repo.On("HasPlusVote", messageID, userID).Return(false, nil).Once()
	repo.On("HasMinusVote", messageID, userID).Return(false, nil).Once()
	repo.On("AddPlusVote", messageID, userID).Return(nil).Once()
	repo.On("HasPlusVote", messageID, userID).Return(true, nil).Once()
	repo.On("RemovePlusVote", messageID, userID).Return(nil).Once()

	svc := NewVoteService(repo)
	assert.NoError(t, svc.Apply(messageID, userID, VotePlus))
	assert.NoError(t, svc.Apply(messageID, userID, VotePlus))

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "AddMinusVote", messageID, userID)
}

// Voting plus then minus leaves only the minus vote.
func TestVoteService_Apply_plusThenMinus(t *testing.T) {
	const (
		messageID uint = 9
		userID    uint = 4
	)

	repo := &database.MockRepository{}
	repo.On("HasPlusVote", messageID, userID).Return(false, nil).Once()
	repo.On("HasMinusVote", messageID, userID).Return(false, nil).Once()
	repo.On("AddPlusVote", messageID, userID).Return(nil).Once()

	repo.On("HasMinusVote", messageID, userID).Return(false, nil).Once()
	repo.On("HasPlusVote", messageID, userID).Return(true, nil).Once()
	repo.On("RemovePlusVote", messageID, userID).Return(nil).Once()
	repo.On("AddMinusVote", messageID, userID).Return(nil).Once()

	svc := NewVoteService(repo)
	assert.NoError(t, svc.Apply(messageID, userID, VotePlus))
	assert.NoError(t, svc.Apply(messageID, userID, VoteMinus))

	repo.AssertExpectations(t)
}
