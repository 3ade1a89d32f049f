package service

import (
	"agora/internal/database"
)

type VoteAction string

const (
	VotePlus  VoteAction = "p"
	VoteMinus VoteAction = "m"
)

type VoteService struct {
	repo database.Repository
}

func NewVoteService(repo database.Repository) *VoteService {
	return &VoteService{repo: repo}
}

// Apply toggles the user's vote on a message. Casting the same vote
// twice removes it, casting the opposite vote switches it. Afterwards
// the user is present in at most one of the two vote sets. Unknown
// actions change nothing.
func (s *VoteService) Apply(messageID, userID uint, action VoteAction) error {
	switch action {
	case VotePlus:
		return s.toggle(messageID, userID,
			s.repo.HasPlusVote, s.repo.RemovePlusVote, s.repo.AddPlusVote,
			s.repo.HasMinusVote, s.repo.RemoveMinusVote)
	case VoteMinus:
		return s.toggle(messageID, userID,
			s.repo.HasMinusVote, s.repo.RemoveMinusVote, s.repo.AddMinusVote,
			s.repo.HasPlusVote, s.repo.RemovePlusVote)
	default:
		return nil
	}
}

func (s *VoteService) toggle(
	messageID, userID uint,
	has func(uint, uint) (bool, error),
	remove func(uint, uint) error,
	add func(uint, uint) error,
	hasOpposite func(uint, uint) (bool, error),
	removeOpposite func(uint, uint) error,
) error {
	voted, err := has(messageID, userID)
	if err != nil {
		return err
	}
	if voted {
		return remove(messageID, userID)
	}

	opposite, err := hasOpposite(messageID, userID)
	if err != nil {
		return err
	}
	if opposite {
		if err := removeOpposite(messageID, userID); err != nil {
			return err
		}
	}
	return add(messageID, userID)
}
