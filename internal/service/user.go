package service

import (
	"agora/internal/database"
	"agora/internal/models"
)

type UserService struct {
	repo database.Repository
}

func NewUserService(repo database.Repository) *UserService {
	return &UserService{repo: repo}
}

// UpdateProfile edits the user's own profile. A username already held
// by another user is a validation failure and nothing is saved.
func (s *UserService) UpdateProfile(userID uint, username, firstName, lastName string) (*models.User, error) {
	user, err := s.repo.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if username != "" && username != user.Username {
		taken, err := s.repo.UsernameTaken(username, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrUsernameTaken
		}
		user.Username = username
	}

	user.FirstName = firstName
	user.LastName = lastName

	if err := s.repo.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}
