package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agora/internal/database"
	"agora/internal/models"
)

func TestUserService_UpdateProfile(t *testing.T) {
	const userID uint = 6

	t.Run("renames and updates names", func(t *testing.T) {
		user := &models.User{ID: userID, Username: "old_name"}
		repo := &database.MockRepository{}
		repo.On("GetUser", userID).Return(user, nil).Once()
		repo.On("UsernameTaken", "new_name", userID).Return(false, nil).Once()
		repo.On("UpdateUser", user).Return(nil).Once()

		svc := NewUserService(repo)
		got, err := svc.UpdateProfile(userID, "new_name", "Ada", "Lovelace")

		assert.NoError(t, err)
		assert.Equal(t, "new_name", got.Username)
		assert.Equal(t, "Ada", got.FirstName)
		assert.Equal(t, "Lovelace", got.LastName)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate username is rejected and nothing saved", func(t *testing.T) {
		user := &models.User{ID: userID, Username: "old_name"}
		repo := &database.MockRepository{}
		repo.On("GetUser", userID).Return(user, nil).Once()
		repo.On("UsernameTaken", "taken", userID).Return(true, nil).Once()

		svc := NewUserService(repo)
		_, err := svc.UpdateProfile(userID, "taken", "Ada", "Lovelace")

		assert.ErrorIs(t, err, ErrUsernameTaken)
		repo.AssertNotCalled(t, "UpdateUser", user)
	})

	t.Run("unchanged username skips the uniqueness check", func(t *testing.T) {
		user := &models.User{ID: userID, Username: "same"}
		repo := &database.MockRepository{}
		repo.On("GetUser", userID).Return(user, nil).Once()
		repo.On("UpdateUser", user).Return(nil).Once()

		svc := NewUserService(repo)
		_, err := svc.UpdateProfile(userID, "same", "", "")

		assert.NoError(t, err)
		repo.AssertNotCalled(t, "UsernameTaken", "same", userID)
	})
}
