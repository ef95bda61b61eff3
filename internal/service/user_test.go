package service

import (
	"context"
	"testing"

	"github.com/azaria-morake/slotflow/internal/domain"
	"github.com/azaria-morake/slotflow/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "alice" && u.Email == "alice@example.com" && u.ID != ""
	})).Return(nil)

	user, err := svc.Register(context.Background(), domain.CreateUserInput{
		Username:     "alice",
		Email:        "alice@example.com",
		IsInstructor: false,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.IsInstructor)
}

func TestUserService_Register_Validation(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), domain.CreateUserInput{
		Email: "alice@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Register(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Email:    "not-an-email",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Register(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_List(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().List(mock.Anything).Return([]*domain.User{
		{ID: "u1", Username: "alice"},
		{ID: "u2", Username: "bob", IsInstructor: true},
	}, nil)

	users, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.True(t, users[1].IsInstructor)
}
