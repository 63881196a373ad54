package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"optica_backend/internal/repositories"
	"optica_backend/pkg/utils"
)

func TestLoginWithSeededAdmin(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewAuthService(store.Users)

	resp, err := svc.Login(LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "admin", resp.User.Username)

	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, claims.UserID)
	require.Equal(t, "admin", claims.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewAuthService(store.Users)

	_, err := svc.Login(LoginRequest{Username: "admin", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown user looks identical to a wrong password.
	_, err = svc.Login(LoginRequest{Username: "nobody", Password: "admin123"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserHashesPassword(t *testing.T) {
	store := repositories.NewMemoryStore()
	users := NewUserService(store.Users)
	auth := NewAuthService(store.Users)

	created, err := users.CreateUser(CreateUserRequest{
		Username: "vendedor1",
		Password: "secreto9",
		Name:     "Vendedor Uno",
	})
	require.NoError(t, err)
	require.NotEqual(t, "secreto9", created.PasswordHash)

	resp, err := auth.Login(LoginRequest{Username: "vendedor1", Password: "secreto9"})
	require.NoError(t, err)
	require.Equal(t, created.ID, resp.User.ID)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	store := repositories.NewMemoryStore()
	users := NewUserService(store.Users)

	_, err := users.CreateUser(CreateUserRequest{Username: "admin", Password: "whatever1", Name: "Otro"})
	require.ErrorIs(t, err, ErrUsernameExists)
}
