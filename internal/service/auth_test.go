package service

import (
	"context"
	"testing"

	"tokrecharge_api/internal/domain"
	"tokrecharge_api/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T) (*AuthService, *storage.Memory) {
	t.Helper()
	store := storage.NewMemory()
	auth := NewAuthService(store, "test-secret", 1, 4)

	hash, err := auth.HashPassword("hunter22")
	require.NoError(t, err)

	_, err = store.CreateAdminUser(context.Background(), domain.AdminUser{
		Username:     "editor",
		Email:        "editor@tokrecharge.com",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	})
	require.NoError(t, err)

	return auth, store
}

func TestLoginAndVerifyRoundTrip(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	token, user, err := auth.Login(ctx, "editor", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "editor", user.Username)
	assert.NotNil(t, user.LastLogin)

	verified, err := auth.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, verified.ID)
	assert.Equal(t, domain.RoleAdmin, verified.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	_, _, err := auth.Login(ctx, "editor", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Login(ctx, "nobody", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	auth, store := newTestAuth(t)
	ctx := context.Background()

	user, err := store.GetAdminUserByUsername(ctx, "editor")
	require.NoError(t, err)

	inactive := false
	_, err = store.UpdateAdminUser(ctx, user.ID, domain.AdminUserPatch{IsActive: &inactive})
	require.NoError(t, err)

	_, _, err = auth.Login(ctx, "editor", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	token, _, err := auth.Login(ctx, "editor", "hunter22")
	require.NoError(t, err)

	_, err = auth.Verify(ctx, token+"x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = auth.Verify(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	auth, store := newTestAuth(t)
	other := NewAuthService(store, "different-secret", 1, 4)
	ctx := context.Background()

	token, _, err := other.Login(ctx, "editor", "hunter22")
	require.NoError(t, err)

	_, err = auth.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
