package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deptboard/board-service/internal/domain"
)

func TestVerify_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, &fakeHasher{}, &fakeSigner{})

	created, err := svc.Signup(context.Background(), signupFixture())
	require.NoError(t, err)

	user, err := svc.Verify(context.Background(), created.Token)
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, user.ID)
	assert.Equal(t, created.User.Email, user.Email)
}

func TestVerify_ReturnsCurrentUserState(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, &fakeHasher{}, &fakeSigner{})

	created, err := svc.Signup(context.Background(), signupFixture())
	require.NoError(t, err)

	// change the stored user after the token was minted
	_, err = repo.UpdateProfile(context.Background(), created.User.ID, "Ada Renamed", "", "")
	require.NoError(t, err)

	user, err := svc.Verify(context.Background(), created.Token)
	require.NoError(t, err)
	assert.Equal(t, "Ada Renamed", user.Name, "verify re-fetches, not a token snapshot")
}

func TestVerify_Failures(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, &fakeHasher{}, &fakeSigner{})

	created, err := svc.Signup(context.Background(), signupFixture())
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		_, err := svc.Verify(context.Background(), "")
		assert.True(t, domain.Is(err, "token_missing"))
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Verify(context.Background(), "not-a-token")
		assert.True(t, domain.Is(err, "token_invalid"))
	})

	t.Run("expired token", func(t *testing.T) {
		expiredSvc := newTestService(repo, &fakeHasher{}, &fakeSigner{expired: true})
		_, err := expiredSvc.Verify(context.Background(), created.Token)
		assert.True(t, domain.Is(err, "token_invalid"), "expiry collapses into the generic invalid token error")
	})

	t.Run("user deleted after issue", func(t *testing.T) {
		delete(repo.users, created.User.ID)
		_, err := svc.Verify(context.Background(), created.Token)
		assert.True(t, domain.Is(err, "token_invalid"))
	})
}
