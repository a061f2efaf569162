package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lakefield/tasklist/internal/todo/store"
	"github.com/lakefield/tasklist/internal/todo/store/drivers/sqlite"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	user, err := svc.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "a@x.com", user.Email)
	require.NotEqual(t, "secret1", user.PasswordHash, "password must be hashed")
	require.False(t, user.CreatedAt.IsZero())
}

func TestRegisterValidatesFields(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	_, err := svc.Register(ctx, "", "a@x.com", "secret1")
	require.ErrorIs(t, err, ErrMissingFields)
	_, err = svc.Register(ctx, "alice", "", "secret1")
	require.ErrorIs(t, err, ErrMissingFields)
	_, err = svc.Register(ctx, "alice", "a@x.com", "")
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	_, err := svc.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "fresh@x.com", "secret1")
	require.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = svc.Register(ctx, "bob", "a@x.com", "secret1")
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	registered, err := svc.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(ctx, "a@x.com", "secret1")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "a@x.com", "nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost@x.com", "secret1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "secret1")
		require.ErrorIs(t, err, ErrMissingFields)
		_, err = svc.Login(ctx, "a@x.com", "")
		require.ErrorIs(t, err, ErrMissingFields)
	})
}
