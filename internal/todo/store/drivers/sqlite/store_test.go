package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lakefield/tasklist/internal/todo/domain"
	"github.com/lakefield/tasklist/internal/todo/store"
	"github.com/lakefield/tasklist/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestUser(t *testing.T, s *Store, username, email string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func newTestTodo(t *testing.T, s *Store, ownerID, title string, createdAt time.Time) domain.Todo {
	t.Helper()

	desc := ""
	td := domain.Todo{
		ID:          idx.NewAt(createdAt).String(),
		UserID:      ownerID,
		Title:       title,
		Description: &desc,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, s.Todos().CreateTodo(context.Background(), td))
	return td
}

func TestUsersCreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newTestUser(t, s, "alice", "a@x.com")

	byID, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Username, byID.Username)
	require.Equal(t, u.Email, byID.Email)
	require.Equal(t, u.PasswordHash, byID.PasswordHash)
	require.WithinDuration(t, u.CreatedAt, byID.CreatedAt, time.Second)

	byEmail, err := s.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	_, err = s.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)

	count, err := s.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestUsersUniqueConstraints(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	newTestUser(t, s, "alice", "a@x.com")

	dupUsername := domain.User{
		ID: idx.New().String(), Username: "alice", Email: "other@x.com",
		PasswordHash: "h", CreatedAt: time.Now().UTC(),
	}
	require.ErrorIs(t, s.Users().CreateUser(ctx, dupUsername), store.ErrAlreadyExists)

	dupEmail := domain.User{
		ID: idx.New().String(), Username: "bob", Email: "a@x.com",
		PasswordHash: "h", CreatedAt: time.Now().UTC(),
	}
	require.ErrorIs(t, s.Users().CreateUser(ctx, dupEmail), store.ErrAlreadyExists)
}

func TestTodosListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newTestUser(t, s, "alice", "a@x.com")
	base := time.Now().UTC().Add(-time.Hour)
	first := newTestTodo(t, s, u.ID, "first", base)
	second := newTestTodo(t, s, u.ID, "second", base.Add(time.Minute))
	third := newTestTodo(t, s, u.ID, "third", base.Add(2*time.Minute))

	todos, err := s.Todos().ListTodosByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, todos, 3)
	require.Equal(t, third.ID, todos[0].ID)
	require.Equal(t, second.ID, todos[1].ID)
	require.Equal(t, first.ID, todos[2].ID)
}

func TestTodosOwnerScoping(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alice := newTestUser(t, s, "alice", "a@x.com")
	bob := newTestUser(t, s, "bob", "b@x.com")
	td := newTestTodo(t, s, alice.ID, "private", time.Now().UTC())

	// Bob sees nothing and cannot touch Alice's row.
	todos, err := s.Todos().ListTodosByOwner(ctx, bob.ID)
	require.NoError(t, err)
	require.Empty(t, todos)

	_, err = s.Todos().GetTodoByID(ctx, bob.ID, td.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	title := "stolen"
	err = s.Todos().UpdateTodo(ctx, bob.ID, td.ID, &title, nil, true)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, s.Todos().SetTodoCompleted(ctx, bob.ID, td.ID, true), store.ErrNotFound)
	require.ErrorIs(t, s.Todos().DeleteTodo(ctx, bob.ID, td.ID), store.ErrNotFound)

	// Alice still sees the untouched row.
	got, err := s.Todos().GetTodoByID(ctx, alice.ID, td.ID)
	require.NoError(t, err)
	require.Equal(t, "private", got.Title)
	require.False(t, got.Completed)
}

func TestTodosUpdateWritesExactly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newTestUser(t, s, "alice", "a@x.com")
	td := newTestTodo(t, s, u.ID, "Buy milk", time.Now().UTC())

	title := "Buy oat milk"
	desc := "from the corner shop"
	require.NoError(t, s.Todos().UpdateTodo(ctx, u.ID, td.ID, &title, &desc, true))

	got, err := s.Todos().GetTodoByID(ctx, u.ID, td.ID)
	require.NoError(t, err)
	require.Equal(t, "Buy oat milk", got.Title)
	require.NotNil(t, got.Description)
	require.Equal(t, "from the corner shop", *got.Description)
	require.True(t, got.Completed)

	// A nil description writes NULL, not the previous value.
	require.NoError(t, s.Todos().UpdateTodo(ctx, u.ID, td.ID, &title, nil, false))
	got, err = s.Todos().GetTodoByID(ctx, u.ID, td.ID)
	require.NoError(t, err)
	require.Nil(t, got.Description)
	require.False(t, got.Completed)

	// A nil title trips the NOT NULL constraint.
	err = s.Todos().UpdateTodo(ctx, u.ID, td.ID, nil, &desc, false)
	require.Error(t, err)
	require.NotErrorIs(t, err, store.ErrNotFound)
}

func TestTodosSetCompletedAndDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newTestUser(t, s, "alice", "a@x.com")
	td := newTestTodo(t, s, u.ID, "task", time.Now().UTC())

	require.NoError(t, s.Todos().SetTodoCompleted(ctx, u.ID, td.ID, true))
	got, err := s.Todos().GetTodoByID(ctx, u.ID, td.ID)
	require.NoError(t, err)
	require.True(t, got.Completed)

	require.NoError(t, s.Todos().DeleteTodo(ctx, u.ID, td.ID))
	_, err = s.Todos().GetTodoByID(ctx, u.ID, td.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Todos().DeleteTodo(ctx, u.ID, td.ID), store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newTestUser(t, s, "alice", "a@x.com")

	boom := domain.Todo{
		ID: idx.New().String(), UserID: u.ID, Title: "never lands",
		CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Todos().CreateTodo(ctx, boom); err != nil {
			return err
		}
		return context.Canceled // force rollback
	})
	require.ErrorIs(t, err, context.Canceled)

	todos, err := s.Todos().ListTodosByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, todos)
}
