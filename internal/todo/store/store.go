package store

import (
	"context"
	"errors"

	"github.com/lakefield/tasklist/internal/todo/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres if we ever need it) implement this. It exposes sub-repositories
// to keep concerns tidy and testable.
type Store interface {
	Users() Users
	Todos() Todos

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Prefer this
	// over Tx for read-then-write pairs like toggle.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when username or email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CountUsers returns the total number of users.
	CountUsers(ctx context.Context) (int64, error)
}

type Todos interface {
	// ListTodosByOwner returns the owner's todos newest-first.
	ListTodosByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error)

	// GetTodoByID returns the todo matching (id, ownerID). A todo owned by
	// someone else is ErrNotFound, same as an absent row.
	GetTodoByID(ctx context.Context, ownerID, id string) (domain.Todo, error)

	// CreateTodo inserts a new todo (id is ULID).
	CreateTodo(ctx context.Context, t domain.Todo) error

	// UpdateTodo overwrites title, description and completed with exactly
	// the given values (nil pointers write NULL) and bumps updated_at.
	// Returns ErrNotFound when no row matches (id, ownerID).
	UpdateTodo(ctx context.Context, ownerID, id string, title, description *string, completed bool) error

	// SetTodoCompleted writes the completed flag and bumps updated_at.
	SetTodoCompleted(ctx context.Context, ownerID, id string, completed bool) error

	// DeleteTodo removes the row matching (id, ownerID).
	DeleteTodo(ctx context.Context, ownerID, id string) error
}
