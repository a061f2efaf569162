package sqlite

import (
	"context"

	"github.com/lakefield/tasklist/internal/todo/domain"
	"github.com/lakefield/tasklist/internal/todo/store"
)

type todosRepo struct {
	db dbtx
}

const todoColumns = `id, user_id, title, description, completed, created_at, updated_at`

func (r *todosRepo) ListTodosByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	// id is a ULID, so it breaks created_at ties in creation order.
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]domain.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *todosRepo) GetTodoByID(ctx context.Context, ownerID, id string) (domain.Todo, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = ? AND user_id = ?`, id, ownerID)

	t, err := scanTodo(row)
	if err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return t, nil
}

func (r *todosRepo) CreateTodo(ctx context.Context, t domain.Todo) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (`+todoColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Title, mapOptionalString(t.Description),
		boolToInt(t.Completed), t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *todosRepo) UpdateTodo(
	ctx context.Context,
	ownerID, id string,
	title, description *string,
	completed bool,
) error {
	// nil pointers are bound as NULL on purpose: the API contract is that an
	// update writes exactly what the caller sent. A NULL title trips the
	// NOT NULL constraint, which surfaces as a store failure.
	res, err := r.db.ExecContext(ctx,
		`UPDATE todos
		 SET title = ?, description = ?, completed = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		mapOptionalString(title), mapOptionalString(description),
		boolToInt(completed), utcNow(), id, ownerID,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *todosRepo) SetTodoCompleted(ctx context.Context, ownerID, id string, completed bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE todos SET completed = ?, updated_at = ? WHERE id = ? AND user_id = ?`,
		boolToInt(completed), utcNow(), id, ownerID,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *todosRepo) DeleteTodo(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM todos WHERE id = ? AND user_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func requireRowChanged(res interface{ RowsAffected() (int64, error) }) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
