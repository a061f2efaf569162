package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lakefield/tasklist/internal/todo/domain"
	"github.com/lakefield/tasklist/internal/todo/store"
	"github.com/lakefield/tasklist/pkg/idx"
)

var ErrTitleRequired = errors.New("title_required")

type TodoService struct {
	Store store.Store
}

// List returns the owner's todos, newest first.
func (s *TodoService) List(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	return s.Store.Todos().ListTodosByOwner(ctx, ownerID)
}

// Create inserts a new todo. The title must contain something other than
// whitespace; a missing description defaults to the empty string.
func (s *TodoService) Create(ctx context.Context, ownerID, title string, description *string) (domain.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Todo{}, ErrTitleRequired
	}
	if description == nil {
		empty := ""
		description = &empty
	}

	now := time.Now().UTC()
	todo := domain.Todo{
		ID:          idx.New().String(),
		UserID:      ownerID,
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Todos().CreateTodo(ctx, todo); err != nil {
		return domain.Todo{}, fmt.Errorf("create todo: %w", err)
	}
	return todo, nil
}

// Update overwrites the row with exactly the values the caller supplied.
// Omitted fields arrive as nil and are written as NULL; this mirrors the
// wire contract, so callers that want to keep a field must send it back.
func (s *TodoService) Update(
	ctx context.Context,
	ownerID, id string,
	title, description *string,
	completed bool,
) (domain.Todo, error) {
	if err := s.Store.Todos().UpdateTodo(ctx, ownerID, id, title, description, completed); err != nil {
		return domain.Todo{}, err
	}
	return s.Store.Todos().GetTodoByID(ctx, ownerID, id)
}

// Toggle flips the completed flag. Read and write share a transaction so a
// concurrent toggle cannot lose the flip.
func (s *TodoService) Toggle(ctx context.Context, ownerID, id string) (domain.Todo, error) {
	var result domain.Todo
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		todo, err := tx.Todos().GetTodoByID(ctx, ownerID, id)
		if err != nil {
			return err
		}
		if err := tx.Todos().SetTodoCompleted(ctx, ownerID, id, !todo.Completed); err != nil {
			return err
		}
		result, err = tx.Todos().GetTodoByID(ctx, ownerID, id)
		return err
	})
	if err != nil {
		return domain.Todo{}, err
	}
	return result, nil
}

// Delete removes the todo matching (id, ownerID).
func (s *TodoService) Delete(ctx context.Context, ownerID, id string) error {
	return s.Store.Todos().DeleteTodo(ctx, ownerID, id)
}
