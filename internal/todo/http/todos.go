package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lakefield/tasklist/internal/todo/service"
	"github.com/lakefield/tasklist/internal/todo/store"
	"github.com/lakefield/tasklist/pkg/httpx"
	"github.com/lakefield/tasklist/pkg/slogx"
)

type TodosHandler struct {
	TodoService *service.TodoService
}

type createTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// updateTodoRequest carries pointers so the handler can tell "absent" from
// "empty". What the client sends is what gets written: omitted description
// becomes NULL, omitted completed becomes false. Clients that want to keep
// a field send it back unchanged.
type updateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// HandleList returns the caller's todos, newest first.
func (h *TodosHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	todos, err := h.TodoService.List(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		log.Error("list todos failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Database error")
		return
	}

	out := make([]todoResponse, 0, len(todos))
	for _, t := range todos {
		out = append(out, toTodoResponse(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *TodosHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req createTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.TodoService.Create(ctx, httpx.UserIDFromCtx(ctx), req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			httpx.WriteError(w, http.StatusBadRequest, "Title is required")
			return
		}
		log.Error("create todo failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Error creating todo")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toTodoResponse(todo))
}

func (h *TodosHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	id := r.PathValue("id")

	var req updateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	completed := req.Completed != nil && *req.Completed

	todo, err := h.TodoService.Update(ctx, httpx.UserIDFromCtx(ctx), id,
		req.Title, req.Description, completed)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Todo not found")
			return
		}
		log.Error("update todo failed", "todo_id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Error updating todo")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTodoResponse(todo))
}

func (h *TodosHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	id := r.PathValue("id")

	if err := h.TodoService.Delete(ctx, httpx.UserIDFromCtx(ctx), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Todo not found")
			return
		}
		log.Error("delete todo failed", "todo_id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Error deleting todo")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Todo deleted successfully"})
}

func (h *TodosHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	id := r.PathValue("id")

	todo, err := h.TodoService.Toggle(ctx, httpx.UserIDFromCtx(ctx), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Todo not found")
			return
		}
		log.Error("toggle todo failed", "todo_id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Error updating todo")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTodoResponse(todo))
}
