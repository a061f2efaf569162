package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lakefield/tasklist/internal/todo/service"
	"github.com/lakefield/tasklist/internal/todo/store"
	"github.com/lakefield/tasklist/pkg/httpx"
	"github.com/lakefield/tasklist/pkg/jwtx"
	"github.com/lakefield/tasklist/pkg/slogx"
	"github.com/lakefield/tasklist/web"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	UserService  *service.UserService
	TokenService *service.TokenService
	TodoService  *service.TodoService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Global middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORSMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTodos()
	r.registerSystem()

	// Embedded single-page client at the root.
	r.Mux.Handle("/", http.FileServerFS(web.Assets))
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
	}

	r.Mux.Handle("POST /api/auth/register", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("POST /api/auth/login", http.HandlerFunc(h.HandleLogin))
	r.Mux.Handle("GET /api/auth/profile",
		httpx.Chain(http.HandlerFunc(h.HandleProfile),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerTodos() {
	h := &TodosHandler{TodoService: r.TodoService}
	authn := httpx.AuthnMiddleware(r.verifier)

	r.Mux.Handle("GET /api/todos",
		httpx.Chain(http.HandlerFunc(h.HandleList), authn))
	r.Mux.Handle("POST /api/todos",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), authn))
	r.Mux.Handle("PUT /api/todos/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate), authn))
	r.Mux.Handle("DELETE /api/todos/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete), authn))
	r.Mux.Handle("PATCH /api/todos/{id}/toggle",
		httpx.Chain(http.HandlerFunc(h.HandleToggle), authn))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
