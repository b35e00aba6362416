package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/session"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/slogx"

	_ "github.com/aussiebroadwan/todo/api/todo" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Options configures the router.
type Options struct {
	BuildVersion   string
	AllowedOrigins []string

	// RequireSession rejects list and item requests that carry no valid
	// session with 401.
	RequireSession bool
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	opts      Options
	startTime time.Time
	logger    *slog.Logger

	store    store.Store
	sessions *session.Manager
	cookie   session.Cookie

	UserService *service.UserService
	ListService *service.ListService
	ItemService *service.ItemService
}

func NewRouter(
	opts Options,
	st store.Store,
	sessions *session.Manager,
	cookie session.Cookie,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:       http.NewServeMux(),
		opts:      opts,
		startTime: time.Now(),
		logger:    logger,
		store:     st,
		sessions:  sessions,
		cookie:    cookie,
	}

	// Logging wraps CORS so rejected preflights are still logged; the
	// session is loaded once for every route.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(httpx.CORSConfig{AllowedOrigins: opts.AllowedOrigins}),
		LoadSession(r.sessions, r.cookie),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerLists()
	r.registerItems()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpx.Chain(httpSwagger.Handler(),
		httpx.RateLimitByIP(httpx.PublicLimit),
	))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			To-Do List API
//	@version		0.1.0
//	@description	Session-authenticated to-do lists. Register or log in to receive a session cookie,
//	@description	then create lists and add, complete and delete their items.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/todo
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:3000
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						todo.sid
//	@description				Signed session cookie set by /register and /login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		UserService: r.UserService,
		Sessions:    r.sessions,
		Cookie:      r.cookie,
	}

	// Credential endpoints - strict rate limit by IP + username to slow brute force
	r.Mux.Handle("POST /register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)
	r.Mux.Handle("POST /login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)

	// Session endpoints never fail and are polled by the client on load
	logout := httpx.Chain(http.HandlerFunc(h.HandleLogout),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)
	r.Mux.Handle("GET /logout", logout)
	r.Mux.Handle("POST /logout", logout)

	r.Mux.Handle("GET /get-session",
		httpx.Chain(http.HandlerFunc(h.HandleGetSession),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

// read and write wrap list and item handlers with the session policy and a
// per-user rate limit.
func (r *Router) read(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		RequireSession(r.opts.RequireSession),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
}

func (r *Router) write(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		RequireSession(r.opts.RequireSession),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
}

func (r *Router) registerLists() {
	h := &ListsHandler{ListService: r.ListService}

	r.Mux.Handle("GET /get-list", r.read(h.HandleList))
	r.Mux.Handle("GET /get-list/{id}", r.read(h.HandleGet))
	r.Mux.Handle("POST /add-list", r.write(h.HandleCreate))
	r.Mux.Handle("POST /delete-list/{id}", r.write(h.HandleDelete))
}

func (r *Router) registerItems() {
	h := &ItemsHandler{ItemService: r.ItemService}

	r.Mux.Handle("GET /get-items/{listId}", r.read(h.HandleList))
	r.Mux.Handle("POST /add-item", r.write(h.HandleCreate))
	r.Mux.Handle("POST /update-item/{id}", r.write(h.HandleUpdate))
	r.Mux.Handle("POST /delete-item/{id}", r.write(h.HandleDelete))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.opts.BuildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.opts.BuildVersion, r.store, r.sessions),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
