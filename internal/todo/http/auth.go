package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/internal/todo/session"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

// AuthHandler serves registration, login and the session endpoints.
type AuthHandler struct {
	UserService *service.UserService
	Sessions    *session.Manager
	Cookie      session.Cookie
}

// HandleRegister godoc
//
//	@Summary		Register a user
//	@Description	Creates an account and starts a session. The session cookie is set on success.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.RegisterRequest	true	"Account details"
//	@Success		200		{object}	todosdk.UserResponse
//	@Failure		400		{object}	todosdk.Envelope	"Incomplete data"
//	@Failure		409		{object}	todosdk.Envelope	"User already exists"
//	@Failure		429		{object}	todosdk.Envelope
//	@Failure		500		{object}	todosdk.Envelope
//	@Router			/register [post]
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req todosdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.UserService.Register(ctx, req.Username, req.Password, req.Name)
	switch {
	case errors.Is(err, service.ErrIncompleteData):
		todosdk.ErrIncompleteData.WriteError(w)
		return
	case errors.Is(err, service.ErrUsernameAlreadyTaken):
		log.Info("registration rejected", slog.String("reason", "username taken"))
		todosdk.ErrUserExists.WriteError(w)
		return
	case err != nil:
		log.Error("failed to register user", slog.Any("error", err))
		todosdk.ErrInternal.WriteError(w)
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.UserResponse{
		Envelope: success,
		User:     toUser(user.Principal()),
	})
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Verifies credentials and starts a session. The session cookie is set on success.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	todosdk.UserResponse
//	@Failure		400		{object}	todosdk.Envelope	"Incomplete data"
//	@Failure		401		{object}	todosdk.Envelope	"Incorrect password"
//	@Failure		404		{object}	todosdk.Envelope	"User not found"
//	@Failure		429		{object}	todosdk.Envelope
//	@Failure		500		{object}	todosdk.Envelope
//	@Router			/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req todosdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.UserService.Login(ctx, req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrIncompleteData):
		todosdk.ErrIncompleteData.WriteError(w)
		return
	case errors.Is(err, service.ErrUserNotFound):
		log.Info("login failed", slog.String("reason", "unknown user"))
		todosdk.ErrUserNotFound.WriteError(w)
		return
	case errors.Is(err, service.ErrIncorrectPassword):
		log.Info("login failed", slog.String("reason", "incorrect password"))
		todosdk.ErrIncorrectPassword.WriteError(w)
		return
	case err != nil:
		log.Error("failed to log in", slog.Any("error", err))
		todosdk.ErrInternal.WriteError(w)
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.UserResponse{
		Envelope: success,
		User:     toUser(user.Principal()),
	})
}

// startSession replaces any session the request already carries with a new
// one for user and sets the cookie.
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, user domain.User) bool {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if old := h.Cookie.Read(r); old != "" {
		if err := h.Sessions.Destroy(ctx, old); err != nil {
			log.Warn("failed to destroy previous session", slog.Any("error", err))
		}
	}

	value, sess, err := h.Sessions.Create(ctx, user.Principal())
	if err != nil {
		log.Error("failed to create session", slog.Any("error", err))
		todosdk.ErrInternal.WriteError(w)
		return false
	}

	h.Cookie.Write(w, value, sess.ExpiresAt)
	return true
}

// HandleLogout godoc
//
//	@Summary		Log out
//	@Description	Ends the current session, if any, and clears the cookie. Always succeeds.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	todosdk.Envelope
//	@Router			/logout [get]
//	@Router			/logout [post]
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if value := h.Cookie.Read(r); value != "" {
		if err := h.Sessions.Destroy(ctx, value); err != nil {
			slogx.FromContext(ctx).Warn("failed to destroy session", slog.Any("error", err))
		}
	}

	h.Cookie.Clear(w)
	httpx.WriteJSON(w, http.StatusOK, success)
}

// HandleGetSession godoc
//
//	@Summary		Current session
//	@Description	Reports whether the request carries a valid session and, if so, the user.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	todosdk.SessionResponse
//	@Router			/get-session [get]
func (h *AuthHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	resp := todosdk.SessionResponse{Envelope: success}
	if p, found := PrincipalFromContext(r.Context()); found {
		resp.Session = true
		resp.User = toUser(p)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
