package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

type ListsHandler struct {
	ListService *service.ListService
}

// HandleList godoc
//
//	@Summary		List lists
//	@Description	Returns every list, newest first.
//	@Tags			Lists
//	@Produce		json
//	@Security		SessionCookie
//	@Success		200	{object}	todosdk.ListsResponse
//	@Failure		401	{object}	todosdk.Envelope	"Not authenticated (when sessions are required)"
//	@Failure		500	{object}	todosdk.Envelope
//	@Router			/get-list [get]
func (h *ListsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	lists, err := h.ListService.ListLists(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list lists", slog.Any("error", err))
		todosdk.ErrInternal.WriteError(w)
		return
	}

	resp := todosdk.ListsResponse{Envelope: success, Lists: make([]todosdk.List, 0, len(lists))}
	for _, l := range lists {
		resp.Lists = append(resp.Lists, toList(l))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet godoc
//
//	@Summary		Get a list
//	@Tags			Lists
//	@Produce		json
//	@Security		SessionCookie
//	@Param			id	path		string	true	"List ID"
//	@Success		200	{object}	todosdk.ListResponse
//	@Failure		404	{object}	todosdk.Envelope	"List not found"
//	@Failure		500	{object}	todosdk.Envelope
//	@Router			/get-list/{id} [get]
func (h *ListsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.ListService.GetList(ctx, r.PathValue("id"))
	switch {
	case errors.Is(err, service.ErrListNotFound):
		todosdk.ErrListNotFound.WriteError(w)
		return
	case err != nil:
		slogx.FromContext(ctx).Error("failed to get list", slog.Any("error", err))
		todosdk.ErrInternal.WriteError(w)
		return
	}

	l := toList(list)
	httpx.WriteJSON(w, http.StatusOK, todosdk.ListResponse{Envelope: success, List: &l})
}

// HandleCreate godoc
//
//	@Summary		Create a list
//	@Description	Creates a pending list. An empty title is reported with success=false and status 200.
//	@Tags			Lists
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		todosdk.CreateListRequest	true	"List title"
//	@Success		200		{object}	todosdk.ListResponse
//	@Failure		400		{object}	todosdk.Envelope	"Invalid request body"
//	@Failure		500		{object}	todosdk.Envelope
//	@Router			/add-list [post]
func (h *ListsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req todosdk.CreateListRequest
	if !decodeBody(w, r, &req) {
		return
	}

	list, err := h.ListService.CreateList(ctx, req.Title)
	switch {
	case errors.Is(err, service.ErrTitleRequired):
		todosdk.ErrTitleRequired.WriteError(w)
		return
	case err != nil:
		log.Error("failed to create list", slog.Any("error", err))
		todosdk.ErrInternal.WriteError(w)
		return
	}

	l := toList(list)
	httpx.WriteJSON(w, http.StatusOK, todosdk.ListResponse{Envelope: success, List: &l})
}

// HandleDelete godoc
//
//	@Summary		Delete a list
//	@Description	Deletes the list and all of its items. Unknown ids succeed.
//	@Tags			Lists
//	@Produce		json
//	@Security		SessionCookie
//	@Param			id	path		string	true	"List ID"
//	@Success		200	{object}	todosdk.Envelope
//	@Failure		500	{object}	todosdk.Envelope
//	@Router			/delete-list/{id} [post]
func (h *ListsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	id := r.PathValue("id")

	if err := h.ListService.DeleteList(ctx, id); err != nil {
		log.Error("failed to delete list", slog.String("list_id", id), slog.Any("error", err))
		todosdk.ErrInternal.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, success)
}
