package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

type ItemsHandler struct {
	ItemService *service.ItemService
}

// HandleList godoc
//
//	@Summary		List items
//	@Description	Returns the items of a list, oldest first. Unknown lists have no items.
//	@Tags			Items
//	@Produce		json
//	@Security		SessionCookie
//	@Param			listId	path		string	true	"List ID"
//	@Success		200		{object}	todosdk.ItemsResponse
//	@Failure		500		{object}	todosdk.Envelope
//	@Router			/get-items/{listId} [get]
func (h *ItemsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.ItemService.ListItems(ctx, r.PathValue("listId"))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list items", slog.Any("error", err))
		todosdk.ErrInternal.WriteError(w)
		return
	}

	resp := todosdk.ItemsResponse{Envelope: success, Items: make([]todosdk.Item, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, toItem(it))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCreate godoc
//
//	@Summary		Add an item
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		todosdk.CreateItemRequest	true	"Item"
//	@Success		200		{object}	todosdk.ItemResponse
//	@Failure		400		{object}	todosdk.Envelope	"List ID and description are required"
//	@Failure		404		{object}	todosdk.Envelope	"List not found"
//	@Failure		500		{object}	todosdk.Envelope
//	@Router			/add-item [post]
func (h *ItemsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req todosdk.CreateItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.ItemService.CreateItem(ctx, req.ListID, req.Description)
	switch {
	case errors.Is(err, service.ErrItemFieldsRequired):
		todosdk.ErrItemFieldsRequired.WriteError(w)
		return
	case errors.Is(err, service.ErrListNotFound):
		todosdk.ErrListNotFound.WriteError(w)
		return
	case err != nil:
		log.Error("failed to create item", slog.Any("error", err))
		todosdk.ErrInternal.WriteError(w)
		return
	}

	log.Info("item created", slog.String("item_id", item.ID), slog.String("list_id", item.ListID))
	it := toItem(item)
	httpx.WriteJSON(w, http.StatusOK, todosdk.ItemResponse{Envelope: success, Item: &it})
}

// HandleUpdate godoc
//
//	@Summary		Update an item
//	@Description	Changes the description, the status or both. Absent fields keep their value.
//	@Description	An unknown id succeeds with a null item.
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			id		path		string						true	"Item ID"
//	@Param			request	body		todosdk.UpdateItemRequest	true	"Changes"
//	@Success		200		{object}	todosdk.ItemResponse
//	@Failure		400		{object}	todosdk.Envelope	"Nothing to update or invalid status"
//	@Failure		500		{object}	todosdk.Envelope
//	@Router			/update-item/{id} [post]
func (h *ItemsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	id := r.PathValue("id")

	var req todosdk.UpdateItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	upd := domain.ItemUpdate{Description: req.Description}
	if req.Status != nil {
		s := domain.ItemStatus(*req.Status)
		upd.Status = &s
	}

	item, err := h.ItemService.UpdateItem(ctx, id, upd)
	switch {
	case errors.Is(err, service.ErrNothingToUpdate):
		todosdk.ErrNothingToUpdate.WriteError(w)
		return
	case errors.Is(err, service.ErrInvalidStatus):
		todosdk.ErrInvalidStatus.WriteError(w)
		return
	case errors.Is(err, service.ErrItemNotFound):
		httpx.WriteJSON(w, http.StatusOK, todosdk.ItemResponse{Envelope: success})
		return
	case err != nil:
		log.Error("failed to update item", slog.String("item_id", id), slog.Any("error", err))
		todosdk.ErrInternal.WriteError(w)
		return
	}

	it := toItem(item)
	httpx.WriteJSON(w, http.StatusOK, todosdk.ItemResponse{Envelope: success, Item: &it})
}

// HandleDelete godoc
//
//	@Summary		Delete an item
//	@Description	Unknown ids succeed.
//	@Tags			Items
//	@Produce		json
//	@Security		SessionCookie
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	todosdk.Envelope
//	@Failure		500	{object}	todosdk.Envelope
//	@Router			/delete-item/{id} [post]
func (h *ItemsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	id := r.PathValue("id")

	if err := h.ItemService.DeleteItem(ctx, id); err != nil {
		log.Error("failed to delete item", slog.String("item_id", id), slog.Any("error", err))
		todosdk.ErrInternal.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, success)
}
