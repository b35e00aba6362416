package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

var success = todosdk.Envelope{Success: true}

// decodeBody reads a JSON body into dst. A missing body leaves dst zero so
// field validation reports it. Malformed JSON or a body not sent as
// application/json is answered with 400 and decodeBody returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := httpx.DecodeJSON(w, r, dst)
	if err == nil || errors.Is(err, httpx.ErrEmptyBody) {
		return true
	}
	todosdk.ErrInvalidBody.WriteError(w)
	return false
}

func toUser(p domain.Principal) *todosdk.User {
	return &todosdk.User{ID: p.ID, Username: p.Username, Name: p.Name}
}

func toList(l domain.List) todosdk.List {
	return todosdk.List{
		ID:        l.ID,
		Title:     l.Title,
		Status:    l.Status,
		CreatedAt: l.CreatedAt,
	}
}

func toItem(it domain.Item) todosdk.Item {
	return todosdk.Item{
		ID:          it.ID,
		ListID:      it.ListID,
		Description: it.Description,
		Status:      string(it.Status),
		CreatedAt:   it.CreatedAt,
	}
}
