package todosdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/todo/pkg/httpx"
)

// APIError is a failed call as seen on the wire: an HTTP status plus the
// envelope message. The server writes it with WriteError and the client
// decodes it back, so both sides compare equal under errors.Is.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`

	// Message is the human-readable reason sent in the envelope.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// Is reports whether target is an APIError with the same status and message.
func (e *APIError) Is(target error) bool {
	var t *APIError
	if !errors.As(target, &t) {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Message == t.Message
}

// WriteError writes the error as a {"success":false,"message":...} envelope.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, Envelope{Success: false, Message: e.Message})
}

// ============================================================================
// Predefined Errors
// ============================================================================

var (
	// ErrIncompleteData is returned when /register or /login is missing a field.
	ErrIncompleteData = &APIError{StatusCode: http.StatusBadRequest, Message: "Incomplete data"}

	// ErrUserExists is returned when the username is already registered.
	ErrUserExists = &APIError{StatusCode: http.StatusConflict, Message: "User already exists"}

	// ErrUserNotFound is returned by /login for an unknown username.
	ErrUserNotFound = &APIError{StatusCode: http.StatusNotFound, Message: "User not found"}

	// ErrIncorrectPassword is returned by /login when the password does not match.
	ErrIncorrectPassword = &APIError{StatusCode: http.StatusUnauthorized, Message: "Incorrect password"}

	// ErrNotAuthenticated is returned by list and item endpoints when sessions
	// are enforced and the request carries none.
	ErrNotAuthenticated = &APIError{StatusCode: http.StatusUnauthorized, Message: "Not authenticated"}

	// ErrTitleRequired is returned by /add-list for an empty title. It is
	// answered with 200 and success=false.
	ErrTitleRequired = &APIError{StatusCode: http.StatusOK, Message: "Title is required"}

	// ErrItemFieldsRequired is returned by /add-item without a list id or description.
	ErrItemFieldsRequired = &APIError{StatusCode: http.StatusBadRequest, Message: "List ID and description are required"}

	// ErrNothingToUpdate is returned by /update-item when no field is set.
	ErrNothingToUpdate = &APIError{StatusCode: http.StatusBadRequest, Message: "Nothing to update"}

	// ErrInvalidStatus is returned when an item status is not pending or completed.
	ErrInvalidStatus = &APIError{StatusCode: http.StatusBadRequest, Message: "Status must be pending or completed"}

	// ErrListNotFound is returned when a list id does not exist.
	ErrListNotFound = &APIError{StatusCode: http.StatusNotFound, Message: "List not found"}

	// ErrInvalidBody is returned when the request body is not valid JSON.
	ErrInvalidBody = &APIError{StatusCode: http.StatusBadRequest, Message: "Invalid request body"}

	// ErrInternal is returned for storage and other unexpected failures.
	ErrInternal = &APIError{StatusCode: http.StatusInternalServerError, Message: "Internal server error"}
)

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// parseErrorResponse turns a failed response into an *APIError. A 2xx status
// is only an error when the envelope says success=false.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var env Envelope
	decodeErr := json.Unmarshal(body, &env)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if decodeErr == nil && !env.Success && env.Message != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
		}
		return nil
	}

	if decodeErr == nil && env.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	// Fallback for proxies and plain-text errors
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
