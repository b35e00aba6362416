package todosdk

import "time"

// ============================================================================
// Envelope
// ============================================================================

// Envelope is embedded in every response body. Success mirrors the HTTP
// status except for the few validation failures answered with 200.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ============================================================================
// Users and Sessions
// ============================================================================

// User is the public snapshot of an account. The password hash never leaves
// the server.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is returned by /register and /login.
type UserResponse struct {
	Envelope
	User *User `json:"user,omitempty"`
}

// SessionResponse is returned by GET /get-session.
type SessionResponse struct {
	Envelope
	Session bool  `json:"session"`
	User    *User `json:"user,omitempty"`
}

// ============================================================================
// Lists
// ============================================================================

// List is a named container of items.
type List struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateListRequest is the body of POST /add-list.
type CreateListRequest struct {
	Title string `json:"listTitle"`
}

// ListResponse carries a single list.
type ListResponse struct {
	Envelope
	List *List `json:"list,omitempty"`
}

// ListsResponse is returned by GET /get-list, newest list first.
type ListsResponse struct {
	Envelope
	Lists []List `json:"list"`
}

// ============================================================================
// Items
// ============================================================================

// Item status values.
const (
	ItemStatusPending   = "pending"
	ItemStatusCompleted = "completed"
)

// Item is a single to-do entry inside a list.
type Item struct {
	ID          string    `json:"id"`
	ListID      string    `json:"list_id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateItemRequest is the body of POST /add-item.
type CreateItemRequest struct {
	ListID      string `json:"listId"`
	Description string `json:"description"`
}

// UpdateItemRequest is the body of POST /update-item/{id}. Nil fields are
// left unchanged; at least one must be set.
type UpdateItemRequest struct {
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// ItemResponse carries a single item. Item is null when an update targeted
// an id that does not exist.
type ItemResponse struct {
	Envelope
	Item *Item `json:"item"`
}

// ItemsResponse is returned by GET /get-items/{listId}, oldest item first.
type ItemsResponse struct {
	Envelope
	Items []Item `json:"items"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports each dependency checked by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Sessions string `json:"sessions"`
}
