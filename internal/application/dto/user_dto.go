package dto

import "time"

// CreateUserRequest input for creating an account.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UpdateUserRequest input for updating an account. Nil fields stay untouched;
// a non-empty Password is re-hashed.
type UpdateUserRequest struct {
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Role     *string `json:"role"`
}

// UserResponse is an account on the wire. The password hash never leaves the
// server.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse mirrors the legacy body: {"users": [...]}.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// UserCreatedResponse mirrors the legacy body: {"user": {...}}.
type UserCreatedResponse struct {
	User UserResponse `json:"user"`
}

// LoginRequest credentials for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token plus the authenticated account.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
