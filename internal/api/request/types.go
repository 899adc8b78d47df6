package request

// RegisterRequest is the request body for registering a user.
// POST /users reuses the same shape.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateResourceRequest is the request body for creating a resource record
type CreateResourceRequest struct {
	Name string `json:"name"`
}
