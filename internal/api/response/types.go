package response

import "github.com/drydock-dev/drydock/internal/model"

// User represents a user in API responses. The password hash never leaves
// the store boundary.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:       u.ID,
		Username: u.Username,
	}
}

// UsersFromModel converts a slice of users, preserving order
func UsersFromModel(users []*model.User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = UserFromModel(u)
	}
	return out
}

// TokenResponse is the response for a successful login
type TokenResponse struct {
	Token string `json:"token"`
}

// Resource represents a registry record in API responses
type Resource struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ResourceFromModel converts a model.Resource to a response Resource
func ResourceFromModel(r *model.Resource) Resource {
	return Resource{
		ID:   r.ID,
		Name: r.Name,
	}
}

// ResourcesFromModel converts a slice of resources, preserving order
func ResourcesFromModel(resources []*model.Resource) []Resource {
	out := make([]Resource, len(resources))
	for i, r := range resources {
		out[i] = ResourceFromModel(r)
	}
	return out
}

// Message is a simple informational response
type Message struct {
	Message string `json:"message"`
}
