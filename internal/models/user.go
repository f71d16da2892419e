package models

type User struct {
	ID    int64  `json:"id" validate:"required"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterResult carries either the identity returned by the service or the
// business error it reported ("email already registered" and the like).
type RegisterResult struct {
	User  User
	Error string
}
