package models

// RegisterRequest represents the body for user registration.
// Accepted as JSON or as an urlencoded form.
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: User registered successfully.
	Message string `json:"message"`

	// Created user
	User *User `json:"user"`
}

// ErrorResponse is the body of every non-2xx response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Username already exists.
	Error string `json:"error"`
}
