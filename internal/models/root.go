package models

// RootResponse is returned by the base path.
// swagger:model RootResponse
type RootResponse struct {
	// Welcome message
	// example: Welcome to Multiplaymat ! (°◓°)
	Message string `json:"message"`

	// Running service version
	// example: 1.0.0
	Version string `json:"version"`
}
