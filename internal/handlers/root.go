package handlers

import (
	"net/http"

	"github.com/multiplaymat/mpm-server/internal/models"
)

const welcomeMessage = "Welcome to Multiplaymat ! (°◓°)"

// NewRootHandler returns an HTTP handler reporting the running version.
// @Summary Service welcome
// @Description Returns a welcome message and the running version
// @Tags root
// @Produce json
// @Success 200 {object} models.RootResponse "Welcome message and version"
// @Router / [get]
func NewRootHandler(version string) http.HandlerFunc {
	resp := models.RootResponse{
		Message: welcomeMessage,
		Version: version,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}
