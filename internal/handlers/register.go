package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/multiplaymat/mpm-server/internal/logger"
	"github.com/multiplaymat/mpm-server/internal/middlewares"
	"github.com/multiplaymat/mpm-server/internal/models"
	"github.com/multiplaymat/mpm-server/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, email string) (*models.User, error)
}

const (
	msgRegistered     = "User registered successfully."
	msgMissingFields  = "Username, email and password are required."
	msgUsernameExists = "Username already exists."
	msgInternalError  = "Internal server error."
)

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. The username must be unique. The password is stored as a keyed hash and is not returned.
// @Tags auth
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.RegisterResponse "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "Missing username, email or password"
// @Failure 409 {object} models.ErrorResponse "Username already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest

		err := decodeBody(w, r, &req, func(get func(string) string) {
			req.Username = get("username")
			req.Password = get("password")
			req.Email = get("email")
		})
		if err != nil {
			logger.Log.Debugw("failed to decode register request", "err", err)
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: msgMissingFields})
			return
		}

		user, err := svc.Register(r.Context(), req.Username, req.Password, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: msgMissingFields})
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: msgUsernameExists})
			default:
				logger.Log.Errorw("Registration error",
					"request_id", middlewares.RequestIDFromContext(r.Context()),
					"err", err,
				)
				writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: msgInternalError})
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.RegisterResponse{
			Message: msgRegistered,
			User:    user,
		})
	}
}
