package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/multiplaymat/mpm-server/internal/logger"
	"github.com/multiplaymat/mpm-server/internal/models"
	"github.com/multiplaymat/mpm-server/internal/repositories"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrMissingFields     = errors.New("username, email and password are required")
	ErrUserAlreadyExists = errors.New("username already exists")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByName(ctx context.Context, name string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, password, email string) (*models.User, error)
}

// PasswordHasher turns a plaintext password into the digest to store.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// NameReserver guards a user name while a registration for it is in flight.
type NameReserver interface {
	Reserve(ctx context.Context, name string) (string, error)
	Release(ctx context.Context, name, token string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AuthService handles user registration.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	hasher      PasswordHasher
	reserver    NameReserver // optional
	kafkaWriter KafkaWriter  // optional
}

// NewAuthService creates a new AuthService instance.
// reserver and kafkaWriter may be nil to disable reservations and event publishing.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	hasher PasswordHasher,
	reserver NameReserver,
	kafkaWriter KafkaWriter,
) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		hasher:      hasher,
		reserver:    reserver,
		kafkaWriter: kafkaWriter,
	}
}

// Register creates a new user with a hashed password and returns the stored record.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	if username == "" || password == "" || email == "" {
		return nil, ErrMissingFields
	}

	if svc.reserver != nil {
		token, err := svc.reserver.Reserve(ctx, username)
		if errors.Is(err, repositories.ErrReservationHeld) {
			logger.Log.Infow("registration already in flight", "username", username)
			return nil, ErrUserAlreadyExists
		}
		if err != nil {
			logger.Log.Errorw("failed to reserve username", "username", username, "err", err)
			return nil, err
		}
		defer func() {
			if err := svc.reserver.Release(context.WithoutCancel(ctx), username, token); err != nil {
				logger.Log.Warnw("failed to release username reservation", "username", username, "err", err)
			}
		}()
	}

	existing, err := svc.reader.GetByName(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "username", username)
		return nil, ErrUserAlreadyExists
	}

	digest, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, digest, email)
	if errors.Is(err, repositories.ErrUserNameTaken) {
		logger.Log.Infow("user created concurrently", "username", username)
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	svc.publishRegistered(ctx, user)

	return user, nil
}

// publishRegistered publishes a user.registered event to Kafka.
func (svc *AuthService) publishRegistered(ctx context.Context, user *models.User) {
	if svc.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "user_id", user.ID)
		return
	}

	event := models.UserRegisteredEvent{
		EventID:   uuid.NewString(),
		UserID:    user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "user_id", event.UserID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "user_id", event.UserID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "user_id", event.UserID, "event_id", event.EventID)
	}
}
