package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/multiplaymat/mpm-server/internal/logger"
	"github.com/redis/go-redis/v9"
)

// ErrReservationHeld is returned when another request is already registering the same name.
var ErrReservationHeld = errors.New("user name reservation is held by another request")

// releaseScript deletes the key only if it still holds our token, so an expired
// reservation taken over by another request is left alone.
var releaseScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// UserNameReservationRepository serializes registrations of the same name across instances using Redis.
type UserNameReservationRepository struct {
	client *redis.Client
	ttl    time.Duration // upper bound on how long a crashed request can block the name
}

// NewUserNameReservationRepository creates a new repository instance.
func NewUserNameReservationRepository(client *redis.Client, ttl time.Duration) *UserNameReservationRepository {
	return &UserNameReservationRepository{
		client: client,
		ttl:    ttl,
	}
}

func reservationKey(name string) string {
	return fmt.Sprintf("register:%s", name)
}

// Reserve claims name and returns the token needed to release it.
func (r *UserNameReservationRepository) Reserve(ctx context.Context, name string) (string, error) {
	key := reservationKey(name)
	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()

	logger.Log.Debugw("redis SETNX",
		"key", key,
		"result", ok,
		"error", err,
	)

	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrReservationHeld
	}
	return token, nil
}

// Release drops the reservation if it is still owned by token.
func (r *UserNameReservationRepository) Release(ctx context.Context, name, token string) error {
	key := reservationKey(name)

	deleted, err := releaseScript.Run(ctx, r.client, []string{key}, token).Int()

	logger.Log.Debugw("redis release",
		"key", key,
		"result", deleted,
		"error", err,
	)

	return err
}
