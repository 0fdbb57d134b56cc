// Package prefs remembers small customer conveniences across sessions.
// It is not part of core correctness; lookups degrade to empty values.
package prefs

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	keyPrefix = "mariabakery:prefs:"
	ttl       = 90 * 24 * time.Hour
)

// Store is a simple key-value collaborator.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, keyPrefix+key, value, ttl).Err()
}

// Customer is the remembered identity used to pre-fill the order form.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SaveCustomer stores the identity under the device key.
func SaveCustomer(ctx context.Context, store Store, deviceID string, c Customer) error {
	if err := store.Set(ctx, deviceID+":name", c.Name); err != nil {
		return err
	}
	return store.Set(ctx, deviceID+":email", c.Email)
}

// SavedCustomer loads the identity, empty fields when never saved.
func SavedCustomer(ctx context.Context, store Store, deviceID string) (Customer, error) {
	name, err := store.Get(ctx, deviceID+":name")
	if err != nil {
		return Customer{}, err
	}
	email, err := store.Get(ctx, deviceID+":email")
	if err != nil {
		return Customer{}, err
	}
	return Customer{Name: name, Email: email}, nil
}
