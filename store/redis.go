package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/slugfield"
)

// Redis is a slug registry backed by a Redis hash: each taken slug is a hash
// field mapping to the identity of the record that owns it. It suits
// collaborators that keep records somewhere without cheap existence queries.
//
// The registry is maintained by the collaborator via Add/Remove; the field
// only reads it.
type Redis struct {
	client redis.UniversalClient
	key    string
}

var _ slugfield.Store = (*Redis)(nil)

// NewRedis creates a registry stored under the given hash key, one key per
// record collection (e.g. "slugs:articles").
func NewRedis(client redis.UniversalClient, key string) *Redis {
	return &Redis{client: client, key: key}
}

// Add registers a slug as taken by the record with the given identity.
func (r *Redis) Add(ctx context.Context, slug string, id any) error {
	return r.client.HSet(ctx, r.key, slug, fmt.Sprint(id)).Err()
}

// Remove releases a slug.
func (r *Redis) Remove(ctx context.Context, slug string) error {
	return r.client.HDel(ctx, r.key, slug).Err()
}

// SlugExists reports whether the slug is taken by a record other than the
// excluded one. Identities are compared by their string rendering, matching
// how Add stores them.
func (r *Redis) SlugExists(ctx context.Context, slug string, exclude any) (bool, error) {
	owner, err := r.client.HGet(ctx, r.key, slug).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if exclude != nil && owner == fmt.Sprint(exclude) {
		return false, nil
	}
	return true, nil
}
