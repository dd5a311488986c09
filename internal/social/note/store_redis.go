// Copyright (c) 2026 Filmothèque. All rights reserved.
// Author: l.marchal.dev@gmail.com

package note

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lmarchal/filmotheque/internal/platform/constants"
)

// ErrCacheMiss is returned when no aggregate is cached for a film.
var ErrCacheMiss = errors.New("note: aggregate cache miss")

// RedisAggregateCache implements [AggregateCache] using Redis.
type RedisAggregateCache struct {
	client *redis.Client
}

// NewRedisAggregateCache creates a new Redis-backed aggregate cache.
func NewRedisAggregateCache(client *redis.Client) *RedisAggregateCache {
	return &RedisAggregateCache{client: client}
}

// GetFilmNotes returns the cached aggregate for a film, or [ErrCacheMiss].
func (cache *RedisAggregateCache) GetFilmNotes(context context.Context, filmID string) (*FilmNotes, error) {
	raw, err := cache.client.Get(context, filmNotesKey(filmID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis_film_notes_get_failed: %w", err)
	}

	payload := &FilmNotes{}
	if err := json.Unmarshal(raw, payload); err != nil {
		// A corrupt entry behaves like a miss so it gets overwritten.
		return nil, ErrCacheMiss
	}

	return payload, nil
}

// SetFilmNotes stores the aggregate with the configured TTL.
func (cache *RedisAggregateCache) SetFilmNotes(context context.Context, filmID string, payload *FilmNotes) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("redis_film_notes_marshal_failed: %w", err)
	}

	if err := cache.client.Set(context, filmNotesKey(filmID), raw, constants.FilmNotesCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis_film_notes_set_failed: %w", err)
	}
	return nil
}

// InvalidateFilm drops the cached aggregate after a rating write.
func (cache *RedisAggregateCache) InvalidateFilm(context context.Context, filmID string) error {
	if err := cache.client.Del(context, filmNotesKey(filmID)).Err(); err != nil {
		return fmt.Errorf("redis_film_notes_del_failed: %w", err)
	}
	return nil
}

func filmNotesKey(filmID string) string {
	return constants.RedisPrefixFilmNotes + filmID
}
