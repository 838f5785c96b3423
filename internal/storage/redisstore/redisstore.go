// Package redisstore keeps each entity as a JSON string under
// "<prefix>:<Kind>.<id>" with one id set per kind. Batches are applied with
// WATCH/MULTI, so a concurrent writer aborts the whole batch.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/redis/go-redis/v9"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

const Name = "redis"

type Store struct {
	client redis.UniversalClient
	prefix string
}

func New(client redis.UniversalClient, prefix string) *Store {
	return &Store{
		client: client,
		prefix: prefix,
	}
}

func (s *Store) Name() string {
	return Name
}

func (s *Store) entityKey(key string) string {
	return s.prefix + ":" + key
}

func (s *Store) indexKey(kind domain.Kind) string {
	return s.prefix + ":index:" + string(kind)
}

func (s *Store) Load(ctx context.Context, kind domain.Kind, id string) (domain.Entity, bool, error) {
	data, err := s.client.Get(ctx, s.entityKey(domain.Key(kind, id))).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", domain.Key(kind, id), err)
	}

	e, err := domain.Decode(data)
	if err != nil {
		return nil, false, err
	}
	return e, true, nil
}

func (s *Store) List(ctx context.Context, kind domain.Kind) ([]domain.Entity, error) {
	var out []domain.Entity
	for _, k := range kindsOf(kind) {
		ids, err := s.client.SMembers(ctx, s.indexKey(k)).Result()
		if err != nil {
			return nil, fmt.Errorf("redis smembers %s: %w", k, err)
		}
		if len(ids) == 0 {
			continue
		}
		slices.Sort(ids)

		keys := make([]string, len(ids))
		for i, id := range ids {
			keys[i] = s.entityKey(domain.Key(k, id))
		}
		values, err := s.client.MGet(ctx, keys...).Result()
		if err != nil {
			return nil, fmt.Errorf("redis mget %s: %w", k, err)
		}

		for _, v := range values {
			str, ok := v.(string)
			if !ok {
				// indexed but deleted between SMEMBERS and MGET
				continue
			}
			e, err := domain.Decode([]byte(str))
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Store) Count(ctx context.Context, kind domain.Kind) (int, error) {
	total := 0
	for _, k := range kindsOf(kind) {
		n, err := s.client.SCard(ctx, s.indexKey(k)).Result()
		if err != nil {
			return 0, fmt.Errorf("redis scard %s: %w", k, err)
		}
		total += int(n)
	}
	return total, nil
}

func (s *Store) Apply(ctx context.Context, changes []storage.Change) error {
	keys := make([]string, 0, len(changes))
	for _, c := range changes {
		keys = append(keys, s.entityKey(c.Key()))
	}

	txf := func(tx *redis.Tx) error {
		for _, c := range changes {
			committed, err := tx.Get(ctx, s.entityKey(c.Key())).Bytes()
			exists := true
			if errors.Is(err, redis.Nil) {
				exists = false
			} else if err != nil {
				return fmt.Errorf("redis get %s: %w", c.Key(), err)
			}
			if err := storage.Check(c, committed, exists); err != nil {
				return err
			}
		}

		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, c := range changes {
				kind, id := c.Entity.Kind(), c.Entity.Base().ID
				if c.Op == storage.OpDelete {
					pipe.Del(ctx, s.entityKey(c.Key()))
					pipe.SRem(ctx, s.indexKey(kind), id)
					continue
				}
				data, err := domain.Encode(c.Entity)
				if err != nil {
					return err
				}
				pipe.Set(ctx, s.entityKey(c.Key()), data, 0)
				pipe.SAdd(ctx, s.indexKey(kind), id)
			}
			return nil
		})
		return err
	}

	err := s.client.Watch(ctx, txf, keys...)
	if errors.Is(err, redis.TxFailedErr) {
		return fmt.Errorf("redis transaction aborted: %w", domain.ErrConflict)
	}
	return err
}

func (s *Store) Close() error {
	return s.client.Close()
}

func kindsOf(kind domain.Kind) []domain.Kind {
	if kind == "" {
		return domain.Kinds()
	}
	return []domain.Kind{kind}
}
