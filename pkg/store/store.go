// Package store persists rendered interface records in Redis so that
// dashboards and other external tooling can read the port inventory
// without talking to the control plane. Records are stored as JSON
// values under "<prefix>:interface:<id>" with a set index of known ids
// at "<prefix>:interfaces".
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"

	"github.com/flowgate-net/flowgate/pkg/port"
	"github.com/flowgate-net/flowgate/pkg/util"
)

// Options configures a Store. When SSHHost is set, Redis is reached
// through an SSH tunnel to that host and Addr is interpreted from the
// remote side.
type Options struct {
	Addr      string
	DB        int
	KeyPrefix string

	SSHHost     string
	SSHUser     string
	SSHPassword string
}

// Store is a Redis-backed interface inventory.
type Store struct {
	client *redis.Client
	prefix string
	tunnel *SSHTunnel
}

// New creates a Store, establishing the SSH tunnel first when one is
// configured. Connect must be called before use.
func New(opts Options) (*Store, error) {
	addr := opts.Addr
	var tunnel *SSHTunnel

	if opts.SSHHost != "" {
		var err error
		tunnel, err = NewSSHTunnel(opts.SSHHost, opts.SSHUser, opts.SSHPassword, opts.Addr)
		if err != nil {
			return nil, fmt.Errorf("store tunnel: %w", err)
		}
		addr = tunnel.LocalAddr()
	}

	return &Store{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   opts.DB,
		}),
		prefix: opts.KeyPrefix,
		tunnel: tunnel,
	}, nil
}

// Connect verifies the Redis connection.
func (s *Store) Connect(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", util.ErrNotConnected, err)
	}
	return nil
}

// Close releases the Redis client and the tunnel, if any.
func (s *Store) Close() error {
	err := s.client.Close()
	if s.tunnel != nil {
		if terr := s.tunnel.Close(); err == nil {
			err = terr
		}
	}
	return err
}

// InterfaceKey returns the Redis key holding one interface record.
func (s *Store) InterfaceKey(id string) string {
	return s.prefix + ":interface:" + id
}

// IndexKey returns the Redis key of the id index set.
func (s *Store) IndexKey() string {
	return s.prefix + ":interfaces"
}

// SaveInterface writes a record and registers its id in the index.
func (s *Store) SaveInterface(ctx context.Context, rec *port.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record %s: %w", rec.ID, err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.InterfaceKey(rec.ID), data, 0)
	pipe.SAdd(ctx, s.IndexKey(), rec.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("writing record %s: %w", rec.ID, err)
	}

	util.WithField("interface", rec.ID).Debug("saved interface record")
	return nil
}

// GetInterface reads one record by id.
func (s *Store) GetInterface(ctx context.Context, id string) (*port.Record, error) {
	data, err := s.client.Get(ctx, s.InterfaceKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, util.NewNotFoundError("interface", id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading record %s: %w", id, err)
	}

	rec := &port.Record{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("decoding record %s: %w", id, err)
	}
	return rec, nil
}

// ListInterfaces returns all records, sorted by id. Ids present in the
// index but missing a record (deleted concurrently) are skipped.
func (s *Store) ListInterfaces(ctx context.Context) ([]*port.Record, error) {
	ids, err := s.client.SMembers(ctx, s.IndexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("reading interface index: %w", err)
	}
	sort.Strings(ids)

	records := make([]*port.Record, 0, len(ids))
	for _, id := range ids {
		rec, err := s.GetInterface(ctx, id)
		if errors.Is(err, util.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// DeleteInterface removes a record and its index entry. It returns a
// not-found error when the id is unknown.
func (s *Store) DeleteInterface(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	del := pipe.Del(ctx, s.InterfaceKey(id))
	pipe.SRem(ctx, s.IndexKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("deleting record %s: %w", id, err)
	}
	if del.Val() == 0 {
		return util.NewNotFoundError("interface", id)
	}
	return nil
}
